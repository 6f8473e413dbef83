package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/league-backend/models"
	"github.com/Dosada05/league-backend/repositories"
)

// Глобальная таблица ограничивается первой десяткой команд.
const standingsTeamLimit = 10

const (
	pointsPerWin  = 3
	pointsPerDraw = 1
)

type StandingsService interface {
	TournamentStandings(ctx context.Context, tournamentID int) ([]StandingView, error)
	GlobalStandings(ctx context.Context) ([]StandingView, error)
}

type StandingView struct {
	Rank     int    `json:"rank"`
	TeamID   int    `json:"team_id"`
	TeamName string `json:"team_name"`
	Points   int    `json:"points"`
	Wins     int    `json:"wins"`
	Draws    int    `json:"draws"`
	Played   int    `json:"played"`
}

type standingsService struct {
	tournamentRepo repositories.TournamentRepository
	teamRepo       repositories.TeamRepository
	matchRepo      repositories.MatchRepository
}

func NewStandingsService(
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
) StandingsService {
	return &standingsService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
	}
}

func (s *standingsService) TournamentStandings(ctx context.Context, tournamentID int) ([]StandingView, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %d: %w", tournamentID, err)
	}

	teams, err := s.teamRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams of tournament %d: %w", tournamentID, err)
	}
	return s.buildStandings(ctx, teams)
}

func (s *standingsService) GlobalStandings(ctx context.Context) ([]StandingView, error) {
	teams, err := s.teamRepo.ListTop(ctx, standingsTeamLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return s.buildStandings(ctx, teams)
}

// buildStandings собирает таблицу по переданному набору команд.
// Победы и ничьи считаются по структурной ссылке на победителя,
// очки — по формуле 3/1/0.
func (s *standingsService) buildStandings(ctx context.Context, teams []models.Team) ([]StandingView, error) {
	standings := make([]StandingView, 0, len(teams))
	for i, team := range teams {
		tally, err := s.matchRepo.TallyForTeam(ctx, team.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to tally matches for team %d: %w", team.ID, err)
		}

		standings = append(standings, StandingView{
			Rank:     i + 1,
			TeamID:   team.ID,
			TeamName: team.Name,
			Points:   pointsPerWin*tally.Wins + pointsPerDraw*tally.Draws,
			Wins:     tally.Wins,
			Draws:    tally.Draws,
			Played:   tally.Played,
		})
	}
	return standings, nil
}
