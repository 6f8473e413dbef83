package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/league-backend/models"
	"github.com/Dosada05/league-backend/repositories"
	"golang.org/x/sync/errgroup"
)

const dateLayout = "2006-01-02"

type TournamentService interface {
	ListTournaments(ctx context.Context) ([]TournamentSummary, error)
	GetTournamentDetail(ctx context.Context, tournamentID int) (*TournamentDetail, error)
	ListFixtures(ctx context.Context, tournamentID int) ([]FixtureView, error)
	JoinTournament(ctx context.Context, input JoinTournamentInput) (*JoinTournamentResult, error)
}

type JoinTournamentInput struct {
	TournamentID int    `json:"tournament_id"`
	TeamID       int    `json:"team_id"`
	Passcode     string `json:"passcode"`
}

type TeamRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type TournamentSummary struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	EntryFee  float64   `json:"entry_fee"`
	Teams     []TeamRef `json:"teams"`
	TeamCount int       `json:"team_count"`
}

type RosterMember struct {
	Username string `json:"username"`
}

type TeamRoster struct {
	ID      int            `json:"id"`
	Name    string         `json:"name"`
	Members []RosterMember `json:"members"`
}

// MatchView — матч внутри детали турнира; команды отдаются именами.
type MatchView struct {
	ID            int       `json:"id"`
	TeamA         string    `json:"team_a"`
	TeamB         string    `json:"team_b"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Location      string    `json:"location"`
	IsCompleted   bool      `json:"is_completed"`
	Result        *string   `json:"result"`
}

// FixtureView — матч в расписании; команды отдаются ссылками id+name.
type FixtureView struct {
	ID            int       `json:"id"`
	TeamA         TeamRef   `json:"team_a"`
	TeamB         TeamRef   `json:"team_b"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Location      string    `json:"location"`
	IsCompleted   bool      `json:"is_completed"`
	Result        *string   `json:"result"`
}

type TournamentDetail struct {
	ID        int          `json:"id"`
	Title     string       `json:"title"`
	StartDate string       `json:"start_date"`
	EndDate   string       `json:"end_date"`
	EntryFee  float64      `json:"entry_fee"`
	Teams     []TeamRoster `json:"teams"`
	Matches   []MatchView  `json:"matches"`
}

type JoinTournamentResult struct {
	Message      string `json:"message"`
	TournamentID int    `json:"tournament_id"`
	TeamID       int    `json:"team_id"`
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	teamRepo       repositories.TeamRepository
	matchRepo      repositories.MatchRepository
	playerRepo     repositories.PlayerRepository
}

func NewTournamentService(
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
	playerRepo repositories.PlayerRepository,
) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
		playerRepo:     playerRepo,
	}
}

func (s *tournamentService) ListTournaments(ctx context.Context) ([]TournamentSummary, error) {
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}

	summaries := make([]TournamentSummary, 0, len(tournaments))
	for _, t := range tournaments {
		teams, err := s.teamRepo.ListByTournament(ctx, t.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list teams of tournament %d: %w", t.ID, err)
		}

		refs := make([]TeamRef, 0, len(teams))
		for _, team := range teams {
			refs = append(refs, TeamRef{ID: team.ID, Name: team.Name})
		}

		summaries = append(summaries, TournamentSummary{
			ID:        t.ID,
			Title:     t.Title,
			StartDate: t.StartDate.Format(dateLayout),
			EndDate:   t.EndDate.Format(dateLayout),
			EntryFee:  t.EntryFee,
			Teams:     refs,
			TeamCount: len(refs),
		})
	}
	return summaries, nil
}

func (s *tournamentService) GetTournamentDetail(ctx context.Context, tournamentID int) (*TournamentDetail, error) {
	tournament, err := s.getTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	// Составы и матчи независимы, грузим параллельно.
	var (
		rosters []TeamRoster
		matches []models.Match
	)
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		teams, err := s.teamRepo.ListByTournament(gCtx, tournamentID)
		if err != nil {
			return fmt.Errorf("failed to list teams of tournament %d: %w", tournamentID, err)
		}
		rosters = make([]TeamRoster, 0, len(teams))
		for _, team := range teams {
			usernames, err := s.playerRepo.ListUsernamesByTeam(gCtx, team.ID)
			if err != nil {
				return fmt.Errorf("failed to list members of team %d: %w", team.ID, err)
			}
			members := make([]RosterMember, 0, len(usernames))
			for _, username := range usernames {
				members = append(members, RosterMember{Username: username})
			}
			rosters = append(rosters, TeamRoster{ID: team.ID, Name: team.Name, Members: members})
		}
		return nil
	})

	g.Go(func() error {
		var err error
		matches, err = s.matchRepo.ListByTournament(gCtx, tournamentID)
		if err != nil {
			return fmt.Errorf("failed to list matches of tournament %d: %w", tournamentID, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	views := make([]MatchView, 0, len(matches))
	for _, match := range matches {
		views = append(views, MatchView{
			ID:            match.ID,
			TeamA:         match.TeamA.Name,
			TeamB:         match.TeamB.Name,
			ScheduledTime: match.ScheduledTime,
			Location:      match.Location,
			IsCompleted:   match.IsCompleted,
			Result:        match.Result,
		})
	}

	return &TournamentDetail{
		ID:        tournament.ID,
		Title:     tournament.Title,
		StartDate: tournament.StartDate.Format(dateLayout),
		EndDate:   tournament.EndDate.Format(dateLayout),
		EntryFee:  tournament.EntryFee,
		Teams:     rosters,
		Matches:   views,
	}, nil
}

func (s *tournamentService) ListFixtures(ctx context.Context, tournamentID int) ([]FixtureView, error) {
	if _, err := s.getTournament(ctx, tournamentID); err != nil {
		return nil, err
	}

	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches of tournament %d: %w", tournamentID, err)
	}

	fixtures := make([]FixtureView, 0, len(matches))
	for _, match := range matches {
		fixtures = append(fixtures, FixtureView{
			ID:            match.ID,
			TeamA:         TeamRef{ID: match.TeamA.ID, Name: match.TeamA.Name},
			TeamB:         TeamRef{ID: match.TeamB.ID, Name: match.TeamB.Name},
			ScheduledTime: match.ScheduledTime,
			Location:      match.Location,
			IsCompleted:   match.IsCompleted,
			Result:        match.Result,
		})
	}
	return fixtures, nil
}

func (s *tournamentService) JoinTournament(ctx context.Context, input JoinTournamentInput) (*JoinTournamentResult, error) {
	if input.TournamentID == 0 || input.TeamID == 0 {
		return nil, ErrJoinFieldsRequired
	}

	tournament, err := s.getTournament(ctx, input.TournamentID)
	if err != nil {
		return nil, err
	}

	team, err := s.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", input.TeamID, err)
	}

	// Пустой пасскод команды означает открытое вступление.
	if team.Passcode != nil && *team.Passcode != "" && *team.Passcode != input.Passcode {
		return nil, ErrInvalidPasscode
	}

	joined, err := s.tournamentRepo.HasTeam(ctx, input.TournamentID, input.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to check tournament membership: %w", err)
	}
	if joined {
		return nil, ErrTeamAlreadyJoined
	}

	if err := s.tournamentRepo.AddTeam(ctx, input.TournamentID, input.TeamID); err != nil {
		// Пред-проверку могла обогнать параллельная заявка — первичный ключ
		// join-таблицы переводит это в ту же ошибку "уже вступила".
		if errors.Is(err, repositories.ErrTournamentTeamConflict) {
			return nil, ErrTeamAlreadyJoined
		}
		return nil, fmt.Errorf("failed to add team to tournament: %w", err)
	}

	return &JoinTournamentResult{
		Message:      fmt.Sprintf("%s successfully joined %s!", team.Name, tournament.Title),
		TournamentID: tournament.ID,
		TeamID:       team.ID,
	}, nil
}

func (s *tournamentService) getTournament(ctx context.Context, id int) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %d: %w", id, err)
	}
	return tournament, nil
}
