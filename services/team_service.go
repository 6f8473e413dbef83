package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/league-backend/models"
	"github.com/Dosada05/league-backend/repositories"
)

type TeamService interface {
	ListTeams(ctx context.Context) ([]TeamView, error)
	CreateTeam(ctx context.Context, input CreateTeamInput) (*TeamView, error)
}

type CreateTeamInput struct {
	Name     string `json:"name"`
	Passcode string `json:"passcode"`
}

// TeamView — проекция команды для списков: без пасскода и состава.
type TeamView struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type teamService struct {
	teamRepo repositories.TeamRepository
}

func NewTeamService(teamRepo repositories.TeamRepository) TeamService {
	return &teamService{teamRepo: teamRepo}
}

func (s *teamService) ListTeams(ctx context.Context) ([]TeamView, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	views := make([]TeamView, 0, len(teams))
	for _, team := range teams {
		views = append(views, TeamView{
			ID:          team.ID,
			Name:        team.Name,
			MemberCount: team.MemberCount,
			CreatedAt:   team.CreatedAt,
		})
	}
	return views, nil
}

func (s *teamService) CreateTeam(ctx context.Context, input CreateTeamInput) (*TeamView, error) {
	if input.Name == "" {
		return nil, ErrTeamNameRequired
	}
	if input.Passcode == "" {
		return nil, ErrTeamPasscodeRequired
	}

	team := &models.Team{
		Name:     input.Name,
		Passcode: &input.Passcode,
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNameConflict) {
			return nil, ErrTeamNameTaken
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	// Новая команда создаётся без участников.
	return &TeamView{
		ID:        team.ID,
		Name:      team.Name,
		CreatedAt: team.CreatedAt,
	}, nil
}
