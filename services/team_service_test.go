package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Dosada05/league-backend/repositories/memory"
)

func TestCreateTeam_RequiresNameAndPasscode(t *testing.T) {
	t.Parallel()

	svc := NewTeamService(memory.NewStore().Teams())

	if _, err := svc.CreateTeam(context.Background(), CreateTeamInput{Passcode: "x123"}); !errors.Is(err, ErrTeamNameRequired) {
		t.Fatalf("expected ErrTeamNameRequired, got %v", err)
	}
	if _, err := svc.CreateTeam(context.Background(), CreateTeamInput{Name: "Raptors"}); !errors.Is(err, ErrTeamPasscodeRequired) {
		t.Fatalf("expected ErrTeamPasscodeRequired, got %v", err)
	}
}

func TestCreateTeam_DuplicateName(t *testing.T) {
	t.Parallel()

	svc := NewTeamService(memory.NewStore().Teams())

	if _, err := svc.CreateTeam(context.Background(), CreateTeamInput{Name: "Warriors", Passcode: "warriors123"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateTeam(context.Background(), CreateTeamInput{Name: "Warriors", Passcode: "other"}); !errors.Is(err, ErrTeamNameTaken) {
		t.Fatalf("expected ErrTeamNameTaken, got %v", err)
	}
}

func TestCreateTeam_StartsEmpty(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	svc := NewTeamService(store.Teams())

	created, err := svc.CreateTeam(context.Background(), CreateTeamInput{Name: "Lakers", Passcode: "lakers123"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if created.MemberCount != 0 {
		t.Fatalf("new team must have no members, got %d", created.MemberCount)
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}

	teams, err := svc.ListTeams(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(teams) != 1 || teams[0].Name != "Lakers" {
		t.Fatalf("unexpected team list: %+v", teams)
	}
}
