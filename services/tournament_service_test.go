package services

import (
	"context"
	"testing"
	"time"

	"github.com/Dosada05/league-backend/models"
	"github.com/Dosada05/league-backend/repositories/memory"
	"github.com/stretchr/testify/require"
)

func newJoinFixture(t *testing.T) (*memory.Store, TournamentService, *models.Tournament, *models.Team, *models.Team) {
	t.Helper()

	store := memory.NewStore()
	ctx := context.Background()

	passcode := "warriors123"
	gated := &models.Team{Name: "Warriors", Passcode: &passcode}
	require.NoError(t, store.Teams().Create(ctx, gated))

	open := &models.Team{Name: "Raptors"}
	require.NoError(t, store.Teams().Create(ctx, open))

	tournament := &models.Tournament{
		Title:     "Central Finest",
		StartDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EntryFee:  700,
	}
	require.NoError(t, store.Tournaments().Create(ctx, tournament))

	svc := NewTournamentService(store.Tournaments(), store.Teams(), store.Matches(), store.Players())
	return store, svc, tournament, gated, open
}

func TestJoinTournament_OpenTeamIgnoresPasscode(t *testing.T) {
	t.Parallel()

	_, svc, tournament, _, open := newJoinFixture(t)

	result, err := svc.JoinTournament(context.Background(), JoinTournamentInput{
		TournamentID: tournament.ID,
		TeamID:       open.ID,
		Passcode:     "completely-wrong",
	})
	require.NoError(t, err)
	require.Equal(t, "Raptors successfully joined Central Finest!", result.Message)
	require.Equal(t, tournament.ID, result.TournamentID)
	require.Equal(t, open.ID, result.TeamID)
}

func TestJoinTournament_PasscodeChecked(t *testing.T) {
	t.Parallel()

	_, svc, tournament, gated, _ := newJoinFixture(t)

	_, err := svc.JoinTournament(context.Background(), JoinTournamentInput{
		TournamentID: tournament.ID,
		TeamID:       gated.ID,
		Passcode:     "WARRIORS123",
	})
	require.ErrorIs(t, err, ErrInvalidPasscode)

	_, err = svc.JoinTournament(context.Background(), JoinTournamentInput{
		TournamentID: tournament.ID,
		TeamID:       gated.ID,
	})
	require.ErrorIs(t, err, ErrInvalidPasscode)

	_, err = svc.JoinTournament(context.Background(), JoinTournamentInput{
		TournamentID: tournament.ID,
		TeamID:       gated.ID,
		Passcode:     "warriors123",
	})
	require.NoError(t, err)
}

func TestJoinTournament_SecondJoinRejected(t *testing.T) {
	t.Parallel()

	_, svc, tournament, _, open := newJoinFixture(t)

	input := JoinTournamentInput{TournamentID: tournament.ID, TeamID: open.ID}

	_, err := svc.JoinTournament(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.JoinTournament(context.Background(), input)
	require.ErrorIs(t, err, ErrTeamAlreadyJoined)
}

func TestJoinTournament_MissingEntities(t *testing.T) {
	t.Parallel()

	_, svc, tournament, _, open := newJoinFixture(t)

	_, err := svc.JoinTournament(context.Background(), JoinTournamentInput{TournamentID: 9999, TeamID: open.ID})
	require.ErrorIs(t, err, ErrTournamentNotFound)

	_, err = svc.JoinTournament(context.Background(), JoinTournamentInput{TournamentID: tournament.ID, TeamID: 9999})
	require.ErrorIs(t, err, ErrTeamNotFound)

	_, err = svc.JoinTournament(context.Background(), JoinTournamentInput{TeamID: open.ID})
	require.ErrorIs(t, err, ErrJoinFieldsRequired)
}

func TestGetTournamentDetail_NotFound(t *testing.T) {
	t.Parallel()

	_, svc, _, _, _ := newJoinFixture(t)

	_, err := svc.GetTournamentDetail(context.Background(), 424242)
	require.ErrorIs(t, err, ErrTournamentNotFound)

	_, err = svc.ListFixtures(context.Background(), 424242)
	require.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestGetTournamentDetail_RostersAndMatches(t *testing.T) {
	t.Parallel()

	store, svc, tournament, gated, open := newJoinFixture(t)
	ctx := context.Background()

	phone := "+12345670000"
	player := &models.Player{Username: "john_doe", PhoneNumber: &phone, PasswordHash: "x", IsActive: true}
	require.NoError(t, store.Players().Create(ctx, player))
	require.NoError(t, store.Teams().AddMember(ctx, open.ID, player.ID))

	require.NoError(t, store.Tournaments().AddTeam(ctx, tournament.ID, open.ID))

	result := "Warriors wins"
	match := &models.Match{
		TeamAID:       gated.ID,
		TeamBID:       open.ID,
		ScheduledTime: time.Date(2026, 9, 2, 18, 0, 0, 0, time.UTC),
		Location:      "Court 1",
		IsCompleted:   true,
		Result:        &result,
		WinnerID:      &gated.ID,
	}
	require.NoError(t, store.Matches().Create(ctx, match))
	require.NoError(t, store.Tournaments().AddMatch(ctx, tournament.ID, match.ID))

	detail, err := svc.GetTournamentDetail(ctx, tournament.ID)
	require.NoError(t, err)
	require.Equal(t, "Central Finest", detail.Title)
	require.Equal(t, "2026-09-01", detail.StartDate)
	require.Len(t, detail.Teams, 1)
	require.Equal(t, "Raptors", detail.Teams[0].Name)
	require.Equal(t, []RosterMember{{Username: "john_doe"}}, detail.Teams[0].Members)
	require.Len(t, detail.Matches, 1)
	require.Equal(t, "Warriors", detail.Matches[0].TeamA)
	require.Equal(t, "Raptors", detail.Matches[0].TeamB)
	require.True(t, detail.Matches[0].IsCompleted)

	fixtures, err := svc.ListFixtures(ctx, tournament.ID)
	require.NoError(t, err)
	require.Len(t, fixtures, 1)
	require.Equal(t, TeamRef{ID: gated.ID, Name: "Warriors"}, fixtures[0].TeamA)
	require.Equal(t, TeamRef{ID: open.ID, Name: "Raptors"}, fixtures[0].TeamB)
}
