package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Dosada05/league-backend/repositories/memory"
	"github.com/Dosada05/league-backend/seed"
	"github.com/stretchr/testify/require"
)

// Поднимает полный демо-набор в память: 8 команд, 12 матчей
// (первые 6 завершены, победитель — команда A), 4 турнира.
func newSeededStore(t *testing.T) *memory.Store {
	t.Helper()

	store := memory.NewStore()
	loader := seed.NewLoader(
		store.Players(),
		store.Teams(),
		store.Announcements(),
		store.Matches(),
		store.Tournaments(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	require.NoError(t, loader.Load(context.Background()))
	return store
}

func findTournamentID(t *testing.T, store *memory.Store, title string) int {
	t.Helper()

	tournaments, err := store.Tournaments().List(context.Background())
	require.NoError(t, err)
	for _, tournament := range tournaments {
		if tournament.Title == title {
			return tournament.ID
		}
	}
	t.Fatalf("tournament %q not found in seed data", title)
	return 0
}

func TestTournamentStandings_SeededScenario(t *testing.T) {
	t.Parallel()

	store := newSeededStore(t)
	svc := NewStandingsService(store.Tournaments(), store.Teams(), store.Matches())

	id := findTournamentID(t, store, "Central Finest")
	standings, err := svc.TournamentStandings(context.Background(), id)
	require.NoError(t, err)

	// Central Finest — первые пять команд демо-набора.
	require.Len(t, standings, 5)
	wantNames := []string{"Raptors", "Warriors", "Lakers", "Bulls", "Heat"}
	// Завершены матчи (0,1)..(5,6) по кругу из 8 команд: Raptors играли
	// один из них, остальные четыре команды — по два.
	wantPlayed := []int{1, 2, 2, 2, 2}

	for i, entry := range standings {
		require.Equal(t, i+1, entry.Rank)
		require.Equal(t, wantNames[i], entry.TeamName)
		require.Equal(t, wantPlayed[i], entry.Played)
		require.Equal(t, 1, entry.Wins)
		require.Zero(t, entry.Draws)
		require.Equal(t, pointsPerWin, entry.Points)
	}
}

func TestStandings_WinsNeverExceedPlayed(t *testing.T) {
	t.Parallel()

	store := newSeededStore(t)
	svc := NewStandingsService(store.Tournaments(), store.Teams(), store.Matches())

	tournaments, err := store.Tournaments().List(context.Background())
	require.NoError(t, err)

	check := func(standings []StandingView) {
		for _, entry := range standings {
			require.LessOrEqual(t, entry.Wins, entry.Played, "team %s", entry.TeamName)
			require.LessOrEqual(t, entry.Wins+entry.Draws, entry.Played, "team %s", entry.TeamName)
			require.Equal(t, pointsPerWin*entry.Wins+pointsPerDraw*entry.Draws, entry.Points, "team %s", entry.TeamName)
		}
	}

	for _, tournament := range tournaments {
		standings, err := svc.TournamentStandings(context.Background(), tournament.ID)
		require.NoError(t, err)
		check(standings)
	}

	global, err := svc.GlobalStandings(context.Background())
	require.NoError(t, err)
	check(global)
}

func TestGlobalStandings_CapsAtTopTen(t *testing.T) {
	t.Parallel()

	store := newSeededStore(t)
	svc := NewStandingsService(store.Tournaments(), store.Teams(), store.Matches())

	standings, err := svc.GlobalStandings(context.Background())
	require.NoError(t, err)

	// В демо-наборе 8 команд, лимит 10 не срабатывает.
	require.Len(t, standings, 8)
	for i, entry := range standings {
		require.Equal(t, i+1, entry.Rank)
	}
}

func TestTournamentStandings_NotFound(t *testing.T) {
	t.Parallel()

	store := newSeededStore(t)
	svc := NewStandingsService(store.Tournaments(), store.Teams(), store.Matches())

	_, err := svc.TournamentStandings(context.Background(), 987654)
	require.ErrorIs(t, err, ErrTournamentNotFound)
}
