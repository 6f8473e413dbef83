package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Dosada05/league-backend/repositories/memory"
)

func TestFixtureShapes(t *testing.T) {
	t.Parallel()

	if got := len(playerUsernames()); got != 20 {
		t.Fatalf("expected 20 players, got %d", got)
	}

	teams := teamFixtures()
	if len(teams) != 8 {
		t.Fatalf("expected 8 teams, got %d", len(teams))
	}
	for _, team := range teams {
		if team.MemberLo < 0 || team.MemberHi > 20 || team.MemberLo >= team.MemberHi {
			t.Fatalf("team %s has invalid member range [%d, %d)", team.Name, team.MemberLo, team.MemberHi)
		}
	}

	if got := len(announcementFixtures()); got != 5 {
		t.Fatalf("expected 5 announcements, got %d", got)
	}

	tournaments := tournamentFixtures()
	if len(tournaments) != 4 {
		t.Fatalf("expected 4 tournaments, got %d", len(tournaments))
	}
	for _, tournament := range tournaments {
		if tournament.TeamLo >= tournament.TeamHi || tournament.TeamHi > len(teams) {
			t.Fatalf("tournament %s has invalid team range", tournament.Title)
		}
		if tournament.MatchLo > tournament.MatchHi || tournament.MatchHi > matchCount {
			t.Fatalf("tournament %s has invalid match range", tournament.Title)
		}
		if tournament.StartOffsetDays >= tournament.EndOffsetDays {
			t.Fatalf("tournament %s ends before it starts", tournament.Title)
		}
	}
}

// Ротация i vs i+1 по кругу из восьми команд никогда не сводит
// команду с самой собой.
func TestMatchRotationDistinctTeams(t *testing.T) {
	t.Parallel()

	teamCount := len(teamFixtures())
	for i := 0; i < matchCount; i++ {
		if i%teamCount == (i+1)%teamCount {
			t.Fatalf("match %d pairs a team with itself", i)
		}
	}
}

func TestLoad_PopulatesStore(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	loader := newTestLoader(store)

	ctx := context.Background()
	if err := loader.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	teams, err := store.Teams().List(ctx)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 8 {
		t.Fatalf("expected 8 teams, got %d", len(teams))
	}
	for _, team := range teams {
		if team.MemberCount != 4 {
			t.Fatalf("team %s has %d members, want 4", team.Name, team.MemberCount)
		}
	}

	announcements, err := store.Announcements().ListActive(ctx, time.Now().UTC())
	if err != nil {
		t.Fatalf("list announcements: %v", err)
	}
	if len(announcements) != 5 {
		t.Fatalf("expected 5 active announcements, got %d", len(announcements))
	}

	tournaments, err := store.Tournaments().List(ctx)
	if err != nil {
		t.Fatalf("list tournaments: %v", err)
	}
	if len(tournaments) != 4 {
		t.Fatalf("expected 4 tournaments, got %d", len(tournaments))
	}

	// Первые шесть матчей завершены с победителем, остальные — нет.
	completed := 0
	for _, team := range teams {
		tally, err := store.Matches().TallyForTeam(ctx, team.ID)
		if err != nil {
			t.Fatalf("tally for %s: %v", team.Name, err)
		}
		completed += tally.Played
		if tally.Draws != 0 {
			t.Fatalf("seed data has no draws, team %s reports %d", team.Name, tally.Draws)
		}
	}
	// Каждый завершённый матч учитывается обеими командами.
	if completed != 2*completedMatchCount {
		t.Fatalf("expected %d completed team-matches, got %d", 2*completedMatchCount, completed)
	}
}

// Load деструктивен и от прогона к прогону даёт одинаковый набор.
func TestLoad_Idempotent(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	loader := newTestLoader(store)
	ctx := context.Background()

	if err := loader.Load(ctx); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if err := loader.Load(ctx); err != nil {
		t.Fatalf("second load: %v", err)
	}

	teams, err := store.Teams().List(ctx)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 8 {
		t.Fatalf("expected 8 teams after reload, got %d", len(teams))
	}
}

func newTestLoader(store *memory.Store) *Loader {
	return NewLoader(
		store.Players(),
		store.Teams(),
		store.Announcements(),
		store.Matches(),
		store.Tournaments(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}
