package seed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Dosada05/league-backend/models"
	"github.com/Dosada05/league-backend/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Loader наполняет базу демо-данными. Деструктивен: сначала вычищает
// все таблицы (кроме суперпользователей), поэтому живёт в отдельной
// административной команде и никогда не вызывается из обработчиков.
type Loader struct {
	players       repositories.PlayerRepository
	teams         repositories.TeamRepository
	announcements repositories.AnnouncementRepository
	matches       repositories.MatchRepository
	tournaments   repositories.TournamentRepository
	logger        *slog.Logger
	now           func() time.Time
}

func NewLoader(
	players repositories.PlayerRepository,
	teams repositories.TeamRepository,
	announcements repositories.AnnouncementRepository,
	matches repositories.MatchRepository,
	tournaments repositories.TournamentRepository,
	logger *slog.Logger,
) *Loader {
	return &Loader{
		players:       players,
		teams:         teams,
		announcements: announcements,
		matches:       matches,
		tournaments:   tournaments,
		logger:        logger,
		now:           time.Now,
	}
}

func (l *Loader) Load(ctx context.Context) error {
	l.logger.Info("clearing existing data")
	if err := l.clear(ctx); err != nil {
		return fmt.Errorf("failed to clear existing data: %w", err)
	}

	players, err := l.createPlayers(ctx)
	if err != nil {
		return err
	}

	teams, err := l.createTeams(ctx, players)
	if err != nil {
		return err
	}

	if err := l.createAnnouncements(ctx); err != nil {
		return err
	}

	matches, err := l.createMatches(ctx, teams)
	if err != nil {
		return err
	}

	if err := l.createTournaments(ctx, teams, matches); err != nil {
		return err
	}

	l.logger.Info("demo data loaded",
		slog.Int("players", len(players)),
		slog.Int("teams", len(teams)),
		slog.Int("matches", len(matches)),
	)
	return nil
}

func (l *Loader) clear(ctx context.Context) error {
	if err := l.matches.DeleteAll(ctx); err != nil {
		return err
	}
	if err := l.tournaments.DeleteAll(ctx); err != nil {
		return err
	}
	if err := l.announcements.DeleteAll(ctx); err != nil {
		return err
	}
	if err := l.teams.DeleteAll(ctx); err != nil {
		return err
	}
	return l.players.DeleteAllExceptSuperusers(ctx)
}

func (l *Loader) createPlayers(ctx context.Context) ([]models.Player, error) {
	// Один хеш на всех демо-игроков, bcrypt дорогой.
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("ошибка хеширования пароля: %w", err)
	}

	usernames := playerUsernames()
	players := make([]models.Player, 0, len(usernames))
	for i, username := range usernames {
		phone := fmt.Sprintf("+1234567%04d", i)
		player := models.Player{
			Username:     username,
			PhoneNumber:  &phone,
			PasswordHash: string(hash),
			IsActive:     true,
		}
		if err := l.players.Create(ctx, &player); err != nil {
			return nil, fmt.Errorf("failed to create player %s: %w", username, err)
		}
		l.logger.Info("created player", slog.String("username", username))
		players = append(players, player)
	}
	return players, nil
}

func (l *Loader) createTeams(ctx context.Context, players []models.Player) ([]models.Team, error) {
	fixtures := teamFixtures()
	teams := make([]models.Team, 0, len(fixtures))
	for _, fixture := range fixtures {
		passcode := strings.ToLower(fixture.Name) + "123"
		team := models.Team{
			Name:     fixture.Name,
			Passcode: &passcode,
		}
		if err := l.teams.Create(ctx, &team); err != nil {
			return nil, fmt.Errorf("failed to create team %s: %w", fixture.Name, err)
		}
		for _, player := range players[fixture.MemberLo:fixture.MemberHi] {
			if err := l.teams.AddMember(ctx, team.ID, player.ID); err != nil {
				return nil, fmt.Errorf("failed to add member to team %s: %w", fixture.Name, err)
			}
		}
		l.logger.Info("created team",
			slog.String("name", fixture.Name),
			slog.Int("members", fixture.MemberHi-fixture.MemberLo),
		)
		teams = append(teams, team)
	}
	return teams, nil
}

func (l *Loader) createAnnouncements(ctx context.Context) error {
	now := l.now().UTC()
	for _, fixture := range announcementFixtures() {
		expiresAt := now.AddDate(0, 0, fixture.ExpiresInDays)
		announcement := models.Announcement{
			Title:     fixture.Title,
			Content:   fixture.Content,
			ExpiresAt: &expiresAt,
		}
		if err := l.announcements.Create(ctx, &announcement); err != nil {
			return fmt.Errorf("failed to create announcement %q: %w", fixture.Title, err)
		}
		l.logger.Info("created announcement", slog.String("title", fixture.Title))
	}
	return nil
}

func (l *Loader) createMatches(ctx context.Context, teams []models.Team) ([]models.Match, error) {
	now := l.now().UTC()
	matches := make([]models.Match, 0, matchCount)
	for i := 0; i < matchCount; i++ {
		teamA := teams[i%len(teams)]
		teamB := teams[(i+1)%len(teams)]
		match := models.Match{
			TeamAID:       teamA.ID,
			TeamBID:       teamB.ID,
			ScheduledTime: now.AddDate(0, 0, i+1).Add(time.Duration(i*2) * time.Hour),
			Location:      fmt.Sprintf("Court %d", (i%courtCount)+1),
			IsCompleted:   i < completedMatchCount,
		}
		if match.IsCompleted {
			result := fmt.Sprintf("%s wins", teamA.Name)
			match.Result = &result
			match.WinnerID = &teamA.ID
		}
		if err := l.matches.Create(ctx, &match); err != nil {
			return nil, fmt.Errorf("failed to create match %d: %w", i, err)
		}
		l.logger.Info("created match",
			slog.String("team_a", teamA.Name),
			slog.String("team_b", teamB.Name),
			slog.Bool("completed", match.IsCompleted),
		)
		matches = append(matches, match)
	}
	return matches, nil
}

func (l *Loader) createTournaments(ctx context.Context, teams []models.Team, matches []models.Match) error {
	now := l.now().UTC()
	for _, fixture := range tournamentFixtures() {
		tournament := models.Tournament{
			Title:     fixture.Title,
			StartDate: now.AddDate(0, 0, fixture.StartOffsetDays),
			EndDate:   now.AddDate(0, 0, fixture.EndOffsetDays),
			EntryFee:  fixture.EntryFee,
		}
		if err := l.tournaments.Create(ctx, &tournament); err != nil {
			return fmt.Errorf("failed to create tournament %q: %w", fixture.Title, err)
		}
		for _, team := range teams[fixture.TeamLo:fixture.TeamHi] {
			if err := l.tournaments.AddTeam(ctx, tournament.ID, team.ID); err != nil {
				return fmt.Errorf("failed to add team to tournament %q: %w", fixture.Title, err)
			}
		}
		for _, match := range matches[fixture.MatchLo:fixture.MatchHi] {
			if err := l.tournaments.AddMatch(ctx, tournament.ID, match.ID); err != nil {
				return fmt.Errorf("failed to add match to tournament %q: %w", fixture.Title, err)
			}
		}
		l.logger.Info("created tournament", slog.String("title", fixture.Title))
	}
	return nil
}
