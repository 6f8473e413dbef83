// Package memory содержит потокобезопасные in-memory реализации
// репозиториев. Используются в тестах и локальных экспериментах вместо
// Postgres; семантика (уникальность, каскады, сортировки) повторяет
// SQL-реализации.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Dosada05/league-backend/models"
	"github.com/Dosada05/league-backend/repositories"
)

// Store держит всё состояние; отдельные репозитории — тонкие обёртки
// над общим стором, как соединения над одной БД.
type Store struct {
	mu sync.RWMutex

	players       map[int]models.Player
	teams         map[int]models.Team
	announcements map[int]models.Announcement
	matches       map[int]models.Match
	tournaments   map[int]models.Tournament

	teamMembers       map[int][]int // teamID -> playerIDs, в порядке добавления
	tournamentTeams   map[int][]int // tournamentID -> teamIDs
	tournamentMatches map[int][]int // tournamentID -> matchIDs

	nextID int
}

func NewStore() *Store {
	return &Store{
		players:           make(map[int]models.Player),
		teams:             make(map[int]models.Team),
		announcements:     make(map[int]models.Announcement),
		matches:           make(map[int]models.Match),
		tournaments:       make(map[int]models.Tournament),
		teamMembers:       make(map[int][]int),
		tournamentTeams:   make(map[int][]int),
		tournamentMatches: make(map[int][]int),
		nextID:            1,
	}
}

func (s *Store) Players() repositories.PlayerRepository { return &playerRepository{s} }
func (s *Store) Teams() repositories.TeamRepository     { return &teamRepository{s} }
func (s *Store) Announcements() repositories.AnnouncementRepository {
	return &announcementRepository{s}
}
func (s *Store) Matches() repositories.MatchRepository          { return &matchRepository{s} }
func (s *Store) Tournaments() repositories.TournamentRepository { return &tournamentRepository{s} }

func (s *Store) allocID() int {
	id := s.nextID
	s.nextID++
	return id
}

func sortedIDs[T any](items map[int]T) []int {
	ids := make([]int, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// --- players ---

type playerRepository struct{ store *Store }

func (r *playerRepository) Create(_ context.Context, player *models.Player) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.players {
		if existing.Username == player.Username {
			return repositories.ErrPlayerUsernameConflict
		}
		if player.PhoneNumber != nil && existing.PhoneNumber != nil && *existing.PhoneNumber == *player.PhoneNumber {
			return repositories.ErrPlayerPhoneConflict
		}
	}

	player.ID = s.allocID()
	if player.DateJoined.IsZero() {
		player.DateJoined = time.Now().UTC()
	}
	s.players[player.ID] = *player
	return nil
}

func (r *playerRepository) GetByID(_ context.Context, id int) (*models.Player, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	player, ok := s.players[id]
	if !ok {
		return nil, repositories.ErrPlayerNotFound
	}
	return &player, nil
}

func (r *playerRepository) GetByUsername(_ context.Context, username string) (*models.Player, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, player := range s.players {
		if player.Username == username {
			p := player
			return &p, nil
		}
	}
	return nil, repositories.ErrPlayerNotFound
}

func (r *playerRepository) ListUsernamesByTeam(_ context.Context, teamID int) ([]string, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	memberIDs := append([]int(nil), s.teamMembers[teamID]...)
	sort.Ints(memberIDs)

	usernames := make([]string, 0, len(memberIDs))
	for _, playerID := range memberIDs {
		if player, ok := s.players[playerID]; ok {
			usernames = append(usernames, player.Username)
		}
	}
	return usernames, nil
}

func (r *playerRepository) DeleteAllExceptSuperusers(_ context.Context) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, player := range s.players {
		if player.IsSuperuser {
			continue
		}
		delete(s.players, id)
		for teamID, members := range s.teamMembers {
			s.teamMembers[teamID] = removeID(members, id)
		}
	}
	return nil
}

// --- teams ---

type teamRepository struct{ store *Store }

func (r *teamRepository) Create(_ context.Context, team *models.Team) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.teams {
		if existing.Name == team.Name {
			return repositories.ErrTeamNameConflict
		}
	}

	team.ID = s.allocID()
	if team.CreatedAt.IsZero() {
		team.CreatedAt = time.Now().UTC()
	}
	s.teams[team.ID] = *team
	return nil
}

func (r *teamRepository) GetByID(_ context.Context, id int) (*models.Team, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	team, ok := s.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	return &team, nil
}

func (r *teamRepository) List(_ context.Context) ([]models.Team, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listTeamsLocked(sortedIDs(s.teams)), nil
}

func (r *teamRepository) ListTop(_ context.Context, limit int) ([]models.Team, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := sortedIDs(s.teams)
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return s.listTeamsLocked(ids), nil
}

func (r *teamRepository) ListByTournament(_ context.Context, tournamentID int) ([]models.Team, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := append([]int(nil), s.tournamentTeams[tournamentID]...)
	sort.Ints(ids)
	return s.listTeamsLocked(ids), nil
}

func (r *teamRepository) AddMember(_ context.Context, teamID, playerID int) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[teamID]; !ok {
		return repositories.ErrTeamMemberInvalid
	}
	if _, ok := s.players[playerID]; !ok {
		return repositories.ErrTeamMemberInvalid
	}
	for _, existing := range s.teamMembers[teamID] {
		if existing == playerID {
			return nil // уже в составе, как ON CONFLICT DO NOTHING
		}
	}
	s.teamMembers[teamID] = append(s.teamMembers[teamID], playerID)
	return nil
}

func (r *teamRepository) DeleteAll(_ context.Context) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = make(map[int]models.Team)
	s.teamMembers = make(map[int][]int)
	// Каскад: матчи ссылаются на команды.
	s.matches = make(map[int]models.Match)
	s.tournamentTeams = make(map[int][]int)
	s.tournamentMatches = make(map[int][]int)
	return nil
}

func (s *Store) listTeamsLocked(ids []int) []models.Team {
	teams := make([]models.Team, 0, len(ids))
	for _, id := range ids {
		team, ok := s.teams[id]
		if !ok {
			continue
		}
		team.MemberCount = len(s.teamMembers[id])
		teams = append(teams, team)
	}
	return teams
}

// --- announcements ---

type announcementRepository struct{ store *Store }

func (r *announcementRepository) Create(_ context.Context, announcement *models.Announcement) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	announcement.ID = s.allocID()
	if announcement.CreatedAt.IsZero() {
		announcement.CreatedAt = time.Now().UTC()
	}
	s.announcements[announcement.ID] = *announcement
	return nil
}

func (r *announcementRepository) ListActive(_ context.Context, now time.Time) ([]models.Announcement, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]models.Announcement, 0, len(s.announcements))
	for _, id := range sortedIDs(s.announcements) {
		a := s.announcements[id]
		if a.ExpiresAt == nil || !a.ExpiresAt.Before(now) {
			active = append(active, a)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})
	return active, nil
}

func (r *announcementRepository) DeleteAll(_ context.Context) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.announcements = make(map[int]models.Announcement)
	return nil
}

// --- matches ---

type matchRepository struct{ store *Store }

func (r *matchRepository) Create(_ context.Context, match *models.Match) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if match.TeamAID == match.TeamBID {
		return repositories.ErrMatchSameTeam
	}
	if _, ok := s.teams[match.TeamAID]; !ok {
		return repositories.ErrMatchTeamInvalid
	}
	if _, ok := s.teams[match.TeamBID]; !ok {
		return repositories.ErrMatchTeamInvalid
	}

	match.ID = s.allocID()
	s.matches[match.ID] = *match
	return nil
}

func (r *matchRepository) ListByTournament(_ context.Context, tournamentID int) ([]models.Match, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]models.Match, 0, len(s.tournamentMatches[tournamentID]))
	for _, matchID := range s.tournamentMatches[tournamentID] {
		match, ok := s.matches[matchID]
		if !ok {
			continue
		}
		teamA := s.teams[match.TeamAID]
		teamB := s.teams[match.TeamBID]
		match.TeamA = &models.Team{ID: teamA.ID, Name: teamA.Name}
		match.TeamB = &models.Team{ID: teamB.ID, Name: teamB.Name}
		matches = append(matches, match)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].ScheduledTime.Before(matches[j].ScheduledTime)
	})
	return matches, nil
}

func (r *matchRepository) TallyForTeam(_ context.Context, teamID int) (repositories.TeamTally, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tally repositories.TeamTally
	for _, match := range s.matches {
		if match.TeamAID != teamID && match.TeamBID != teamID {
			continue
		}
		if !match.IsCompleted {
			continue
		}
		tally.Played++
		switch {
		case match.WinnerID == nil:
			tally.Draws++
		case *match.WinnerID == teamID:
			tally.Wins++
		}
	}
	return tally, nil
}

func (r *matchRepository) DeleteAll(_ context.Context) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.matches = make(map[int]models.Match)
	for tournamentID := range s.tournamentMatches {
		s.tournamentMatches[tournamentID] = nil
	}
	return nil
}

// --- tournaments ---

type tournamentRepository struct{ store *Store }

func (r *tournamentRepository) Create(_ context.Context, tournament *models.Tournament) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	tournament.ID = s.allocID()
	s.tournaments[tournament.ID] = *tournament
	return nil
}

func (r *tournamentRepository) GetByID(_ context.Context, id int) (*models.Tournament, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	tournament, ok := s.tournaments[id]
	if !ok {
		return nil, repositories.ErrTournamentNotFound
	}
	return &tournament, nil
}

func (r *tournamentRepository) List(_ context.Context) ([]models.Tournament, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	tournaments := make([]models.Tournament, 0, len(s.tournaments))
	for _, id := range sortedIDs(s.tournaments) {
		tournaments = append(tournaments, s.tournaments[id])
	}
	sort.SliceStable(tournaments, func(i, j int) bool {
		return tournaments[i].StartDate.After(tournaments[j].StartDate)
	})
	return tournaments, nil
}

func (r *tournamentRepository) AddTeam(_ context.Context, tournamentID, teamID int) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tournaments[tournamentID]; !ok {
		return repositories.ErrTournamentRefInvalid
	}
	if _, ok := s.teams[teamID]; !ok {
		return repositories.ErrTournamentRefInvalid
	}
	for _, existing := range s.tournamentTeams[tournamentID] {
		if existing == teamID {
			return repositories.ErrTournamentTeamConflict
		}
	}
	s.tournamentTeams[tournamentID] = append(s.tournamentTeams[tournamentID], teamID)
	return nil
}

func (r *tournamentRepository) HasTeam(_ context.Context, tournamentID, teamID int) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, existing := range s.tournamentTeams[tournamentID] {
		if existing == teamID {
			return true, nil
		}
	}
	return false, nil
}

func (r *tournamentRepository) AddMatch(_ context.Context, tournamentID, matchID int) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tournaments[tournamentID]; !ok {
		return repositories.ErrTournamentRefInvalid
	}
	if _, ok := s.matches[matchID]; !ok {
		return repositories.ErrTournamentRefInvalid
	}
	for _, existing := range s.tournamentMatches[tournamentID] {
		if existing == matchID {
			return nil
		}
	}
	s.tournamentMatches[tournamentID] = append(s.tournamentMatches[tournamentID], matchID)
	return nil
}

func (r *tournamentRepository) DeleteAll(_ context.Context) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tournaments = make(map[int]models.Tournament)
	s.tournamentTeams = make(map[int][]int)
	s.tournamentMatches = make(map[int][]int)
	return nil
}

func removeID(ids []int, id int) []int {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
