package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/league-backend/models"
)

var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamNameConflict  = errors.New("team name conflict")
	ErrTeamMemberInvalid = errors.New("team member conflict or invalid")
)

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id int) (*models.Team, error)
	List(ctx context.Context) ([]models.Team, error)
	ListTop(ctx context.Context, limit int) ([]models.Team, error)
	ListByTournament(ctx context.Context, tournamentID int) ([]models.Team, error)
	AddMember(ctx context.Context, teamID, playerID int) error
	DeleteAll(ctx context.Context) error
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

var teamConstraintErrors = map[string]error{
	"teams_name_key":             ErrTeamNameConflict,
	"team_members_player_id_fkey": ErrTeamMemberInvalid,
	"team_members_team_id_fkey":  ErrTeamMemberInvalid,
}

func (r *postgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (name, passcode)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, team.Name, team.Passcode).
		Scan(&team.ID, &team.CreatedAt)
	if err != nil {
		return mapConstraintError(err, teamConstraintErrors)
	}
	return nil
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	query := `
		SELECT id, name, passcode, created_at
		FROM teams
		WHERE id = $1`

	team := &models.Team{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&team.ID,
		&team.Name,
		&team.Passcode,
		&team.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

// List возвращает все команды со счётчиком участников.
func (r *postgresTeamRepository) List(ctx context.Context) ([]models.Team, error) {
	query := `
		SELECT t.id, t.name, t.passcode, t.created_at, COUNT(tm.player_id)
		FROM teams t
		LEFT JOIN team_members tm ON tm.team_id = t.id
		GROUP BY t.id
		ORDER BY t.id ASC`
	return r.listTeams(ctx, query)
}

// ListTop возвращает первые limit команд в порядке идентификаторов.
func (r *postgresTeamRepository) ListTop(ctx context.Context, limit int) ([]models.Team, error) {
	query := `
		SELECT t.id, t.name, t.passcode, t.created_at, COUNT(tm.player_id)
		FROM teams t
		LEFT JOIN team_members tm ON tm.team_id = t.id
		GROUP BY t.id
		ORDER BY t.id ASC
		LIMIT $1`
	return r.listTeams(ctx, query, limit)
}

func (r *postgresTeamRepository) ListByTournament(ctx context.Context, tournamentID int) ([]models.Team, error) {
	query := `
		SELECT t.id, t.name, t.passcode, t.created_at, COUNT(tm.player_id)
		FROM teams t
		JOIN tournament_teams tt ON tt.team_id = t.id
		LEFT JOIN team_members tm ON tm.team_id = t.id
		WHERE tt.tournament_id = $1
		GROUP BY t.id
		ORDER BY t.id ASC`
	return r.listTeams(ctx, query, tournamentID)
}

func (r *postgresTeamRepository) AddMember(ctx context.Context, teamID, playerID int) error {
	query := `
		INSERT INTO team_members (team_id, player_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`

	_, err := r.db.ExecContext(ctx, query, teamID, playerID)
	if err != nil {
		return mapConstraintError(err, teamConstraintErrors)
	}
	return nil
}

// DeleteAll используется только загрузчиком демо-данных.
// Матчи и членства удаляются каскадом.
func (r *postgresTeamRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM teams`)
	return err
}

func (r *postgresTeamRepository) listTeams(ctx context.Context, query string, args ...interface{}) ([]models.Team, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var team models.Team
		scanErr := rows.Scan(
			&team.ID,
			&team.Name,
			&team.Passcode,
			&team.CreatedAt,
			&team.MemberCount,
		)
		if scanErr != nil {
			return nil, scanErr
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}
