package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/league-backend/models"
)

var (
	ErrTournamentNotFound     = errors.New("tournament not found")
	ErrTournamentTeamConflict = errors.New("team already joined tournament")
	ErrTournamentRefInvalid   = errors.New("tournament reference conflict or invalid")
)

type TournamentRepository interface {
	Create(ctx context.Context, tournament *models.Tournament) error
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	List(ctx context.Context) ([]models.Tournament, error)
	AddTeam(ctx context.Context, tournamentID, teamID int) error
	HasTeam(ctx context.Context, tournamentID, teamID int) (bool, error)
	AddMatch(ctx context.Context, tournamentID, matchID int) error
	DeleteAll(ctx context.Context) error
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

var tournamentConstraintErrors = map[string]error{
	"tournament_teams_pkey":                 ErrTournamentTeamConflict,
	"tournament_teams_team_id_fkey":         ErrTournamentRefInvalid,
	"tournament_teams_tournament_id_fkey":   ErrTournamentRefInvalid,
	"tournament_matches_match_id_fkey":      ErrTournamentRefInvalid,
	"tournament_matches_tournament_id_fkey": ErrTournamentRefInvalid,
}

func (r *postgresTournamentRepository) Create(ctx context.Context, tournament *models.Tournament) error {
	query := `
		INSERT INTO tournaments (title, start_date, end_date, entry_fee)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		tournament.Title,
		tournament.StartDate,
		tournament.EndDate,
		tournament.EntryFee,
	).Scan(&tournament.ID)
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	query := `
		SELECT id, title, start_date, end_date, entry_fee
		FROM tournaments
		WHERE id = $1`

	tournament := &models.Tournament{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&tournament.ID,
		&tournament.Title,
		&tournament.StartDate,
		&tournament.EndDate,
		&tournament.EntryFee,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return tournament, nil
}

// List возвращает турниры, ближайшие по дате старта первыми.
func (r *postgresTournamentRepository) List(ctx context.Context) ([]models.Tournament, error) {
	query := `
		SELECT id, title, start_date, end_date, entry_fee
		FROM tournaments
		ORDER BY start_date DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tournaments := make([]models.Tournament, 0)
	for rows.Next() {
		var t models.Tournament
		if err := rows.Scan(&t.ID, &t.Title, &t.StartDate, &t.EndDate, &t.EntryFee); err != nil {
			return nil, err
		}
		tournaments = append(tournaments, t)
	}
	return tournaments, rows.Err()
}

func (r *postgresTournamentRepository) AddTeam(ctx context.Context, tournamentID, teamID int) error {
	query := `
		INSERT INTO tournament_teams (tournament_id, team_id)
		VALUES ($1, $2)`

	_, err := r.db.ExecContext(ctx, query, tournamentID, teamID)
	if err != nil {
		return mapConstraintError(err, tournamentConstraintErrors)
	}
	return nil
}

func (r *postgresTournamentRepository) HasTeam(ctx context.Context, tournamentID, teamID int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM tournament_teams
			WHERE tournament_id = $1 AND team_id = $2
		)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, tournamentID, teamID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresTournamentRepository) AddMatch(ctx context.Context, tournamentID, matchID int) error {
	query := `
		INSERT INTO tournament_matches (tournament_id, match_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`

	_, err := r.db.ExecContext(ctx, query, tournamentID, matchID)
	if err != nil {
		return mapConstraintError(err, tournamentConstraintErrors)
	}
	return nil
}

func (r *postgresTournamentRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tournaments`)
	return err
}
