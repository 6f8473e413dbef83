package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/league-backend/models"
)

var (
	ErrPlayerNotFound         = errors.New("player not found")
	ErrPlayerUsernameConflict = errors.New("player username conflict")
	ErrPlayerPhoneConflict    = errors.New("player phone number conflict")
)

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	GetByUsername(ctx context.Context, username string) (*models.Player, error)
	ListUsernamesByTeam(ctx context.Context, teamID int) ([]string, error)
	DeleteAllExceptSuperusers(ctx context.Context) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

var playerConstraintErrors = map[string]error{
	"players_username_key":     ErrPlayerUsernameConflict,
	"players_phone_number_key": ErrPlayerPhoneConflict,
}

func (r *postgresPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (username, phone_number, password_hash, is_staff, is_superuser, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, date_joined`

	err := r.db.QueryRowContext(ctx, query,
		player.Username,
		player.PhoneNumber,
		player.PasswordHash,
		player.IsStaff,
		player.IsSuperuser,
		player.IsActive,
	).Scan(&player.ID, &player.DateJoined)

	if err != nil {
		return mapConstraintError(err, playerConstraintErrors)
	}
	return nil
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	query := `
		SELECT id, username, phone_number, password_hash, is_staff, is_superuser, is_active, date_joined
		FROM players
		WHERE id = $1`
	return r.scanPlayer(ctx, query, id)
}

func (r *postgresPlayerRepository) GetByUsername(ctx context.Context, username string) (*models.Player, error) {
	query := `
		SELECT id, username, phone_number, password_hash, is_staff, is_superuser, is_active, date_joined
		FROM players
		WHERE username = $1`
	return r.scanPlayer(ctx, query, username)
}

// ListUsernamesByTeam возвращает никнеймы участников команды в порядке вступления.
func (r *postgresPlayerRepository) ListUsernamesByTeam(ctx context.Context, teamID int) ([]string, error) {
	query := `
		SELECT p.username
		FROM players p
		JOIN team_members tm ON tm.player_id = p.id
		WHERE tm.team_id = $1
		ORDER BY tm.player_id ASC`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usernames := make([]string, 0)
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, err
		}
		usernames = append(usernames, username)
	}
	return usernames, rows.Err()
}

// DeleteAllExceptSuperusers используется только загрузчиком демо-данных.
func (r *postgresPlayerRepository) DeleteAllExceptSuperusers(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE is_superuser = FALSE`)
	return err
}

func (r *postgresPlayerRepository) scanPlayer(ctx context.Context, query string, args ...interface{}) (*models.Player, error) {
	player := &models.Player{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&player.ID,
		&player.Username,
		&player.PhoneNumber,
		&player.PasswordHash,
		&player.IsStaff,
		&player.IsSuperuser,
		&player.IsActive,
		&player.DateJoined,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to scan player: %w", err)
	}
	return player, nil
}
