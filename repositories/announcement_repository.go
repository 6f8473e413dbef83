package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/Dosada05/league-backend/models"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	ListActive(ctx context.Context, now time.Time) ([]models.Announcement, error)
	DeleteAll(ctx context.Context) error
}

type postgresAnnouncementRepository struct {
	db *sql.DB
}

func NewPostgresAnnouncementRepository(db *sql.DB) AnnouncementRepository {
	return &postgresAnnouncementRepository{db: db}
}

func (r *postgresAnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	query := `
		INSERT INTO announcements (title, content, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		announcement.Title,
		announcement.Content,
		announcement.ExpiresAt,
	).Scan(&announcement.ID, &announcement.CreatedAt)
}

// ListActive возвращает объявления без срока либо с ещё не истёкшим сроком,
// свежие первыми.
func (r *postgresAnnouncementRepository) ListActive(ctx context.Context, now time.Time) ([]models.Announcement, error) {
	query := `
		SELECT id, title, content, created_at, expires_at
		FROM announcements
		WHERE expires_at IS NULL OR expires_at >= $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	announcements := make([]models.Announcement, 0)
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.CreatedAt, &a.ExpiresAt); err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}

func (r *postgresAnnouncementRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM announcements`)
	return err
}
