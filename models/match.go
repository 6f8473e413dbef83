package models

import "time"

type Match struct {
	ID            int       `json:"id" db:"id"`
	TeamAID       int       `json:"team_a_id" db:"team_a_id"`
	TeamBID       int       `json:"team_b_id" db:"team_b_id"`
	ScheduledTime time.Time `json:"scheduled_time" db:"scheduled_time"`
	Location      string    `json:"location" db:"location"`
	IsCompleted   bool      `json:"is_completed" db:"is_completed"`
	// Free-text result kept for display; the outcome itself is WinnerID.
	Result *string `json:"result" db:"result"`
	// NULL on a completed match means a draw.
	WinnerID *int `json:"winner_id,omitempty" db:"winner_id"`

	// Опциональные связанные сущности (не мапятся напрямую)
	TeamA *Team `json:"team_a,omitempty" db:"-"`
	TeamB *Team `json:"team_b,omitempty" db:"-"`
}
