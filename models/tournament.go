package models

import "time"

// Tournament представляет турнир. Даты start/end — календарные (DATE в БД),
// entry_fee хранится как NUMERIC(10,2).
type Tournament struct {
	ID        int       `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	StartDate time.Time `json:"start_date" db:"start_date"`
	EndDate   time.Time `json:"end_date" db:"end_date"`
	EntryFee  float64   `json:"entry_fee" db:"entry_fee"`

	// Опциональные связанные сущности (не мапятся напрямую)
	Teams   []Team  `json:"teams,omitempty" db:"-"`
	Matches []Match `json:"matches,omitempty" db:"-"`
}
