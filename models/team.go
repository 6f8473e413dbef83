package models

import "time"

type Team struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Passcode  *string   `json:"-" db:"passcode"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Заполняется запросами со счётчиком, не колонка.
	MemberCount int      `json:"member_count,omitempty" db:"-"`
	Members     []Player `json:"members,omitempty" db:"-"`
}
