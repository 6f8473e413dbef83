package repositories

import (
	"errors"
	"testing"

	"github.com/lib/pq"
)

func TestMapConstraintError(t *testing.T) {
	t.Parallel()

	mapping := map[string]error{
		"players_username_key":     ErrPlayerUsernameConflict,
		"players_phone_number_key": ErrPlayerPhoneConflict,
	}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "unique violation with known constraint",
			err:  &pq.Error{Code: "23505", Constraint: "players_username_key"},
			want: ErrPlayerUsernameConflict,
		},
		{
			name: "unique violation on another mapped constraint",
			err:  &pq.Error{Code: "23505", Constraint: "players_phone_number_key"},
			want: ErrPlayerPhoneConflict,
		},
		{
			name: "unique violation with unknown constraint passes through",
			err:  &pq.Error{Code: "23505", Constraint: "some_other_key"},
		},
		{
			name: "unrelated pq error passes through",
			err:  &pq.Error{Code: "42P01", Constraint: "players_username_key"},
		},
		{
			name: "non-pq error passes through",
			err:  errors.New("connection reset"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mapConstraintError(tc.err, mapping)
			if tc.want != nil {
				if !errors.Is(got, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
				return
			}
			if got != tc.err {
				t.Fatalf("expected original error back, got %v", got)
			}
		})
	}
}
