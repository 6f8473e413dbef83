package repositories

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

func checkAffectedRows(result sql.Result, notFoundError error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return notFoundError // Возвращаем переданную ошибку "не найдено"
	}
	return nil
}

// mapConstraintError переводит нарушение именованного constraint в
// доменную ошибку. Возвращает исходную ошибку, если маппинга нет.
func mapConstraintError(err error, byConstraint map[string]error) error {
	pqErr, ok := err.(*pq.Error)
	if !ok {
		return err
	}
	switch pqErr.Code {
	case "23505", "23503", "23514": // unique, foreign key, check
		if mapped, found := byConstraint[pqErr.Constraint]; found {
			return mapped
		}
	}
	return err
}
