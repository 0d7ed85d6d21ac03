package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// IsUniqueViolation проверяет, является ли ошибка нарушением уникальности PostgreSQL (SQLSTATE 23505).
//
// Работает с обернутыми ошибками благодаря errors.As.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == uniqueViolation
	}

	return false
}
