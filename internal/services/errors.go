package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation - нарушение уникального ограничения PostgreSQL (23505).
// Используется, чтобы превратить конфликт по code в понятную 400-ю ошибку.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
