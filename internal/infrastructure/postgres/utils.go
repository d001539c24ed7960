package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrAlreadySeeded el catálogo ya estaba cargado (números de documento o SKU repetidos).
var ErrAlreadySeeded = errors.New("catálogo ya cargado")

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// quote literal SQL entre comillas simples.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
