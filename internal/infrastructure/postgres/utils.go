package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de violación de constraint único.
const uniqueViolationCode = "23505"

// isUniqueViolation detecta la violación de un constraint único. En este
// esquema el único caso es el índice de phone en la tabla user.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
