package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/invoice-pdf-api/internal/domain"
)

// storageError envuelve un error de PostgreSQL como domain.ErrStorage, con el código SQLSTATE si existe.
func storageError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%w: %s: [%s] %s", domain.ErrStorage, op, pgErr.Code, pgErr.Message)
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrStorage, op, err)
}
