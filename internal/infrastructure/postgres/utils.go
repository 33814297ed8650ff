package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Temizlik-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return hasCode(err, "23505")
}

// isForeignKeyViolation verifica si un error es una violación de clave foránea (23503).
func isForeignKeyViolation(err error) bool {
	return hasCode(err, "23503")
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// isInvalidText verifica si un valor no se pudo convertir al tipo de la columna (22P02), ej. un UUID mal formado.
func isInvalidText(err error) bool {
	return hasCode(err, "22P02")
}

// storeErr traduce violaciones de integridad y valores mal formados a errores de dominio
// y envuelve el resto en StoreError.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err):
		return domain.ErrConflict
	case isInvalidText(err):
		return domain.NewValidationError("", "valor con formato inválido")
	}
	return domain.NewStoreError(op, err)
}
