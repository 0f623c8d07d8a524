package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/seifmegahed/daftar/internal/domain"
	"github.com/seifmegahed/daftar/internal/domain/entity"
)

// Querier subconjunto común de *pgxpool.Pool y pgx.Tx; los repos funcionan con cualquiera.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == "23505"
}

// isForeignKeyViolation verifica si un error es una violación de FK (23503).
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == "23503"
}

// isInvalidID detecta un id con formato inválido para una columna UUID (22P02).
// Se trata igual que un registro inexistente.
func isInvalidID(err error) bool {
	return pgCode(err) == "22P02"
}

// isOutOfRange detecta valores fuera de rango numérico (22003) o CHECK violados (23514).
func isOutOfRange(err error) bool {
	code := pgCode(err)
	return code == "22003" || code == "23514"
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// mapWriteError traduce violaciones de constraint a errores de dominio.
func mapWriteError(err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err):
		return domain.ErrConflict
	case isInvalidID(err):
		return domain.ErrNotFound
	case isOutOfRange(err):
		return domain.ErrInvalidInput
	}
	return nil
}

// searchPattern arma el patrón ILIKE para la búsqueda por nombre ("" = sin filtro).
func searchPattern(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// collectOptions lee filas (id, name).
func collectOptions(rows pgx.Rows) ([]entity.Option, error) {
	defer rows.Close()
	list := []entity.Option{}
	for rows.Next() {
		var o entity.Option
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// affected devuelve ErrNotFound si el comando no tocó filas.
func affected(tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
