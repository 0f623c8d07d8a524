package postgres

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seifmegahed/daftar/internal/domain"
	"github.com/seifmegahed/daftar/internal/domain/entity"
)

func TestSearchPattern(t *testing.T) {
	assert.Equal(t, "", searchPattern("   "))
	assert.Equal(t, "%acme%", searchPattern(" acme "))
	assert.Equal(t, `%50\%\_off%`, searchPattern("50%_off"))
}

func TestMapWriteError(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}

	assert.ErrorIs(t, mapWriteError(unique), domain.ErrDuplicate)
	assert.ErrorIs(t, mapWriteError(fk), domain.ErrConflict)
	assert.ErrorIs(t, mapWriteError(&pgconn.PgError{Code: "22P02"}), domain.ErrNotFound)
	assert.ErrorIs(t, mapWriteError(&pgconn.PgError{Code: "22003"}), domain.ErrInvalidInput)
	assert.ErrorIs(t, mapWriteError(&pgconn.PgError{Code: "23514"}), domain.ErrInvalidInput)
	assert.Nil(t, mapWriteError(errors.New("timeout")))
}

func TestIsInvalidID(t *testing.T) {
	assert.True(t, isInvalidID(fmt.Errorf("get client: %w", &pgconn.PgError{Code: "22P02"})))
	assert.False(t, isInvalidID(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isInvalidID(nil))
}

// Clientes y proveedores con documentos vinculados no se borran en cascada:
// la FK debe fallar para que el borrado responda conflicto.
func TestMigracion_RelacionesNoBorranEnCascada(t *testing.T) {
	sql, err := migrationsFS.ReadFile("migrations/000001_init.up.sql")
	require.NoError(t, err)

	table := string(sql)
	start := strings.Index(table, "CREATE TABLE IF NOT EXISTS document_relations")
	require.GreaterOrEqual(t, start, 0)
	table = table[start:]
	table = table[:strings.Index(table, ");")]

	for _, line := range strings.Split(table, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "client_id") || strings.HasPrefix(line, "supplier_id") {
			assert.NotContains(t, line, "CASCADE", line)
		}
	}
	assert.Contains(t, table, "REFERENCES clients(id)")
	assert.Contains(t, table, "REFERENCES suppliers(id)")
}

func TestLineItemTable(t *testing.T) {
	table, err := lineItemTable(entity.KindOffer)
	assert.NoError(t, err)
	assert.Equal(t, "commercial_offer_items", table)

	_, err = lineItemTable("bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTargetColumn(t *testing.T) {
	id := "11111111-1111-1111-1111-111111111111"
	col, val, err := targetColumn(entity.RelationTarget{SupplierID: &id})
	assert.NoError(t, err)
	assert.Equal(t, "supplier_id", col)
	assert.Equal(t, id, val)

	_, _, err = targetColumn(entity.RelationTarget{SupplierID: &id, ClientID: &id})
	assert.ErrorIs(t, err, domain.ErrInvalidRelation)

	_, _, err = targetColumn(entity.RelationTarget{})
	assert.ErrorIs(t, err, domain.ErrInvalidRelation)
}
