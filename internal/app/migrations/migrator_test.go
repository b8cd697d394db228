package migrations

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

type fakeExecer struct {
	sql  string
	args []any
	err  error
}

func (f *fakeExecer) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.sql = sql
	f.args = args
	return pgconn.CommandTag{}, f.err
}

func TestRecordMigrationUsesGivenExecutor(t *testing.T) {
	m := &Migrator{}
	tx := &fakeExecer{}

	err := m.recordMigration(context.Background(), tx, "001")
	assert.NoError(t, err)

	// The version row must go through the migration's own transaction,
	// never around it, so a rollback drops the record too.
	assert.Contains(t, tx.sql, "INSERT INTO schema_migrations")
	assert.Len(t, tx.args, 2)
	assert.Equal(t, "001", tx.args[0])
}

func TestRecordMigrationPropagatesError(t *testing.T) {
	m := &Migrator{}
	tx := &fakeExecer{err: assert.AnError}

	err := m.recordMigration(context.Background(), tx, "002")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to record migration")
}
