// Package persistencetest opens throwaway migrated databases for tests.
package persistencetest

import (
	"io"
	"log/slog"
	"testing"

	"plantcare/config"
	"plantcare/internal/infra/persistence"
	"plantcare/internal/infra/persistence/migrations"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLite returns an isolated in-memory SQLite database with every migration
// applied. It is closed when the test ends.
//
// The pool holds one connection, so code running inside a transaction must
// only use the repositories bound to that transaction.
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	path := persistence.InMemorySQLitePath("plantcare-" + uuid.NewString())
	db, err := persistence.OpenSQLite(path, persistence.NewGormLogger(nil, logger.Silent, config.StorageDriverSQLite))
	require.NoError(t, err)

	require.NoError(t, migrations.Run(db, slog.New(slog.NewTextHandler(io.Discard, nil))))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
