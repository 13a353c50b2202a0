package persistence

import (
	"fmt"
	"strings"

	"plantcare/internal/errors"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// OpenSQLite opens a pure-Go SQLite database at path, or a private in-memory
// database when path is empty or ":memory:".
//
// SQLite allows one writer at a time, so the pool is capped at a single
// connection. Row locks (FOR UPDATE) are dropped by the dialect.
func OpenSQLite(path string, gormLogger logger.Interface) (*gorm.DB, error) {
	dsn := sqliteDSN(path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormLogger,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database %q", path)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sqlite sql.DB")
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// InMemorySQLitePath names a shared-cache in-memory database, isolated by name.
func InMemorySQLitePath(name string) string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
}

func sqliteDSN(path string) string {
	if path == "" || path == ":memory:" {
		path = "file::memory:"
	}

	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}

	return path + separator + sqlitePragmas
}
