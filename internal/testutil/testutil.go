// Package testutil opens throwaway catalog databases and seeds them for tests.
package testutil

import (
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"movies-api/internal/config"
	"movies-api/internal/database"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func Logger(tb testing.TB) *logrus.Logger {
	tb.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// DB returns a migrated in-memory SQLite catalog private to the calling test.
func DB(tb testing.TB) *database.Database {
	tb.Helper()

	cfg := config.DatabaseConfig{
		Driver:             config.DriverSQLite,
		SQLitePath:         fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		MaxOpenConns:       1,
		MaxIdleConns:       1,
		ConnMaxLifetime:    time.Hour,
		QueryTimeout:       5 * time.Second,
		SlowQueryThreshold: time.Second,
		AutoMigrate:        true,
	}

	db, err := database.Connect(cfg, Logger(tb))
	if err != nil {
		tb.Fatalf("failed to init test db: %v", err)
	}
	tb.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// PostgresDB connects to the Postgres catalog described by the DB_* environment
// and migrates it. Tests using it are skipped unless DB_DRIVER=postgres.
func PostgresDB(tb testing.TB) *database.Database {
	tb.Helper()
	if os.Getenv("DB_DRIVER") != config.DriverPostgres {
		tb.Skip("DB_DRIVER is not postgres")
	}

	cfg := config.Load().Database
	cfg.AutoMigrate = true

	db, err := database.Connect(cfg, Logger(tb))
	if err != nil {
		tb.Fatalf("failed to connect to postgres: %v", err)
	}
	tb.Cleanup(func() {
		_ = db.Close()
	})
	return db
}
