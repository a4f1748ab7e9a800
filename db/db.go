package db

import (
	"context"
	"database/sql"
	"time"

	"quiz_app_backend/config"

	"github.com/golang/glog"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const pingTimeout = 5 * time.Second

// Open connects to the configured database, verifies the connection and
// creates the schema. The caller owns the returned handle and must Close it.
func Open(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	glog.Infof("Connecting to %s database", cfg.DBDriver)
	return OpenDSN(ctx, cfg.DBDriver, cfg.DSN())
}

func OpenDSN(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	database, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "error opening database")
	}

	if driver == config.DriverSQLite {
		// A single connection keeps in-memory databases shared and
		// serializes writers.
		database.SetMaxOpenConns(1)
		if _, err := database.ExecContext(ctx, `PRAGMA foreign_keys = ON;`); err != nil {
			database.Close()
			return nil, errors.Wrap(err, "error enabling foreign keys")
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := database.PingContext(pingCtx); err != nil {
		database.Close()
		return nil, errors.Wrap(err, "error pinging database")
	}

	if err := InitSchema(ctx, database, driver); err != nil {
		database.Close()
		return nil, err
	}

	return database, nil
}
