package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/yusufkecer/vitalia-backend/internal/config"
	"github.com/yusufkecer/vitalia-backend/internal/domain"
	"github.com/yusufkecer/vitalia-backend/internal/logging"
	_ "modernc.org/sqlite"
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Open opens and pings the configured store. A missing SQLite file is
// created by the driver on first connect.
func Open(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)

	switch cfg.DBDriver {
	case config.DriverSQLite:
		db, err = sql.Open("sqlite", cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
	case config.DriverMySQL:
		db, err = sql.Open("mysql", cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DBDriver)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// Init prepares the store before the listener starts: open, migrate,
// then check that the live table matches domain.ProfileTable.
func Init(ctx context.Context, cfg *config.Config, log logging.Logger) (*sql.DB, error) {
	db, err := Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db, cfg.DBDriver, log); err != nil {
		db.Close()
		return nil, err
	}

	if err := VerifySchema(ctx, db, cfg.DBDriver, domain.ProfileTable); err != nil {
		db.Close()
		return nil, err
	}

	log.Info(ctx, "database ready", "driver", cfg.DBDriver, "table", domain.ProfileTable.Name)
	return db, nil
}
