package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/yusufkecer/vitalia-backend/internal/config"
	"github.com/yusufkecer/vitalia-backend/internal/domain"
)

var ErrSchemaMismatch = errors.New("schema mismatch")

// Each query yields (column name, part of primary key).
var columnQueries = map[string]string{
	config.DriverSQLite: `SELECT name, pk > 0 FROM pragma_table_info(?) ORDER BY cid`,
	config.DriverMySQL: `SELECT column_name, column_key = 'PRI' FROM information_schema.columns
		 WHERE table_schema = DATABASE() AND table_name = ?
		 ORDER BY ordinal_position`,
}

// VerifySchema fails with ErrSchemaMismatch when the live table lacks any
// declared column or its primary key differs from the declared one. Extra
// columns are tolerated; column types are not compared.
func VerifySchema(ctx context.Context, db *sql.DB, driver string, table domain.Table) error {
	query, ok := columnQueries[driver]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	present, key, err := liveColumns(ctx, db, query, table.Name)
	if err != nil {
		return err
	}

	if missing := table.Missing(present); len(missing) > 0 {
		return fmt.Errorf("%w: table %s is missing columns %v", ErrSchemaMismatch, table.Name, missing)
	}

	want := table.PrimaryKey()
	slices.Sort(want)
	slices.Sort(key)
	if !slices.Equal(want, key) {
		return fmt.Errorf("%w: table %s has primary key %v, want %v", ErrSchemaMismatch, table.Name, key, want)
	}
	return nil
}

func liveColumns(ctx context.Context, db *sql.DB, query, table string) (cols, key []string, err error) {
	rows, err := db.QueryContext(ctx, query, table)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name string
			pk   bool
		)
		if err := rows.Scan(&name, &pk); err != nil {
			return nil, nil, fmt.Errorf("failed to scan column: %w", err)
		}
		cols = append(cols, name)
		if pk {
			key = append(key, name)
		}
	}
	return cols, key, rows.Err()
}
