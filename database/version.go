package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const schemaVersionQuery = `SELECT version_id FROM goose_db_version WHERE is_applied ORDER BY id DESC LIMIT 1`

// SchemaVersion returns the latest applied migration version, or 0 on an empty history.
func SchemaVersion(ctx context.Context, db *sql.DB) (int64, error) {
	var version int64
	err := db.QueryRowContext(ctx, schemaVersionQuery).Scan(&version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}

	return version, nil
}
