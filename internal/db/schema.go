package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. One logical collection, partitioned by
// user_id: every query against it carries the partition key. The notes column
// stays out of every index; it is free text and not worth the write cost.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id           TEXT NOT NULL,
    user_id      TEXT NOT NULL,
    name         TEXT NOT NULL,
    quantity     REAL NOT NULL DEFAULT 0,
    max_quantity REAL NOT NULL DEFAULT 50,
    unit         TEXT NOT NULL DEFAULT 'items',
    category     TEXT NOT NULL DEFAULT 'Other',
    status       TEXT NOT NULL DEFAULT 'Enough',
    notes        TEXT NOT NULL DEFAULT '',
    created_at   DATETIME NOT NULL,
    updated_at   DATETIME NOT NULL,
    PRIMARY KEY (user_id, id)
);

CREATE INDEX IF NOT EXISTS idx_items_user_updated
    ON items(user_id, updated_at DESC);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at the
// end.
var migrations = []string{}

// Migrate creates the schema and applies any pending migrations.
func Migrate(db *sql.DB) error {
	if err := EnsureSchema(db); err != nil {
		return err
	}
	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}
	return nil
}
