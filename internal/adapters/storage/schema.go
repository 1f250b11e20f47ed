package storage

import (
	"fmt"

	"gorm.io/gorm"

	"tessera/internal/logging"
)

// Foreign keys are deferred so a cascade can delete the parent row first and
// its children afterwards inside the same transaction.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		layout_id TEXT,
		metadata BLOB,
		metadata_version INTEGER NOT NULL DEFAULT 0,
		position INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		last_active DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS panes (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		kind TEXT NOT NULL CHECK (kind IN ('terminal','editor','custom-module')),
		title TEXT NOT NULL DEFAULT '',
		state BLOB,
		state_version INTEGER NOT NULL DEFAULT 0,
		x INTEGER NOT NULL DEFAULT 0,
		y INTEGER NOT NULL DEFAULT 0,
		width INTEGER NOT NULL DEFAULT 0,
		height INTEGER NOT NULL DEFAULT 0,
		position INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		FOREIGN KEY (session_id) REFERENCES sessions(id) DEFERRABLE INITIALLY DEFERRED
	)`,
	`CREATE TABLE IF NOT EXISTS layouts (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		name TEXT NOT NULL,
		tree TEXT NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		UNIQUE (session_id, name),
		FOREIGN KEY (session_id) REFERENCES sessions(id) DEFERRABLE INITIALLY DEFERRED
	)`,
	`CREATE TABLE IF NOT EXISTS modules (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		kind TEXT NOT NULL DEFAULT '',
		version TEXT NOT NULL DEFAULT '',
		config BLOB,
		config_version INTEGER NOT NULL DEFAULT 0,
		enabled INTEGER NOT NULL DEFAULT 1,
		installed_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS key_values (
		namespace TEXT NOT NULL,
		key TEXT NOT NULL,
		value BLOB,
		value_version INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		PRIMARY KEY (namespace, key)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_last_active ON sessions(last_active)`,
	`CREATE INDEX IF NOT EXISTS idx_panes_session ON panes(session_id, position)`,
	`CREATE INDEX IF NOT EXISTS idx_layouts_session ON layouts(session_id)`,
	`CREATE INDEX IF NOT EXISTS idx_modules_enabled ON modules(enabled)`,
}

// additiveColumn is a column introduced after a table's first release
type additiveColumn struct {
	model  any
	column string
}

// Columns added after the first schema. Only additions are allowed here.
var additiveColumns = []additiveColumn{
	{&SessionModel{}, "metadata_version"},
	{&PaneModel{}, "title"},
	{&ModuleModel{}, "version"},
}

// ensureSchema creates missing tables and columns. It never drops anything and
// is safe to run on every open.
func ensureSchema(db *gorm.DB) error {
	for _, stmt := range schemaStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	migrator := db.Migrator()
	for _, c := range additiveColumns {
		if migrator.HasColumn(c.model, c.column) {
			continue
		}
		logging.Logger.Info("Adding column", "column", c.column)
		if err := migrator.AddColumn(c.model, c.column); err != nil {
			return fmt.Errorf("failed to migrate %s column: %w", c.column, err)
		}
	}

	return nil
}
