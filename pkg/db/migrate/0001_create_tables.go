package migrate

import (
	"context"

	"github.com/teamwallet/teamwallet/pkg/db"
)

const (
	createTablesName    = "create tables"
	createTablesVersion = 1
)

var createTables = Migration{
	Version: createTablesVersion,
	Name:    createTablesName,
	Migrate: func(ctx context.Context, tx *db.Tx) error {
		var statements []string
		switch tx.DriverName() {
		case driverSQLite, driverSQLite3:
			statements = sqliteCreateTables
		case driverPostgres:
			statements = postgresCreateTables
		}

		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err //nolint:wrapcheck
			}
		}

		return nil
	},
	Rollback: func(ctx context.Context, tx *db.Tx) error {
		for _, table := range []string{
			"invites",
			"payouts",
			"fines",
			"fine_definitions",
			"memberships",
			"teams",
			"users",
		} {
			if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
				return err //nolint:wrapcheck
			}
		}

		return nil
	},
}

var sqliteCreateTables = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS teams (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		premium BOOLEAN NOT NULL DEFAULT false,
		payment_handle TEXT,
		created_by INTEGER NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT created_by_fk
			FOREIGN KEY(created_by) REFERENCES users(id)
	);`,
	`CREATE TABLE IF NOT EXISTS memberships (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		team_id INTEGER NOT NULL,
		user_id INTEGER NOT NULL,
		role INTEGER NOT NULL DEFAULT 0,
		dashboard_seen_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		fines_seen_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		expenses_seen_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (team_id, user_id),
		CONSTRAINT team_id_fk
			FOREIGN KEY(team_id) REFERENCES teams(id)
			ON DELETE CASCADE,
		CONSTRAINT user_id_fk
			FOREIGN KEY(user_id) REFERENCES users(id)
			ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS fine_definitions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		team_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		amount_cents INTEGER NOT NULL CHECK (amount_cents >= 0),
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT team_id_fk
			FOREIGN KEY(team_id) REFERENCES teams(id)
			ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS fines (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		uuid TEXT NOT NULL UNIQUE,
		team_id INTEGER NOT NULL,
		membership_id INTEGER,
		definition_id INTEGER,
		amount_cents INTEGER NOT NULL CHECK (amount_cents >= 0),
		reason TEXT NOT NULL,
		issued_by INTEGER NOT NULL,
		paid_at DATETIME,
		paid_by INTEGER,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT team_id_fk
			FOREIGN KEY(team_id) REFERENCES teams(id)
			ON DELETE CASCADE,
		CONSTRAINT membership_id_fk
			FOREIGN KEY(membership_id) REFERENCES memberships(id)
			ON DELETE SET NULL,
		CONSTRAINT definition_id_fk
			FOREIGN KEY(definition_id) REFERENCES fine_definitions(id)
			ON DELETE SET NULL
	);`,
	`CREATE TABLE IF NOT EXISTS payouts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		uuid TEXT NOT NULL UNIQUE,
		team_id INTEGER NOT NULL,
		amount_cents INTEGER NOT NULL CHECK (amount_cents > 0),
		purpose TEXT NOT NULL,
		issued_by INTEGER NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT team_id_fk
			FOREIGN KEY(team_id) REFERENCES teams(id)
			ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS invites (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		team_id INTEGER NOT NULL,
		token_hash TEXT NOT NULL UNIQUE,
		email TEXT,
		role INTEGER NOT NULL DEFAULT 0,
		created_by INTEGER NOT NULL,
		expires_at DATETIME NOT NULL,
		consumed_at DATETIME,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT team_id_fk
			FOREIGN KEY(team_id) REFERENCES teams(id)
			ON DELETE CASCADE
	);`,
	`CREATE INDEX IF NOT EXISTS idx_fines_team ON fines (team_id);`,
	`CREATE INDEX IF NOT EXISTS idx_payouts_team ON payouts (team_id);`,
	`CREATE INDEX IF NOT EXISTS idx_invites_team ON invites (team_id);`,
}

var postgresCreateTables = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS teams (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		premium BOOLEAN NOT NULL DEFAULT false,
		payment_handle TEXT,
		created_by INTEGER NOT NULL REFERENCES users(id),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS memberships (
		id SERIAL PRIMARY KEY,
		team_id INTEGER NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		role INTEGER NOT NULL DEFAULT 0,
		dashboard_seen_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		fines_seen_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		expenses_seen_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (team_id, user_id)
	);`,
	`CREATE TABLE IF NOT EXISTS fine_definitions (
		id SERIAL PRIMARY KEY,
		team_id INTEGER NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		description TEXT,
		amount_cents BIGINT NOT NULL CHECK (amount_cents >= 0),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS fines (
		id SERIAL PRIMARY KEY,
		uuid TEXT NOT NULL UNIQUE,
		team_id INTEGER NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		membership_id INTEGER REFERENCES memberships(id) ON DELETE SET NULL,
		definition_id INTEGER REFERENCES fine_definitions(id) ON DELETE SET NULL,
		amount_cents BIGINT NOT NULL CHECK (amount_cents >= 0),
		reason TEXT NOT NULL,
		issued_by INTEGER NOT NULL,
		paid_at TIMESTAMP,
		paid_by INTEGER,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS payouts (
		id SERIAL PRIMARY KEY,
		uuid TEXT NOT NULL UNIQUE,
		team_id INTEGER NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		amount_cents BIGINT NOT NULL CHECK (amount_cents > 0),
		purpose TEXT NOT NULL,
		issued_by INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS invites (
		id SERIAL PRIMARY KEY,
		team_id INTEGER NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		token_hash TEXT NOT NULL UNIQUE,
		email TEXT,
		role INTEGER NOT NULL DEFAULT 0,
		created_by INTEGER NOT NULL,
		expires_at TIMESTAMP NOT NULL,
		consumed_at TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE INDEX IF NOT EXISTS idx_fines_team ON fines (team_id);`,
	`CREATE INDEX IF NOT EXISTS idx_payouts_team ON payouts (team_id);`,
	`CREATE INDEX IF NOT EXISTS idx_invites_team ON invites (team_id);`,
}
