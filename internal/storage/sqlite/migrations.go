package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Households must be created before participants due to the foreign key.
//
// drawings has no foreign keys to participants: a participant can be deleted
// after a drawing is finalized, and reads skip the orphaned rows.
const schema = `
CREATE TABLE IF NOT EXISTS households (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS participants (
    id TEXT PRIMARY KEY,
    household_id TEXT NOT NULL,
    name TEXT NOT NULL,
    birth_date TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (household_id) REFERENCES households(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS drawings (
    year INTEGER NOT NULL,
    giver_id TEXT NOT NULL,
    receiver_id TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    PRIMARY KEY (year, giver_id)
);

CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    is_admin INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_participants_household_id ON participants(household_id);
CREATE INDEX IF NOT EXISTS idx_drawings_giver_id ON drawings(giver_id);
CREATE INDEX IF NOT EXISTS idx_drawings_receiver_id ON drawings(receiver_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
