package store

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS artist (
			id INTEGER PRIMARY KEY,
			rank INTEGER NOT NULL,
			data TEXT NOT NULL,
			stored_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS top_tracks (
			id INTEGER PRIMARY KEY,
			rank INTEGER NOT NULL,
			data TEXT NOT NULL,
			stored_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_top_tracks_rank ON top_tracks(rank);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
