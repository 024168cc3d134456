package database

import (
	"database/sql"
	"fmt"
)

// InitSchema creates the trips table and its indexes if they do not exist.
// The repo has a single table, so a file-based migration runner would be
// overkill; new columns get added here with ALTER TABLE guards if needed.
func InitSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS trips (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			start_time INTEGER NOT NULL,
			end_time INTEGER NOT NULL,
			duration_seconds INTEGER NOT NULL,
			day_of_week TEXT NOT NULL,
			time_of_day TEXT NOT NULL,
			start_station_id TEXT DEFAULT '',
			start_station_name TEXT DEFAULT '',
			start_lat REAL DEFAULT 0,
			start_lon REAL DEFAULT 0,
			end_station_id TEXT DEFAULT '',
			end_station_name TEXT DEFAULT '',
			end_lat REAL DEFAULT 0,
			end_lon REAL DEFAULT 0,
			distance_meters REAL DEFAULT 0,
			rideable_type TEXT DEFAULT '',
			user_type TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trips_start_time ON trips(start_time)`,
		`CREATE INDEX IF NOT EXISTS idx_trips_duration ON trips(duration_seconds)`,
		`CREATE INDEX IF NOT EXISTS idx_trips_stratum ON trips(day_of_week, time_of_day)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}
