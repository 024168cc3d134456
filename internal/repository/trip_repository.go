package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mhzhou/bikeshare-survey-go/internal/models"
	"github.com/mhzhou/bikeshare-survey-go/internal/survey"
)

// TripRepository handles database operations for trips
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

// GetTrips retrieves trips with filtering and pagination
func (r *TripRepository) GetTrips(filter models.TripFilter) ([]models.Trip, int64, error) {
	// Build query
	query := `SELECT id, start_time, end_time, duration_seconds,
		day_of_week, time_of_day,
		start_station_id, start_station_name, start_lat, start_lon,
		end_station_id, end_station_name, end_lat, end_lon,
		distance_meters, rideable_type, user_type, created_at
		FROM trips`

	var conditions []string
	var args []interface{}

	// Add filters
	if filter.StartTime > 0 {
		conditions = append(conditions, "start_time >= ?")
		args = append(args, filter.StartTime)
	}
	if filter.EndTime > 0 {
		conditions = append(conditions, "end_time <= ?")
		args = append(args, filter.EndTime)
	}
	if filter.DayOfWeek != "" {
		conditions = append(conditions, "day_of_week = ?")
		args = append(args, filter.DayOfWeek)
	}
	if filter.TimeOfDay != "" {
		conditions = append(conditions, "time_of_day = ?")
		args = append(args, filter.TimeOfDay)
	}
	if filter.MinDuration > 0 {
		conditions = append(conditions, "duration_seconds >= ?")
		args = append(args, filter.MinDuration)
	}
	if filter.MaxDuration > 0 {
		conditions = append(conditions, "duration_seconds <= ?")
		args = append(args, filter.MaxDuration)
	}
	if filter.UserType != "" {
		conditions = append(conditions, "user_type = ?")
		args = append(args, filter.UserType)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	// Get total count
	countQuery := "SELECT COUNT(*) FROM trips"
	if len(conditions) > 0 {
		countQuery += " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	err := r.db.QueryRow(countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count trips: %w", err)
	}

	// Add pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	if filter.PageSize > 1000 {
		filter.PageSize = 1000
	}

	offset := (filter.Page - 1) * filter.PageSize
	query += " ORDER BY start_time DESC LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, offset)

	// Execute query
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var t models.Trip
		err := rows.Scan(
			&t.ID, &t.StartTime, &t.EndTime, &t.DurationSeconds,
			&t.DayOfWeek, &t.TimeOfDay,
			&t.StartStationID, &t.StartStationName, &t.StartLat, &t.StartLon,
			&t.EndStationID, &t.EndStationName, &t.EndLat, &t.EndLon,
			&t.DistanceMeters, &t.RideableType, &t.UserType, &t.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, t)
	}

	return trips, total, nil
}

// GetTripByID retrieves a single trip by ID
func (r *TripRepository) GetTripByID(id int64) (*models.Trip, error) {
	query := `SELECT id, start_time, end_time, duration_seconds,
		day_of_week, time_of_day,
		start_station_id, start_station_name, start_lat, start_lon,
		end_station_id, end_station_name, end_lat, end_lon,
		distance_meters, rideable_type, user_type, created_at
		FROM trips WHERE id = ?`

	var t models.Trip
	err := r.db.QueryRow(query, id).Scan(
		&t.ID, &t.StartTime, &t.EndTime, &t.DurationSeconds,
		&t.DayOfWeek, &t.TimeOfDay,
		&t.StartStationID, &t.StartStationName, &t.StartLat, &t.StartLon,
		&t.EndStationID, &t.EndStationName, &t.EndLat, &t.EndLon,
		&t.DistanceMeters, &t.RideableType, &t.UserType, &t.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return &t, nil
}

// GetPopulation loads the survey population: duration and stratification
// labels for every trip. Outlier filtering happens in memory so the survey
// package owns the ceiling semantics.
func (r *TripRepository) GetPopulation() (survey.Population, error) {
	rows, err := r.db.Query(`SELECT duration_seconds, day_of_week, time_of_day FROM trips`)
	if err != nil {
		return nil, fmt.Errorf("failed to query population: %w", err)
	}
	defer rows.Close()

	var pop survey.Population
	for rows.Next() {
		var duration int64
		var rec survey.Record
		if err := rows.Scan(&duration, &rec.DayOfWeek, &rec.TimeOfDay); err != nil {
			return nil, fmt.Errorf("failed to scan population record: %w", err)
		}
		rec.Duration = float64(duration)
		pop = append(pop, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read population: %w", err)
	}

	return pop, nil
}

// InsertTrips inserts a batch of trips in a single transaction
func (r *TripRepository) InsertTrips(trips []models.Trip) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO trips (
		start_time, end_time, duration_seconds, day_of_week, time_of_day,
		start_station_id, start_station_name, start_lat, start_lon,
		end_station_id, end_station_name, end_lat, end_lon,
		distance_meters, rideable_type, user_type
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range trips {
		_, err := stmt.Exec(
			t.StartTime, t.EndTime, t.DurationSeconds, t.DayOfWeek, t.TimeOfDay,
			t.StartStationID, t.StartStationName, t.StartLat, t.StartLon,
			t.EndStationID, t.EndStationName, t.EndLat, t.EndLon,
			t.DistanceMeters, t.RideableType, t.UserType,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert trip: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit trips: %w", err)
	}

	return nil
}
