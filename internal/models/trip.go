package models

import "time"

// Trip represents one bike-share trip observation
type Trip struct {
	ID int64 `json:"id" db:"id"`

	// Temporal info
	StartTime       int64 `json:"start_time" db:"start_time"`             // Unix timestamp
	EndTime         int64 `json:"end_time" db:"end_time"`                 // Unix timestamp
	DurationSeconds int64 `json:"duration_seconds" db:"duration_seconds"` // Duration in seconds

	// Stratification labels, derived from the start time on import
	DayOfWeek string `json:"day_of_week" db:"day_of_week"` // Monday..Sunday
	TimeOfDay string `json:"time_of_day" db:"time_of_day"` // Morning, Midday, Evening, Night

	// Stations
	StartStationID   string  `json:"start_station_id,omitempty" db:"start_station_id"`
	StartStationName string  `json:"start_station_name,omitempty" db:"start_station_name"`
	StartLat         float64 `json:"start_lat,omitempty" db:"start_lat"`
	StartLon         float64 `json:"start_lon,omitempty" db:"start_lon"`
	EndStationID     string  `json:"end_station_id,omitempty" db:"end_station_id"`
	EndStationName   string  `json:"end_station_name,omitempty" db:"end_station_name"`
	EndLat           float64 `json:"end_lat,omitempty" db:"end_lat"`
	EndLon           float64 `json:"end_lon,omitempty" db:"end_lon"`

	// Trip characteristics
	DistanceMeters float64 `json:"distance_meters,omitempty" db:"distance_meters"` // Straight-line station distance
	RideableType   string  `json:"rideable_type,omitempty" db:"rideable_type"`     // CLASSIC, ELECTRIC
	UserType       string  `json:"user_type,omitempty" db:"user_type"`             // MEMBER, CASUAL

	// Metadata
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RideableType constants
const (
	RideableTypeClassic  = "CLASSIC"
	RideableTypeElectric = "ELECTRIC"
)

// UserType constants
const (
	UserTypeMember = "MEMBER"
	UserTypeCasual = "CASUAL"
)

// TripsResponse represents a paginated response of trips
type TripsResponse struct {
	Data       []Trip `json:"data"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
}

// TripImport is one trip as submitted to the import endpoint. Duration,
// day-of-week and time-of-day labels and station distance are derived
// server-side.
type TripImport struct {
	StartTime        int64   `json:"start_time" binding:"required"`
	EndTime          int64   `json:"end_time" binding:"required"`
	StartStationID   string  `json:"start_station_id"`
	StartStationName string  `json:"start_station_name"`
	StartLat         float64 `json:"start_lat"`
	StartLon         float64 `json:"start_lon"`
	EndStationID     string  `json:"end_station_id"`
	EndStationName   string  `json:"end_station_name"`
	EndLat           float64 `json:"end_lat"`
	EndLon           float64 `json:"end_lon"`
	RideableType     string  `json:"rideable_type"`
	UserType         string  `json:"user_type"`
}
