package service

import (
	"fmt"
	"time"

	"github.com/mhzhou/bikeshare-survey-go/internal/models"
	"github.com/mhzhou/bikeshare-survey-go/internal/repository"
	"github.com/mhzhou/bikeshare-survey-go/internal/spatial"
	"github.com/mhzhou/bikeshare-survey-go/internal/survey"
)

// TripService handles business logic for trips
type TripService struct {
	tripRepo *repository.TripRepository
}

// NewTripService creates a new trip service
func NewTripService(tripRepo *repository.TripRepository) *TripService {
	return &TripService{tripRepo: tripRepo}
}

// GetTrips retrieves trips with filtering and pagination
func (s *TripService) GetTrips(filter models.TripFilter) ([]models.Trip, int64, error) {
	return s.tripRepo.GetTrips(filter)
}

// GetTripByID retrieves a single trip by ID
func (s *TripService) GetTripByID(id int64) (*models.Trip, error) {
	return s.tripRepo.GetTripByID(id)
}

// ImportTrips derives duration, stratification labels and station distance
// for each submitted trip and inserts the batch. Returns the number of
// trips imported.
func (s *TripService) ImportTrips(imports []models.TripImport) (int, error) {
	if len(imports) == 0 {
		return 0, fmt.Errorf("no trips to import")
	}

	trips := make([]models.Trip, 0, len(imports))
	for i, in := range imports {
		if in.EndTime <= in.StartTime {
			return 0, fmt.Errorf("trip %d: end time must be after start time", i)
		}

		// Labels come from the start time; UTC keeps imports independent
		// of the server timezone
		start := time.Unix(in.StartTime, 0).UTC()

		trip := models.Trip{
			StartTime:        in.StartTime,
			EndTime:          in.EndTime,
			DurationSeconds:  in.EndTime - in.StartTime,
			DayOfWeek:        start.Weekday().String(),
			TimeOfDay:        survey.TimeOfDayForHour(start.Hour()),
			StartStationID:   in.StartStationID,
			StartStationName: in.StartStationName,
			StartLat:         in.StartLat,
			StartLon:         in.StartLon,
			EndStationID:     in.EndStationID,
			EndStationName:   in.EndStationName,
			EndLat:           in.EndLat,
			EndLon:           in.EndLon,
			RideableType:     in.RideableType,
			UserType:         in.UserType,
		}

		if in.StartLat != 0 || in.StartLon != 0 || in.EndLat != 0 || in.EndLon != 0 {
			trip.DistanceMeters = spatial.HaversineDistance(in.StartLat, in.StartLon, in.EndLat, in.EndLon)
		}

		trips = append(trips, trip)
	}

	if err := s.tripRepo.InsertTrips(trips); err != nil {
		return 0, fmt.Errorf("failed to import trips: %w", err)
	}

	return len(trips), nil
}
