package trip

import (
	"context"

	"github.com/sai-sundar/creator-travel-planner/internal/db"

	"github.com/google/uuid"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) ListTrips(ctx context.Context, userID string) ([]Trip, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, title, description, start_date, end_date, created_at, updated_at
		FROM trips WHERE user_id=$1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := []Trip{}
	for rows.Next() {
		var t Trip
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.StartDate, &t.EndDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, nil
}

// CreateTrip inserts the trip and its destination and platform rows in one
// transaction. Destination entries missing a name or country are dropped.
func (s *Service) CreateTrip(ctx context.Context, userID string, req CreateTripRequest) (Trip, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return Trip{}, err
	}
	defer tx.Rollback(ctx)

	trip := Trip{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	row := tx.QueryRow(ctx, `
		INSERT INTO trips (id, user_id, title, description, start_date, end_date)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at, updated_at
	`, trip.ID, trip.UserID, trip.Title, trip.Description, trip.StartDate, trip.EndDate)
	if err := row.Scan(&trip.CreatedAt, &trip.UpdatedAt); err != nil {
		return Trip{}, err
	}

	for _, d := range req.Destinations {
		if d.Name == "" || d.Country == "" {
			continue
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO destinations (id, trip_id, name, country, latitude, longitude, visit_date, notes)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		`, uuid.NewString(), trip.ID, d.Name, d.Country, d.Latitude, d.Longitude, d.VisitDate, d.Notes)
		if err != nil {
			return Trip{}, err
		}
	}

	for _, name := range req.Platforms {
		_, err := tx.Exec(ctx, `
			INSERT INTO platforms (id, trip_id, platform_name, is_selected)
			VALUES ($1,$2,$3,true)
		`, uuid.NewString(), trip.ID, name)
		if err != nil {
			return Trip{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return Trip{}, err
	}
	return trip, nil
}

func (s *Service) GetTrip(ctx context.Context, userID, id string) (TripDetail, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, title, description, start_date, end_date, created_at, updated_at
		FROM trips WHERE id=$1 AND user_id=$2
	`, id, userID)
	var detail TripDetail
	if err := row.Scan(&detail.ID, &detail.UserID, &detail.Title, &detail.Description, &detail.StartDate, &detail.EndDate, &detail.CreatedAt, &detail.UpdatedAt); err != nil {
		return TripDetail{}, err
	}

	destinations, err := s.loadDestinations(ctx, id)
	if err != nil {
		return TripDetail{}, err
	}
	platforms, err := s.loadPlatforms(ctx, id)
	if err != nil {
		return TripDetail{}, err
	}
	detail.Destinations = destinations
	detail.Platforms = platforms
	return detail, nil
}

// DeleteTrip removes the trip matching both id and owner. A non-owned or
// unknown id deletes nothing and returns no error.
func (s *Service) DeleteTrip(ctx context.Context, userID, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM trips WHERE id=$1 AND user_id=$2`, id, userID)
	return err
}

func (s *Service) loadDestinations(ctx context.Context, tripID string) ([]Destination, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, trip_id, name, country, latitude, longitude, visit_date, notes
		FROM destinations WHERE trip_id=$1
	`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	destinations := []Destination{}
	for rows.Next() {
		var d Destination
		if err := rows.Scan(&d.ID, &d.TripID, &d.Name, &d.Country, &d.Latitude, &d.Longitude, &d.VisitDate, &d.Notes); err != nil {
			return nil, err
		}
		destinations = append(destinations, d)
	}
	return destinations, nil
}

func (s *Service) loadPlatforms(ctx context.Context, tripID string) ([]Platform, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, trip_id, platform_name, is_selected
		FROM platforms WHERE trip_id=$1
	`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	platforms := []Platform{}
	for rows.Next() {
		var p Platform
		if err := rows.Scan(&p.ID, &p.TripID, &p.PlatformName, &p.IsSelected); err != nil {
			return nil, err
		}
		platforms = append(platforms, p)
	}
	return platforms, nil
}
