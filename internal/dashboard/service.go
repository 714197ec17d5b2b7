package dashboard

import (
	"context"

	"github.com/sai-sundar/creator-travel-planner/internal/db"
	"github.com/sai-sundar/creator-travel-planner/internal/trip"
)

type Stats struct {
	TotalTrips      int `json:"total_trips"`
	ScheduledPosts  int `json:"scheduled_posts"`
	ActivePlatforms int `json:"active_platforms"`
}

type Summary struct {
	RecentTrips []trip.Trip `json:"recent_trips"`
	Stats       Stats       `json:"stats"`
}

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// Summary returns the caller's five most recent trips plus scheduled-post
// and selected-platform counts, all scoped to the caller's trips.
func (s *Service) Summary(ctx context.Context, userID string) (Summary, error) {
	recent, err := s.recentTrips(ctx, userID)
	if err != nil {
		return Summary{}, err
	}

	var scheduled int
	err = s.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM content_calendar c
		JOIN trips t ON t.id = c.trip_id
		WHERE t.user_id=$1 AND c.status='scheduled'
	`, userID).Scan(&scheduled)
	if err != nil {
		return Summary{}, err
	}

	var platforms int
	err = s.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM platforms p
		JOIN trips t ON t.id = p.trip_id
		WHERE t.user_id=$1 AND p.is_selected
	`, userID).Scan(&platforms)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		RecentTrips: recent,
		Stats: Stats{
			TotalTrips:      len(recent),
			ScheduledPosts:  scheduled,
			ActivePlatforms: platforms,
		},
	}, nil
}

func (s *Service) recentTrips(ctx context.Context, userID string) ([]trip.Trip, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, title, description, start_date, end_date, created_at, updated_at
		FROM trips WHERE user_id=$1
		ORDER BY created_at DESC
		LIMIT 5
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := []trip.Trip{}
	for rows.Next() {
		var t trip.Trip
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.StartDate, &t.EndDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, nil
}
