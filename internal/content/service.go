package content

import (
	"context"
	"errors"

	"github.com/sai-sundar/creator-travel-planner/internal/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNoTrips means the caller owns no trip to attach the entry to.
var ErrNoTrips = errors.New("No trips found. Please create a trip first.")

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// ListEntries returns the calendar entries belonging to the caller's trips.
func (s *Service) ListEntries(ctx context.Context, userID string) ([]Entry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT c.id, c.trip_id, c.destination_id, c.platform_id, c.scheduled_date,
		       c.caption, c.tone, c.location_suggestion, c.hashtags, c.status
		FROM content_calendar c
		JOIN trips t ON t.id = c.trip_id
		WHERE t.user_id=$1
		ORDER BY c.scheduled_date
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.TripID, &e.DestinationID, &e.PlatformID, &e.ScheduledDate,
			&e.Caption, &e.Tone, &e.LocationSuggestion, &e.Hashtags, &e.Status); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// CreateEntry schedules a post. When no trip id is given the caller's first
// trip is used; a caller with no trips gets ErrNoTrips.
func (s *Service) CreateEntry(ctx context.Context, userID string, req CreateEntryRequest) (Entry, error) {
	tripID := req.TripID
	if tripID == "" {
		row := s.db.QueryRow(ctx, `SELECT id FROM trips WHERE user_id=$1 LIMIT 1`, userID)
		if err := row.Scan(&tripID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return Entry{}, ErrNoTrips
			}
			return Entry{}, err
		}
	}

	entry := Entry{
		ID:                 uuid.NewString(),
		TripID:             tripID,
		DestinationID:      req.DestinationID,
		PlatformID:         req.PlatformID,
		ScheduledDate:      req.ScheduledDate,
		Caption:            req.Caption,
		Tone:               req.Tone,
		LocationSuggestion: req.LocationSuggestion,
		Hashtags:           req.Hashtags,
		Status:             StatusScheduled,
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO content_calendar (id, trip_id, destination_id, platform_id, scheduled_date, caption, tone, location_suggestion, hashtags, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`, entry.ID, entry.TripID, entry.DestinationID, entry.PlatformID, entry.ScheduledDate,
		entry.Caption, entry.Tone, entry.LocationSuggestion, entry.Hashtags, entry.Status)
	if err != nil {
		return Entry{}, err
	}
	return entry, nil
}
