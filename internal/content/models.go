package content

import "time"

const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusPublished = "published"
)

type Entry struct {
	ID                 string    `json:"id"`
	TripID             string    `json:"trip_id"`
	DestinationID      *string   `json:"destination_id,omitempty"`
	PlatformID         *string   `json:"platform_id,omitempty"`
	ScheduledDate      time.Time `json:"scheduled_date"`
	Caption            string    `json:"caption"`
	Tone               string    `json:"tone"`
	LocationSuggestion string    `json:"location_suggestion"`
	Hashtags           string    `json:"hashtags"`
	Status             string    `json:"status"`
}

type CreateEntryRequest struct {
	TripID             string    `json:"trip_id"`
	DestinationID      *string   `json:"destination_id"`
	PlatformID         *string   `json:"platform_id"`
	ScheduledDate      time.Time `json:"scheduled_date"`
	Caption            string    `json:"caption"`
	Tone               string    `json:"tone"`
	LocationSuggestion string    `json:"location_suggestion"`
	Hashtags           string    `json:"hashtags"`
}

type CaptionRequest struct {
	Tone               string `json:"tone"`
	LocationSuggestion string `json:"location_suggestion"`
}
