package trip

import "time"

type Trip struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Destination struct {
	ID        string     `json:"id"`
	TripID    string     `json:"trip_id"`
	Name      string     `json:"name"`
	Country   string     `json:"country"`
	Latitude  *float64   `json:"latitude,omitempty"`
	Longitude *float64   `json:"longitude,omitempty"`
	VisitDate *time.Time `json:"visit_date,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

type Platform struct {
	ID           string `json:"id"`
	TripID       string `json:"trip_id"`
	PlatformName string `json:"platform_name"`
	IsSelected   bool   `json:"is_selected"`
}

// TripDetail is a trip with its child rows loaded.
type TripDetail struct {
	Trip
	Destinations []Destination `json:"destinations"`
	Platforms    []Platform    `json:"platforms"`
}

type DestinationInput struct {
	Name      string     `json:"name"`
	Country   string     `json:"country"`
	Latitude  *float64   `json:"latitude"`
	Longitude *float64   `json:"longitude"`
	VisitDate *time.Time `json:"visit_date"`
	Notes     string     `json:"notes"`
}

type CreateTripRequest struct {
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	StartDate    time.Time          `json:"start_date"`
	EndDate      time.Time          `json:"end_date"`
	Destinations []DestinationInput `json:"destinations"`
	Platforms    []string           `json:"platforms"`
}
