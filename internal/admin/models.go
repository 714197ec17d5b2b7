package admin

import "time"

type Location struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Country         string    `json:"country"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	BestTimeToVisit string    `json:"best_time_to_visit"`
	TrendingScore   int       `json:"trending_score"`
	CreatedAt       time.Time `json:"created_at"`
}

type Tag struct {
	ID          string    `json:"id"`
	TagName     string    `json:"tag_name"`
	UsageCount  int64     `json:"usage_count"`
	Category    string    `json:"category"`
	LastUpdated time.Time `json:"last_updated"`
}

type CreateLocationRequest struct {
	Name            string `json:"name"`
	Country         string `json:"country"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	BestTimeToVisit string `json:"best_time_to_visit"`
	TrendingScore   int    `json:"trending_score"`
}

type CreateTagRequest struct {
	TagName    string `json:"tag_name"`
	UsageCount int64  `json:"usage_count"`
	Category   string `json:"category"`
}
