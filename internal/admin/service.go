package admin

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/sai-sundar/creator-travel-planner/internal/db"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	locationsCacheKey = "reference:locations"
	tagsCacheKey      = "reference:tags"
	cacheTTL          = 5 * time.Minute
)

type Service struct {
	db    db.Querier
	redis *redis.Client
}

func NewService(db db.Querier, redisClient *redis.Client) *Service {
	return &Service{db: db, redis: redisClient}
}

// ListLocations returns the location database ordered by trending score.
// Reads go through the redis cache when one is configured.
func (s *Service) ListLocations(ctx context.Context) ([]Location, error) {
	var cached []Location
	if s.cacheGet(ctx, locationsCacheKey, &cached) {
		return cached, nil
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, name, country, category, description, best_time_to_visit, trending_score, created_at
		FROM location_database
		ORDER BY trending_score DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := []Location{}
	for rows.Next() {
		var l Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Country, &l.Category, &l.Description, &l.BestTimeToVisit, &l.TrendingScore, &l.CreatedAt); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}

	s.cacheSet(ctx, locationsCacheKey, locations)
	return locations, nil
}

func (s *Service) CreateLocation(ctx context.Context, req CreateLocationRequest) (Location, error) {
	location := Location{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Country:         req.Country,
		Category:        req.Category,
		Description:     req.Description,
		BestTimeToVisit: req.BestTimeToVisit,
		TrendingScore:   req.TrendingScore,
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO location_database (id, name, country, category, description, best_time_to_visit, trending_score)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at
	`, location.ID, location.Name, location.Country, location.Category, location.Description, location.BestTimeToVisit, location.TrendingScore)
	if err := row.Scan(&location.CreatedAt); err != nil {
		return Location{}, err
	}

	s.cacheInvalidate(ctx, locationsCacheKey)
	return location, nil
}

func (s *Service) DeleteLocation(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM location_database WHERE id=$1`, id)
	if err != nil {
		return err
	}
	s.cacheInvalidate(ctx, locationsCacheKey)
	return nil
}

// ListTags returns trending tags ordered by usage count.
func (s *Service) ListTags(ctx context.Context) ([]Tag, error) {
	var cached []Tag
	if s.cacheGet(ctx, tagsCacheKey, &cached) {
		return cached, nil
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, tag_name, usage_count, category, last_updated
		FROM trending_tags
		ORDER BY usage_count DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []Tag{}
	for rows.Next() {
		var t Tag
		if err := rows.Scan(&t.ID, &t.TagName, &t.UsageCount, &t.Category, &t.LastUpdated); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}

	s.cacheSet(ctx, tagsCacheKey, tags)
	return tags, nil
}

// CreateTag stores the tag name exactly as received; any `#` normalization
// is the caller's job.
func (s *Service) CreateTag(ctx context.Context, req CreateTagRequest) (Tag, error) {
	tag := Tag{
		ID:         uuid.NewString(),
		TagName:    req.TagName,
		UsageCount: req.UsageCount,
		Category:   req.Category,
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO trending_tags (id, tag_name, usage_count, category)
		VALUES ($1,$2,$3,$4)
		RETURNING last_updated
	`, tag.ID, tag.TagName, tag.UsageCount, tag.Category)
	if err := row.Scan(&tag.LastUpdated); err != nil {
		return Tag{}, err
	}

	s.cacheInvalidate(ctx, tagsCacheKey)
	return tag, nil
}

func (s *Service) DeleteTag(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM trending_tags WHERE id=$1`, id)
	if err != nil {
		return err
	}
	s.cacheInvalidate(ctx, tagsCacheKey)
	return nil
}

func (s *Service) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.redis == nil {
		return false
	}
	payload, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(payload, dest) == nil
}

func (s *Service) cacheSet(ctx context.Context, key string, value any) {
	if s.redis == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, payload, cacheTTL).Err(); err != nil {
		log.Printf("redis set error: %v", err)
	}
}

func (s *Service) cacheInvalidate(ctx context.Context, key string) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, key).Err(); err != nil {
		log.Printf("redis del error: %v", err)
	}
}
