package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/redis/go-redis/v9"
)

var errQuery = errors.New("query failed")

func locationRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "country", "category", "description", "best_time_to_visit", "trending_score", "created_at"}).
		AddRow("loc-1", "Paris", "France", "cultural", "", "", 99, time.Now()).
		AddRow("loc-2", "Bali", "Indonesia", "beach", "", "", 50, time.Now())
}

func TestListLocationsOrderedByScore(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`ORDER BY trending_score DESC`).
		WillReturnRows(locationRows())

	svc := NewService(mock, nil)
	locations, err := svc.ListLocations(context.Background())
	if err != nil {
		t.Fatalf("list locations: %v", err)
	}
	if len(locations) != 2 || locations[0].TrendingScore != 99 {
		t.Fatalf("expected high-score location first")
	}
}

func TestListLocationsCacheHit(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	// only one store read expected; the second list is served from cache
	mock.ExpectQuery(`ORDER BY trending_score DESC`).
		WillReturnRows(locationRows())

	svc := NewService(mock, client)
	if _, err := svc.ListLocations(context.Background()); err != nil {
		t.Fatalf("first list: %v", err)
	}
	locations, err := svc.ListLocations(context.Background())
	if err != nil {
		t.Fatalf("cached list: %v", err)
	}
	if len(locations) != 2 || locations[0].Name != "Paris" {
		t.Fatalf("unexpected cached locations")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateLocationInvalidatesCache(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	mock.ExpectQuery(`ORDER BY trending_score DESC`).
		WillReturnRows(locationRows())
	mock.ExpectQuery(`INSERT INTO location_database`).
		WithArgs(pgxmock.AnyArg(), "Lisbon", "Portugal", "city", "", "", 70).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	svc := NewService(mock, client)
	if _, err := svc.ListLocations(context.Background()); err != nil {
		t.Fatalf("prime cache: %v", err)
	}
	if !server.Exists(locationsCacheKey) {
		t.Fatalf("expected cache primed")
	}

	if _, err := svc.CreateLocation(context.Background(), CreateLocationRequest{
		Name: "Lisbon", Country: "Portugal", Category: "city", TrendingScore: 70,
	}); err != nil {
		t.Fatalf("create location: %v", err)
	}
	if server.Exists(locationsCacheKey) {
		t.Fatalf("expected cache invalidated")
	}
}

func TestDeleteLocation(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM location_database`).
		WithArgs("loc-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	svc := NewService(mock, nil)
	if err := svc.DeleteLocation(context.Background(), "loc-1"); err != nil {
		t.Fatalf("delete location: %v", err)
	}
}

func TestCreateTagStoresNameVerbatim(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	// no # prefixing happens here; the handler stores what it receives
	mock.ExpectQuery(`INSERT INTO trending_tags`).
		WithArgs(pgxmock.AnyArg(), "wanderlust", int64(0), "travel").
		WillReturnRows(pgxmock.NewRows([]string{"last_updated"}).AddRow(time.Now()))

	svc := NewService(mock, nil)
	tag, err := svc.CreateTag(context.Background(), CreateTagRequest{TagName: "wanderlust", Category: "travel"})
	if err != nil {
		t.Fatalf("create tag: %v", err)
	}
	if tag.TagName != "wanderlust" {
		t.Fatalf("expected verbatim tag name, got %q", tag.TagName)
	}
}

func TestListTagsOrderedByUsage(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`ORDER BY usage_count DESC`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "tag_name", "usage_count", "category", "last_updated"}).
			AddRow("tag-1", "#wanderlust", int64(15420000), "travel", time.Now()).
			AddRow("tag-2", "#roadtrip", int64(2000000), "adventure", time.Now()))

	svc := NewService(mock, nil)
	tags, err := svc.ListTags(context.Background())
	if err != nil {
		t.Fatalf("list tags: %v", err)
	}
	if len(tags) != 2 || tags[0].TagName != "#wanderlust" {
		t.Fatalf("expected most used tag first")
	}
}

func TestDeleteTagError(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM trending_tags`).
		WithArgs("tag-1").
		WillReturnError(errQuery)

	svc := NewService(mock, nil)
	if err := svc.DeleteTag(context.Background(), "tag-1"); err == nil {
		t.Fatalf("expected error")
	}
}
