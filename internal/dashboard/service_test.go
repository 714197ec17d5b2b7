package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
)

var errQuery = errors.New("query failed")

func tripRows(n int) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "user_id", "title", "description", "start_date", "end_date", "created_at", "updated_at"})
	for i := 0; i < n; i++ {
		rows.AddRow("trip", "user-1", "Trip", "", time.Now(), time.Now(), time.Now(), time.Now())
	}
	return rows
}

func TestSummaryCountsScopedToOwner(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`ORDER BY created_at DESC`).
		WithArgs("user-1").
		WillReturnRows(tripRows(2))
	mock.ExpectQuery(`FROM content_calendar c`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`FROM platforms p`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))

	svc := NewService(mock)
	summary, err := svc.Summary(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Stats.TotalTrips != 2 {
		t.Fatalf("expected total trips to match returned trips")
	}
	if summary.Stats.ScheduledPosts != 3 || summary.Stats.ActivePlatforms != 4 {
		t.Fatalf("unexpected counters: %+v", summary.Stats)
	}
	if len(summary.RecentTrips) != 2 {
		t.Fatalf("expected 2 recent trips")
	}
}

func TestSummaryTripQueryError(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`ORDER BY created_at DESC`).
		WithArgs("user-1").
		WillReturnError(errQuery)

	svc := NewService(mock)
	if _, err := svc.Summary(context.Background(), "user-1"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestSummaryCounterError(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`ORDER BY created_at DESC`).
		WithArgs("user-1").
		WillReturnRows(tripRows(1))
	mock.ExpectQuery(`FROM content_calendar c`).
		WithArgs("user-1").
		WillReturnError(errQuery)

	svc := NewService(mock)
	if _, err := svc.Summary(context.Background(), "user-1"); err == nil {
		t.Fatalf("expected error")
	}
}
