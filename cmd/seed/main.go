// Seeds the database: applies the schema, then inserts a demo user and the
// curated location and tag reference data.
package main

import (
	"context"
	"log"
	"time"

	"github.com/sai-sundar/creator-travel-planner/internal/config"
	"github.com/sai-sundar/creator-travel-planner/internal/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	email_verified BOOLEAN NOT NULL DEFAULT false,
	password_hash TEXT NOT NULL,
	avatar_url TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS refresh_tokens (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	token TEXT NOT NULL,
	expires_at TIMESTAMPTZ NOT NULL,
	revoked_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS trips (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	start_date TIMESTAMPTZ NOT NULL,
	end_date TIMESTAMPTZ NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS destinations (
	id TEXT PRIMARY KEY,
	trip_id TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	country TEXT NOT NULL,
	latitude DOUBLE PRECISION,
	longitude DOUBLE PRECISION,
	visit_date TIMESTAMPTZ,
	notes TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS platforms (
	id TEXT PRIMARY KEY,
	trip_id TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
	platform_name TEXT NOT NULL,
	is_selected BOOLEAN NOT NULL DEFAULT false
);

CREATE TABLE IF NOT EXISTS content_calendar (
	id TEXT PRIMARY KEY,
	trip_id TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
	destination_id TEXT REFERENCES destinations(id) ON DELETE SET NULL,
	platform_id TEXT REFERENCES platforms(id) ON DELETE SET NULL,
	scheduled_date TIMESTAMPTZ NOT NULL,
	caption TEXT NOT NULL DEFAULT '',
	tone TEXT NOT NULL DEFAULT '',
	location_suggestion TEXT NOT NULL DEFAULT '',
	hashtags TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'draft' CHECK (status IN ('draft','scheduled','published'))
);

CREATE TABLE IF NOT EXISTS location_database (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	country TEXT NOT NULL,
	category TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	best_time_to_visit TEXT NOT NULL DEFAULT '',
	trending_score INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS trending_tags (
	id TEXT PRIMARY KEY,
	tag_name TEXT NOT NULL UNIQUE,
	usage_count BIGINT NOT NULL DEFAULT 0,
	category TEXT NOT NULL DEFAULT '',
	last_updated TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

type seedLocation struct {
	name, country, category, description, bestTime string
	score                                          int
}

var locations = []seedLocation{
	{"Paris", "France", "cultural", "The City of Light, famous for the Eiffel Tower, Louvre Museum, and charming cafes along the Seine", "April to June, September to October", 95},
	{"Bali", "Indonesia", "beach", "Tropical paradise with stunning beaches, ancient temples, lush rice terraces, and vibrant culture", "April to October (dry season)", 92},
	{"Dubai", "UAE", "city", "Futuristic desert oasis with record-breaking skyscrapers, luxury shopping, and Arabian adventures", "November to March", 90},
	{"Tokyo", "Japan", "city", "Ultra-modern metropolis blending cutting-edge technology with traditional temples and world-class cuisine", "March to May (cherry blossoms), October to November", 88},
	{"New York", "USA", "city", "The city that never sleeps, featuring iconic landmarks like Times Square, Central Park, and the Statue of Liberty", "April to June, September to November", 85},
}

type seedTag struct {
	name, category string
	usage          int64
}

var tags = []seedTag{
	{"#wanderlust", "travel", 15420000},
	{"#travelgram", "travel", 12300000},
	{"#adventure", "adventure", 9800000},
	{"#travelphotography", "photography", 8500000},
	{"#instatravel", "travel", 7200000},
	{"#explore", "adventure", 6900000},
	{"#beautifuldestinations", "travel", 6500000},
	{"#traveltheworld", "travel", 5800000},
	{"#bucketlist", "inspiration", 5200000},
	{"#vacation", "travel", 4800000},
	{"#beachlife", "beach", 4500000},
	{"#mountains", "mountain", 4200000},
	{"#digitalnomad", "lifestyle", 3800000},
	{"#backpacking", "adventure", 3500000},
	{"#solotravel", "travel", 3200000},
	{"#luxurytravel", "luxury", 2900000},
	{"#foodie", "food", 2700000},
	{"#sunset", "photography", 2500000},
	{"#cityscape", "city", 2200000},
	{"#roadtrip", "adventure", 2000000},
}

func main() {
	cfg := config.Load()

	pool, err := db.ConnectPostgres(cfg)
	if err != nil {
		log.Fatalf("postgres connection failed: %v", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seed(ctx, pool); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Println("seed complete")
}

func seed(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	userID := uuid.NewString()
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (email) DO NOTHING
	`, userID, "Alex Chen", "alex.chen@example.com", string(hash))
	if err != nil {
		return err
	}

	for _, l := range locations {
		_, err := pool.Exec(ctx, `
			INSERT INTO location_database (id, name, country, category, description, best_time_to_visit, trending_score)
			SELECT $1,$2,$3,$4,$5,$6,$7
			WHERE NOT EXISTS (SELECT 1 FROM location_database WHERE name=$2 AND country=$3)
		`, uuid.NewString(), l.name, l.country, l.category, l.description, l.bestTime, l.score)
		if err != nil {
			return err
		}
	}

	for _, tag := range tags {
		_, err := pool.Exec(ctx, `
			INSERT INTO trending_tags (id, tag_name, usage_count, category)
			VALUES ($1,$2,$3,$4)
			ON CONFLICT (tag_name) DO NOTHING
		`, uuid.NewString(), tag.name, tag.usage, tag.category)
		if err != nil {
			return err
		}
	}
	return nil
}
