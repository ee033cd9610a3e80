//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Querier is the slice of pgx the fixtures need; both *pgxpool.Pool and
// pgx.Tx satisfy it.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Fixed catalog IDs so tests can reference seeded hotels directly.
var (
	HotelGrandPalaceID = uuid.MustParse("0b51cf5e-9351-4ba5-8f2c-0a3cbf0c12a1")
	HotelSeasideID     = uuid.MustParse("5f0be696-21ec-4b42-9b62-d2be1e2b44c7")
)

func CreateTestUser(t *testing.T, db Querier, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	passwordHash := "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, display_name, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, passwordHash, "Test User", role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

func CreateTestHotel(t *testing.T, db Querier, name string, nightlyRate float64) uuid.UUID {
	t.Helper()

	hotelID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO hotels (id, name, location, description, image_url, nightly_rate, rating) VALUES ($1, $2, 'Test City', '', '', $3, 4.0)",
		hotelID, name, nightlyRate)
	require.NoError(t, err)

	return hotelID
}

// inserts the hotel catalog needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO hotels (id, name, location, description, image_url, nightly_rate, rating, amenities) VALUES
		    ($1, 'Grand Palace', 'Tokyo', 'City-center flagship', 'https://example.com/grand.jpg', 250, 4.5, '{wifi,pool,spa}'),
		    ($2, 'Seaside Resort', 'Okinawa', 'Beachfront rooms', 'https://example.com/seaside.jpg', 180, 4.2, '{wifi,beach}')
		ON CONFLICT (id) DO NOTHING;
	`, HotelGrandPalaceID, HotelSeasideID)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
