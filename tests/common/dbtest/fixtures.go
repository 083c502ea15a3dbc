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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123", the password every test user logs in with.
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, full_name, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, "Test User", role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestRoom(t *testing.T, db DBLike, number, roomType string, pricePerNight int64, maxGuests int) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO rooms (id, number, room_type, price_per_night, max_guests) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (number) DO NOTHING",
		roomID, number, roomType, pricePerNight, maxGuests)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM rooms WHERE number = $1", number).Scan(&roomID)
	}

	return roomID
}

func CreateTestBooking(t *testing.T, db DBLike, roomID, userID uuid.UUID, checkIn, checkOut time.Time, status string, totalPrice int64) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO bookings (id, user_id, room_id, check_in_date, check_out_date, guests, status, total_price) VALUES ($1, $2, $3, $4, $5, 1, $6, $7)",
		bookingID, userID, roomID, checkIn, checkOut, status, totalPrice)
	require.NoError(t, err)

	return bookingID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
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

	return nil
}
