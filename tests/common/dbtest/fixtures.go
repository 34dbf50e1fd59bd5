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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestEnrollment(t *testing.T, db DBLike, userID int64) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx,
		"INSERT INTO enrollments (user_id, address) VALUES ($1, '1-2-3 Test St') RETURNING id",
		userID).Scan(&id)
	require.NoError(t, err)

	return id
}

// CreateTestTicket attaches a ticket to an enrollment. The ticket type is
// resolved from the seeded reference rows by its flags.
func CreateTestTicket(t *testing.T, db DBLike, enrollmentID int64, status string, isRemote, includesRoomStay bool) int64 {
	t.Helper()

	ctx := context.Background()
	var typeID int64
	err := db.QueryRow(ctx,
		"SELECT id FROM ticket_types WHERE is_remote = $1 AND includes_room_stay = $2 LIMIT 1",
		isRemote, includesRoomStay).Scan(&typeID)
	require.NoError(t, err)

	var id int64
	err = db.QueryRow(ctx,
		"INSERT INTO tickets (ticket_type_id, enrollment_id, status) VALUES ($1, $2, $3) RETURNING id",
		typeID, enrollmentID, status).Scan(&id)
	require.NoError(t, err)

	return id
}

// CreateEligibleUser sets up an enrollment with a paid, in-person,
// room-stay ticket so the user passes the eligibility gate.
func CreateEligibleUser(t *testing.T, db DBLike, userID int64) int64 {
	t.Helper()

	enrollmentID := CreateTestEnrollment(t, db, userID)
	CreateTestTicket(t, db, enrollmentID, "paid", false, true)
	return enrollmentID
}

func CreateTestHotel(t *testing.T, db DBLike, name string) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx, "INSERT INTO hotels (name) VALUES ($1) RETURNING id", name).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestRoom(t *testing.T, db DBLike, hotelID int64, name string, capacity int32) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx,
		"INSERT INTO rooms (name, capacity, hotel_id) VALUES ($1, $2, $3) RETURNING id",
		name, capacity, hotelID).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestBooking(t *testing.T, db DBLike, userID, roomID int64) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx,
		"INSERT INTO bookings (user_id, room_id) VALUES ($1, $2) RETURNING id",
		userID, roomID).Scan(&id)
	require.NoError(t, err)

	return id
}

// inserts the ticket type reference rows needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO ticket_types (name, is_remote, includes_room_stay)
		SELECT v.name, v.is_remote, v.includes_room_stay
		FROM (VALUES
		    ('In-person with room stay', FALSE, TRUE),
		    ('In-person without room stay', FALSE, FALSE),
		    ('Remote', TRUE, FALSE)
		) AS v(name, is_remote, includes_room_stay)
		WHERE NOT EXISTS (SELECT 1 FROM ticket_types WHERE ticket_types.name = v.name);
	`)
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
