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

// bcrypt hash of "password123", precomputed so tests skip the hashing cost.
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestCompany(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	companyID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO companies (id, name, industry) VALUES ($1, $2, 'Technology')", companyID, name)
	require.NoError(t, err)

	return companyID
}

// creates an active event running today with a one hour networking window
// after 18:00, which yields the slot labels 18:15 through 19:15.
func CreateTestEvent(t *testing.T, db DBLike, companyID uuid.UUID, eventCode string) uuid.UUID {
	t.Helper()

	eventID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO events (id, company_id, name, event_code, start_date, end_date, start_time, end_time, networking_hours, is_active)
		VALUES ($1, $2, 'Test Summit', $3, CURRENT_DATE, CURRENT_DATE + 1, '09:00', '18:00', 1.0, true)`,
		eventID, companyID, eventCode)
	require.NoError(t, err)

	return eventID
}

func CreateTestProfile(t *testing.T, db DBLike, eventID uuid.UUID, email, accessCode string, availableSlots []string) uuid.UUID {
	t.Helper()

	profileID := uuid.New()
	ctx := context.Background()

	if availableSlots == nil {
		availableSlots = []string{}
	}
	_, err := db.Exec(ctx, `
		INSERT INTO profiles (id, event_id, full_name, email, access_code, code_verified, available_slots)
		VALUES ($1, $2, $3, $4, $5, true, $6)`,
		profileID, eventID, "Attendee "+email, email, accessCode, availableSlots)
	require.NoError(t, err)

	return profileID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO companies (id, name, industry)
		VALUES (gen_random_uuid(), 'Default Company', 'Technology')
		ON CONFLICT DO NOTHING;
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
