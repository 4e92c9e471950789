//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	// bcrypt hash of "password123"
	passwordHash := "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) WHERE is_active = true DO NOTHING",
		userID, email, passwordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

func DeactivateTestUser(t *testing.T, db DBLike, userID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE id = $1", userID)
	require.NoError(t, err)
}

func CreateTestUnit(t *testing.T, db DBLike, name string, maxGuests int, pricePerNight int64) uuid.UUID {
	t.Helper()

	unitID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO units (id, name, max_guests, bedrooms, bathrooms, price_per_night) VALUES ($1, $2, $3, 1, 1, $4)",
		unitID, name, maxGuests, pricePerNight)
	require.NoError(t, err)

	return unitID
}

func UnitIDByName(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var unitID uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM units WHERE name = $1", name).Scan(&unitID)
	require.NoError(t, err)

	return unitID
}

// SeedReferenceData mirrors migrations/002_seed_units.sql.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO units (name, max_guests, bedrooms, bathrooms, price_per_night) VALUES
		    ('Garden Studio', 2, 0, 1, 18000),
		    ('Harbour View One-Bedroom', 3, 1, 1, 26000),
		    ('Penthouse Suite', 6, 3, 2, 72000);
	`)
	if err != nil {
		return err
	}

	return nil
}

const truncateSQL = "TRUNCATE notification_jobs, reservations, units, users RESTART IDENTITY CASCADE"

// ResetDB empties every table and reseeds the catalog.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, truncateSQL); err != nil {
		return fmt.Errorf("reset database: %w", err)
	}
	return SeedReferenceData(pool)
}
