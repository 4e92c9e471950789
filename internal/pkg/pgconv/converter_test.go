//go:build unit

package pgconv_test

import (
	"fmt"
	"testing"
	"time"

	"aparthotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	assert.False(t, pgconv.StringToPgtype("").Valid)
	assert.Equal(t, pgtype.Text{String: "late arrival", Valid: true}, pgconv.StringToPgtype("late arrival"))

	assert.Nil(t, pgconv.StringPtrFromPgtype(pgtype.Text{}))
	assert.Equal(t, "", pgconv.StringFromPgtype(pgtype.Text{}))

	s := "cot please"
	assert.Equal(t, &s, pgconv.StringPtrFromPgtype(pgconv.StringPtrToPgtype(&s)))
	assert.False(t, pgconv.StringPtrToPgtype(nil).Valid)
}

func TestTime_NormalizesToUTC(t *testing.T) {
	lisbon := time.FixedZone("WEST", 3600)
	checkIn := time.Date(2026, 7, 1, 15, 0, 0, 0, lisbon)

	stored := pgconv.TimeToPgtype(checkIn)
	assert.Equal(t, time.UTC, stored.Time.Location())
	assert.True(t, checkIn.Equal(pgconv.TimeFromPgtype(stored)))
	assert.True(t, pgconv.TimeFromPgtype(pgtype.Timestamptz{}).IsZero())
}

func TestUUIDPtrToPgtype(t *testing.T) {
	assert.False(t, pgconv.UUIDPtrToPgtype(nil).Valid)

	id := uuid.New()
	got := pgconv.UUIDPtrToPgtype(&id)
	assert.True(t, got.Valid)
	assert.Equal(t, [16]byte(id), got.Bytes)
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("find unit: %w", pgx.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(assert.AnError))
	assert.False(t, pgconv.IsNoRows(nil))
}
