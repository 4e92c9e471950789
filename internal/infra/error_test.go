//go:build unit

package infra_test

import (
	"fmt"
	"testing"

	"aparthotel-booking/internal/infra"
	"aparthotel-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapRepoErr_Classification(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantKind       infra.RepositoryErrorKind
		wantConstraint string
	}{
		{
			name:           "exclusion violation is a booking conflict",
			err:            &pgconn.PgError{Code: "23P01", ConstraintName: "reservations_no_overlap"},
			wantKind:       infra.KindConflict,
			wantConstraint: "reservations_no_overlap",
		},
		{
			name:           "unique violation",
			err:            &pgconn.PgError{Code: "23505", ConstraintName: "users_email_active_key"},
			wantKind:       infra.KindDuplicateKey,
			wantConstraint: "users_email_active_key",
		},
		{
			name:           "foreign key violation",
			err:            &pgconn.PgError{Code: "23503", ConstraintName: "reservations_unit_id_fkey"},
			wantKind:       infra.KindForeignKeyViolated,
			wantConstraint: "reservations_unit_id_fkey",
		},
		{
			name:           "check violation",
			err:            &pgconn.PgError{Code: "23514", ConstraintName: "reservations_guests_check"},
			wantKind:       infra.KindCheckViolated,
			wantConstraint: "reservations_guests_check",
		},
		{
			name:           "wrapped pg error is still classified",
			err:            fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23P01", ConstraintName: "reservations_no_overlap"}),
			wantKind:       infra.KindConflict,
			wantConstraint: "reservations_no_overlap",
		},
		{
			name:     "invalid byte sequence falls back to db failure",
			err:      &pgconn.PgError{Code: "22021"},
			wantKind: infra.KindDBFailure,
		},
		{
			name:     "no rows",
			err:      pgx.ErrNoRows,
			wantKind: infra.KindNotFound,
		},
		{
			name:     "plain error",
			err:      assert.AnError,
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("insert reservation", tt.err)

			assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)

			var repoErr infra.RepositoryError
			require.True(t, errs.As(err, &repoErr))
			assert.Equal(t, tt.wantKind, repoErr.Kind)
			assert.Equal(t, tt.wantConstraint, repoErr.Constraint)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestWrapRepoErr_ExplicitKindWins(t *testing.T) {
	err := infra.WrapRepoErr("unit not found", &pgconn.PgError{Code: "23505"}, infra.KindNotFound)

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.False(t, infra.IsKind(err, infra.KindDuplicateKey))
}

func TestWrapRepoErr_NilCause(t *testing.T) {
	err := infra.WrapRepoErr("insert reservation", nil, infra.KindConflict)

	assert.True(t, infra.IsKind(err, infra.KindConflict))
	assert.Equal(t, "CONFLICT: insert reservation", err.Error())
}

func TestIsKind_ForeignError(t *testing.T) {
	assert.False(t, infra.IsKind(assert.AnError, infra.KindDBFailure))
	assert.False(t, infra.IsKind(nil, infra.KindNotFound))
}
