//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"aparthotel-booking/internal/domain/reservation"
	"aparthotel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type draftArgs struct {
	unitID      uuid.UUID
	requesterID uuid.UUID
	guests      int
	contact     reservation.ContactMethod
	stay        reservation.StayRange
}

func newDraft(t *testing.T, mutate func(*draftArgs)) (*reservation.Reservation, error) {
	t.Helper()
	guest, err := reservation.NewGuest("Ada", "ada@example.com", "")
	require.NoError(t, err)
	price, err := reservation.NewMoney(30000)
	require.NoError(t, err)

	args := draftArgs{
		unitID:      uuid.New(),
		requesterID: uuid.New(),
		guests:      2,
		contact:     reservation.ContactEmail,
		stay:        mustStay(t, days(0), days(2)),
	}
	if mutate != nil {
		mutate(&args)
	}

	return reservation.NewReservation(args.unitID, args.requesterID, guest, args.stay, args.guests,
		price, args.contact, reservation.SpecialRequests{}, base)
}

func TestNewReservation(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		r, err := newDraft(t, nil)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, reservation.StatusPending, r.Status())
		assert.Equal(t, base, r.CreatedAt())
		assert.Equal(t, base, r.UpdatedAt())
	})

	tests := []struct {
		name   string
		mutate func(*draftArgs)
		field  string
		errIs  error
	}{
		{name: "missing unit", mutate: func(a *draftArgs) { a.unitID = uuid.Nil }, field: "apartmentId", errIs: reservation.ErrMissingUnit},
		{name: "zero guests", mutate: func(a *draftArgs) { a.guests = 0 }, field: "guests", errIs: reservation.ErrInvalidGuestCount},
		{name: "unknown contact", mutate: func(a *draftArgs) { a.contact = "pigeon" }, field: "contactMethod", errIs: reservation.ErrUnknownContact},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newDraft(t, tt.mutate)
			var fe *reservation.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}

	t.Run("missing requester", func(t *testing.T) {
		_, err := newDraft(t, func(a *draftArgs) { a.requesterID = uuid.Nil })
		assert.ErrorIs(t, err, reservation.ErrMissingRequester)
	})
}

func TestReservation_TransitionTo(t *testing.T) {
	later := base.Add(time.Hour)

	t.Run("pending to confirmed to completed", func(t *testing.T) {
		r, err := newDraft(t, nil)
		require.NoError(t, err)

		require.NoError(t, r.TransitionTo(reservation.StatusConfirmed, later))
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
		assert.Equal(t, later, r.UpdatedAt())

		require.NoError(t, r.TransitionTo(reservation.StatusCompleted, later))
		assert.Equal(t, reservation.StatusCompleted, r.Status())
	})

	t.Run("terminal states reject every move", func(t *testing.T) {
		r, err := newDraft(t, nil)
		require.NoError(t, err)
		require.NoError(t, r.TransitionTo(reservation.StatusCancelled, later))

		for _, next := range []reservation.Status{reservation.StatusPending, reservation.StatusConfirmed, reservation.StatusCompleted, reservation.StatusCancelled} {
			assert.ErrorIs(t, r.TransitionTo(next, later.Add(time.Hour)), reservation.ErrInvalidTransition)
		}
		assert.Equal(t, reservation.StatusCancelled, r.Status())
		assert.Equal(t, later, r.UpdatedAt())
	})

	t.Run("pending cannot complete", func(t *testing.T) {
		r, err := newDraft(t, nil)
		require.NoError(t, err)
		assert.ErrorIs(t, r.TransitionTo(reservation.StatusCompleted, later), reservation.ErrInvalidTransition)
		assert.Equal(t, reservation.StatusPending, r.Status())
	})

	t.Run("unknown target", func(t *testing.T) {
		r, err := newDraft(t, nil)
		require.NoError(t, err)
		assert.ErrorIs(t, r.TransitionTo("archived", later), reservation.ErrInvalidTransition)
	})
}

func TestReservation_CheckCapacity(t *testing.T) {
	r, err := newDraft(t, func(a *draftArgs) { a.guests = 3 })
	require.NoError(t, err)

	sleepsThree, err := builder.NewUnitBuilder().WithMaxGuests(3).BuildDomain()
	require.NoError(t, err)
	sleepsTwo, err := builder.NewUnitBuilder().WithMaxGuests(2).BuildDomain()
	require.NoError(t, err)

	assert.NoError(t, r.CheckCapacity(sleepsThree))
	err = r.CheckCapacity(sleepsTwo)
	var fe *reservation.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "guests", fe.Field)
	assert.ErrorIs(t, err, reservation.ErrCapacityExceeded)
}
