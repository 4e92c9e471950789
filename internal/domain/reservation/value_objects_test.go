//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"aparthotel-booking/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2030, time.March, 10, 15, 0, 0, 0, time.UTC)

func days(n int) time.Time { return base.AddDate(0, 0, n) }

func mustStay(t *testing.T, in, out time.Time) reservation.StayRange {
	t.Helper()
	s, err := reservation.NewStayRange(in, out)
	require.NoError(t, err)
	return s
}

func TestNewStayRange(t *testing.T) {
	t.Run("check-in before check-out OK", func(t *testing.T) {
		s := mustStay(t, days(0), days(2))
		assert.Equal(t, days(0), s.CheckIn())
		assert.Equal(t, days(2), s.CheckOut())
	})

	t.Run("normalises to UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+3", 3*60*60)
		s := mustStay(t, days(0).In(loc), days(1).In(loc))
		assert.Equal(t, time.UTC, s.CheckIn().Location())
		assert.True(t, s.CheckIn().Equal(days(0)))
	})

	for _, tc := range []struct {
		name    string
		in, out time.Time
	}{
		{name: "equal dates NG", in: days(1), out: days(1)},
		{name: "reversed dates NG", in: days(3), out: days(1)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := reservation.NewStayRange(tc.in, tc.out)
			var fe *reservation.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, "checkOut", fe.Field)
			assert.ErrorIs(t, err, reservation.ErrInvalidStayRange)
		})
	}
}

func TestStayRange_Overlaps(t *testing.T) {
	existing := mustStay(t, days(5), days(10))

	tests := []struct {
		name    string
		in, out time.Time
		want    bool
	}{
		{name: "ends on existing check-in", in: days(1), out: days(5), want: false},
		{name: "starts on existing check-out", in: days(10), out: days(12), want: false},
		{name: "covers start", in: days(3), out: days(6), want: true},
		{name: "covers end", in: days(9), out: days(11), want: true},
		{name: "inside", in: days(6), out: days(7), want: true},
		{name: "encloses", in: days(4), out: days(11), want: true},
		{name: "identical", in: days(5), out: days(10), want: true},
		{name: "entirely before", in: days(0), out: days(2), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := mustStay(t, tt.in, tt.out)
			assert.Equal(t, tt.want, existing.Overlaps(other))
			assert.Equal(t, tt.want, other.Overlaps(existing))
		})
	}
}

func TestStayRange_Nights(t *testing.T) {
	assert.Equal(t, 1, mustStay(t, days(0), days(1)).Nights())
	assert.Equal(t, 7, mustStay(t, days(0), days(7)).Nights())
	assert.Equal(t, 1, mustStay(t, days(0), days(0).Add(3*time.Hour)).Nights())
	assert.Equal(t, 2, mustStay(t, days(0), days(1).Add(time.Minute)).Nights())
}

func TestMoney(t *testing.T) {
	m, err := reservation.NewMoney(12345)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), m.Cents())
	assert.Equal(t, "123.45", m.String())
	assert.Equal(t, int64(37035), m.Times(3).Cents())

	zero, err := reservation.NewMoney(0)
	require.NoError(t, err)
	assert.Equal(t, "0.00", zero.String())

	_, err = reservation.NewMoney(-1)
	assert.ErrorIs(t, err, reservation.ErrNegativePrice)
}

func TestNewGuest(t *testing.T) {
	t.Run("trims and keeps phone", func(t *testing.T) {
		g, err := reservation.NewGuest("  Grace Hopper ", "grace@example.com", " +1 (555) 010-9999 ")
		require.NoError(t, err)
		assert.Equal(t, "Grace Hopper", g.Name())
		assert.Equal(t, "grace@example.com", g.Email())
		assert.True(t, g.HasPhone())
		assert.Equal(t, "15550109999", reservation.PhoneDigits(g.Phone()))
	})

	t.Run("length counts characters, not bytes", func(t *testing.T) {
		name := strings.Repeat("ნ", reservation.MaxGuestNameLength)
		g, err := reservation.NewGuest(name, "nino@example.ge", "")
		require.NoError(t, err)
		assert.Equal(t, name, g.Name())
	})

	t.Run("phone is optional", func(t *testing.T) {
		g, err := reservation.NewGuest("Grace", "grace@example.com", "")
		require.NoError(t, err)
		assert.False(t, g.HasPhone())
	})

	tests := []struct {
		name                string
		guest, email, phone string
		field               string
		errIs               error
	}{
		{name: "blank name", guest: "   ", email: "a@example.com", field: "guestName", errIs: reservation.ErrGuestNameRequired},
		{name: "long name", guest: strings.Repeat("x", 256), email: "a@example.com", field: "guestName", errIs: reservation.ErrGuestNameTooLong},
		{name: "missing email", guest: "A", email: "", field: "guestEmail", errIs: reservation.ErrGuestEmailRequired},
		{name: "malformed email", guest: "A", email: "not-an-email", field: "guestEmail", errIs: reservation.ErrInvalidGuestEmail},
		{name: "phone without digits", guest: "A", email: "a@example.com", phone: "call me", field: "guestPhone", errIs: reservation.ErrGuestPhoneMalformed},
		{name: "NUL in name", guest: "Ada\x00Lovelace", email: "a@example.com", field: "guestName", errIs: reservation.ErrControlCharacters},
		{name: "escape in name", guest: "Ada\x1b[31m", email: "a@example.com", field: "guestName", errIs: reservation.ErrControlCharacters},
		{name: "NUL in email", guest: "A", email: "a\x00@example.com", field: "guestEmail", errIs: reservation.ErrControlCharacters},
		{name: "NUL in phone", guest: "A", email: "a@example.com", phone: "+995\x00555", field: "guestPhone", errIs: reservation.ErrControlCharacters},
		{name: "256 Georgian letters", guest: strings.Repeat("ნ", 256), email: "a@example.com", field: "guestName", errIs: reservation.ErrGuestNameTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reservation.NewGuest(tt.guest, tt.email, tt.phone)
			var fe *reservation.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestNewSpecialRequests(t *testing.T) {
	r, err := reservation.NewSpecialRequests("  late arrival  ")
	require.NoError(t, err)
	assert.Equal(t, "late arrival", r.String())
	assert.False(t, r.IsEmpty())

	empty, err := reservation.NewSpecialRequests("")
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	_, err = reservation.NewSpecialRequests(strings.Repeat("a", reservation.MaxSpecialRequestsLength))
	require.NoError(t, err)

	_, err = reservation.NewSpecialRequests(strings.Repeat("a", reservation.MaxSpecialRequestsLength+1))
	assert.ErrorIs(t, err, reservation.ErrRequestsTooLong)

	georgian, err := reservation.NewSpecialRequests(strings.Repeat("ა", 700))
	require.NoError(t, err)
	assert.Equal(t, 700, len([]rune(georgian.String())))

	_, err = reservation.NewSpecialRequests(strings.Repeat("ა", reservation.MaxSpecialRequestsLength+1))
	assert.ErrorIs(t, err, reservation.ErrRequestsTooLong)

	multiline, err := reservation.NewSpecialRequests("crib\n\tplease\r\nthanks")
	require.NoError(t, err)
	assert.Equal(t, "crib\n\tplease\r\nthanks", multiline.String())

	_, err = reservation.NewSpecialRequests("late\x00arrival")
	var fe *reservation.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "specialRequests", fe.Field)
	assert.ErrorIs(t, err, reservation.ErrControlCharacters)
}

func TestNightlyPriceCalculator(t *testing.T) {
	rate, err := reservation.NewMoney(15000)
	require.NoError(t, err)

	pc := reservation.NewNightlyPriceCalculator()
	assert.Equal(t, int64(45000), pc.ExpectedTotal(rate, mustStay(t, days(0), days(3))).Cents())
}
