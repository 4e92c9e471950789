package reservation

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"aparthotel-booking/internal/domain/user"
)

const (
	MaxGuestNameLength       = 255
	MaxSpecialRequestsLength = 2000
)

// StayRange is the half-open interval [checkIn, checkOut).
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	if !checkIn.Before(checkOut) {
		return StayRange{}, fieldErr("checkOut", ErrInvalidStayRange)
	}
	return StayRange{
		checkIn:  checkIn.UTC(),
		checkOut: checkOut.UTC(),
	}, nil
}

func (s StayRange) CheckIn() time.Time  { return s.checkIn }
func (s StayRange) CheckOut() time.Time { return s.checkOut }

// Overlaps uses the half-open test, so back-to-back stays do not collide.
func (s StayRange) Overlaps(other StayRange) bool {
	return s.checkIn.Before(other.checkOut) && s.checkOut.After(other.checkIn)
}

// Nights counts started 24h periods.
func (s StayRange) Nights() int {
	const day = 24 * time.Hour
	d := s.checkOut.Sub(s.checkIn)
	n := int(d / day)
	if d%day != 0 {
		n++
	}
	return n
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

type Guest struct {
	name  string
	email string
	phone string
}

func NewGuest(name, email, phone string) (Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Guest{}, fieldErr("guestName", ErrGuestNameRequired)
	}
	if hasControl(name, "") {
		return Guest{}, fieldErr("guestName", ErrControlCharacters)
	}
	if utf8.RuneCountInString(name) > MaxGuestNameLength {
		return Guest{}, fieldErr("guestName", ErrGuestNameTooLong)
	}

	if strings.TrimSpace(email) == "" {
		return Guest{}, fieldErr("guestEmail", ErrGuestEmailRequired)
	}
	if hasControl(email, "") {
		return Guest{}, fieldErr("guestEmail", ErrControlCharacters)
	}
	addr, err := user.NewEmail(email)
	if err != nil {
		return Guest{}, fieldErr("guestEmail", ErrInvalidGuestEmail)
	}

	phone = strings.TrimSpace(phone)
	if hasControl(phone, "") {
		return Guest{}, fieldErr("guestPhone", ErrControlCharacters)
	}
	if phone != "" && PhoneDigits(phone) == "" {
		return Guest{}, fieldErr("guestPhone", ErrGuestPhoneMalformed)
	}

	return Guest{name: name, email: addr.Value(), phone: phone}, nil
}

func (g Guest) Name() string   { return g.name }
func (g Guest) Email() string  { return g.email }
func (g Guest) Phone() string  { return g.phone }
func (g Guest) HasPhone() bool { return g.phone != "" }

// PhoneDigits strips everything but digits, the form wa.me expects.
func PhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

type SpecialRequests struct {
	value string
}

func NewSpecialRequests(value string) (SpecialRequests, error) {
	value = strings.TrimSpace(value)
	if hasControl(value, "\n\r\t") {
		return SpecialRequests{}, fieldErr("specialRequests", ErrControlCharacters)
	}
	if utf8.RuneCountInString(value) > MaxSpecialRequestsLength {
		return SpecialRequests{}, fieldErr("specialRequests", ErrRequestsTooLong)
	}
	return SpecialRequests{value: value}, nil
}

// hasControl reports control runes other than those in allowed. Postgres text
// columns reject NUL outright.
func hasControl(s, allowed string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return unicode.IsControl(r) && !strings.ContainsRune(allowed, r)
	})
}

func (s SpecialRequests) String() string {
	return s.value
}

func (s SpecialRequests) IsEmpty() bool {
	return s.value == ""
}
