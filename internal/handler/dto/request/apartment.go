package request

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"aparthotel-booking/internal/pkg/errs"
)

var ErrInvalidDate = errs.New("date must be RFC3339 or YYYY-MM-DD")

// DateTime accepts the same formats in JSON bodies as AvailabilityQuery does
// in query strings.
type DateTime struct {
	time.Time
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ErrInvalidDate
	}
	t, err := parseDateTime(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

type AvailabilityQuery struct {
	CheckIn  string `form:"checkIn" binding:"required"`
	CheckOut string `form:"checkOut" binding:"required"`
}

// Range parses both bounds. A bare date means midnight UTC.
func (q *AvailabilityQuery) Range() (time.Time, time.Time, error) {
	checkIn, err := parseDateTime(q.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Wrap(err, "checkIn")
	}
	checkOut, err := parseDateTime(q.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Wrap(err, "checkOut")
	}
	return checkIn, checkOut, nil
}

func parseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	// An unescaped "+03:00" offset arrives from a query string as " 03:00".
	if strings.Contains(s, " ") {
		if t, err := time.Parse(time.RFC3339, strings.Replace(s, " ", "+", 1)); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
