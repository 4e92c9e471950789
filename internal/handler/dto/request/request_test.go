//go:build unit

package request

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTime_UnmarshalJSON(t *testing.T) {
	tbilisi := time.FixedZone("", 4*60*60)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "RFC3339 UTC", input: `"2030-06-01T14:00:00Z"`, want: time.Date(2030, time.June, 1, 14, 0, 0, 0, time.UTC)},
		{name: "RFC3339 with offset", input: `"2030-06-01T14:00:00+04:00"`, want: time.Date(2030, time.June, 1, 14, 0, 0, 0, tbilisi)},
		{name: "bare date is midnight UTC", input: `"2030-06-01"`, want: time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC)},
		{name: "null leaves zero", input: `null`},
		{name: "free text", input: `"next tuesday"`, wantErr: true},
		{name: "number", input: `1767225600`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got DateTime
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time), "want %v, got %v", tt.want, got.Time)
		})
	}
}

func TestAvailabilityQuery_Range(t *testing.T) {
	t.Run("unescaped plus offset survives query decoding", func(t *testing.T) {
		q := AvailabilityQuery{CheckIn: "2030-06-01T14:00:00 04:00", CheckOut: "2030-06-03"}

		checkIn, checkOut, err := q.Range()
		require.NoError(t, err)
		assert.True(t, checkIn.Equal(time.Date(2030, time.June, 1, 10, 0, 0, 0, time.UTC)))
		assert.True(t, checkOut.Equal(time.Date(2030, time.June, 3, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("garbage is rejected per bound", func(t *testing.T) {
		q := AvailabilityQuery{CheckIn: "2030-06-01", CheckOut: "soon"}

		_, _, err := q.Range()
		assert.ErrorIs(t, err, ErrInvalidDate)
		assert.Contains(t, err.Error(), "checkOut")
	})
}

func TestRegisterValidators(t *testing.T) {
	require.NoError(t, RegisterValidators())
	// idempotent
	require.NoError(t, RegisterValidators())
}

func TestRegisterOn(t *testing.T) {
	type booking struct {
		CheckIn DateTime `json:"checkIn" validate:"required"`
		Contact string   `json:"contactMethod" validate:"contactmethod"`
	}

	t.Run("installs tags and validates DateTime as time", func(t *testing.T) {
		v := validator.New()
		require.NoError(t, registerOn(v, customTags))

		err := v.Struct(booking{Contact: "fax"})
		require.Error(t, err)

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		fields := map[string]string{}
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		assert.Equal(t, map[string]string{"checkIn": "required", "contactMethod": "contactmethod"}, fields)

		assert.NoError(t, v.Struct(booking{CheckIn: DateTime{Time: time.Now()}, Contact: "whatsapp"}))
	})

	t.Run("surfaces registration failures", func(t *testing.T) {
		err := registerOn(validator.New(), map[string]validator.Func{
			"": func(validator.FieldLevel) bool { return true },
		})
		assert.Error(t, err)
	})
}
