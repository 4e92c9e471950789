//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"aparthotel-booking/internal/pkg/errs"
	"aparthotel-booking/internal/usecase/queries"
	"aparthotel-booking/internal/usecase/shared"
	queriesmock "aparthotel-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityQueries_Check(t *testing.T) {
	unitID := uuid.New()
	checkIn := time.Date(2030, time.July, 1, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 4)

	tests := []struct {
		name          string
		count         int64
		countErr      error
		wantAvailable bool
		wantDegraded  bool
	}{
		{name: "free range", count: 0, wantAvailable: true},
		{name: "one overlapping reservation", count: 1, wantAvailable: false},
		{name: "store down degrades to unavailable", countErr: errors.New("connection refused"), wantAvailable: false, wantDegraded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			counter := queriesmock.NewMockOverlapCounter(ctrl)
			counter.EXPECT().CountOverlapping(gomock.Any(), unitID, checkIn, checkOut).Return(tt.count, tt.countErr)

			q := queries.NewAvailabilityQueries(counter)
			view, err := q.Check(context.Background(), unitID, checkIn, checkOut)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, view.Available)
			assert.Equal(t, tt.wantDegraded, view.Degraded)
			assert.Equal(t, unitID, view.UnitID)
		})
	}

	t.Run("invalid range never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewAvailabilityQueries(queriesmock.NewMockOverlapCounter(ctrl))

		_, err := q.Check(context.Background(), unitID, checkOut, checkIn)
		assert.True(t, errs.Is(err, shared.ErrValidation))

		ok, err := q.IsAvailable(context.Background(), unitID, checkIn, checkIn)
		assert.False(t, ok)
		assert.True(t, errs.Is(err, shared.ErrValidation))
	})
}
