//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"aparthotel-booking/internal/infra"
	"aparthotel-booking/internal/pkg/errs"
	"aparthotel-booking/internal/usecase/queries"
	"aparthotel-booking/internal/usecase/shared"
	"aparthotel-booking/tests/common/builder"
	queriesmock "aparthotel-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationQueries_GetByID(t *testing.T) {
	view := builder.NewReservationBuilder().BuildView()

	tests := []struct {
		name     string
		storeErr error
		errIs    error
	}{
		{name: "found"},
		{name: "missing", storeErr: infra.WrapRepoErr("not found", nil, infra.KindNotFound), errIs: queries.ErrReservationNotFound},
		{name: "store down", storeErr: infra.WrapRepoErr("find", errors.New("boom")), errIs: shared.ErrStorageUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockReservationReadStore(ctrl)
			if tt.storeErr != nil {
				store.EXPECT().FindByID(gomock.Any(), view.ID).Return(nil, tt.storeErr)
			} else {
				store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
			}

			got, err := queries.NewReservationQueries(store).GetByID(context.Background(), view.ID)
			if tt.errIs != nil {
				assert.True(t, errs.Is(err, tt.errIs))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

func TestReservationQueries_ListingsDegrade(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockReservationReadStore(ctrl)
	requester := uuid.New()

	store.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
	store.EXPECT().ListByRequester(gomock.Any(), requester).Return(nil, errors.New("timeout"))

	q := queries.NewReservationQueries(store)

	all, err := q.List(context.Background(), queries.ReservationFilter{})
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	mine, err := q.ListByRequester(context.Background(), requester)
	require.NoError(t, err)
	assert.NotNil(t, mine)
	assert.Empty(t, mine)
}

func TestReservationQueries_ListPassesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockReservationReadStore(ctrl)

	status := "confirmed"
	filter := queries.ReservationFilter{Status: &status}
	views := []*queries.ReservationView{builder.NewReservationBuilder().WithStatus(status).BuildView()}
	store.EXPECT().List(gomock.Any(), filter).Return(views, nil)

	got, err := queries.NewReservationQueries(store).List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, views, got)
}
