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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUnitQueries(t *testing.T) {
	view := builder.NewUnitBuilder().BuildView()

	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUnitReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := queries.NewUnitQueries(store).Get(context.Background(), view.ID)
		require.NoError(t, err)
		assert.Equal(t, view.Name, got.Name)
	})

	t.Run("get missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUnitReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), view.ID).
			Return(nil, infra.WrapRepoErr("unit not found", nil, infra.KindNotFound))

		_, err := queries.NewUnitQueries(store).Get(context.Background(), view.ID)
		assert.ErrorIs(t, err, queries.ErrUnitNotFound)
	})

	t.Run("get with store down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUnitReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(nil, errors.New("refused"))

		_, err := queries.NewUnitQueries(store).Get(context.Background(), view.ID)
		assert.True(t, errs.Is(err, shared.ErrStorageUnavailable))
	})

	t.Run("list degrades to empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUnitReadStore(ctrl)
		store.EXPECT().List(gomock.Any()).Return(nil, errors.New("refused"))

		got, err := queries.NewUnitQueries(store).List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
