//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"aparthotel-booking/internal/infra"
	"aparthotel-booking/internal/usecase/queries"
	"aparthotel-booking/tests/common/builder"
	queriesmock "aparthotel-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUserQueries_GetCurrentUser(t *testing.T) {
	active := builder.NewUserBuilder().AsOperator().BuildReadModel()
	inactive := builder.NewUserBuilder().AsInactive().BuildReadModel()
	storeDown := errors.New("connection reset")

	tests := []struct {
		name    string
		view    *queries.AuthorizedUserView
		err     error
		wantErr error
	}{
		{name: "active operator", view: active},
		{name: "deactivated", view: inactive, wantErr: queries.ErrUserInactive},
		{name: "deleted", err: infra.WrapRepoErr("user not found", nil, infra.KindNotFound), wantErr: queries.ErrUserNotFound},
		{name: "store failure passes through", err: storeDown, wantErr: storeDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := queriesmock.NewMockUserReadStore(gomock.NewController(t))
			store.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(tt.view, tt.err)

			got, err := queries.NewUserQueries(store).GetCurrentUser(context.Background(), active.ID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, active, got)
		})
	}
}
