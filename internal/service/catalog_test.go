package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/agustin-pizzeria/order-service/internal/entities"
	"github.com/agustin-pizzeria/order-service/internal/service"
	mocks "github.com/agustin-pizzeria/order-service/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListProducts(t *testing.T) {
	dbError := errors.New("db error")

	menu := []entities.Product{
		{ItemID: "tiramisu", Name: "Tiramisu", Price: decimal.RequireFromString("6.50"), Category: "desserts"},
		{ItemID: "pizza-margherita", Name: "Margherita", Price: decimal.RequireFromString("9.50"), Category: "pizzas"},
	}

	testCases := []struct {
		name         string
		mockBehavior func(repo *mocks.MockProductRepo)
		wantErr      error
		want         []entities.Product
	}{
		{
			name: "OK",
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().
					ListProducts(mock.Anything).
					Return(menu, nil).Once()
			},
			want: menu,
		},
		{
			name: "repo fails",
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().
					ListProducts(mock.Anything).
					Return(nil, dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockProductRepo(t)
			tc.mockBehavior(repo)

			svc := service.NewCatalogService(discardLogger(), repo)

			got, err := svc.ListProducts(context.Background())
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
