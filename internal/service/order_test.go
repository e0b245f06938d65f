package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/agustin-pizzeria/order-service/internal/entities"
	"github.com/agustin-pizzeria/order-service/internal/service"
	mocks "github.com/agustin-pizzeria/order-service/internal/service/mocks"
	txMocks "github.com/agustin-pizzeria/order-service/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOrderService_PriceOrder(t *testing.T) {
	margherita := entities.Product{
		ItemID:   "pizza-margherita",
		Name:     "Margherita",
		Price:    decimal.RequireFromString("9.50"),
		Category: "pizzas",
	}
	pepperoni := entities.Product{
		ItemID:   "pizza-pepperoni",
		Name:     "Pepperoni",
		Price:    decimal.RequireFromString("12.00"),
		Category: "pizzas",
	}

	testCases := []struct {
		name         string
		lines        []entities.OrderLineRequest
		address      string
		mockBehavior func(catalog *mocks.MockCatalogRepo)
		wantErr      error
		check        func(t *testing.T, got entities.PricedOrder)
	}{
		{
			name: "OK two items",
			lines: []entities.OrderLineRequest{
				{ItemID: "pizza-margherita", Quantity: 2},
				{ItemID: "pizza-pepperoni", Quantity: 1},
			},
			address: "123 Main St",
			mockBehavior: func(catalog *mocks.MockCatalogRepo) {
				catalog.EXPECT().
					GetProduct(mock.Anything, "pizza-margherita").
					Return(margherita, nil).Once()
				catalog.EXPECT().
					GetProduct(mock.Anything, "pizza-pepperoni").
					Return(pepperoni, nil).Once()
			},
			check: func(t *testing.T, got entities.PricedOrder) {
				require.Len(t, got.Items, 2)
				assert.Equal(t, "19.00", got.Items[0].Subtotal.StringFixed(2))
				assert.Equal(t, "12.00", got.Items[1].Subtotal.StringFixed(2))
				assert.Equal(t, "31.00", got.Subtotal.StringFixed(2))
				assert.Equal(t, "5.00", got.DeliveryFee.StringFixed(2))
				assert.Equal(t, "36.00", got.Total.StringFixed(2))
				assert.Equal(t, "123 Main St", got.CustomerAddress)
			},
		},
		{
			name: "line subtotals rounded before summing",
			lines: []entities.OrderLineRequest{
				{ItemID: "pizza-margherita", Quantity: 3},
			},
			address: "123 Main St",
			mockBehavior: func(catalog *mocks.MockCatalogRepo) {
				odd := margherita
				odd.Price = decimal.RequireFromString("3.333")
				catalog.EXPECT().
					GetProduct(mock.Anything, "pizza-margherita").
					Return(odd, nil).Once()
			},
			check: func(t *testing.T, got entities.PricedOrder) {
				require.Len(t, got.Items, 1)
				assert.Equal(t, "10.00", got.Items[0].Subtotal.StringFixed(2))
				assert.Equal(t, "10.00", got.Subtotal.StringFixed(2))
				assert.Equal(t, "15.00", got.Total.StringFixed(2))
			},
		},
		{
			name:         "empty items",
			lines:        nil,
			address:      "123 Main St",
			mockBehavior: func(catalog *mocks.MockCatalogRepo) {},
			wantErr:      entities.ErrEmptyOrderItems,
		},
		{
			name: "empty address",
			lines: []entities.OrderLineRequest{
				{ItemID: "pizza-margherita", Quantity: 1},
			},
			address:      "",
			mockBehavior: func(catalog *mocks.MockCatalogRepo) {},
			wantErr:      entities.ErrEmptyAddress,
		},
		{
			name: "zero quantity rejected before lookup",
			lines: []entities.OrderLineRequest{
				{ItemID: "pizza-margherita", Quantity: 0},
			},
			address:      "123 Main St",
			mockBehavior: func(catalog *mocks.MockCatalogRepo) {},
			wantErr:      entities.ErrInvalidQuantity,
		},
		{
			name: "unknown product aborts remaining lookups",
			lines: []entities.OrderLineRequest{
				{ItemID: "pizza-margherita", Quantity: 1},
				{ItemID: "no-such-item", Quantity: 1},
				{ItemID: "pizza-pepperoni", Quantity: 1},
			},
			address: "123 Main St",
			mockBehavior: func(catalog *mocks.MockCatalogRepo) {
				catalog.EXPECT().
					GetProduct(mock.Anything, "pizza-margherita").
					Return(margherita, nil).Once()
				catalog.EXPECT().
					GetProduct(mock.Anything, "no-such-item").
					Return(entities.Product{}, entities.ProductNotFoundError{ItemID: "no-such-item"}).Once()
			},
			wantErr: entities.ProductNotFoundError{ItemID: "no-such-item"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := mocks.NewMockCatalogRepo(t)
			orders := mocks.NewMockOrderRepo(t)
			notifier := mocks.NewMockOrderNotifier(t)
			tx := txMocks.NewMockManager(t)

			tc.mockBehavior(catalog)

			svc := service.NewOrderService(discardLogger(), tx, catalog, orders, notifier)

			got, err := svc.PriceOrder(context.Background(), tc.lines, tc.address)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.check(t, got)
		})
	}
}

func TestOrderService_PriceOrder_Deterministic(t *testing.T) {
	catalog := mocks.NewMockCatalogRepo(t)
	orders := mocks.NewMockOrderRepo(t)
	notifier := mocks.NewMockOrderNotifier(t)
	tx := txMocks.NewMockManager(t)

	catalog.EXPECT().
		GetProduct(mock.Anything, "pizza-margherita").
		Return(entities.Product{
			ItemID: "pizza-margherita",
			Price:  decimal.RequireFromString("9.50"),
		}, nil)

	svc := service.NewOrderService(discardLogger(), tx, catalog, orders, notifier)

	lines := []entities.OrderLineRequest{{ItemID: "pizza-margherita", Quantity: 2}}

	first, err := svc.PriceOrder(context.Background(), lines, "123 Main St")
	require.NoError(t, err)
	second, err := svc.PriceOrder(context.Background(), lines, "123 Main St")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestOrderService_CreateOrder(t *testing.T) {
	dbError := errors.New("db error")

	priced := entities.PricedOrder{
		Items: []entities.PricedLineItem{
			{
				Product: entities.Product{
					ItemID: "pizza-margherita",
					Price:  decimal.RequireFromString("9.50"),
				},
				Quantity: 2,
				Subtotal: decimal.RequireFromString("19.00"),
			},
		},
		Subtotal:        decimal.RequireFromString("19.00"),
		DeliveryFee:     decimal.NewFromInt(5),
		Total:           decimal.RequireFromString("24.00"),
		CustomerAddress: "123 Main St",
	}

	testCases := []struct {
		name         string
		mockBehavior func(orders *mocks.MockOrderRepo, notifier *mocks.MockOrderNotifier)
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(orders *mocks.MockOrderRepo, notifier *mocks.MockOrderNotifier) {
				orders.EXPECT().
					InsertOrder(mock.Anything, mock.Anything).
					Return(nil).Once()
				orders.EXPECT().
					InsertOrderItems(mock.Anything, mock.Anything, priced.Items).
					Return(nil).Once()
				notifier.EXPECT().
					OrderCreated(mock.Anything, mock.Anything).
					Return(nil).Once()
				orders.EXPECT().
					GetOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, trackingID string) (entities.Order, error) {
						return entities.Order{TrackingID: trackingID, Status: entities.StatusNew}, nil
					}).Once()
				orders.EXPECT().
					ListOrderItems(mock.Anything, mock.Anything).
					Return(priced.Items, nil).Once()
			},
		},
		{
			name: "notifier failure does not fail the order",
			mockBehavior: func(orders *mocks.MockOrderRepo, notifier *mocks.MockOrderNotifier) {
				orders.EXPECT().
					InsertOrder(mock.Anything, mock.Anything).
					Return(nil).Once()
				orders.EXPECT().
					InsertOrderItems(mock.Anything, mock.Anything, priced.Items).
					Return(nil).Once()
				notifier.EXPECT().
					OrderCreated(mock.Anything, mock.Anything).
					Return(errors.New("kafka unreachable")).Once()
				orders.EXPECT().
					GetOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, trackingID string) (entities.Order, error) {
						return entities.Order{TrackingID: trackingID, Status: entities.StatusNew}, nil
					}).Once()
				orders.EXPECT().
					ListOrderItems(mock.Anything, mock.Anything).
					Return(priced.Items, nil).Once()
			},
		},
		{
			name: "InsertOrder fails",
			mockBehavior: func(orders *mocks.MockOrderRepo, notifier *mocks.MockOrderNotifier) {
				orders.EXPECT().
					InsertOrder(mock.Anything, mock.Anything).
					Return(dbError).Once()
			},
			wantErr: dbError,
		},
		{
			name: "InsertOrderItems fails",
			mockBehavior: func(orders *mocks.MockOrderRepo, notifier *mocks.MockOrderNotifier) {
				orders.EXPECT().
					InsertOrder(mock.Anything, mock.Anything).
					Return(nil).Once()
				orders.EXPECT().
					InsertOrderItems(mock.Anything, mock.Anything, priced.Items).
					Return(dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := mocks.NewMockCatalogRepo(t)
			orders := mocks.NewMockOrderRepo(t)
			notifier := mocks.NewMockOrderNotifier(t)
			tx := txMocks.NewMockManager(t)

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
					return cb(ctx)
				})

			tc.mockBehavior(orders, notifier)

			svc := service.NewOrderService(discardLogger(), tx, catalog, orders, notifier)

			got, err := svc.CreateOrder(context.Background(), priced)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, got.TrackingID)
			assert.Equal(t, entities.StatusNew, got.Status)
			assert.Equal(t, priced.Items, got.Items)
		})
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	dbError := errors.New("db error")

	stored := entities.Order{
		TrackingID:      "b4c1f9c2-0000-0000-0000-000000000000",
		CustomerAddress: "123 Main St",
		Status:          entities.StatusNew,
	}
	items := []entities.PricedLineItem{
		{
			Product:  entities.Product{ItemID: "pizza-margherita"},
			Quantity: 2,
			Subtotal: decimal.RequireFromString("19.00"),
		},
	}

	testCases := []struct {
		name         string
		trackingID   string
		mockBehavior func(orders *mocks.MockOrderRepo)
		wantErr      error
		want         entities.Order
	}{
		{
			name:       "OK",
			trackingID: stored.TrackingID,
			mockBehavior: func(orders *mocks.MockOrderRepo) {
				orders.EXPECT().
					GetOrder(mock.Anything, stored.TrackingID).
					Return(stored, nil).Once()
				orders.EXPECT().
					ListOrderItems(mock.Anything, stored.TrackingID).
					Return(items, nil).Once()
			},
			want: func() entities.Order {
				o := stored
				o.Items = items
				return o
			}(),
		},
		{
			name:       "not found",
			trackingID: "not-exist",
			mockBehavior: func(orders *mocks.MockOrderRepo) {
				orders.EXPECT().
					GetOrder(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:       "items lookup fails",
			trackingID: stored.TrackingID,
			mockBehavior: func(orders *mocks.MockOrderRepo) {
				orders.EXPECT().
					GetOrder(mock.Anything, stored.TrackingID).
					Return(stored, nil).Once()
				orders.EXPECT().
					ListOrderItems(mock.Anything, stored.TrackingID).
					Return(nil, dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := mocks.NewMockCatalogRepo(t)
			orders := mocks.NewMockOrderRepo(t)
			notifier := mocks.NewMockOrderNotifier(t)
			tx := txMocks.NewMockManager(t)

			tc.mockBehavior(orders)

			svc := service.NewOrderService(discardLogger(), tx, catalog, orders, notifier)

			got, err := svc.GetOrder(context.Background(), tc.trackingID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	dbError := errors.New("db error")

	first := entities.Order{TrackingID: "order-1", Status: entities.StatusNew}
	second := entities.Order{TrackingID: "order-2", Status: entities.StatusNew}
	firstItems := []entities.PricedLineItem{
		{Product: entities.Product{ItemID: "pizza-margherita"}, Quantity: 1},
	}

	t.Run("OK", func(t *testing.T) {
		catalog := mocks.NewMockCatalogRepo(t)
		orders := mocks.NewMockOrderRepo(t)
		notifier := mocks.NewMockOrderNotifier(t)
		tx := txMocks.NewMockManager(t)

		orders.EXPECT().
			ListOrders(mock.Anything).
			Return([]entities.Order{first, second}, nil).Once()
		orders.EXPECT().
			ListOrderItems(mock.Anything, "order-1").
			Return(firstItems, nil).Once()
		orders.EXPECT().
			ListOrderItems(mock.Anything, "order-2").
			Return([]entities.PricedLineItem{}, nil).Once()

		svc := service.NewOrderService(discardLogger(), tx, catalog, orders, notifier)

		got, err := svc.ListOrders(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "order-1", got[0].TrackingID)
		assert.Equal(t, firstItems, got[0].Items)
		assert.Empty(t, got[1].Items)
	})

	t.Run("broken order degrades to empty items", func(t *testing.T) {
		catalog := mocks.NewMockCatalogRepo(t)
		orders := mocks.NewMockOrderRepo(t)
		notifier := mocks.NewMockOrderNotifier(t)
		tx := txMocks.NewMockManager(t)

		orders.EXPECT().
			ListOrders(mock.Anything).
			Return([]entities.Order{first, second}, nil).Once()
		orders.EXPECT().
			ListOrderItems(mock.Anything, "order-1").
			Return(nil, dbError).Once()
		orders.EXPECT().
			ListOrderItems(mock.Anything, "order-2").
			Return(firstItems, nil).Once()

		svc := service.NewOrderService(discardLogger(), tx, catalog, orders, notifier)

		got, err := svc.ListOrders(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Empty(t, got[0].Items)
		assert.Equal(t, firstItems, got[1].Items)
	})

	t.Run("listing fails", func(t *testing.T) {
		catalog := mocks.NewMockCatalogRepo(t)
		orders := mocks.NewMockOrderRepo(t)
		notifier := mocks.NewMockOrderNotifier(t)
		tx := txMocks.NewMockManager(t)

		orders.EXPECT().
			ListOrders(mock.Anything).
			Return(nil, dbError).Once()

		svc := service.NewOrderService(discardLogger(), tx, catalog, orders, notifier)

		_, err := svc.ListOrders(context.Background())
		assert.ErrorIs(t, err, dbError)
	})
}
