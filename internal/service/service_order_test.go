package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/mock"
	"github.com/MKhiriev/go-shop-keeper/internal/store"
	"github.com/MKhiriev/go-shop-keeper/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type orderSvcMocks struct {
	users  *mock.MockUserRepository
	carts  *mock.MockCartRepository
	orders *mock.MockOrderRepository
}

func newTestOrderSvc(t *testing.T, ctrl *gomock.Controller) (OrderService, orderSvcMocks) {
	t.Helper()
	mocks := orderSvcMocks{
		users:  mock.NewMockUserRepository(ctrl),
		carts:  mock.NewMockCartRepository(ctrl),
		orders: mock.NewMockOrderRepository(ctrl),
	}
	storages := &store.Storages{
		UserRepository:  mocks.users,
		CartRepository:  mocks.carts,
		OrderRepository: mocks.orders,
	}

	return NewOrderService(storages, logger.Nop()), mocks
}

func TestOrderService_SubmitOrder_SnapshotsCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	widget := models.Item{ItemID: 1, Name: "Round Widget", Price: decimal.RequireFromString("2.99")}
	cart := models.Cart{
		CartID: 11,
		UserID: 7,
		Items:  []models.Item{widget, widget},
		Total:  decimal.RequireFromString("5.98"),
	}

	mocks.users.EXPECT().
		FindUserByUsername(ctx, "alice").
		Return(models.User{UserID: 7, Username: "alice"}, nil)
	mocks.carts.EXPECT().
		FindCartByUserID(ctx, int64(7)).
		Return(cart, nil)
	// submit must not touch the cart, so no SaveCart expectation here
	mocks.orders.EXPECT().
		CreateOrder(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, order models.Order) (models.Order, error) {
			require.Equal(t, int64(7), order.UserID)
			require.Len(t, order.Items, 2)
			require.True(t, order.Total.Equal(cart.Total))

			order.OrderID = 21
			order.CreatedAt = time.Now()
			return order, nil
		})

	order, err := svc.SubmitOrder(ctx, "alice")

	require.NoError(t, err)
	assert.Equal(t, int64(21), order.OrderID)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("5.98")))
}

func TestOrderService_SubmitOrder_EmptyCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	mocks.users.EXPECT().
		FindUserByUsername(ctx, "alice").
		Return(models.User{UserID: 7, Username: "alice"}, nil)
	mocks.carts.EXPECT().
		FindCartByUserID(ctx, int64(7)).
		Return(models.Cart{CartID: 11, UserID: 7, Total: decimal.Zero}, nil)
	mocks.orders.EXPECT().
		CreateOrder(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, order models.Order) (models.Order, error) {
			require.Empty(t, order.Items)
			require.True(t, order.Total.IsZero())

			order.OrderID = 22
			return order, nil
		})

	order, err := svc.SubmitOrder(ctx, "alice")

	require.NoError(t, err)
	assert.True(t, order.Total.IsZero())
}

func TestOrderService_SubmitOrder_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	mocks.users.EXPECT().
		FindUserByUsername(ctx, "ghost").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.SubmitOrder(ctx, "ghost")

	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrNoUserWasFound))
}

func TestOrderService_GetOrderHistory_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	history := []models.Order{
		{OrderID: 22, UserID: 7, Total: decimal.RequireFromString("5.98")},
		{OrderID: 21, UserID: 7, Total: decimal.RequireFromString("2.99")},
	}

	mocks.users.EXPECT().
		FindUserByUsername(ctx, "alice").
		Return(models.User{UserID: 7, Username: "alice"}, nil)
	mocks.orders.EXPECT().
		FindOrdersByUserID(ctx, int64(7)).
		Return(history, nil)

	orders, err := svc.GetOrderHistory(ctx, "alice")

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(22), orders[0].OrderID)
}

func TestOrderService_GetOrderHistory_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mocks := newTestOrderSvc(t, ctrl)
	ctx := context.Background()

	mocks.users.EXPECT().
		FindUserByUsername(ctx, "alice").
		Return(models.User{UserID: 7, Username: "alice"}, nil)
	mocks.orders.EXPECT().
		FindOrdersByUserID(ctx, int64(7)).
		Return([]models.Order{}, nil)

	orders, err := svc.GetOrderHistory(ctx, "alice")

	require.NoError(t, err)
	assert.Empty(t, orders)
}
