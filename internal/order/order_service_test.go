package order_test

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	autherrors "go-retail-pos/internal/auth/errors"
	"go-retail-pos/internal/cart"
	cartMock "go-retail-pos/internal/mock/cart"
	orderMock "go-retail-pos/internal/mock/order"
	outboxMock "go-retail-pos/internal/mock/outbox"
	productMock "go-retail-pos/internal/mock/product"
	"go-retail-pos/internal/order"
	"go-retail-pos/internal/shared/database/dbgen"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type checkoutFixture struct {
	db       *sql.DB
	dbMock   sqlmock.Sqlmock
	orders   *orderMock.MockRepository
	carts    *cartMock.MockService
	products *productMock.MockRepository
	outbox   *outboxMock.MockRepository
	svc      order.Service
}

func newCheckoutFixture(t *testing.T, ctrl *gomock.Controller) *checkoutFixture {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := &checkoutFixture{
		db:       db,
		dbMock:   dbMock,
		orders:   orderMock.NewMockRepository(ctrl),
		carts:    cartMock.NewMockService(ctrl),
		products: productMock.NewMockRepository(ctrl),
		outbox:   outboxMock.NewMockRepository(ctrl),
	}
	f.svc = order.NewService(order.Deps{
		DB:       db,
		Orders:   f.orders,
		Carts:    f.carts,
		Products: f.products,
		Outbox:   f.outbox,
	})

	f.orders.EXPECT().WithTx(gomock.Any()).Return(f.orders).AnyTimes()
	f.products.EXPECT().WithTx(gomock.Any()).Return(f.products).AnyTimes()
	f.outbox.EXPECT().WithTx(gomock.Any()).Return(f.outbox).AnyTimes()

	return f
}

func TestOrderService_Checkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	t.Run("success_cash_checkout_completes_immediately", func(t *testing.T) {
		f := newCheckoutFixture(t, ctrl)

		productID := uuid.New()
		orderID := uuid.New()

		f.carts.EXPECT().
			Snapshot(ctx, "u-1").
			Return(cart.SnapshotResponse{
				UserID: "u-1",
				Items: []cart.CartItemResponse{
					{ProductID: productID.String(), ProductName: "Kopi Susu", Quantity: 2, UnitPrice: 15000, Subtotal: 30000},
				},
				TotalAmount: 30000,
				TotalItems:  2,
			}, nil)

		f.dbMock.ExpectBegin()
		f.dbMock.ExpectCommit()

		f.orders.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg dbgen.CreateOrderParams) (dbgen.Order, error) {
				assert.True(t, strings.HasPrefix(arg.OrderNumber, "POS-"))
				assert.Equal(t, "u-1", arg.UserKey)
				assert.Equal(t, order.StatusCompleted, arg.Status)
				assert.Equal(t, "cash", arg.PaymentMethod)
				assert.Equal(t, "30000", arg.TotalAmount)
				return dbgen.Order{
					ID:            orderID,
					OrderNumber:   arg.OrderNumber,
					UserKey:       arg.UserKey,
					Status:        arg.Status,
					PaymentMethod: arg.PaymentMethod,
					TotalAmount:   arg.TotalAmount,
				}, nil
			})

		f.products.EXPECT().
			DecrementStock(ctx, dbgen.DecrementProductStockParams{ID: productID, Quantity: 2}).
			Return(dbgen.Product{ID: productID, Name: "Kopi Susu", Price: "15000", Stock: 8}, nil)

		f.orders.EXPECT().
			CreateItem(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg dbgen.CreateOrderItemParams) error {
				assert.Equal(t, orderID, arg.OrderID)
				assert.Equal(t, "Kopi Susu", arg.NameSnapshot)
				assert.Equal(t, "15000", arg.UnitPrice)
				assert.Equal(t, "30000", arg.TotalPrice)
				return nil
			})

		f.outbox.EXPECT().
			CreateOutboxEvent(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg dbgen.CreateOutboxEventParams) error {
				assert.Equal(t, "order", arg.AggregateType)
				assert.Equal(t, orderID, arg.AggregateID)
				assert.Equal(t, order.EventOrderCreated, arg.EventType)
				return nil
			})

		f.orders.EXPECT().
			GetItems(ctx, orderID).
			Return([]dbgen.OrderItem{
				{ID: uuid.New(), OrderID: orderID, ProductID: productID, NameSnapshot: "Kopi Susu", UnitPrice: "15000", Quantity: 2, TotalPrice: "30000"},
			}, nil)

		result, err := f.svc.Checkout(ctx, order.CheckoutRequest{
			UserID:        "u-1",
			PaymentMethod: "cash",
		})

		assert.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, result.Status)
		assert.Equal(t, float64(30000), result.TotalAmount)
		assert.Len(t, result.Items, 1)
		assert.NoError(t, f.dbMock.ExpectationsWereMet())
	})

	t.Run("error_empty_cart", func(t *testing.T) {
		f := newCheckoutFixture(t, ctrl)

		f.carts.EXPECT().
			Snapshot(ctx, "u-1").
			Return(cart.SnapshotResponse{UserID: "u-1", Items: []cart.CartItemResponse{}}, nil)

		_, err := f.svc.Checkout(ctx, order.CheckoutRequest{
			UserID:        "u-1",
			PaymentMethod: "cash",
		})

		assert.ErrorIs(t, err, order.ErrCartEmpty)
	})

	t.Run("error_card_not_supported", func(t *testing.T) {
		f := newCheckoutFixture(t, ctrl)

		// Cart tidak boleh disentuh sama sekali
		_, err := f.svc.Checkout(ctx, order.CheckoutRequest{
			UserID:        "u-1",
			PaymentMethod: "card",
		})

		assert.ErrorIs(t, err, order.ErrPaymentMethodNotSupported)
	})

	t.Run("error_stock_raced_out_rolls_back", func(t *testing.T) {
		f := newCheckoutFixture(t, ctrl)

		productID := uuid.New()

		f.carts.EXPECT().
			Snapshot(ctx, "u-1").
			Return(cart.SnapshotResponse{
				UserID: "u-1",
				Items: []cart.CartItemResponse{
					{ProductID: productID.String(), Quantity: 5, UnitPrice: 10000},
				},
				TotalAmount: 50000,
			}, nil)

		f.dbMock.ExpectBegin()
		f.dbMock.ExpectRollback()

		f.orders.EXPECT().
			Create(ctx, gomock.Any()).
			Return(dbgen.Order{ID: uuid.New(), UserKey: "u-1"}, nil)

		f.products.EXPECT().
			DecrementStock(ctx, dbgen.DecrementProductStockParams{ID: productID, Quantity: 5}).
			Return(dbgen.Product{}, sql.ErrNoRows)

		_, err := f.svc.Checkout(ctx, order.CheckoutRequest{
			UserID:        "u-1",
			PaymentMethod: "cash",
		})

		assert.ErrorIs(t, err, order.ErrInsufficientStock)
		assert.NoError(t, f.dbMock.ExpectationsWereMet())
	})
}

func TestOrderService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	t.Run("success_cancel_restores_stock", func(t *testing.T) {
		f := newCheckoutFixture(t, ctrl)

		orderID := uuid.New()
		productID := uuid.New()

		f.dbMock.ExpectBegin()
		f.dbMock.ExpectCommit()

		f.orders.EXPECT().
			GetByID(ctx, orderID).
			Return(dbgen.Order{ID: orderID, UserKey: "u-1", Status: order.StatusPending}, nil)

		f.orders.EXPECT().
			GetItems(ctx, orderID).
			Return([]dbgen.OrderItem{
				{OrderID: orderID, ProductID: productID, Quantity: 3},
			}, nil)

		f.products.EXPECT().
			IncrementStock(ctx, dbgen.IncrementProductStockParams{ID: productID, Quantity: 3}).
			Return(dbgen.Product{ID: productID, Stock: 13}, nil)

		f.orders.EXPECT().
			UpdateStatus(ctx, dbgen.UpdateOrderStatusParams{ID: orderID, Status: order.StatusCancelled}).
			Return(dbgen.Order{ID: orderID, UserKey: "u-1", Status: order.StatusCancelled}, nil)

		result, err := f.svc.Cancel(ctx, orderID.String(), "u-1", false)

		assert.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, result.Status)
		assert.NoError(t, f.dbMock.ExpectationsWereMet())
	})

	t.Run("error_cancel_completed_order", func(t *testing.T) {
		f := newCheckoutFixture(t, ctrl)

		orderID := uuid.New()

		f.dbMock.ExpectBegin()
		f.dbMock.ExpectRollback()

		f.orders.EXPECT().
			GetByID(ctx, orderID).
			Return(dbgen.Order{ID: orderID, UserKey: "u-1", Status: order.StatusCompleted}, nil)

		_, err := f.svc.Cancel(ctx, orderID.String(), "u-1", false)

		assert.ErrorIs(t, err, order.ErrCannotCancel)
	})

	t.Run("error_cancel_order_milik_user_lain", func(t *testing.T) {
		f := newCheckoutFixture(t, ctrl)

		orderID := uuid.New()

		f.dbMock.ExpectBegin()
		f.dbMock.ExpectRollback()

		f.orders.EXPECT().
			GetByID(ctx, orderID).
			Return(dbgen.Order{ID: orderID, UserKey: "u-1", Status: order.StatusPending}, nil)

		_, err := f.svc.Cancel(ctx, orderID.String(), "u-2", false)

		assert.ErrorIs(t, err, autherrors.ErrForbidden)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	t.Run("error_final_status_cannot_change", func(t *testing.T) {
		f := newCheckoutFixture(t, ctrl)

		orderID := uuid.New()

		f.dbMock.ExpectBegin()
		f.dbMock.ExpectRollback()

		f.orders.EXPECT().
			GetByID(ctx, orderID).
			Return(dbgen.Order{ID: orderID, Status: order.StatusCancelled}, nil)

		_, err := f.svc.UpdateStatus(ctx, orderID.String(), order.StatusCompleted)

		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})

	t.Run("success_pending_to_completed", func(t *testing.T) {
		f := newCheckoutFixture(t, ctrl)

		orderID := uuid.New()

		f.dbMock.ExpectBegin()
		f.dbMock.ExpectCommit()

		f.orders.EXPECT().
			GetByID(ctx, orderID).
			Return(dbgen.Order{ID: orderID, Status: order.StatusPending}, nil)

		f.orders.EXPECT().
			UpdateStatus(ctx, dbgen.UpdateOrderStatusParams{ID: orderID, Status: order.StatusCompleted}).
			Return(dbgen.Order{ID: orderID, Status: order.StatusCompleted}, nil)

		result, err := f.svc.UpdateStatus(ctx, orderID.String(), order.StatusCompleted)

		assert.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, result.Status)
	})
}
