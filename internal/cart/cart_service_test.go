package cart_test

import (
	"context"
	"database/sql"
	"testing"

	"go-retail-pos/internal/cart"
	cartMock "go-retail-pos/internal/mock/cart"
	"go-retail-pos/internal/shared/database/dbgen"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeProductReader struct {
	products map[uuid.UUID]dbgen.Product
}

func (f *fakeProductReader) GetByID(_ context.Context, id uuid.UUID) (dbgen.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return dbgen.Product{}, sql.ErrNoRows
	}
	return p, nil
}

func TestCartService_AddItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := cartMock.NewMockRepository(ctrl)
	productID := uuid.New()
	products := &fakeProductReader{products: map[uuid.UUID]dbgen.Product{
		productID: {ID: productID, Name: "Kopi Susu", Price: "15000", Stock: 10, IsActive: true},
	}}
	svc := cart.NewService(db, repo, products, nil)
	ctx := context.Background()

	t.Run("success_add_returns_fresh_snapshot", func(t *testing.T) {
		cartID := uuid.New()
		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()

		repo.EXPECT().
			GetByUserKey(ctx, "guest").
			Return(dbgen.Cart{ID: cartID, UserKey: "guest"}, nil)

		repo.EXPECT().
			AddItem(ctx, dbgen.AddCartItemParams{
				CartID:    cartID,
				ProductID: productID,
				Quantity:  2,
				UnitPrice: "15000",
			}).
			Return(dbgen.CartItem{CartID: cartID, ProductID: productID, Quantity: 2, UnitPrice: "15000"}, nil)

		// snapshot segar setelah mutasi
		repo.EXPECT().
			GetByUserKey(ctx, "guest").
			Return(dbgen.Cart{ID: cartID, UserKey: "guest"}, nil)
		repo.EXPECT().
			GetItems(ctx, cartID).
			Return([]dbgen.GetCartItemsRow{
				{ID: uuid.New(), ProductID: productID, ProductName: "Kopi Susu", Quantity: 2, UnitPrice: "15000"},
			}, nil)

		snapshot, err := svc.AddItem(ctx, cart.AddItemRequest{
			UserID:    "guest",
			ProductID: productID.String(),
			Quantity:  2,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(2), snapshot.TotalItems)
		assert.Equal(t, float64(30000), snapshot.TotalAmount)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("error_insufficient_stock", func(t *testing.T) {
		_, err := svc.AddItem(ctx, cart.AddItemRequest{
			UserID:    "guest",
			ProductID: productID.String(),
			Quantity:  99,
		})

		assert.ErrorIs(t, err, cart.ErrInsufficientStock)
	})

	t.Run("error_unknown_product", func(t *testing.T) {
		_, err := svc.AddItem(ctx, cart.AddItemRequest{
			UserID:    "guest",
			ProductID: uuid.NewString(),
			Quantity:  1,
		})

		assert.ErrorIs(t, err, cart.ErrProductNotFound)
	})

	// Pemanggil langsung Service (order service, consumer) tidak lewat
	// binding gin; quantity < 1 harus ditolak di layer ini juga,
	// sebelum ada call ke repo atau product reader.
	t.Run("error_zero_quantity_rejected_at_service", func(t *testing.T) {
		_, err := svc.AddItem(ctx, cart.AddItemRequest{
			UserID:    "guest",
			ProductID: productID.String(),
			Quantity:  0,
		})

		assert.ErrorIs(t, err, cart.ErrInvalidQty)
	})

	t.Run("error_negative_quantity_rejected_at_service", func(t *testing.T) {
		_, err := svc.AddItem(ctx, cart.AddItemRequest{
			UserID:    "guest",
			ProductID: productID.String(),
			Quantity:  -3,
		})

		assert.ErrorIs(t, err, cart.ErrInvalidQty)
	})

	t.Run("error_missing_user_key", func(t *testing.T) {
		_, err := svc.AddItem(ctx, cart.AddItemRequest{
			ProductID: productID.String(),
			Quantity:  1,
		})

		assert.ErrorIs(t, err, cart.ErrInvalidUserKey)
	})
}

func TestCartService_UpdateItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := cartMock.NewMockRepository(ctrl)
	svc := cart.NewService(db, repo, &fakeProductReader{}, nil)
	ctx := context.Background()

	t.Run("zero_quantity_executes_removal_not_update", func(t *testing.T) {
		cartID := uuid.New()
		productID := uuid.New()

		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()

		repo.EXPECT().
			GetByUserKey(ctx, "u-1").
			Return(dbgen.Cart{ID: cartID, UserKey: "u-1"}, nil)

		// Harus DeleteItem; UpdateQty dengan qty 0 tidak boleh dipanggil
		repo.EXPECT().
			DeleteItem(ctx, cartID, productID).
			Return(int64(1), nil)

		repo.EXPECT().
			GetByUserKey(ctx, "u-1").
			Return(dbgen.Cart{ID: cartID, UserKey: "u-1"}, nil)
		repo.EXPECT().
			GetItems(ctx, cartID).
			Return(nil, nil)

		snapshot, err := svc.UpdateItem(ctx, cart.UpdateItemRequest{
			UserID:    "u-1",
			ProductID: productID.String(),
			Quantity:  0,
		})

		assert.NoError(t, err)
		assert.Empty(t, snapshot.Items)
		assert.Zero(t, snapshot.TotalItems)
	})

	t.Run("success_update_quantity", func(t *testing.T) {
		cartID := uuid.New()
		productID := uuid.New()

		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()

		repo.EXPECT().
			GetByUserKey(ctx, "u-1").
			Return(dbgen.Cart{ID: cartID, UserKey: "u-1"}, nil)

		repo.EXPECT().
			UpdateQty(ctx, dbgen.UpdateCartItemQtyParams{
				CartID:    cartID,
				ProductID: productID,
				Quantity:  5,
			}).
			Return(dbgen.CartItem{CartID: cartID, ProductID: productID, Quantity: 5, UnitPrice: "10000"}, nil)

		repo.EXPECT().
			GetByUserKey(ctx, "u-1").
			Return(dbgen.Cart{ID: cartID, UserKey: "u-1"}, nil)
		repo.EXPECT().
			GetItems(ctx, cartID).
			Return([]dbgen.GetCartItemsRow{
				{ID: uuid.New(), ProductID: productID, ProductName: "Teh Manis", Quantity: 5, UnitPrice: "10000"},
			}, nil)

		snapshot, err := svc.UpdateItem(ctx, cart.UpdateItemRequest{
			UserID:    "u-1",
			ProductID: productID.String(),
			Quantity:  5,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(5), snapshot.TotalItems)
		assert.Equal(t, float64(50000), snapshot.TotalAmount)
	})

	t.Run("error_missing_user_key", func(t *testing.T) {
		_, err := svc.UpdateItem(ctx, cart.UpdateItemRequest{
			ProductID: uuid.NewString(),
			Quantity:  2,
		})

		assert.ErrorIs(t, err, cart.ErrInvalidUserKey)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := cartMock.NewMockRepository(ctrl)
	svc := cart.NewService(db, repo, &fakeProductReader{}, nil)
	ctx := context.Background()

	t.Run("remove_absent_item_is_soft_noop", func(t *testing.T) {
		cartID := uuid.New()
		productID := uuid.New()
		otherProduct := uuid.New()

		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()

		repo.EXPECT().
			GetByUserKey(ctx, "u-1").
			Return(dbgen.Cart{ID: cartID, UserKey: "u-1"}, nil)

		// 0 baris terhapus, tetap bukan error
		repo.EXPECT().
			DeleteItem(ctx, cartID, productID).
			Return(int64(0), nil)

		repo.EXPECT().
			GetByUserKey(ctx, "u-1").
			Return(dbgen.Cart{ID: cartID, UserKey: "u-1"}, nil)
		repo.EXPECT().
			GetItems(ctx, cartID).
			Return([]dbgen.GetCartItemsRow{
				{ID: uuid.New(), ProductID: otherProduct, ProductName: "Roti Bakar", Quantity: 1, UnitPrice: "20000"},
			}, nil)

		snapshot, err := svc.RemoveItem(ctx, cart.RemoveItemRequest{
			UserID:    "u-1",
			ProductID: productID.String(),
		})

		assert.NoError(t, err)
		assert.Len(t, snapshot.Items, 1)
		assert.Equal(t, float64(20000), snapshot.TotalAmount)
	})
}

func TestCartService_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := cartMock.NewMockRepository(ctrl)
	svc := cart.NewService(db, repo, &fakeProductReader{}, nil)
	ctx := context.Background()

	t.Run("clear_without_cart_still_succeeds", func(t *testing.T) {
		repo.EXPECT().
			GetByUserKey(ctx, "guest").
			Return(dbgen.Cart{}, sql.ErrNoRows)

		snapshot, err := svc.Clear(ctx, "guest")

		assert.NoError(t, err)
		assert.Empty(t, snapshot.Items)
		assert.Zero(t, snapshot.TotalAmount)
	})

	t.Run("clear_twice_is_idempotent", func(t *testing.T) {
		cartID := uuid.New()

		repo.EXPECT().
			GetByUserKey(ctx, "u-1").
			Return(dbgen.Cart{ID: cartID, UserKey: "u-1"}, nil).
			Times(2)
		repo.EXPECT().
			DeleteAllItems(ctx, cartID).
			Return(nil).
			Times(2)

		first, err := svc.Clear(ctx, "u-1")
		assert.NoError(t, err)

		second, err := svc.Clear(ctx, "u-1")
		assert.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
