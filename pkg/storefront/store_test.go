package storefront_test

import (
	"context"
	"testing"

	"go-retail-pos/pkg/storefront"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedCartService struct {
	FetchCartFn  func(ctx context.Context) (storefront.Cart, error)
	AddItemFn    func(ctx context.Context, productID string, quantity int32) (storefront.Cart, error)
	UpdateItemFn func(ctx context.Context, productID string, quantity int32) (storefront.Cart, error)
	RemoveItemFn func(ctx context.Context, productID string) (storefront.Cart, error)
	ClearFn      func(ctx context.Context) (storefront.Cart, error)

	calls []string
}

func (f *scriptedCartService) FetchCart(ctx context.Context) (storefront.Cart, error) {
	f.calls = append(f.calls, "fetch")
	return f.FetchCartFn(ctx)
}

func (f *scriptedCartService) AddItem(ctx context.Context, productID string, quantity int32) (storefront.Cart, error) {
	f.calls = append(f.calls, "add")
	return f.AddItemFn(ctx, productID, quantity)
}

func (f *scriptedCartService) UpdateItem(ctx context.Context, productID string, quantity int32) (storefront.Cart, error) {
	f.calls = append(f.calls, "update")
	return f.UpdateItemFn(ctx, productID, quantity)
}

func (f *scriptedCartService) RemoveItem(ctx context.Context, productID string) (storefront.Cart, error) {
	f.calls = append(f.calls, "remove")
	return f.RemoveItemFn(ctx, productID)
}

func (f *scriptedCartService) Clear(ctx context.Context) (storefront.Cart, error) {
	f.calls = append(f.calls, "clear")
	return f.ClearFn(ctx)
}

func snapshotWith(items []storefront.CartItem, total float64, count int64) storefront.Cart {
	return storefront.Cart{UserID: "guest", Items: items, TotalAmount: total, TotalItems: count}
}

func TestCartStore_LastResponseWins(t *testing.T) {
	ctx := context.Background()

	first := snapshotWith([]storefront.CartItem{
		{ID: "c1", ProductID: "p1", Quantity: 1, UnitPrice: 10, Subtotal: 10},
	}, 10, 1)
	second := snapshotWith([]storefront.CartItem{
		{ID: "c1", ProductID: "p1", Quantity: 2, UnitPrice: 10, Subtotal: 20},
	}, 20, 2)

	responses := []storefront.Cart{first, second}
	svc := &scriptedCartService{
		AddItemFn: func(ctx context.Context, productID string, quantity int32) (storefront.Cart, error) {
			next := responses[0]
			responses = responses[1:]
			return next, nil
		},
	}
	store := storefront.NewCartStore(svc)

	require.NoError(t, store.AddItem(ctx, "p1", 1))
	assert.Equal(t, float64(10), store.TotalAmount())

	// State selalu sama persis dengan response yang paling akhir
	// resolve, tidak pernah hasil merge lokal
	require.NoError(t, store.AddItem(ctx, "p1", 1))
	assert.Equal(t, second.Items, store.Items())
	assert.Equal(t, float64(20), store.TotalAmount())
	assert.Equal(t, int64(2), store.TotalItems())
}

func TestCartStore_ZeroQuantityTranslatesToRemoval(t *testing.T) {
	ctx := context.Background()

	svc := &scriptedCartService{
		RemoveItemFn: func(ctx context.Context, productID string) (storefront.Cart, error) {
			assert.Equal(t, "p1", productID)
			return snapshotWith([]storefront.CartItem{}, 0, 0), nil
		},
		UpdateItemFn: func(ctx context.Context, productID string, quantity int32) (storefront.Cart, error) {
			t.Fatal("update dengan quantity 0 tidak boleh sampai ke service")
			return storefront.Cart{}, nil
		},
	}
	store := storefront.NewCartStore(svc)

	require.NoError(t, store.UpdateQuantity(ctx, "p1", 0))

	assert.Equal(t, []string{"remove"}, svc.calls)
	assert.Empty(t, store.Items())
	assert.Zero(t, store.TotalAmount())
}

func TestCartStore_FailureLeavesSnapshotIntact(t *testing.T) {
	ctx := context.Background()

	loaded := snapshotWith([]storefront.CartItem{
		{ID: "c1", ProductID: "p1", Quantity: 2, UnitPrice: 10, Subtotal: 20},
	}, 20, 2)

	failNext := false
	svc := &scriptedCartService{
		AddItemFn: func(ctx context.Context, productID string, quantity int32) (storefront.Cart, error) {
			if failNext {
				return storefront.Cart{}, &storefront.APIError{Kind: storefront.KindService, Message: "Insufficient product stock"}
			}
			return loaded, nil
		},
	}
	store := storefront.NewCartStore(svc)

	require.NoError(t, store.AddItem(ctx, "p1", 2))

	failNext = true
	err := store.AddItem(ctx, "p1", 99)
	require.Error(t, err)

	// Snapshot lama tetap tampil, error hanya tercatat
	assert.Equal(t, loaded.Items, store.Items())
	assert.Equal(t, float64(20), store.TotalAmount())
	assert.Equal(t, "service: Insufficient product stock", store.Err())
}

func TestCartStore_ClearTwiceIsIdempotent(t *testing.T) {
	ctx := context.Background()

	svc := &scriptedCartService{
		ClearFn: func(ctx context.Context) (storefront.Cart, error) {
			return snapshotWith([]storefront.CartItem{}, 0, 0), nil
		},
	}
	store := storefront.NewCartStore(svc)

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	assert.Empty(t, store.Items())
	assert.Empty(t, store.Err())
}

func TestCartStore_RemoveAbsentItemIsSoftFailure(t *testing.T) {
	ctx := context.Background()

	remaining := snapshotWith([]storefront.CartItem{
		{ID: "c2", ProductID: "p2", Quantity: 1, UnitPrice: 5, Subtotal: 5},
	}, 5, 1)

	svc := &scriptedCartService{
		RemoveItemFn: func(ctx context.Context, productID string) (storefront.Cart, error) {
			// Server menjawab snapshot apa adanya untuk produk absen
			return remaining, nil
		},
	}
	store := storefront.NewCartStore(svc)

	require.NoError(t, store.RemoveItem(ctx, "p-tidak-ada"))
	assert.Equal(t, remaining.Items, store.Items())
}

func TestCartStore_ValidationRejectedBeforeNetwork(t *testing.T) {
	ctx := context.Background()

	svc := &scriptedCartService{}
	store := storefront.NewCartStore(svc)

	err := store.AddItem(ctx, "", 1)
	require.Error(t, err)

	err = store.AddItem(ctx, "p1", 0)
	require.Error(t, err)

	var apiErr *storefront.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, storefront.KindValidation, apiErr.Kind)
	assert.Empty(t, svc.calls)
}

// Skenario end-to-end: tambah dua kali, lalu quantity 0 menjadi removal.
func TestCartStore_AddAddThenZeroQuantityScenario(t *testing.T) {
	ctx := context.Background()

	addResponses := []storefront.Cart{
		snapshotWith([]storefront.CartItem{{ID: "c1", ProductID: "p1", Quantity: 1, UnitPrice: 10, Subtotal: 10}}, 10, 1),
		snapshotWith([]storefront.CartItem{{ID: "c1", ProductID: "p1", Quantity: 2, UnitPrice: 10, Subtotal: 20}}, 20, 2),
	}
	svc := &scriptedCartService{
		AddItemFn: func(ctx context.Context, productID string, quantity int32) (storefront.Cart, error) {
			next := addResponses[0]
			addResponses = addResponses[1:]
			return next, nil
		},
		RemoveItemFn: func(ctx context.Context, productID string) (storefront.Cart, error) {
			return snapshotWith([]storefront.CartItem{}, 0, 0), nil
		},
	}
	store := storefront.NewCartStore(svc)

	require.NoError(t, store.AddItem(ctx, "p1", 1))
	require.NoError(t, store.AddItem(ctx, "p1", 1))
	assert.Equal(t, float64(20), store.TotalAmount())

	require.NoError(t, store.UpdateQuantity(ctx, "p1", 0))

	assert.Equal(t, []string{"add", "add", "remove"}, svc.calls)
	assert.Empty(t, store.Items())
	assert.Zero(t, store.TotalAmount())
}
