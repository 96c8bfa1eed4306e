package cart

import (
	"context"
	"database/sql"

	"go-retail-pos/internal/shared/database/dbgen"

	"github.com/google/uuid"
)

//go:generate mockgen -source=cart_repo.go -destination=../mock/cart/cart_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx dbgen.DBTX) Repository

	CreateCart(ctx context.Context, userKey string) (dbgen.Cart, error)
	GetByUserKey(ctx context.Context, userKey string) (dbgen.Cart, error)

	Count(ctx context.Context, cartID uuid.UUID) (int64, error)
	GetItems(ctx context.Context, cartID uuid.UUID) ([]dbgen.GetCartItemsRow, error)
	GetItemByCartAndProduct(ctx context.Context, cartID, productID uuid.UUID) (dbgen.CartItem, error)

	AddItem(ctx context.Context, arg dbgen.AddCartItemParams) (dbgen.CartItem, error)
	UpdateQty(ctx context.Context, arg dbgen.UpdateCartItemQtyParams) (dbgen.CartItem, error)

	DeleteItem(ctx context.Context, cartID, productID uuid.UUID) (int64, error)
	DeleteAllItems(ctx context.Context, cartID uuid.UUID) error
}

type repository struct {
	queries *dbgen.Queries
}

func NewRepository(q *dbgen.Queries) Repository {
	return &repository{queries: q}
}

func (r *repository) WithTx(tx dbgen.DBTX) Repository {
	if sqlTx, ok := tx.(*sql.Tx); ok {
		return &repository{
			queries: r.queries.WithTx(sqlTx),
		}
	}

	return r
}

func (r *repository) CreateCart(ctx context.Context, userKey string) (dbgen.Cart, error) {
	return r.queries.CreateCart(ctx, userKey)
}

func (r *repository) GetByUserKey(ctx context.Context, userKey string) (dbgen.Cart, error) {
	return r.queries.GetCartByUserKey(ctx, userKey)
}

func (r *repository) Count(ctx context.Context, cartID uuid.UUID) (int64, error) {
	return r.queries.CountCartItems(ctx, cartID)
}

func (r *repository) GetItems(ctx context.Context, cartID uuid.UUID) ([]dbgen.GetCartItemsRow, error) {
	return r.queries.GetCartItems(ctx, cartID)
}

func (r *repository) GetItemByCartAndProduct(
	ctx context.Context,
	cartID, productID uuid.UUID,
) (dbgen.CartItem, error) {
	return r.queries.GetCartItemByCartAndProduct(ctx, dbgen.GetCartItemByCartAndProductParams{
		CartID:    cartID,
		ProductID: productID,
	})
}

func (r *repository) AddItem(ctx context.Context, arg dbgen.AddCartItemParams) (dbgen.CartItem, error) {
	return r.queries.AddCartItem(ctx, arg)
}

func (r *repository) UpdateQty(ctx context.Context, arg dbgen.UpdateCartItemQtyParams) (dbgen.CartItem, error) {
	return r.queries.UpdateCartItemQty(ctx, arg)
}

func (r *repository) DeleteItem(ctx context.Context, cartID, productID uuid.UUID) (int64, error) {
	return r.queries.DeleteCartItem(ctx, dbgen.DeleteCartItemParams{
		CartID:    cartID,
		ProductID: productID,
	})
}

func (r *repository) DeleteAllItems(ctx context.Context, cartID uuid.UUID) error {
	return r.queries.DeleteAllCartItems(ctx, cartID)
}
