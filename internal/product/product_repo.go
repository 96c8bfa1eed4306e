package product

import (
	"context"
	"database/sql"

	"go-retail-pos/internal/shared/database/dbgen"

	"github.com/google/uuid"
)

//go:generate mockgen -source=product_repo.go -destination=../mock/product/product_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx dbgen.DBTX) Repository

	Create(ctx context.Context, arg dbgen.CreateProductParams) (dbgen.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (dbgen.Product, error)
	List(ctx context.Context, arg dbgen.ListProductsParams) ([]dbgen.ListProductsRow, error)
	Update(ctx context.Context, arg dbgen.UpdateProductParams) (dbgen.Product, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	DecrementStock(ctx context.Context, arg dbgen.DecrementProductStockParams) (dbgen.Product, error)
	IncrementStock(ctx context.Context, arg dbgen.IncrementProductStockParams) (dbgen.Product, error)
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

func (r *repository) Create(ctx context.Context, arg dbgen.CreateProductParams) (dbgen.Product, error) {
	return r.queries.CreateProduct(ctx, arg)
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (dbgen.Product, error) {
	return r.queries.GetProductByID(ctx, id)
}

func (r *repository) List(ctx context.Context, arg dbgen.ListProductsParams) ([]dbgen.ListProductsRow, error) {
	return r.queries.ListProducts(ctx, arg)
}

func (r *repository) Update(ctx context.Context, arg dbgen.UpdateProductParams) (dbgen.Product, error) {
	return r.queries.UpdateProduct(ctx, arg)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.queries.DeleteProduct(ctx, id)
}

func (r *repository) DecrementStock(ctx context.Context, arg dbgen.DecrementProductStockParams) (dbgen.Product, error) {
	return r.queries.DecrementProductStock(ctx, arg)
}

func (r *repository) IncrementStock(ctx context.Context, arg dbgen.IncrementProductStockParams) (dbgen.Product, error) {
	return r.queries.IncrementProductStock(ctx, arg)
}
