package category

import (
	"context"

	"go-retail-pos/internal/shared/database/dbgen"

	"github.com/google/uuid"
)

//go:generate mockgen -source=category_repo.go -destination=../mock/category/category_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, arg dbgen.CreateCategoryParams) (dbgen.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (dbgen.Category, error)
	List(ctx context.Context) ([]dbgen.Category, error)
	Update(ctx context.Context, arg dbgen.UpdateCategoryParams) (dbgen.Category, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type repository struct {
	queries *dbgen.Queries
}

func NewRepository(q *dbgen.Queries) Repository {
	return &repository{queries: q}
}

func (r *repository) Create(ctx context.Context, arg dbgen.CreateCategoryParams) (dbgen.Category, error) {
	return r.queries.CreateCategory(ctx, arg)
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (dbgen.Category, error) {
	return r.queries.GetCategoryByID(ctx, id)
}

func (r *repository) List(ctx context.Context) ([]dbgen.Category, error) {
	return r.queries.ListCategories(ctx)
}

func (r *repository) Update(ctx context.Context, arg dbgen.UpdateCategoryParams) (dbgen.Category, error) {
	return r.queries.UpdateCategory(ctx, arg)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.queries.DeleteCategory(ctx, id)
}
