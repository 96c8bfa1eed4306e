package product_test

import (
	"context"
	"database/sql"
	"testing"

	mock "go-retail-pos/internal/mock/product"
	"go-retail-pos/internal/product"
	"go-retail-pos/internal/shared/database/dbgen"
	"go-retail-pos/internal/shared/database/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestProductService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := product.NewService(repo, nil)
	ctx := context.Background()

	t.Run("success_create", func(t *testing.T) {
		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg dbgen.CreateProductParams) (dbgen.Product, error) {
				assert.Equal(t, "Kopi Susu", arg.Name)
				assert.Equal(t, "15000", arg.Price)
				return dbgen.Product{
					ID:       uuid.New(),
					Name:     arg.Name,
					Price:    arg.Price,
					Stock:    arg.Stock,
					IsActive: true,
				}, nil
			})

		res, err := svc.Create(ctx, product.CreateProductRequest{
			Name:  "Kopi Susu",
			Price: 15000,
			Stock: 50,
		})

		assert.NoError(t, err)
		assert.Equal(t, float64(15000), res.Price)
		assert.True(t, res.IsActive)
	})

	t.Run("error_invalid_category_id", func(t *testing.T) {
		_, err := svc.Create(ctx, product.CreateProductRequest{
			Name:       "Kopi Susu",
			Price:      15000,
			CategoryID: "bukan-uuid",
		})

		assert.ErrorIs(t, err, product.ErrInvalidCategoryID)
	})
}

func TestProductService_ListPublic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := product.NewService(repo, nil)
	ctx := context.Background()

	t.Run("success_list_with_total_from_window", func(t *testing.T) {
		repo.EXPECT().
			List(ctx, dbgen.ListProductsParams{
				Limit:   10,
				Offset:  0,
				Search:  helper.RawStringToNull("kopi"),
				SortBy:  "price",
				SortDir: "asc",
			}).
			Return([]dbgen.ListProductsRow{
				{ID: uuid.New(), Name: "Kopi Hitam", Price: "10000", Stock: 5, IsActive: true, TotalCount: 2},
				{ID: uuid.New(), Name: "Kopi Susu", Price: "15000", Stock: 3, IsActive: true, TotalCount: 2},
			}, nil)

		items, total, err := svc.ListPublic(ctx, product.ListPublicQuery{
			Page:    1,
			Limit:   10,
			Search:  "kopi",
			SortBy:  "price",
			SortDir: "asc",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, items, 2)
		assert.Equal(t, float64(10000), items[0].Price)
	})

	t.Run("success_empty_result", func(t *testing.T) {
		repo.EXPECT().
			List(ctx, gomock.Any()).
			Return(nil, nil)

		items, total, err := svc.ListPublic(ctx, product.ListPublicQuery{Page: 1, Limit: 10})

		assert.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, items)
	})
}

func TestProductService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := product.NewService(repo, nil)
	ctx := context.Background()

	t.Run("success_partial_update_keeps_price", func(t *testing.T) {
		productID := uuid.New()

		repo.EXPECT().
			GetByID(ctx, productID).
			Return(dbgen.Product{
				ID:    productID,
				Name:  "Kopi Susu",
				Price: "15000",
				Stock: 50,
			}, nil)

		repo.EXPECT().
			Update(ctx, dbgen.UpdateProductParams{
				ID:    productID,
				Name:  "Kopi Susu Gula Aren",
				Price: "15000",
				Stock: 50,
			}).
			Return(dbgen.Product{
				ID:    productID,
				Name:  "Kopi Susu Gula Aren",
				Price: "15000",
				Stock: 50,
			}, nil)

		res, err := svc.Update(ctx, productID.String(), product.UpdateProductRequest{
			Name: helper.StringPtr("Kopi Susu Gula Aren"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Kopi Susu Gula Aren", res.Name)
		assert.Equal(t, float64(15000), res.Price)
	})

	t.Run("error_product_not_found", func(t *testing.T) {
		productID := uuid.New()

		repo.EXPECT().
			GetByID(ctx, productID).
			Return(dbgen.Product{}, sql.ErrNoRows)

		_, err := svc.Update(ctx, productID.String(), product.UpdateProductRequest{})

		assert.ErrorIs(t, err, product.ErrProductNotFound)
	})
}

func TestProductService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := product.NewService(repo, nil)
	ctx := context.Background()

	t.Run("success_soft_delete", func(t *testing.T) {
		productID := uuid.New()

		repo.EXPECT().Delete(ctx, productID).Return(int64(1), nil)

		assert.NoError(t, svc.Delete(ctx, productID.String()))
	})

	t.Run("error_already_deleted", func(t *testing.T) {
		productID := uuid.New()

		repo.EXPECT().Delete(ctx, productID).Return(int64(0), nil)

		assert.ErrorIs(t, svc.Delete(ctx, productID.String()), product.ErrProductNotFound)
	})
}
