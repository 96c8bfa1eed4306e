package category_test

import (
	"context"
	"database/sql"
	"testing"

	"go-retail-pos/internal/category"
	mock "go-retail-pos/internal/mock/category"
	"go-retail-pos/internal/shared/database/dbgen"
	"go-retail-pos/internal/shared/database/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCategoryService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := category.NewService(repo)
	ctx := context.Background()

	t.Run("success_partial_update_keeps_description", func(t *testing.T) {
		catID := uuid.New()
		existingDesc := sql.NullString{String: "Minuman dingin", Valid: true}

		repo.EXPECT().
			GetByID(ctx, catID).
			Return(dbgen.Category{ID: catID, Name: "Minuman", Description: existingDesc}, nil)

		repo.EXPECT().
			Update(ctx, dbgen.UpdateCategoryParams{
				ID:          catID,
				Name:        "Minuman Dingin",
				Description: existingDesc,
			}).
			Return(dbgen.Category{ID: catID, Name: "Minuman Dingin", Description: existingDesc}, nil)

		res, err := svc.Update(ctx, catID.String(), category.UpdateCategoryRequest{
			Name: helper.StringPtr("Minuman Dingin"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Minuman Dingin", res.Name)
		assert.Equal(t, "Minuman dingin", *res.Description)
	})

	t.Run("error_category_not_found", func(t *testing.T) {
		catID := uuid.New()

		repo.EXPECT().
			GetByID(ctx, catID).
			Return(dbgen.Category{}, sql.ErrNoRows)

		_, err := svc.Update(ctx, catID.String(), category.UpdateCategoryRequest{
			Name: helper.StringPtr("Test"),
		})

		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	})

	t.Run("error_invalid_category_id", func(t *testing.T) {
		_, err := svc.Update(ctx, "not-a-uuid", category.UpdateCategoryRequest{})
		assert.ErrorIs(t, err, category.ErrInvalidCategoryID)
	})
}

func TestCategoryService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := category.NewService(repo)
	ctx := context.Background()

	t.Run("success_delete", func(t *testing.T) {
		catID := uuid.New()

		repo.EXPECT().Delete(ctx, catID).Return(int64(1), nil)

		assert.NoError(t, svc.Delete(ctx, catID.String()))
	})

	t.Run("error_delete_missing_category", func(t *testing.T) {
		catID := uuid.New()

		repo.EXPECT().Delete(ctx, catID).Return(int64(0), nil)

		assert.ErrorIs(t, svc.Delete(ctx, catID.String()), category.ErrCategoryNotFound)
	})
}
