package user_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	mock "go-retail-pos/internal/mock/user"
	"go-retail-pos/internal/shared/database/dbgen"
	"go-retail-pos/internal/shared/database/helper"
	"go-retail-pos/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUserService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(repo)
	ctx := context.Background()

	t.Run("success_create", func(t *testing.T) {
		repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(dbgen.User{
				ID:    uuid.New(),
				Email: "kasir@example.com",
				Name:  "Kasir Satu",
				Role:  "CASHIER",
			}, nil)

		res, err := svc.Create(ctx, user.CreateUserRequest{
			Email:    "kasir@example.com",
			Name:     "Kasir Satu",
			Password: "password123",
			Role:     "CASHIER",
		})

		assert.NoError(t, err)
		assert.Equal(t, "CASHIER", res.Role)
	})

	t.Run("error_duplicate_email", func(t *testing.T) {
		repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(dbgen.User{}, errors.New("pq: duplicate key value"))

		_, err := svc.Create(ctx, user.CreateUserRequest{
			Email:    "kasir@example.com",
			Name:     "Kasir Satu",
			Password: "password123",
			Role:     "CASHIER",
		})

		assert.ErrorIs(t, err, user.ErrEmailAlreadyUsed)
	})
}

func TestUserService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(repo)
	ctx := context.Background()

	t.Run("success_partial_update_keeps_existing_role", func(t *testing.T) {
		userID := uuid.New()

		repo.EXPECT().
			GetByID(ctx, userID).
			Return(dbgen.User{ID: userID, Name: "Old Name", Role: "CASHIER"}, nil)

		repo.EXPECT().
			Update(ctx, dbgen.UpdateUserParams{
				ID:   userID,
				Name: "New Name",
				Role: "CASHIER",
			}).
			Return(dbgen.User{ID: userID, Name: "New Name", Role: "CASHIER", CreatedAt: time.Now()}, nil)

		res, err := svc.Update(ctx, userID.String(), user.UpdateUserRequest{
			Name: helper.StringPtr("New Name"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "New Name", res.Name)
		assert.Equal(t, "CASHIER", res.Role)
	})

	t.Run("error_invalid_user_id", func(t *testing.T) {
		_, err := svc.Update(ctx, "invalid-uuid", user.UpdateUserRequest{
			Name: helper.StringPtr("Test"),
		})

		assert.ErrorIs(t, err, user.ErrInvalidUserID)
	})

	t.Run("error_user_not_found", func(t *testing.T) {
		userID := uuid.New()

		repo.EXPECT().
			GetByID(ctx, userID).
			Return(dbgen.User{}, sql.ErrNoRows)

		_, err := svc.Update(ctx, userID.String(), user.UpdateUserRequest{
			Name: helper.StringPtr("Test"),
		})

		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(repo)
	ctx := context.Background()

	t.Run("success_delete", func(t *testing.T) {
		userID := uuid.New()

		repo.EXPECT().Delete(ctx, userID).Return(int64(1), nil)

		assert.NoError(t, svc.Delete(ctx, userID.String()))
	})

	t.Run("error_delete_missing_user", func(t *testing.T) {
		userID := uuid.New()

		repo.EXPECT().Delete(ctx, userID).Return(int64(0), nil)

		assert.ErrorIs(t, svc.Delete(ctx, userID.String()), user.ErrUserNotFound)
	})
}
