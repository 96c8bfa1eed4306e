package user

import (
	"context"
	"database/sql"
	"time"

	"go-retail-pos/internal/shared/database/dbgen"
	"go-retail-pos/internal/shared/database/helper"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user_service.go -destination=../mock/user/user_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetByID(ctx context.Context, userID string) (UserResponse, error)
	List(ctx context.Context, q ListUsersQuery) ([]UserResponse, int64, error)
	Update(ctx context.Context, userID string, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, userID string) error
}

type service struct {
	repo Repository
}

func NewService(r Repository) Service {
	return &service{repo: r}
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	u, err := s.repo.Create(ctx, dbgen.CreateUserParams{
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hashed),
		Role:     req.Role,
	})
	if err != nil {
		// unique violation di kolom email
		return UserResponse{}, ErrEmailAlreadyUsed
	}

	return toUserResponse(u), nil
}

func (s *service) GetByID(ctx context.Context, userID string) (UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return UserResponse{}, ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return UserResponse{}, ErrUserNotFound
		}
		return UserResponse{}, err
	}

	return toUserResponse(u), nil
}

func (s *service) List(ctx context.Context, q ListUsersQuery) ([]UserResponse, int64, error) {
	search := helper.RawStringToNull(q.Search)

	total, err := s.repo.Count(ctx, search)
	if err != nil {
		return nil, 0, err
	}

	rows, err := s.repo.List(ctx, dbgen.ListUsersParams{
		Limit:  int32(q.Limit),
		Offset: int32((q.Page - 1) * q.Limit),
		Search: search,
	})
	if err != nil {
		return nil, 0, err
	}

	out := make([]UserResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, UserResponse{
			ID:        row.ID.String(),
			Email:     row.Email,
			Name:      row.Name,
			Role:      row.Role,
			CreatedAt: row.CreatedAt.Format(time.RFC3339),
		})
	}

	return out, total, nil
}

func (s *service) Update(ctx context.Context, userID string, req UpdateUserRequest) (UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return UserResponse{}, ErrInvalidUserID
	}

	// 1. Ambil user existing sebagai baseline partial update
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return UserResponse{}, ErrUserNotFound
		}
		return UserResponse{}, err
	}

	name := existing.Name
	if req.Name != nil {
		name = *req.Name
	}

	role := existing.Role
	if req.Role != nil {
		role = *req.Role
	}

	// 2. Simpan
	u, err := s.repo.Update(ctx, dbgen.UpdateUserParams{
		ID:   id,
		Name: name,
		Role: role,
	})
	if err != nil {
		return UserResponse{}, err
	}

	return toUserResponse(u), nil
}

func (s *service) Delete(ctx context.Context, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return ErrInvalidUserID
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func toUserResponse(u dbgen.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
