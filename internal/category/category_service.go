package category

import (
	"context"
	"database/sql"

	"go-retail-pos/internal/shared/database/dbgen"
	"go-retail-pos/internal/shared/database/helper"

	"github.com/google/uuid"
)

//go:generate mockgen -source=category_service.go -destination=../mock/category/category_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateCategoryRequest) (CategoryResponse, error)
	GetByID(ctx context.Context, categoryID string) (CategoryResponse, error)
	List(ctx context.Context) ([]CategoryResponse, error)
	Update(ctx context.Context, categoryID string, req UpdateCategoryRequest) (CategoryResponse, error)
	Delete(ctx context.Context, categoryID string) error
}

type service struct {
	repo Repository
}

func NewService(r Repository) Service {
	return &service{repo: r}
}

func (s *service) Create(ctx context.Context, req CreateCategoryRequest) (CategoryResponse, error) {
	cat, err := s.repo.Create(ctx, dbgen.CreateCategoryParams{
		Name:        req.Name,
		Description: helper.StringToNull(req.Description),
	})
	if err != nil {
		return CategoryResponse{}, err
	}

	return toCategoryResponse(cat), nil
}

func (s *service) GetByID(ctx context.Context, categoryID string) (CategoryResponse, error) {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return CategoryResponse{}, ErrInvalidCategoryID
	}

	cat, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return CategoryResponse{}, ErrCategoryNotFound
		}
		return CategoryResponse{}, err
	}

	return toCategoryResponse(cat), nil
}

func (s *service) List(ctx context.Context) ([]CategoryResponse, error) {
	cats, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CategoryResponse, 0, len(cats))
	for _, cat := range cats {
		out = append(out, toCategoryResponse(cat))
	}

	return out, nil
}

func (s *service) Update(ctx context.Context, categoryID string, req UpdateCategoryRequest) (CategoryResponse, error) {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return CategoryResponse{}, ErrInvalidCategoryID
	}

	// Partial update: field yang tidak dikirim memakai nilai lama
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return CategoryResponse{}, ErrCategoryNotFound
		}
		return CategoryResponse{}, err
	}

	name := existing.Name
	if req.Name != nil {
		name = *req.Name
	}

	description := existing.Description
	if req.Description != nil {
		description = helper.StringToNull(req.Description)
	}

	cat, err := s.repo.Update(ctx, dbgen.UpdateCategoryParams{
		ID:          id,
		Name:        name,
		Description: description,
	})
	if err != nil {
		return CategoryResponse{}, err
	}

	return toCategoryResponse(cat), nil
}

func (s *service) Delete(ctx context.Context, categoryID string) error {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return ErrInvalidCategoryID
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

func toCategoryResponse(c dbgen.Category) CategoryResponse {
	var description *string
	if c.Description.Valid {
		description = &c.Description.String
	}

	return CategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: description,
	}
}
