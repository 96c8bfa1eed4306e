package product

import (
	"context"
	"database/sql"
	"log"

	"go-retail-pos/internal/shared/database/dbgen"
	"go-retail-pos/internal/shared/database/helper"

	"github.com/google/uuid"
)

//go:generate mockgen -source=product_service.go -destination=../mock/product/product_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateProductRequest) (ProductResponse, error)
	GetByID(ctx context.Context, productID string) (ProductResponse, error)
	ListPublic(ctx context.Context, q ListPublicQuery) ([]ProductResponse, int64, error)
	Update(ctx context.Context, productID string, req UpdateProductRequest) (ProductResponse, error)
	Delete(ctx context.Context, productID string) error
}

type service struct {
	repo  Repository
	cache *ListCache
}

// NewService menerima cache opsional (nil = tanpa cache, dipakai di test).
func NewService(r Repository, cache *ListCache) Service {
	return &service{repo: r, cache: cache}
}

func (s *service) Create(ctx context.Context, req CreateProductRequest) (ProductResponse, error) {
	categoryID := helper.StringToNullUUID(req.CategoryID)
	if req.CategoryID != "" && !categoryID.Valid {
		return ProductResponse{}, ErrInvalidCategoryID
	}

	p, err := s.repo.Create(ctx, dbgen.CreateProductParams{
		Name:        req.Name,
		Description: helper.RawStringToNull(req.Description),
		Price:       helper.Float64ToDecimalExact(req.Price).String(),
		Stock:       req.Stock,
		CategoryID:  categoryID,
		ImageUrl:    helper.RawStringToNull(req.ImageURL),
	})
	if err != nil {
		return ProductResponse{}, err
	}

	s.invalidateListCache(ctx)

	return toProductResponse(p), nil
}

func (s *service) GetByID(ctx context.Context, productID string) (ProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return ProductResponse{}, ErrInvalidProductID
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return ProductResponse{}, ErrProductNotFound
		}
		return ProductResponse{}, err
	}

	return toProductResponse(p), nil
}

func (s *service) ListPublic(ctx context.Context, q ListPublicQuery) ([]ProductResponse, int64, error) {
	cacheKey := listCacheKey(q)

	// 1. Coba cache dulu
	if s.cache != nil {
		if items, total, err := s.cache.Get(ctx, cacheKey); err == nil {
			return items, total, nil
		}
	}

	// 2. Query database
	rows, err := s.repo.List(ctx, dbgen.ListProductsParams{
		Limit:      int32(q.Limit),
		Offset:     int32((q.Page - 1) * q.Limit),
		Search:     helper.RawStringToNull(q.Search),
		CategoryID: helper.StringToNullUUID(q.CategoryID),
		SortBy:     q.SortBy,
		SortDir:    q.SortDir,
	})
	if err != nil {
		return nil, 0, err
	}

	var total int64
	items := make([]ProductResponse, 0, len(rows))
	for _, row := range rows {
		total = row.TotalCount
		items = append(items, ProductResponse{
			ID:          row.ID.String(),
			Name:        row.Name,
			Description: row.Description.String,
			Price:       helper.NumericToFloat(row.Price),
			Stock:       row.Stock,
			CategoryID:  nullUUIDString(row.CategoryID),
			ImageURL:    row.ImageUrl.String,
			IsActive:    row.IsActive,
		})
	}

	// 3. Simpan ke cache (best effort)
	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, items, total); err != nil {
			log.Printf("product list cache set failed: %v", err)
		}
	}

	return items, total, nil
}

func (s *service) Update(ctx context.Context, productID string, req UpdateProductRequest) (ProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return ProductResponse{}, ErrInvalidProductID
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return ProductResponse{}, ErrProductNotFound
		}
		return ProductResponse{}, err
	}

	arg := dbgen.UpdateProductParams{
		ID:          id,
		Name:        existing.Name,
		Description: existing.Description,
		Price:       existing.Price,
		Stock:       existing.Stock,
		CategoryID:  existing.CategoryID,
		ImageUrl:    existing.ImageUrl,
	}

	if req.Name != nil {
		arg.Name = *req.Name
	}
	if req.Description != nil {
		arg.Description = helper.RawStringToNull(*req.Description)
	}
	if req.Price != nil {
		arg.Price = helper.Float64ToDecimalExact(*req.Price).String()
	}
	if req.Stock != nil {
		arg.Stock = *req.Stock
	}
	if req.CategoryID != nil {
		categoryID := helper.StringToNullUUID(*req.CategoryID)
		if *req.CategoryID != "" && !categoryID.Valid {
			return ProductResponse{}, ErrInvalidCategoryID
		}
		arg.CategoryID = categoryID
	}
	if req.ImageURL != nil {
		arg.ImageUrl = helper.RawStringToNull(*req.ImageURL)
	}

	p, err := s.repo.Update(ctx, arg)
	if err != nil {
		return ProductResponse{}, err
	}

	s.invalidateListCache(ctx)

	return toProductResponse(p), nil
}

func (s *service) Delete(ctx context.Context, productID string) error {
	id, err := uuid.Parse(productID)
	if err != nil {
		return ErrInvalidProductID
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	s.invalidateListCache(ctx)

	return nil
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("product list cache invalidation failed: %v", err)
	}
}

func toProductResponse(p dbgen.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description.String,
		Price:       helper.NumericToFloat(p.Price),
		Stock:       p.Stock,
		CategoryID:  nullUUIDString(p.CategoryID),
		ImageURL:    p.ImageUrl.String,
		IsActive:    p.IsActive,
	}
}

func nullUUIDString(id uuid.NullUUID) string {
	if !id.Valid {
		return ""
	}
	return id.UUID.String()
}
