package cart

import (
	"context"
	"database/sql"
	"log"

	"go-retail-pos/internal/shared/database/dbgen"
	"go-retail-pos/internal/shared/database/helper"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductReader adalah potongan kecil dari product.Repository
// yang dibutuhkan cart untuk validasi harga & stok.
type ProductReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (dbgen.Product, error)
}

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	Snapshot(ctx context.Context, userKey string) (SnapshotResponse, error)
	AddItem(ctx context.Context, req AddItemRequest) (SnapshotResponse, error)
	UpdateItem(ctx context.Context, req UpdateItemRequest) (SnapshotResponse, error)
	RemoveItem(ctx context.Context, req RemoveItemRequest) (SnapshotResponse, error)
	Clear(ctx context.Context, userKey string) (SnapshotResponse, error)
}

type service struct {
	repo     Repository
	products ProductReader
	validate *validator.Validate
	db       *sql.DB
	cache    *SnapshotCache
}

// NewService menerima cache opsional (nil = tanpa cache, dipakai di test).
func NewService(db *sql.DB, r Repository, products ProductReader, cache *SnapshotCache) Service {
	return &service{
		db:       db,
		repo:     r,
		products: products,
		validate: validator.New(),
		cache:    cache,
	}
}

// ========================
// helpers
// ========================

func (s *service) parseProductID(productID string) (uuid.UUID, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return uuid.Nil, ErrProductNotFound
	}
	return id, nil
}

func getOrCreateCart(ctx context.Context, repo Repository, userKey string) (uuid.UUID, error) {
	cart, err := repo.GetByUserKey(ctx, userKey)
	if err == nil {
		return cart.ID, nil
	}
	if err != sql.ErrNoRows {
		return uuid.Nil, err
	}

	cart, err = repo.CreateCart(ctx, userKey)
	if err != nil {
		return uuid.Nil, err
	}
	return cart.ID, nil
}

// buildSnapshot menghitung total di sisi server; client tidak pernah
// menghitung ulang totalAmount sendiri.
func (s *service) buildSnapshot(ctx context.Context, repo Repository, userKey string) (SnapshotResponse, error) {
	snapshot := SnapshotResponse{
		UserID: userKey,
		Items:  []CartItemResponse{},
	}

	cart, err := repo.GetByUserKey(ctx, userKey)
	if err != nil {
		if err == sql.ErrNoRows {
			// Belum ada cart = snapshot kosong
			return snapshot, nil
		}
		return SnapshotResponse{}, err
	}

	rows, err := repo.GetItems(ctx, cart.ID)
	if err != nil {
		return SnapshotResponse{}, err
	}

	total := decimal.Zero
	var totalItems int64
	for _, row := range rows {
		unitPrice := helper.NumericToDecimal(row.UnitPrice)
		subtotal := unitPrice.Mul(decimal.NewFromInt32(row.Quantity))
		total = total.Add(subtotal)
		totalItems += int64(row.Quantity)

		snapshot.Items = append(snapshot.Items, CartItemResponse{
			ID:          row.ID.String(),
			ProductID:   row.ProductID.String(),
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			UnitPrice:   unitPrice.InexactFloat64(),
			Subtotal:    subtotal.InexactFloat64(),
		})
	}

	snapshot.TotalAmount = total.InexactFloat64()
	snapshot.TotalItems = totalItems

	return snapshot, nil
}

func (s *service) refreshCache(ctx context.Context, snapshot SnapshotResponse) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, snapshot.UserID, snapshot); err != nil {
		log.Printf("cart snapshot cache set failed: %v", err)
	}
}

// ========================
// operations
// ========================

func (s *service) Snapshot(ctx context.Context, userKey string) (SnapshotResponse, error) {
	if userKey == "" {
		return SnapshotResponse{}, ErrInvalidUserKey
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, userKey); err == nil {
			return *cached, nil
		}
	}

	snapshot, err := s.buildSnapshot(ctx, s.repo, userKey)
	if err != nil {
		return SnapshotResponse{}, err
	}

	s.refreshCache(ctx, snapshot)

	return snapshot, nil
}

func (s *service) AddItem(ctx context.Context, req AddItemRequest) (SnapshotResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return SnapshotResponse{}, mapValidationError(err)
	}

	pid, err := s.parseProductID(req.ProductID)
	if err != nil {
		return SnapshotResponse{}, err
	}

	// 1. Validasi produk & stok sebelum menyentuh cart
	product, err := s.products.GetByID(ctx, pid)
	if err != nil {
		if err == sql.ErrNoRows {
			return SnapshotResponse{}, ErrProductNotFound
		}
		return SnapshotResponse{}, err
	}
	if !product.IsActive {
		return SnapshotResponse{}, ErrProductInactive
	}
	if product.Stock < req.Quantity {
		return SnapshotResponse{}, ErrInsufficientStock
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SnapshotResponse{}, err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	// 2. Get or create cart di dalam tx
	cartID, err := getOrCreateCart(ctx, repo, req.UserID)
	if err != nil {
		return SnapshotResponse{}, err
	}

	// 3. Insert / increment item; harga mengikuti harga produk saat ini
	if _, err := repo.AddItem(ctx, dbgen.AddCartItemParams{
		CartID:    cartID,
		ProductID: pid,
		Quantity:  req.Quantity,
		UnitPrice: product.Price,
	}); err != nil {
		return SnapshotResponse{}, err
	}

	// 4. Snapshot segar dari state dalam tx
	snapshot, err := s.buildSnapshot(ctx, repo, req.UserID)
	if err != nil {
		return SnapshotResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SnapshotResponse{}, err
	}

	s.refreshCache(ctx, snapshot)

	return snapshot, nil
}

func (s *service) UpdateItem(ctx context.Context, req UpdateItemRequest) (SnapshotResponse, error) {
	// quantity <= 0 tidak pernah disimpan: dieksekusi sebagai removal
	if req.Quantity <= 0 {
		return s.RemoveItem(ctx, RemoveItemRequest{
			UserID:    req.UserID,
			ProductID: req.ProductID,
		})
	}

	if err := s.validate.Struct(req); err != nil {
		return SnapshotResponse{}, mapValidationError(err)
	}

	pid, err := s.parseProductID(req.ProductID)
	if err != nil {
		return SnapshotResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SnapshotResponse{}, err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	cart, err := repo.GetByUserKey(ctx, req.UserID)
	if err != nil {
		if err == sql.ErrNoRows {
			// Tidak ada cart = tidak ada yang diupdate; kembalikan snapshot kosong
			return SnapshotResponse{UserID: req.UserID, Items: []CartItemResponse{}}, nil
		}
		return SnapshotResponse{}, err
	}

	_, err = repo.UpdateQty(ctx, dbgen.UpdateCartItemQtyParams{
		CartID:    cart.ID,
		ProductID: pid,
		Quantity:  req.Quantity,
	})
	if err != nil && err != sql.ErrNoRows {
		// Item tidak ada diperlakukan sebagai soft no-op
		return SnapshotResponse{}, err
	}

	snapshot, err := s.buildSnapshot(ctx, repo, req.UserID)
	if err != nil {
		return SnapshotResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SnapshotResponse{}, err
	}

	s.refreshCache(ctx, snapshot)

	return snapshot, nil
}

func (s *service) RemoveItem(ctx context.Context, req RemoveItemRequest) (SnapshotResponse, error) {
	if req.UserID == "" {
		return SnapshotResponse{}, ErrInvalidUserKey
	}

	pid, err := s.parseProductID(req.ProductID)
	if err != nil {
		return SnapshotResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SnapshotResponse{}, err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)

	cart, err := repo.GetByUserKey(ctx, req.UserID)
	if err != nil {
		if err == sql.ErrNoRows {
			return SnapshotResponse{UserID: req.UserID, Items: []CartItemResponse{}}, nil
		}
		return SnapshotResponse{}, err
	}

	// Item yang tidak ada bukan error: remove bersifat soft no-op
	if _, err := repo.DeleteItem(ctx, cart.ID, pid); err != nil {
		return SnapshotResponse{}, err
	}

	snapshot, err := s.buildSnapshot(ctx, repo, req.UserID)
	if err != nil {
		return SnapshotResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SnapshotResponse{}, err
	}

	s.refreshCache(ctx, snapshot)

	return snapshot, nil
}

func (s *service) Clear(ctx context.Context, userKey string) (SnapshotResponse, error) {
	if userKey == "" {
		return SnapshotResponse{}, ErrInvalidUserKey
	}

	empty := SnapshotResponse{UserID: userKey, Items: []CartItemResponse{}}

	cart, err := s.repo.GetByUserKey(ctx, userKey)
	if err != nil {
		if err == sql.ErrNoRows {
			// Clear pada cart kosong tetap sukses (idempotent)
			return empty, nil
		}
		return SnapshotResponse{}, err
	}

	if err := s.repo.DeleteAllItems(ctx, cart.ID); err != nil {
		return SnapshotResponse{}, err
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, userKey); err != nil {
			log.Printf("cart snapshot cache delete failed: %v", err)
		}
	}

	return empty, nil
}
