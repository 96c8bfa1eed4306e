package storefront

import (
	"context"
	"sync"
)

// CartStore adalah satu-satunya pemilik snapshot cart di sisi client.
// Setiap mutasi adalah round trip; state diganti utuh oleh response
// yang paling akhir resolve ("last response wins", tanpa antrean dan
// tanpa pembatalan request).
type CartStore struct {
	mu sync.Mutex

	service CartService

	items       []CartItem
	totalAmount float64
	totalItems  int64
	err         string
}

func NewCartStore(service CartService) *CartStore {
	return &CartStore{
		service: service,
		items:   []CartItem{},
	}
}

// ========================
// read access
// ========================

func (s *CartStore) Items() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *CartStore) TotalAmount() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalAmount
}

func (s *CartStore) TotalItems() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalItems
}

// Err mengembalikan pesan error mutasi terakhir; kosong berarti sukses.
func (s *CartStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// IsEmpty dipakai Checkout untuk syarat masuk.
func (s *CartStore) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) == 0
}

// ========================
// mutations
// ========================

// apply mengganti state utuh dengan snapshot server; tidak pernah
// melakukan merge lokal.
func (s *CartStore) apply(cart Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := cart.Items
	if items == nil {
		items = []CartItem{}
	}
	s.items = items
	s.totalAmount = cart.TotalAmount
	s.totalItems = cart.TotalItems
	s.err = ""
}

// fail mencatat pesan error dan membiarkan snapshot lama tetap tampil
// (stale-but-valid).
func (s *CartStore) fail(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err.Error()
	return err
}

func (s *CartStore) Fetch(ctx context.Context) error {
	cart, err := s.service.FetchCart(ctx)
	if err != nil {
		return s.fail(err)
	}
	s.apply(cart)
	return nil
}

func (s *CartStore) AddItem(ctx context.Context, productID string, quantity int32) error {
	if productID == "" {
		return s.fail(validationError("product id is required"))
	}
	if quantity < 1 {
		return s.fail(validationError("quantity must be at least 1"))
	}

	cart, err := s.service.AddItem(ctx, productID, quantity)
	if err != nil {
		return s.fail(err)
	}
	s.apply(cart)
	return nil
}

// UpdateQuantity menerjemahkan quantity <= 0 menjadi removal; update
// dengan quantity 0 tidak pernah dikirim ke server.
func (s *CartStore) UpdateQuantity(ctx context.Context, productID string, quantity int32) error {
	if productID == "" {
		return s.fail(validationError("product id is required"))
	}
	if quantity <= 0 {
		return s.RemoveItem(ctx, productID)
	}

	cart, err := s.service.UpdateItem(ctx, productID, quantity)
	if err != nil {
		return s.fail(err)
	}
	s.apply(cart)
	return nil
}

// RemoveItem untuk produk yang sudah tidak ada bukan kegagalan fatal;
// server menjawab snapshot apa adanya.
func (s *CartStore) RemoveItem(ctx context.Context, productID string) error {
	if productID == "" {
		return s.fail(validationError("product id is required"))
	}

	cart, err := s.service.RemoveItem(ctx, productID)
	if err != nil {
		return s.fail(err)
	}
	s.apply(cart)
	return nil
}

// Clear aman dipanggil pada cart yang sudah kosong.
func (s *CartStore) Clear(ctx context.Context) error {
	cart, err := s.service.Clear(ctx)
	if err != nil {
		return s.fail(err)
	}
	s.apply(cart)
	return nil
}
