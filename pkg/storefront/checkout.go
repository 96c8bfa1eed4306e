package storefront

import (
	"context"
	"sync"
)

// CheckoutState adalah posisi orchestrator dalam siklus checkout.
type CheckoutState string

const (
	StatePending    CheckoutState = "pending"
	StateProcessing CheckoutState = "processing"
	StateCompleted  CheckoutState = "completed"
)

const PaymentCash = "cash"

// Checkout menggerakkan transisi pending → processing → completed;
// kegagalan mengembalikan state ke pending tanpa menyentuh cart.
type Checkout struct {
	mu sync.Mutex

	store  *CartStore
	orders OrderCreator

	state CheckoutState
	order Order
	err   string
}

func NewCheckout(store *CartStore, orders OrderCreator) *Checkout {
	return &Checkout{
		store:  store,
		orders: orders,
		state:  StatePending,
	}
}

func (c *Checkout) State() CheckoutState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Order mengembalikan snapshot order hasil checkout; hanya berisi
// setelah state completed.
func (c *Checkout) Order() Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order
}

func (c *Checkout) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Confirm dipicu konfirmasi eksplisit user. Tidak ada retry otomatis:
// kegagalan menunggu konfirmasi ulang.
func (c *Checkout) Confirm(ctx context.Context, paymentMethod, notes string) (Order, error) {
	c.mu.Lock()
	if c.state != StatePending {
		c.mu.Unlock()
		return Order{}, validationError("checkout is not in pending state")
	}
	c.mu.Unlock()

	// Syarat masuk: cart tidak boleh kosong
	if c.store.IsEmpty() {
		return Order{}, c.fail(validationError("cart is empty"))
	}

	// Hanya cash yang fungsional; metode kartu tampil tapi inert
	if paymentMethod != PaymentCash {
		return Order{}, c.fail(validationError("payment method is not supported"))
	}

	c.setState(StateProcessing)

	order, err := c.orders.CreateOrder(ctx, paymentMethod, notes)
	if err != nil {
		// Rollback processing → pending; cart dibiarkan utuh
		c.setState(StatePending)
		return Order{}, c.fail(err)
	}

	// Order snapshot ditangkap dan state completed DULU, baru cart
	// dibersihkan: UI sukses dijamin sempat melihat detail order.
	c.mu.Lock()
	c.state = StateCompleted
	c.order = order
	c.err = ""
	c.mu.Unlock()

	if err := c.store.Clear(ctx); err != nil {
		// Server sudah mengosongkan cart lewat event ORDER_CREATED;
		// kegagalan clear eksplisit tidak membatalkan checkout.
		return order, nil
	}

	return order, nil
}

// Reset menyiapkan orchestrator untuk checkout berikutnya.
func (c *Checkout) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StatePending
	c.order = Order{}
	c.err = ""
}

func (c *Checkout) setState(state CheckoutState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
}

func (c *Checkout) fail(err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err.Error()
	return err
}
