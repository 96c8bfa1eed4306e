package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// CartItem adalah satu baris cart dari snapshot server.
type CartItem struct {
	ID          string
	ProductID   string
	ProductName string
	Quantity    int32
	UnitPrice   float64
	Subtotal    float64
}

// UnmarshalJSON menerima dua bentuk referensi produk: productId datar
// atau objek product tertanam {id, name, price}.
func (ci *CartItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        string `json:"id"`
		ProductID string `json:"productId"`
		Product   *struct {
			ID    string  `json:"id"`
			Name  string  `json:"name"`
			Price float64 `json:"price"`
		} `json:"product"`
		ProductName string  `json:"productName"`
		Quantity    int32   `json:"quantity"`
		UnitPrice   float64 `json:"unitPrice"`
		Subtotal    float64 `json:"subtotal"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	ci.ID = raw.ID
	ci.ProductID = raw.ProductID
	ci.ProductName = raw.ProductName
	ci.Quantity = raw.Quantity
	ci.UnitPrice = raw.UnitPrice
	ci.Subtotal = raw.Subtotal

	if raw.Product != nil {
		if ci.ProductID == "" {
			ci.ProductID = raw.Product.ID
		}
		if ci.ProductName == "" {
			ci.ProductName = raw.Product.Name
		}
		if ci.UnitPrice == 0 {
			ci.UnitPrice = raw.Product.Price
		}
	}

	return nil
}

// Cart adalah snapshot kanonik dari server; client tidak pernah
// menghitung ulang totalAmount sendiri.
type Cart struct {
	UserID      string     `json:"userId"`
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"totalAmount"`
	TotalItems  int64      `json:"totalItems"`
}

// OrderItem adalah snapshot baris order saat checkout.
type OrderItem struct {
	ID           string  `json:"id"`
	ProductID    string  `json:"productId"`
	NameSnapshot string  `json:"nameSnapshot"`
	UnitPrice    float64 `json:"unitPrice"`
	Quantity     int32   `json:"quantity"`
	Subtotal     float64 `json:"subtotal"`
}

// Order adalah hasil checkout yang sudah final.
type Order struct {
	ID          string      `json:"id"`
	OrderNumber string      `json:"orderNumber"`
	UserID      string      `json:"userId"`
	Status      string      `json:"status"`
	TotalAmount float64     `json:"totalAmount"`
	Items       []OrderItem `json:"items"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// CartService adalah operasi cart yang dibutuhkan CartStore.
type CartService interface {
	FetchCart(ctx context.Context) (Cart, error)
	AddItem(ctx context.Context, productID string, quantity int32) (Cart, error)
	UpdateItem(ctx context.Context, productID string, quantity int32) (Cart, error)
	RemoveItem(ctx context.Context, productID string) (Cart, error)
	Clear(ctx context.Context) (Cart, error)
}

// OrderCreator dipakai Checkout untuk membuat order.
type OrderCreator interface {
	CreateOrder(ctx context.Context, paymentMethod, notes string) (Order, error)
}

// CartClient memetakan operasi cart/order ke REST API; murni
// request-response, tanpa retry dan tanpa cache.
type CartClient struct {
	baseURL string
	session Session
	http    *http.Client
}

func NewCartClient(baseURL string, session Session, httpClient *http.Client) *CartClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &CartClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		session: session,
		http:    httpClient,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

// userKey wajib ada di setiap call; absennya adalah programming error
// dan harus gagal cepat sebelum menyentuh jaringan.
func (c *CartClient) userKey() (string, error) {
	key := c.session.UserKey()
	if key == "" {
		return "", validationError("user key is required")
	}
	return key, nil
}

func (c *CartClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return transportError(err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return transportError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.AuthToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return transportError(fmt.Errorf("malformed response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		message := env.Message
		if env.Error != nil && env.Error.Message != "" {
			message = env.Error.Message
		}
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return serviceError(message)
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return transportError(fmt.Errorf("malformed response: %w", err))
		}
	}

	return nil
}

func (c *CartClient) FetchCart(ctx context.Context) (Cart, error) {
	key, err := c.userKey()
	if err != nil {
		return Cart{}, err
	}

	var cart Cart
	if err := c.do(ctx, http.MethodGet, "/cart/"+key, nil, &cart); err != nil {
		return Cart{}, err
	}
	return cart, nil
}

func (c *CartClient) AddItem(ctx context.Context, productID string, quantity int32) (Cart, error) {
	key, err := c.userKey()
	if err != nil {
		return Cart{}, err
	}

	payload := map[string]any{
		"userId":    key,
		"productId": productID,
		"quantity":  quantity,
	}

	var cart Cart
	if err := c.do(ctx, http.MethodPost, "/cart/add", payload, &cart); err != nil {
		return Cart{}, err
	}
	return cart, nil
}

func (c *CartClient) UpdateItem(ctx context.Context, productID string, quantity int32) (Cart, error) {
	key, err := c.userKey()
	if err != nil {
		return Cart{}, err
	}

	payload := map[string]any{
		"userId":    key,
		"productId": productID,
		"quantity":  quantity,
	}

	var cart Cart
	if err := c.do(ctx, http.MethodPut, "/cart/update", payload, &cart); err != nil {
		return Cart{}, err
	}
	return cart, nil
}

func (c *CartClient) RemoveItem(ctx context.Context, productID string) (Cart, error) {
	key, err := c.userKey()
	if err != nil {
		return Cart{}, err
	}

	payload := map[string]any{
		"userId":    key,
		"productId": productID,
	}

	var cart Cart
	if err := c.do(ctx, http.MethodDelete, "/cart/remove", payload, &cart); err != nil {
		return Cart{}, err
	}
	return cart, nil
}

func (c *CartClient) Clear(ctx context.Context) (Cart, error) {
	key, err := c.userKey()
	if err != nil {
		return Cart{}, err
	}

	var cart Cart
	if err := c.do(ctx, http.MethodDelete, "/cart/clear/"+key, nil, &cart); err != nil {
		return Cart{}, err
	}
	return cart, nil
}

func (c *CartClient) CreateOrder(ctx context.Context, paymentMethod, notes string) (Order, error) {
	key, err := c.userKey()
	if err != nil {
		return Order{}, err
	}

	payload := map[string]any{
		"userId":        key,
		"paymentMethod": paymentMethod,
		"notes":         notes,
	}

	var order Order
	if err := c.do(ctx, http.MethodPost, "/orders", payload, &order); err != nil {
		return Order{}, err
	}
	return order, nil
}
