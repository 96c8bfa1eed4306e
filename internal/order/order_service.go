package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	autherrors "go-retail-pos/internal/auth/errors"
	"go-retail-pos/internal/cart"
	"go-retail-pos/internal/outbox"
	"go-retail-pos/internal/product"
	"go-retail-pos/internal/shared/database/dbgen"
	"go-retail-pos/internal/shared/database/helper"

	"go.uber.org/zap"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	PaymentCash = "cash"

	EventOrderCreated = "ORDER_CREATED"
)

//go:generate mockgen -source=order_service.go -destination=../mock/order/order_service_mock.go -package=mock
type Service interface {
	Checkout(ctx context.Context, req CheckoutRequest) (OrderResponse, error)
	Detail(ctx context.Context, id string) (OrderResponse, error)
	List(ctx context.Context, q ListOrdersQuery) ([]OrderResponse, int64, error)
	ListByUser(ctx context.Context, userKey string) ([]OrderResponse, error)
	UpdateStatus(ctx context.Context, id string, status string) (OrderResponse, error)
	Cancel(ctx context.Context, id string, requesterKey string, isAdmin bool) (OrderResponse, error)
	Stats(ctx context.Context) (OrderStatsResponse, error)
}

// Deps mengumpulkan semua dependensi service agar wiring di registry
// tetap satu baris per modul.
type Deps struct {
	DB       *sql.DB
	Orders   Repository
	Carts    cart.Service
	Products product.Repository
	Outbox   outbox.Repository
	Logger   *zap.Logger
}

type service struct {
	db       *sql.DB
	orders   Repository
	carts    cart.Service
	products product.Repository
	outbox   outbox.Repository
	logger   *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.DB == nil {
		panic("order: Deps.DB is nil")
	}
	if deps.Orders == nil {
		panic("order: Deps.Orders is nil")
	}
	if deps.Carts == nil {
		panic("order: Deps.Carts is nil")
	}
	if deps.Products == nil {
		panic("order: Deps.Products is nil")
	}
	if deps.Outbox == nil {
		panic("order: Deps.Outbox is nil")
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		db:       deps.DB,
		orders:   deps.Orders,
		carts:    deps.Carts,
		products: deps.Products,
		outbox:   deps.Outbox,
		logger:   logger.Named("order.service"),
	}
}

// OrderCreatedPayload adalah isi event ORDER_CREATED; dikonsumsi
// worker pembersih cart.
type OrderCreatedPayload struct {
	OrderID     string  `json:"orderId"`
	OrderNumber string  `json:"orderNumber"`
	UserID      string  `json:"userId"`
	TotalAmount float64 `json:"totalAmount"`
	Status      string  `json:"status"`
}

func newOrderNumber() string {
	return fmt.Sprintf("POS-%d-%s", time.Now().Unix(), strings.ToUpper(uuid.NewString()[:4]))
}

func (s *service) Checkout(ctx context.Context, req CheckoutRequest) (OrderResponse, error) {
	logger := s.logger.With(zap.String("user_key", req.UserID))

	// Pembayaran non-tunai belum didukung: tolak di depan, jangan
	// sampai menyentuh cart sama sekali.
	if strings.ToLower(req.PaymentMethod) != PaymentCash {
		return OrderResponse{}, ErrPaymentMethodNotSupported
	}

	snapshot, err := s.carts.Snapshot(ctx, req.UserID)
	if err != nil {
		logger.Error("gagal mengambil snapshot cart", zap.Error(err))
		return OrderResponse{}, ErrOrderFailed
	}
	if len(snapshot.Items) == 0 {
		return OrderResponse{}, ErrCartEmpty
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OrderResponse{}, ErrOrderFailed
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	orders := s.orders.WithTx(tx)
	products := s.products.WithTx(tx)
	outboxRepo := s.outbox.WithTx(tx)

	// 1. Hitung ulang total dari unit price server; jangan percaya angka client
	total := decimal.Zero
	for _, item := range snapshot.Items {
		unit := helper.Float64ToDecimalExact(item.UnitPrice)
		total = total.Add(unit.Mul(decimal.NewFromInt32(item.Quantity)))
	}

	// 2. Pembayaran tunai selesai di tempat: order langsung completed
	created, err := orders.Create(ctx, dbgen.CreateOrderParams{
		OrderNumber:   newOrderNumber(),
		UserKey:       req.UserID,
		Status:        StatusCompleted,
		PaymentMethod: PaymentCash,
		Notes:         helper.RawStringToNull(req.Notes),
		TotalAmount:   total.String(),
	})
	if err != nil {
		logger.Error("gagal membuat order", zap.Error(err))
		return OrderResponse{}, ErrOrderFailed
	}

	// 3. Kurangi stok dan tulis order item per baris cart
	for _, item := range snapshot.Items {
		pid, err := uuid.Parse(item.ProductID)
		if err != nil {
			return OrderResponse{}, ErrOrderFailed
		}

		p, err := products.DecrementStock(ctx, dbgen.DecrementProductStockParams{
			ID:       pid,
			Quantity: item.Quantity,
		})
		if err != nil {
			if err == sql.ErrNoRows {
				// Stok sudah keburu habis sejak item masuk cart
				return OrderResponse{}, ErrInsufficientStock
			}
			logger.Error("gagal mengurangi stok", zap.String("product_id", item.ProductID), zap.Error(err))
			return OrderResponse{}, ErrOrderFailed
		}

		unit := helper.Float64ToDecimalExact(item.UnitPrice)
		subtotal := unit.Mul(decimal.NewFromInt32(item.Quantity))
		if err := orders.CreateItem(ctx, dbgen.CreateOrderItemParams{
			OrderID:      created.ID,
			ProductID:    pid,
			NameSnapshot: p.Name,
			UnitPrice:    unit.String(),
			Quantity:     item.Quantity,
			TotalPrice:   subtotal.String(),
		}); err != nil {
			logger.Error("gagal menulis order item", zap.Error(err))
			return OrderResponse{}, ErrOrderFailed
		}
	}

	// 4. Event ORDER_CREATED ikut dalam tx yang sama (transactional outbox)
	payload, err := json.Marshal(OrderCreatedPayload{
		OrderID:     created.ID.String(),
		OrderNumber: created.OrderNumber,
		UserID:      created.UserKey,
		TotalAmount: helper.NumericToFloat(created.TotalAmount),
		Status:      created.Status,
	})
	if err != nil {
		return OrderResponse{}, ErrOrderFailed
	}
	if err := outboxRepo.CreateOutboxEvent(ctx, dbgen.CreateOutboxEventParams{
		ID:            uuid.New(),
		AggregateType: "order",
		AggregateID:   created.ID,
		EventType:     EventOrderCreated,
		Payload:       payload,
	}); err != nil {
		logger.Error("gagal menulis outbox event", zap.Error(err))
		return OrderResponse{}, ErrOrderFailed
	}

	items, err := orders.GetItems(ctx, created.ID)
	if err != nil {
		return OrderResponse{}, ErrOrderFailed
	}

	if err := tx.Commit(); err != nil {
		logger.Error("gagal commit checkout", zap.Error(err))
		return OrderResponse{}, ErrOrderFailed
	}
	committed = true

	logger.Info("checkout berhasil",
		zap.String("order_id", created.ID.String()),
		zap.String("order_number", created.OrderNumber),
	)

	response := mapOrder(created)
	response.Items = mapItems(items)
	return response, nil
}

func (s *service) Detail(ctx context.Context, id string) (OrderResponse, error) {
	oid, err := uuid.Parse(id)
	if err != nil {
		return OrderResponse{}, ErrInvalidOrderID
	}

	o, err := s.orders.GetByID(ctx, oid)
	if err != nil {
		if err == sql.ErrNoRows {
			return OrderResponse{}, ErrOrderNotFound
		}
		return OrderResponse{}, err
	}

	items, err := s.orders.GetItems(ctx, oid)
	if err != nil {
		return OrderResponse{}, err
	}

	response := mapOrder(o)
	response.Items = mapItems(items)
	return response, nil
}

func (s *service) List(ctx context.Context, q ListOrdersQuery) ([]OrderResponse, int64, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 10
	}

	rows, err := s.orders.List(ctx, dbgen.ListOrdersParams{
		Limit:  int32(q.Limit),
		Offset: int32((q.Page - 1) * q.Limit),
		Status: helper.RawStringToNull(q.Status),
	})
	if err != nil {
		return nil, 0, err
	}

	var total int64
	responses := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		total = row.TotalCount
		responses = append(responses, OrderResponse{
			ID:            row.ID.String(),
			OrderNumber:   row.OrderNumber,
			UserID:        row.UserKey,
			Status:        row.Status,
			PaymentMethod: row.PaymentMethod,
			Notes:         row.Notes.String,
			TotalAmount:   helper.NumericToFloat(row.TotalAmount),
			CreatedAt:     row.CreatedAt,
		})
	}

	return responses, total, nil
}

func (s *service) ListByUser(ctx context.Context, userKey string) ([]OrderResponse, error) {
	rows, err := s.orders.ListByUserKey(ctx, userKey)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, mapOrder(row))
	}
	return responses, nil
}

// UpdateStatus hanya untuk admin: pending boleh jadi completed atau
// cancelled, status final tidak bisa diubah lagi.
func (s *service) UpdateStatus(ctx context.Context, id string, status string) (OrderResponse, error) {
	oid, err := uuid.Parse(id)
	if err != nil {
		return OrderResponse{}, ErrInvalidOrderID
	}
	if status != StatusCompleted && status != StatusCancelled {
		return OrderResponse{}, ErrInvalidStatusTransition
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OrderResponse{}, err
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	orders := s.orders.WithTx(tx)

	o, err := orders.GetByID(ctx, oid)
	if err != nil {
		if err == sql.ErrNoRows {
			return OrderResponse{}, ErrOrderNotFound
		}
		return OrderResponse{}, err
	}
	if o.Status != StatusPending {
		return OrderResponse{}, ErrInvalidStatusTransition
	}

	if status == StatusCancelled {
		if err := s.restockItems(ctx, tx, orders, oid); err != nil {
			return OrderResponse{}, err
		}
	}

	updated, err := orders.UpdateStatus(ctx, dbgen.UpdateOrderStatusParams{
		ID:     oid,
		Status: status,
	})
	if err != nil {
		return OrderResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return OrderResponse{}, err
	}
	committed = true

	s.logger.Info("status order diubah",
		zap.String("order_id", id),
		zap.String("status", status),
	)

	return mapOrder(updated), nil
}

// Cancel dipakai pemilik order; admin boleh membatalkan order siapa pun.
func (s *service) Cancel(ctx context.Context, id string, requesterKey string, isAdmin bool) (OrderResponse, error) {
	oid, err := uuid.Parse(id)
	if err != nil {
		return OrderResponse{}, ErrInvalidOrderID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OrderResponse{}, err
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	orders := s.orders.WithTx(tx)

	o, err := orders.GetByID(ctx, oid)
	if err != nil {
		if err == sql.ErrNoRows {
			return OrderResponse{}, ErrOrderNotFound
		}
		return OrderResponse{}, err
	}
	if !isAdmin && o.UserKey != requesterKey {
		return OrderResponse{}, autherrors.ErrForbidden
	}
	if o.Status != StatusPending {
		return OrderResponse{}, ErrCannotCancel
	}

	if err := s.restockItems(ctx, tx, orders, oid); err != nil {
		return OrderResponse{}, err
	}

	updated, err := orders.UpdateStatus(ctx, dbgen.UpdateOrderStatusParams{
		ID:     oid,
		Status: StatusCancelled,
	})
	if err != nil {
		return OrderResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return OrderResponse{}, err
	}
	committed = true

	s.logger.Info("order dibatalkan", zap.String("order_id", id))

	return mapOrder(updated), nil
}

func (s *service) Stats(ctx context.Context) (OrderStatsResponse, error) {
	row, err := s.orders.GetStats(ctx)
	if err != nil {
		return OrderStatsResponse{}, err
	}
	return OrderStatsResponse{
		TotalOrders:     row.TotalOrders,
		PendingOrders:   row.PendingOrders,
		CompletedOrders: row.CompletedOrders,
		CancelledOrders: row.CancelledOrders,
		TotalRevenue:    helper.NumericToFloat(row.TotalRevenue),
	}, nil
}

// restockItems mengembalikan stok semua item order yang dibatalkan.
func (s *service) restockItems(ctx context.Context, tx *sql.Tx, orders Repository, orderID uuid.UUID) error {
	items, err := orders.GetItems(ctx, orderID)
	if err != nil {
		return err
	}

	products := s.products.WithTx(tx)
	for _, item := range items {
		if _, err := products.IncrementStock(ctx, dbgen.IncrementProductStockParams{
			ID:       item.ProductID,
			Quantity: item.Quantity,
		}); err != nil {
			return err
		}
	}
	return nil
}

func mapOrder(o dbgen.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID.String(),
		OrderNumber:   o.OrderNumber,
		UserID:        o.UserKey,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		Notes:         o.Notes.String,
		TotalAmount:   helper.NumericToFloat(o.TotalAmount),
		CreatedAt:     o.CreatedAt,
	}
}

func mapItems(items []dbgen.OrderItem) []OrderItemResponse {
	responses := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, OrderItemResponse{
			ID:           item.ID.String(),
			ProductID:    item.ProductID.String(),
			NameSnapshot: item.NameSnapshot,
			UnitPrice:    helper.NumericToFloat(item.UnitPrice),
			Quantity:     item.Quantity,
			Subtotal:     helper.NumericToFloat(item.TotalPrice),
		})
	}
	return responses
}
