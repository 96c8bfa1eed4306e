package order

import (
	"context"
	"database/sql"

	"go-retail-pos/internal/shared/database/dbgen"

	"github.com/google/uuid"
)

//go:generate mockgen -source=order_repo.go -destination=../mock/order/order_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx dbgen.DBTX) Repository
	Create(ctx context.Context, arg dbgen.CreateOrderParams) (dbgen.Order, error)
	CreateItem(ctx context.Context, arg dbgen.CreateOrderItemParams) error
	GetByID(ctx context.Context, id uuid.UUID) (dbgen.Order, error)
	GetItems(ctx context.Context, orderID uuid.UUID) ([]dbgen.OrderItem, error)
	List(ctx context.Context, arg dbgen.ListOrdersParams) ([]dbgen.ListOrdersRow, error)
	ListByUserKey(ctx context.Context, userKey string) ([]dbgen.Order, error)
	UpdateStatus(ctx context.Context, arg dbgen.UpdateOrderStatusParams) (dbgen.Order, error)
	GetStats(ctx context.Context) (dbgen.GetOrderStatsRow, error)
}

type orderRepository struct {
	queries *dbgen.Queries
}

func NewRepository(q *dbgen.Queries) Repository {
	return &orderRepository{queries: q}
}

func (r *orderRepository) WithTx(tx dbgen.DBTX) Repository {
	if sqlTx, ok := tx.(*sql.Tx); ok {
		return &orderRepository{
			queries: r.queries.WithTx(sqlTx),
		}
	}
	return r
}

func (r *orderRepository) Create(
	ctx context.Context,
	arg dbgen.CreateOrderParams,
) (dbgen.Order, error) {
	return r.queries.CreateOrder(ctx, arg)
}

func (r *orderRepository) CreateItem(
	ctx context.Context,
	arg dbgen.CreateOrderItemParams,
) error {
	return r.queries.CreateOrderItem(ctx, arg)
}

func (r *orderRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (dbgen.Order, error) {
	return r.queries.GetOrderByID(ctx, id)
}

func (r *orderRepository) GetItems(
	ctx context.Context,
	orderID uuid.UUID,
) ([]dbgen.OrderItem, error) {
	return r.queries.GetOrderItems(ctx, orderID)
}

func (r *orderRepository) List(
	ctx context.Context,
	arg dbgen.ListOrdersParams,
) ([]dbgen.ListOrdersRow, error) {
	return r.queries.ListOrders(ctx, arg)
}

func (r *orderRepository) ListByUserKey(
	ctx context.Context,
	userKey string,
) ([]dbgen.Order, error) {
	return r.queries.ListOrdersByUserKey(ctx, userKey)
}

func (r *orderRepository) UpdateStatus(
	ctx context.Context,
	arg dbgen.UpdateOrderStatusParams,
) (dbgen.Order, error) {
	return r.queries.UpdateOrderStatus(ctx, arg)
}

func (r *orderRepository) GetStats(
	ctx context.Context,
) (dbgen.GetOrderStatsRow, error) {
	return r.queries.GetOrderStats(ctx)
}
