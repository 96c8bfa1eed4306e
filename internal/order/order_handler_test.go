package order_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-retail-pos/internal/order"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeOrderService struct {
	CheckoutFn     func(ctx context.Context, req order.CheckoutRequest) (order.OrderResponse, error)
	DetailFn       func(ctx context.Context, id string) (order.OrderResponse, error)
	ListFn         func(ctx context.Context, q order.ListOrdersQuery) ([]order.OrderResponse, int64, error)
	ListByUserFn   func(ctx context.Context, userKey string) ([]order.OrderResponse, error)
	UpdateStatusFn func(ctx context.Context, id string, status string) (order.OrderResponse, error)
	CancelFn       func(ctx context.Context, id string, requesterKey string, isAdmin bool) (order.OrderResponse, error)
	StatsFn        func(ctx context.Context) (order.OrderStatsResponse, error)
}

func (f *fakeOrderService) Checkout(ctx context.Context, req order.CheckoutRequest) (order.OrderResponse, error) {
	return f.CheckoutFn(ctx, req)
}

func (f *fakeOrderService) Detail(ctx context.Context, id string) (order.OrderResponse, error) {
	return f.DetailFn(ctx, id)
}

func (f *fakeOrderService) List(ctx context.Context, q order.ListOrdersQuery) ([]order.OrderResponse, int64, error) {
	return f.ListFn(ctx, q)
}

func (f *fakeOrderService) ListByUser(ctx context.Context, userKey string) ([]order.OrderResponse, error) {
	return f.ListByUserFn(ctx, userKey)
}

func (f *fakeOrderService) UpdateStatus(ctx context.Context, id string, status string) (order.OrderResponse, error) {
	return f.UpdateStatusFn(ctx, id, status)
}

func (f *fakeOrderService) Cancel(ctx context.Context, id string, requesterKey string, isAdmin bool) (order.OrderResponse, error) {
	return f.CancelFn(ctx, id, requesterKey, isAdmin)
}

func (f *fakeOrderService) Stats(ctx context.Context) (order.OrderStatsResponse, error) {
	return f.StatsFn(ctx)
}

func TestOrderHandler_Checkout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success_checkout", func(t *testing.T) {
		svc := &fakeOrderService{
			CheckoutFn: func(ctx context.Context, req order.CheckoutRequest) (order.OrderResponse, error) {
				assert.Equal(t, "u-1", req.UserID)
				assert.Equal(t, "cash", req.PaymentMethod)
				return order.OrderResponse{
					ID:          "o-1",
					OrderNumber: "POS-1756400000-AB12",
					UserID:      "u-1",
					Status:      order.StatusCompleted,
					TotalAmount: 30000,
				}, nil
			},
		}
		handler := order.NewHandler(svc, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_id", "u-1")
		c.Set("role", "CUSTOMER")

		body := `{"userId":"u-1","paymentMethod":"cash"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.Checkout(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var envelope struct {
			Success bool                `json:"success"`
			Data    order.OrderResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.Equal(t, order.StatusCompleted, envelope.Data.Status)
	})

	t.Run("error_customer_checkout_cart_user_lain", func(t *testing.T) {
		svc := &fakeOrderService{}
		handler := order.NewHandler(svc, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_id", "u-2")
		c.Set("role", "CUSTOMER")

		body := `{"userId":"u-1","paymentMethod":"cash"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.Checkout(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("cashier_boleh_checkout_cart_guest", func(t *testing.T) {
		called := false
		svc := &fakeOrderService{
			CheckoutFn: func(ctx context.Context, req order.CheckoutRequest) (order.OrderResponse, error) {
				called = true
				return order.OrderResponse{UserID: req.UserID, Status: order.StatusCompleted}, nil
			},
		}
		handler := order.NewHandler(svc, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_id", "kasir-1")
		c.Set("role", "CASHIER")

		body := `{"userId":"guest","paymentMethod":"cash"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.Checkout(c)

		assert.True(t, called)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("error_cart_empty_maps_to_bad_request", func(t *testing.T) {
		svc := &fakeOrderService{
			CheckoutFn: func(ctx context.Context, req order.CheckoutRequest) (order.OrderResponse, error) {
				return order.OrderResponse{}, order.ErrCartEmpty
			},
		}
		handler := order.NewHandler(svc, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_id", "u-1")
		c.Set("role", "CUSTOMER")

		body := `{"userId":"u-1","paymentMethod":"cash"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.Checkout(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var envelope struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, "CART_EMPTY", envelope.Error.Code)
	})
}

func TestOrderHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("error_detail_order_user_lain", func(t *testing.T) {
		svc := &fakeOrderService{
			DetailFn: func(ctx context.Context, id string) (order.OrderResponse, error) {
				return order.OrderResponse{ID: id, UserID: "u-1"}, nil
			},
		}
		handler := order.NewHandler(svc, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_id", "u-2")
		c.Set("role", "CUSTOMER")
		c.Request = httptest.NewRequest(http.MethodGet, "/orders/o-1", nil)
		c.Params = gin.Params{{Key: "id", Value: "o-1"}}

		handler.GetByID(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin_boleh_lihat_semua", func(t *testing.T) {
		svc := &fakeOrderService{
			DetailFn: func(ctx context.Context, id string) (order.OrderResponse, error) {
				return order.OrderResponse{ID: id, UserID: "u-1"}, nil
			},
		}
		handler := order.NewHandler(svc, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_id", "admin-1")
		c.Set("role", "ADMIN")
		c.Request = httptest.NewRequest(http.MethodGet, "/orders/o-1", nil)
		c.Params = gin.Params{{Key: "id", Value: "o-1"}}

		handler.GetByID(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestOrderHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success_list_dengan_pagination", func(t *testing.T) {
		svc := &fakeOrderService{
			ListFn: func(ctx context.Context, q order.ListOrdersQuery) ([]order.OrderResponse, int64, error) {
				assert.Equal(t, "completed", q.Status)
				return []order.OrderResponse{{ID: "o-1"}, {ID: "o-2"}}, 25, nil
			},
		}
		handler := order.NewHandler(svc, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/orders?page=2&limit=10&status=completed", nil)

		handler.List(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var envelope struct {
			Pagination struct {
				Page       int   `json:"page"`
				TotalItems int64 `json:"totalItems"`
				TotalPages int   `json:"totalPages"`
			} `json:"pagination"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, 2, envelope.Pagination.Page)
		assert.Equal(t, int64(25), envelope.Pagination.TotalItems)
		assert.Equal(t, 3, envelope.Pagination.TotalPages)
	})
}
