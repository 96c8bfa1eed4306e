package order

import (
	"encoding/json"
	"net/http"
	"time"

	"go-retail-pos/internal/pkg/apperror"
	"go-retail-pos/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

// NewHandler menerima redis client untuk interplay dengan middleware
// idempotency; nil diperbolehkan (test).
func NewHandler(s Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("order.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("order.handler")
	}
	return &Handler{service: s, rdb: rdb, logger: l}
}

func (h *Handler) errorResponse(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func isStaff(role string) bool {
	return role == "ADMIN" || role == "CASHIER"
}

// POST /orders
func (h *Handler) Checkout(c *gin.Context) {
	// Lock idempotency selalu dilepas, sukses maupun gagal
	defer func() {
		if lockKey, ok := c.Get("idempotency_lock_key"); ok && h.rdb != nil {
			h.rdb.Del(c.Request.Context(), lockKey.(string))
		}
	}()

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	// Customer hanya boleh checkout cart miliknya sendiri
	if !isStaff(c.GetString("role")) && c.GetString("user_id") != req.UserID {
		response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "Tidak boleh checkout cart milik user lain", nil)
		return
	}

	result, err := h.service.Checkout(c.Request.Context(), req)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	// Simpan response sukses untuk replay idempotency key yang sama
	if cacheKey, ok := c.Get("idempotency_cache_key"); ok && h.rdb != nil {
		body, marshalErr := json.Marshal(response.APIResponse{
			Success:   true,
			Data:      result,
			Timestamp: time.Now().Format(time.RFC3339),
		})
		if marshalErr == nil {
			if cacheErr := h.rdb.Set(c.Request.Context(), cacheKey.(string), body, 24*time.Hour).Err(); cacheErr != nil {
				h.logger.Warn("gagal menyimpan response idempotency", zap.Error(cacheErr))
			}
		}
	}

	response.Success(c, http.StatusCreated, result, nil)
}

// GET /orders/:id
func (h *Handler) GetByID(c *gin.Context) {
	result, err := h.service.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	// Detail order hanya untuk pemilik atau staf
	if !isStaff(c.GetString("role")) && result.UserID != c.GetString("user_id") {
		response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "Tidak boleh melihat order milik user lain", nil)
		return
	}

	response.Success(c, http.StatusOK, result, nil)
}

// GET /orders (admin)
func (h *Handler) List(c *gin.Context) {
	var q ListOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Query tidak valid", err.Error())
		return
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}

	results, total, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	pagination := response.NewPaginationMeta(total, q.Page, q.Limit)
	response.Success(c, http.StatusOK, results, &pagination)
}

// GET /orders/user/:id
func (h *Handler) ListByUser(c *gin.Context) {
	userKey := c.Param("id")

	if !isStaff(c.GetString("role")) && userKey != c.GetString("user_id") {
		response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "Tidak boleh melihat order milik user lain", nil)
		return
	}

	results, err := h.service.ListByUser(c.Request.Context(), userKey)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	response.Success(c, http.StatusOK, results, nil)
}

// PUT /orders/:id/status (admin)
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	result, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	response.Success(c, http.StatusOK, result, nil)
}

// PUT /orders/:id/cancel
func (h *Handler) Cancel(c *gin.Context) {
	result, err := h.service.Cancel(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("user_id"),
		c.GetString("role") == "ADMIN",
	)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	response.Success(c, http.StatusOK, result, nil)
}

// GET /orders/stats (admin)
func (h *Handler) Stats(c *gin.Context) {
	result, err := h.service.Stats(c.Request.Context())
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	response.Success(c, http.StatusOK, result, nil)
}
