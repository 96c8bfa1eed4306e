package cart

import (
	"net/http"

	"go-retail-pos/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) errorResponse(c *gin.Context, err error) {
	switch err {
	case ErrInvalidUserKey, ErrInvalidQty:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	case ErrProductNotFound:
		response.Error(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", err.Error(), nil)
	case ErrProductInactive:
		response.Error(c, http.StatusConflict, "PRODUCT_INACTIVE", err.Error(), nil)
	case ErrInsufficientStock:
		response.Error(c, http.StatusConflict, "INSUFFICIENT_STOCK", err.Error(), nil)
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Gagal memproses cart", nil)
	}
}

// GET /cart/:userId
func (h *Handler) Snapshot(c *gin.Context) {
	userKey := c.Param("userId")
	if userKey == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "user id is required", nil)
		return
	}

	snapshot, err := h.service.Snapshot(c.Request.Context(), userKey)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	response.Success(c, http.StatusOK, snapshot, nil)
}

// POST /cart/add
func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	snapshot, err := h.service.AddItem(c.Request.Context(), req)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	response.Success(c, http.StatusOK, snapshot, nil)
}

// PUT /cart/update
func (h *Handler) UpdateItem(c *gin.Context) {
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	snapshot, err := h.service.UpdateItem(c.Request.Context(), req)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	response.Success(c, http.StatusOK, snapshot, nil)
}

// DELETE /cart/remove
func (h *Handler) RemoveItem(c *gin.Context) {
	var req RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	snapshot, err := h.service.RemoveItem(c.Request.Context(), req)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	response.Success(c, http.StatusOK, snapshot, nil)
}

// DELETE /cart/clear/:userId
func (h *Handler) Clear(c *gin.Context) {
	userKey := c.Param("userId")
	if userKey == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "user id is required", nil)
		return
	}

	snapshot, err := h.service.Clear(c.Request.Context(), userKey)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	response.Success(c, http.StatusOK, snapshot, nil)
}
