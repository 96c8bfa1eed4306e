package product

import (
	"net/http"

	"go-retail-pos/internal/pkg/apperror"
	"go-retail-pos/internal/pkg/httpx"
	"go-retail-pos/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	productService Service
}

func NewHandler(productService Service) *Handler {
	return &Handler{productService: productService}
}

// 1. GET PUBLIC LIST
func (h *Handler) GetPublicList(c *gin.Context) {
	var q ListPublicQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "Query tidak valid", err.Error())
		return
	}

	sort := httpx.ParseSort(c, "created_at", "desc")
	if q.SortBy == "" {
		q.SortBy = sort.SortBy
	}
	if q.SortDir == "" {
		q.SortDir = sort.SortDir
	}

	data, total, err := h.productService.ListPublic(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Gagal mengambil data produk", err.Error())
		return
	}

	pag := response.NewPaginationMeta(total, q.Page, q.Limit)
	response.Success(c, http.StatusOK, data, &pag)
}

// 2. GET BY ID (Detail)
func (h *Handler) GetByID(c *gin.Context) {
	res, err := h.productService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// 3. CREATE PRODUCT (Admin)
func (h *Handler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	result, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	response.Success(c, http.StatusCreated, result, nil)
}

// 4. UPDATE PRODUCT (Admin)
func (h *Handler) Update(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	res, err := h.productService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// 5. DELETE PRODUCT (Soft Delete)
func (h *Handler) Delete(c *gin.Context) {
	err := h.productService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, nil, nil)
}
