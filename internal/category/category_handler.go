package category

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

func (h *Handler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	res, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Gagal membuat kategori", nil)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	res, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch err {
		case ErrInvalidCategoryID:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		case ErrCategoryNotFound:
			response.Error(c, http.StatusNotFound, "CATEGORY_NOT_FOUND", err.Error(), nil)
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Gagal mengambil kategori", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) List(c *gin.Context) {
	res, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Gagal mengambil daftar kategori", nil)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	res, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch err {
		case ErrInvalidCategoryID:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		case ErrCategoryNotFound:
			response.Error(c, http.StatusNotFound, "CATEGORY_NOT_FOUND", err.Error(), nil)
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Gagal memperbarui kategori", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch err {
		case ErrInvalidCategoryID:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		case ErrCategoryNotFound:
			response.Error(c, http.StatusNotFound, "CATEGORY_NOT_FOUND", err.Error(), nil)
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Gagal menghapus kategori", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
