package user

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
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	res, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrEmailAlreadyUsed:
			response.Error(c, http.StatusConflict, "EMAIL_ALREADY_USED", err.Error(), nil)
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Gagal membuat user", nil)
		}
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	res, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch err {
		case ErrInvalidUserID:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		case ErrUserNotFound:
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", err.Error(), nil)
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Gagal mengambil user", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) List(c *gin.Context) {
	var q ListUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Query tidak valid", err.Error())
		return
	}

	users, total, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Gagal mengambil daftar user", nil)
		return
	}

	pag := response.NewPaginationMeta(total, q.Page, q.Limit)
	response.Success(c, http.StatusOK, users, &pag)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	res, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch err {
		case ErrInvalidUserID:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		case ErrUserNotFound:
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", err.Error(), nil)
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Gagal memperbarui user", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch err {
		case ErrInvalidUserID:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		case ErrUserNotFound:
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", err.Error(), nil)
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Gagal menghapus user", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
