package order

import (
	"net/http"

	"go-retail-pos/internal/pkg/apperror"
)

var (
	ErrCartEmpty = apperror.New(
		"CART_EMPTY",
		"Cart is empty",
		http.StatusBadRequest,
	)

	ErrPaymentMethodNotSupported = apperror.New(
		"PAYMENT_METHOD_NOT_SUPPORTED",
		"Payment method is not supported yet",
		http.StatusBadRequest,
	)

	ErrInvalidOrderID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid order id",
		http.StatusBadRequest,
	)

	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Order not found",
		http.StatusNotFound,
	)

	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeConflict,
		"Order status transition is not allowed",
		http.StatusConflict,
	)

	ErrCannotCancel = apperror.New(
		apperror.CodeConflict,
		"Only pending orders can be cancelled",
		http.StatusConflict,
	)

	ErrInsufficientStock = apperror.New(
		apperror.CodeConflict,
		"Insufficient product stock",
		http.StatusConflict,
	)

	ErrOrderFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process order",
		http.StatusInternalServerError,
	)
)
