package product

import (
	"net/http"

	"go-retail-pos/internal/pkg/apperror"
)

var (
	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrInvalidProductID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid product id",
		http.StatusBadRequest,
	)

	ErrInvalidCategoryID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid category id",
		http.StatusBadRequest,
	)
)
