package cart

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidUserKey    = errors.New("user id is required")
	ErrInvalidQty        = errors.New("quantity must be at least 1")
	ErrProductNotFound   = errors.New("product not found")
	ErrProductInactive   = errors.New("product is not available")
	ErrInsufficientStock = errors.New("insufficient product stock")
)

// mapValidationError menerjemahkan field error validator ke error domain
// supaya pemanggil langsung Service (bukan cuma handler gin) mendapat
// error yang sama.
func mapValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			switch fe.Field() {
			case "UserID":
				return ErrInvalidUserKey
			case "ProductID":
				return ErrProductNotFound
			case "Quantity":
				return ErrInvalidQty
			}
		}
	}
	return err
}
