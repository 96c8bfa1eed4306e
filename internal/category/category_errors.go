package category

import "errors"

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrInvalidCategoryID = errors.New("invalid category id")
)
