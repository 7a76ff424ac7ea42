package category

import "errors"

var (
	ErrInvalidCategoryKey = errors.New("invalid category key")
	ErrUnauthorized       = errors.New("identity is not allowed to modify the catalog")
)
