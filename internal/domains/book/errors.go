package book

import "errors"

var (
	ErrBookNotFound      = errors.New("book not found")
	ErrInvalidDiscipline = errors.New("invalid discipline selected")
	ErrUnauthorized      = errors.New("identity is not allowed to modify the catalog")
)
