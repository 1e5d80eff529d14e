package catalog

import "errors"

var (
	ErrNotFound        = errors.New("service not found")
	ErrImageNotFound   = errors.New("service image not found")
	ErrInvalidCategory = errors.New("invalid service category")
	ErrInvalidPrice    = errors.New("work specification price must be non-negative")
)
