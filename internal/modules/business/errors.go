package business

import "errors"

var ErrNotFound = errors.New("business not found")
