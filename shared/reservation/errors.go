package reservation

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrSeatUnavailable = errors.New("seat not available")
	ErrInvalidState    = errors.New("invalid reservation state")
)
