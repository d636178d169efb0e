package repositories

import "errors"

// Sentinel errors returned by every repository implementation. Handlers map
// these to HTTP responses; gorm errors never cross the repository boundary.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicate      = errors.New("duplicate record")
	ErrDuplicatePhone = errors.New("phone number already registered")
)
