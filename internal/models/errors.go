package models

import "errors"

// Sentinel errors shared by repositories and services. Handlers map them
// to HTTP status codes with errors.Is.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicate         = errors.New("record already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrForbidden         = errors.New("access denied")
	ErrInvalidCredential = errors.New("invalid credentials")
)
