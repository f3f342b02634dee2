package service

import "errors"

// Sentinel errors returned by the services. Handlers map them to status codes.
var (
	ErrNotFound           = errors.New("service: not found")
	ErrConflict           = errors.New("service: conflict")
	ErrInvalidCredentials = errors.New("service: invalid credentials")
	ErrInvalidInput       = errors.New("service: invalid input")
	ErrUnavailable        = errors.New("service: unavailable")
)
