package services

import "errors"

// Common service errors
var (
	ErrNotFound        = errors.New("record not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrUnauthorized    = errors.New("not authorized")
	ErrInvalidState    = errors.New("invalid state transition")
	ErrDuplicate       = errors.New("duplicate record")
	ErrNoAgent         = errors.New("booking has no agent, no commission applies")
	ErrPlotUnavailable = errors.New("plot is not available for booking")
)
