package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")
	ErrNoDestinations     = errors.New("at least one destination is required")
	ErrSessionNotFound    = errors.New("conversation session not found")
	ErrRankingFailed      = errors.New("package ranking failed")
	ErrIndexNotConfigured = errors.New("embedding provider is not configured")
	ErrTTSNotSupported    = errors.New("speech synthesis not supported by this provider")
	ErrUnauthorized       = errors.New("unauthorized")
)
