package errors

import "net/http"

var (
	ErrInvalidQuery = New(
		"INVALID_QUERY",
		"Query must be 2-50 characters long and must not contain digits",
		http.StatusBadRequest,
	)

	ErrRateLimited = New(
		"RATE_LIMITED",
		"Too many requests, try again later",
		http.StatusTooManyRequests,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrNotFound = New(
		"NOT_FOUND",
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
