package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrRequestInProgress = New(
		CodeProcessing,
		"A request with this idempotency key is still being processed",
		http.StatusConflict,
	)
)
