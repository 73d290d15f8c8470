package apperror

import (
	"fmt"
	"net/http"
	"strings"
)

func RequiredField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s is required", field),
		http.StatusBadRequest,
	)
}

func InvalidField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s is invalid", field),
		http.StatusBadRequest,
	)
}

// Violations aggregates field messages into a single 400 error. The joined
// text becomes the message and the raw list is kept as details.
func Violations(messages []string) *AppError {
	return New(
		CodeInvalidInput,
		strings.Join(messages, ", "),
		http.StatusBadRequest,
	).WithDetails(messages)
}
