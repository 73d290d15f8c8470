package bonuserrors

import (
	"go-bonus/internal/shared/apperror"
	"net/http"
)

var (
	ErrBonusIDExhausted = apperror.New(
		apperror.CodeConflict,
		"Bonus ID range exhausted: BON9999 has already been issued",
		http.StatusConflict,
	)
	ErrBonusIDTaken = apperror.New(
		apperror.CodeConflict,
		"Bonus ID already exists",
		http.StatusConflict,
	)
	ErrBonusIDContention = apperror.New(
		apperror.CodeConflict,
		"Could not allocate a bonus ID, please retry",
		http.StatusConflict,
	)
	ErrMalformedBonusID = apperror.New(
		apperror.CodeInternalError,
		"Stored bonus ID does not match the BON#### format",
		http.StatusInternalServerError,
	)
	ErrInvalidHistoryFilter = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid history filter",
		http.StatusBadRequest,
	)
	ErrInvalidRequestBody = apperror.New(
		apperror.CodeInvalidInput,
		"Request body must be a JSON object",
		http.StatusBadRequest,
	)
)
