package apperror

import "net/http"

var (
	ErrNotFound     = New(CodeNotFound, "Resource not found", http.StatusNotFound)
	ErrConflict     = New(CodeConflict, "Resource already exists", http.StatusConflict)
	ErrInvalidInput = New(CodeInvalidInput, "The provided input is invalid", http.StatusBadRequest)

	ErrUnauthorized = New(CodeUnauthorized, "Authentication is required", http.StatusUnauthorized)
	ErrForbidden    = New(CodeForbidden, "You do not have permission to access this resource", http.StatusForbidden)
	ErrNoCompany    = New(CodeForbidden, "User does not belong to a company", http.StatusForbidden)

	ErrInternal = New(CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)
)
