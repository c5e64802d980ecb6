package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(s)
}

// MapValidationError turns the first validator failure into an INVALID_INPUT AppError.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		case "oneof":
			return InvalidField(field, fmt.Sprintf("must be one of: %s", e.Param()))
		case "min", "gte":
			return InvalidField(field, fmt.Sprintf("must be at least %s", e.Param()))
		case "max", "lte":
			return InvalidField(field, fmt.Sprintf("must be at most %s", e.Param()))
		default:
			return InvalidField(field, "")
		}
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}

func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, field+" is required", http.StatusBadRequest)
}

func InvalidField(field, reason string) *AppError {
	msg := field + " is invalid"
	if reason != "" {
		msg = field + " " + reason
	}
	return New(CodeInvalidInput, msg, http.StatusBadRequest)
}
