package analyticserrors

import (
	"net/http"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/apperror"
)

var (
	ErrInsightNotFound = apperror.New(
		apperror.CodeNotFound,
		"Insight not found",
		http.StatusNotFound,
	)

	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid insight ID",
		http.StatusBadRequest,
	)

	ErrUnknownBehavior = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown behavior type",
		http.StatusBadRequest,
	)

	ErrUnknownInteraction = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown interaction type",
		http.StatusBadRequest,
	)

	ErrUnknownMetric = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown metric type",
		http.StatusBadRequest,
	)

	ErrUnknownInsightType = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown insight type",
		http.StatusBadRequest,
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"End date must not be before start date",
		http.StatusBadRequest,
	)
)
