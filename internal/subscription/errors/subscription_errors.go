package subscriptionerrors

import (
	"net/http"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/apperror"
)

var (
	ErrSubscriptionNotFound = apperror.New(
		apperror.CodeNotFound,
		"subscription not found",
		http.StatusNotFound,
	)
	ErrSubscriptionExists = apperror.New(
		apperror.CodeConflict,
		"company already has an active subscription",
		http.StatusConflict,
	)
	ErrSubscriptionInactive = apperror.New(
		apperror.CodeInvalidState,
		"subscription is not active",
		http.StatusBadRequest,
	)
	ErrNotCanceled = apperror.New(
		apperror.CodeInvalidState,
		"subscription is not canceled",
		http.StatusBadRequest,
	)
	ErrUnknownPlan = apperror.New(
		apperror.CodeInvalidInput,
		"unknown plan type",
		http.StatusBadRequest,
	)
	ErrMissingCompany = apperror.New(
		apperror.CodeForbidden,
		"user does not belong to a company",
		http.StatusForbidden,
	)
)
