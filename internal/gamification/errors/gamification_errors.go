package gamificationerrors

import (
	"net/http"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/apperror"
)

var (
	ErrBadgeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Badge not found",
		http.StatusNotFound,
	)
	ErrBadgeInactive = apperror.New(
		apperror.CodeInvalidState,
		"Badge is no longer awarded",
		http.StatusBadRequest,
	)
	ErrBadgeAlreadyEarned = apperror.New(
		apperror.CodeConflict,
		"User already holds this badge",
		http.StatusConflict,
	)
	ErrInvalidActivityType = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown activity type",
		http.StatusBadRequest,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)
	ErrInvalidBadgeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid badge ID",
		http.StatusBadRequest,
	)
)
