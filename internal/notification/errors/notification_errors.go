package notificationerrors

import (
	"net/http"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/apperror"
)

var (
	ErrNotificationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Notification not found",
		http.StatusNotFound,
	)
	ErrInvalidNotificationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid notification ID",
		http.StatusBadRequest,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)
	ErrInvalidType = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown notification type",
		http.StatusBadRequest,
	)
	ErrInvalidQuietHours = apperror.New(
		apperror.CodeInvalidInput,
		"Quiet hours must use HH:MM",
		http.StatusBadRequest,
	)
	ErrInvalidTimezone = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown timezone",
		http.StatusBadRequest,
	)
	ErrPreferencesConflict = apperror.New(
		apperror.CodeConflict,
		"Notification preferences already exist for this user",
		http.StatusConflict,
	)
)
