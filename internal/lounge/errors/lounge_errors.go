package loungeerrors

import (
	"net/http"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/apperror"
)

var (
	ErrLoungeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Lounge not found",
		http.StatusNotFound,
	)

	ErrInvalidLoungeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid lounge ID",
		http.StatusBadRequest,
	)

	ErrTitleTaken = apperror.New(
		apperror.CodeConflict,
		"An active lounge with this title already exists",
		http.StatusConflict,
	)

	ErrAlreadyParticipant = apperror.New(
		apperror.CodeConflict,
		"User is already a participant of this lounge",
		http.StatusConflict,
	)

	ErrLoungeFull = apperror.New(
		apperror.CodeInvalidState,
		"Lounge is full",
		http.StatusBadRequest,
	)

	ErrNotParticipant = apperror.New(
		apperror.CodeForbidden,
		"User is not a participant of this lounge",
		http.StatusForbidden,
	)

	ErrCreatorCannotLeave = apperror.New(
		apperror.CodeInvalidState,
		"Lounge creator cannot leave the lounge",
		http.StatusBadRequest,
	)

	ErrMuted = apperror.New(
		apperror.CodeForbidden,
		"User is muted in this lounge",
		http.StatusForbidden,
	)

	ErrNotCreator = apperror.New(
		apperror.CodeForbidden,
		"Only the lounge creator can do this",
		http.StatusForbidden,
	)
)
