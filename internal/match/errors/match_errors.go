package matcherrors

import (
	"net/http"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/apperror"
)

var (
	ErrMatchNotFound = apperror.New(
		apperror.CodeNotFound,
		"Match not found",
		http.StatusNotFound,
	)

	ErrInvalidMatchID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid match ID",
		http.StatusBadRequest,
	)

	ErrSelfMatch = apperror.New(
		apperror.CodeInvalidInput,
		"Cannot create a match with yourself",
		http.StatusBadRequest,
	)

	ErrMatchExists = apperror.New(
		apperror.CodeConflict,
		"An open match already exists between these users",
		http.StatusConflict,
	)

	ErrNotMatchParticipant = apperror.New(
		apperror.CodeForbidden,
		"User is not part of this match",
		http.StatusForbidden,
	)

	ErrNotRecipient = apperror.New(
		apperror.CodeForbidden,
		"Only the requested user can respond to this match",
		http.StatusForbidden,
	)

	ErrMatchNotPending = apperror.New(
		apperror.CodeInvalidState,
		"Match is not pending",
		http.StatusBadRequest,
	)

	ErrMatchNotSchedulable = apperror.New(
		apperror.CodeInvalidState,
		"Match must be accepted before a meeting can be scheduled",
		http.StatusBadRequest,
	)

	ErrMeetingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Meeting not found",
		http.StatusNotFound,
	)

	ErrInvalidMeetingID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid meeting ID",
		http.StatusBadRequest,
	)

	ErrSchedulingConflict = apperror.New(
		apperror.CodeConflict,
		"Scheduling conflict detected",
		http.StatusConflict,
	)

	ErrMeetingClosed = apperror.New(
		apperror.CodeInvalidState,
		"Meeting is already closed",
		http.StatusBadRequest,
	)

	ErrStartInPast = apperror.New(
		apperror.CodeInvalidInput,
		"Meeting must start in the future",
		http.StatusBadRequest,
	)
)
