package mentorshiperrors

import (
	"net/http"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/apperror"
)

var (
	ErrProgramNotFound = apperror.New(
		apperror.CodeNotFound,
		"Mentorship program not found",
		http.StatusNotFound,
	)

	ErrRelationshipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Mentorship relationship not found",
		http.StatusNotFound,
	)

	ErrSessionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Mentorship session not found",
		http.StatusNotFound,
	)

	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid mentorship ID",
		http.StatusBadRequest,
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Program end date must be after its start date",
		http.StatusBadRequest,
	)

	ErrSelfMentorship = apperror.New(
		apperror.CodeInvalidInput,
		"Mentor and mentee must be different users",
		http.StatusBadRequest,
	)

	ErrSessionInPast = apperror.New(
		apperror.CodeInvalidInput,
		"Session date must be in the future",
		http.StatusBadRequest,
	)

	ErrProgramClosed = apperror.New(
		apperror.CodeInvalidState,
		"Mentorship program is not accepting participants",
		http.StatusBadRequest,
	)

	ErrMentorAtCapacity = apperror.New(
		apperror.CodeInvalidState,
		"Mentor has reached the maximum number of mentees",
		http.StatusBadRequest,
	)

	ErrRelationshipNotActive = apperror.New(
		apperror.CodeInvalidState,
		"Mentorship relationship is not active",
		http.StatusBadRequest,
	)

	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"Status change is not allowed",
		http.StatusBadRequest,
	)

	ErrNotParticipant = apperror.New(
		apperror.CodeForbidden,
		"User is not part of this mentorship",
		http.StatusForbidden,
	)

	ErrDuplicateRelationship = apperror.New(
		apperror.CodeConflict,
		"An open mentorship already exists for this mentor and mentee",
		http.StatusConflict,
	)
)
