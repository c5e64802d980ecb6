package companyerrors

import (
	"net/http"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)

	ErrCompanyAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Company with the same name already exists",
		http.StatusConflict,
	)

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)

	ErrSettingsConflict = apperror.New(
		apperror.CodeConflict,
		"Settings already exist for this company",
		http.StatusConflict,
	)
)

var (
	ErrInvitationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Invitation not found",
		http.StatusNotFound,
	)

	ErrInvalidInvitationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid invitation ID",
		http.StatusBadRequest,
	)

	ErrInvitationAlreadyPending = apperror.New(
		apperror.CodeConflict,
		"User already has a pending invitation for this company",
		http.StatusConflict,
	)

	ErrAlreadyMember = apperror.New(
		apperror.CodeConflict,
		"User is already part of this company",
		http.StatusConflict,
	)

	ErrInvitationNotPending = apperror.New(
		apperror.CodeInvalidState,
		"Invitation is no longer valid",
		http.StatusBadRequest,
	)

	ErrInvitationExpired = apperror.New(
		apperror.CodeInvalidState,
		"Invitation has expired",
		http.StatusBadRequest,
	)

	ErrInvitationEmailMismatch = apperror.New(
		apperror.CodeForbidden,
		"Invitation was issued to a different email",
		http.StatusForbidden,
	)

	ErrInvitationTokenConflict = apperror.New(
		apperror.CodeConflict,
		"Invitation token already in use",
		http.StatusConflict,
	)
)
