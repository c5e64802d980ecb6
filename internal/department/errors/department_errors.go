package departmenterrors

import (
	"net/http"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)

	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid department ID",
		http.StatusBadRequest,
	)

	ErrDepartmentNameTaken = apperror.New(
		apperror.CodeConflict,
		"Department with this name already exists in the company",
		http.StatusConflict,
	)

	ErrParentNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Parent department does not belong to this company",
		http.StatusBadRequest,
	)

	ErrHasSubDepartments = apperror.New(
		apperror.CodeInvalidState,
		"Cannot delete department with active sub-departments",
		http.StatusBadRequest,
	)

	ErrAlreadyMember = apperror.New(
		apperror.CodeConflict,
		"User is already in this department",
		http.StatusConflict,
	)

	ErrMemberNotFound = apperror.New(
		apperror.CodeNotFound,
		"User is not in this department",
		http.StatusNotFound,
	)
)
