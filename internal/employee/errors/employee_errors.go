package employeeerrors

import (
	"net/http"

	"go-plastindo/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrAttendanceNumberExists = apperror.New(
		apperror.CodeConflict,
		"Attendance number already in use",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid hire_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidBirthDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid birth_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
