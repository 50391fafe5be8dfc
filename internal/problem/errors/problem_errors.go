package problemerrors

import (
	"net/http"

	"go-plastindo/internal/shared/apperror"
)

var (
	ErrProblemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Problem record not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found for this problem record",
		http.StatusNotFound,
	)
	ErrInvalidProblemID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid problem ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrLevelRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Level is required for warning letters",
		http.StatusBadRequest,
	)
	ErrLevelNotAllowed = apperror.New(
		apperror.CodeInvalidInput,
		"Level only applies to warning letters",
		http.StatusBadRequest,
	)
	ErrAmountRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Amount is required for salary deductions",
		http.StatusBadRequest,
	)
	ErrAmountNotAllowed = apperror.New(
		apperror.CodeInvalidInput,
		"Amount only applies to salary deductions",
		http.StatusBadRequest,
	)
)
