package companyerrors

import (
	"net/http"

	"go-plastindo/internal/shared/apperror"
)

var (
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company profile has not been set up",
		http.StatusNotFound,
	)
	ErrSlideNotFound = apperror.New(
		apperror.CodeNotFound,
		"Slide not found",
		http.StatusNotFound,
	)
	ErrInvalidSlideID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid slide ID",
		http.StatusBadRequest,
	)
	ErrInvalidImageData = apperror.New(
		apperror.CodeInvalidInput,
		"Image data is not valid base64",
		http.StatusBadRequest,
	)
)
