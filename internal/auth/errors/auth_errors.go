package autherrors

import (
	"net/http"

	"go-plastindo/internal/shared/apperror"
)

var (
	// Pesan login gagal sengaja satu dan tetap, tanpa membedakan
	// username salah atau password salah.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Username atau password salah",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)
)
