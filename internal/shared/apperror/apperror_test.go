package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"go-plastindo/internal/shared/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error passes through", func(t *testing.T) {
		err := apperror.New(apperror.CodeConflict, "Already exists", http.StatusConflict)

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusConflict, httpErr.Status)
		assert.Equal(t, apperror.CodeConflict, httpErr.Code)
		assert.Equal(t, "Already exists", httpErr.Message)
		assert.Nil(t, httpErr.Details)
	})

	t.Run("wrapped error exposes cause as details", func(t *testing.T) {
		cause := errors.New("invalid byte")
		err := apperror.Wrap(cause, apperror.CodeInvalidInput, "Bad input", http.StatusBadRequest)

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "invalid byte", httpErr.Details)
	})

	t.Run("unknown error hides detail", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.NotContains(t, httpErr.Message, "connection refused")
	})
}

func TestMapValidationError(t *testing.T) {
	apperror.Init()

	type form struct {
		FullName string `json:"full_name" binding:"required"`
	}

	t.Run("required field uses json tag name", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(&form{})
		assert.Error(t, err)

		var vErrs validator.ValidationErrors
		assert.ErrorAs(t, err, &vErrs)

		mapped := apperror.MapValidationError(vErrs)

		var appErr *apperror.AppError
		assert.ErrorAs(t, mapped, &appErr)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
		assert.Contains(t, appErr.Message, "Full Name")
	})

	t.Run("non validation error falls back", func(t *testing.T) {
		mapped := apperror.MapValidationError(errors.New("boom"))

		assert.Equal(t, apperror.ErrInvalidInput, mapped)
	})
}
