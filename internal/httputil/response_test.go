package httputil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/accounts/internal/errors"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestHandleErrorGin(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		statusCode    int
		expectedError string
	}{
		{
			name:          "not found",
			err:           apperrors.Wrap(apperrors.ErrNotFound, "user not found"),
			statusCode:    http.StatusNotFound,
			expectedError: "not_found",
		},
		{
			name:          "conflict",
			err:           apperrors.Wrap(apperrors.ErrConflict, "email taken"),
			statusCode:    http.StatusConflict,
			expectedError: "conflict",
		},
		{
			name:          "invalid input",
			err:           apperrors.Wrap(apperrors.ErrInvalidInput, "bad payload"),
			statusCode:    http.StatusUnprocessableEntity,
			expectedError: "invalid_input",
		},
		{
			name:          "unauthorized",
			err:           apperrors.Wrap(apperrors.ErrUnauthorized, "invalid token"),
			statusCode:    http.StatusUnauthorized,
			expectedError: "unauthorized",
		},
		{
			name: "unauthorized chain carrying a not-found cause",
			err: errors.Join(
				apperrors.Wrap(apperrors.ErrUnauthorized, "invalid credentials"),
				apperrors.Wrap(apperrors.ErrNotFound, "user not found"),
			),
			statusCode:    http.StatusUnauthorized,
			expectedError: "unauthorized",
		},
		{
			name:          "forbidden",
			err:           apperrors.Wrap(apperrors.ErrForbidden, "no access"),
			statusCode:    http.StatusForbidden,
			expectedError: "forbidden",
		},
		{
			name:          "unknown error",
			err:           errors.New("driver crashed"),
			statusCode:    http.StatusInternalServerError,
			expectedError: "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext()
			HandleErrorGin(c, tt.err, nil)

			assert.Equal(t, tt.statusCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedError)
		})
	}
}

func TestHandleErrorGin_NilError(t *testing.T) {
	c, w := newTestContext()
	HandleErrorGin(c, nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestHandleBadRequestGin(t *testing.T) {
	c, w := newTestContext()
	HandleBadRequestGin(c, errors.New("malformed JSON"), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bad_request")
	assert.Contains(t, w.Body.String(), "malformed JSON")
}

func TestHandleValidationErrorGin(t *testing.T) {
	c, w := newTestContext()
	HandleValidationErrorGin(c, errors.New("username is required"), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")
	assert.Contains(t, w.Body.String(), "username is required")
}
