package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIs_MatchesByCode(t *testing.T) {
	err := NotFound("post not found")

	assert.True(t, Is(err, ErrNotFound))
	assert.False(t, Is(err, ErrValidation))
}

func TestErrorIs_ThroughWrapping(t *testing.T) {
	inner := InvalidNavigation("unknown page: bogus")
	wrapped := fmt.Errorf("navigate: %w", inner)

	assert.True(t, Is(wrapped, ErrInvalidNavigation))

	var domainErr *Error
	assert.True(t, As(wrapped, &domainErr))
	assert.Equal(t, CodeInvalidNavigation, domainErr.Code)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeValidation, http.StatusBadRequest},
		{CodeInvalidNavigation, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeConflict, http.StatusConflict},
		{CodeInvalidState, http.StatusConflict},
		{CodeExternal, http.StatusBadGateway},
		{CodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.code.HTTPStatus(), string(tt.code))
	}
}

func TestWithCause_PreservesCodeAndChain(t *testing.T) {
	cause := New("connection refused")
	err := ErrExternal.WithCause(cause)

	assert.True(t, Is(err, ErrExternal))
	assert.Equal(t, cause, Unwrap(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestWithDetails(t *testing.T) {
	err := Validation("bad day").WithDetails(map[string]int{"day": 42})

	assert.Equal(t, CodeValidation, err.Code)
	assert.NotNil(t, err.Details)
}
