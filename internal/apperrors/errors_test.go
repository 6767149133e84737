package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Validation("profile", "bad input")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("profile", "missing")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Conflict("vote", "not voted")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Storage("vote", errors.New("down"))))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain error")))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Storage("profile", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestHTTPStatusUnwrapsNestedAppError(t *testing.T) {
	inner := NotFound("profile", "missing")
	wrapped := fmt.Errorf("handling request: %w", inner)

	assert.Equal(t, http.StatusNotFound, HTTPStatus(wrapped))
	assert.True(t, IsNotFound(wrapped))
}

func TestIsCode(t *testing.T) {
	err := Validation("profile", "bad input").WithDetails([]string{"email is required"})

	assert.True(t, IsCode(err, CodeValidationFailed))
	assert.False(t, IsCode(err, CodeNotFound))
	assert.False(t, IsCode(errors.New("plain"), CodeValidationFailed))
}
