package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "TOO_MANY_REQUESTS", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)))
}

func TestNewMissingFieldError(t *testing.T) {
	err := NewMissingFieldError("postalCode")

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.Equal(t, "Missing required field: postalCode", err.Error())
	require.Len(t, err.Errors, 1)
	assert.Equal(t, FieldError{Field: "postalCode", Error: "is required"}, err.Errors[0])
}

func TestNewBadRequestError_CustomCode(t *testing.T) {
	code := "USER_ALREADY_EXISTS"
	err := NewBadRequestError("A User with this Email already exists", true, &code, nil, nil)

	assert.Equal(t, code, err.Code)
	assert.True(t, err.Override)
}

func TestHTTPError_IsMatchesWrapped(t *testing.T) {
	wrapped := fmt.Errorf("register customer: %w", NewInternalServerError())

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.False(t, httpErr.Override)
}

func TestHTTPError_WithMessageCopies(t *testing.T) {
	base := NewUnauthorizedError("Unauthorized", false)
	custom := base.WithMessage("Invalid email or password")

	assert.Equal(t, "Unauthorized", base.Message)
	assert.Equal(t, "Invalid email or password", custom.Message)
	assert.Equal(t, base.Status, custom.Status)
}
