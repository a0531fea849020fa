package errs

import (
	"fmt"
	"net/http"
)

// NewUnauthorizedError creates a 401. override controls whether the UI may
// show message as-is.
func NewUnauthorizedError(message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnauthorized)),
		Message:  message,
		Status:   http.StatusUnauthorized,
		Override: override,
	}
}

// NewBadRequestError creates a 400.
//
// code replaces the default BAD_REQUEST when non-nil; errors carries the
// per-field failures and action an optional client instruction.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
		Action:   action,
	}
}

// NewMissingFieldError creates the 400 returned when a required registration
// key is absent or blank. Only the first missing key is reported.
func NewMissingFieldError(field string) *HTTPError {
	return NewBadRequestError(
		fmt.Sprintf("Missing required field: %s", field),
		true,
		nil,
		[]FieldError{{Field: field, Error: "is required"}},
		nil,
	)
}

// NewNotFoundError creates a 404, optionally with a custom code.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewTooManyRequestsError creates the 429 returned by the register rate limiter.
func NewTooManyRequestsError(message string) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)),
		Message:  message,
		Status:   http.StatusTooManyRequests,
		Override: true,
	}
}

// NewInternalServerError creates the generic 500. The real cause is only
// ever logged server-side.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}
