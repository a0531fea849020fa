package errs

import "strings"

// FieldError is a validation failure bound to a single request key.
//
//	{ "field": "firstName", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ActionType tells the client what to do after an error.
type ActionType string

const (
	ActionTypeRedirect ActionType = "redirect"
)

// Action is an optional follow-up instruction attached to an error,
// e.g. sending a vendor who hit a duplicate email back to the login page.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the error type every handler returns to the client.
//
// Code is machine friendly (BAD_REQUEST, USER_ALREADY_EXISTS), Message is
// for humans. Override marks messages that are safe to show verbatim in the
// UI; generic 500s never set it.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
	Action   *Action      `json:"action"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError, so errors.Is(err, &HTTPError{}) reports whether
// err has already been classified for the client.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of e carrying message.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Action:   e.Action,
	}
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
