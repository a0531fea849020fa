// Package validation binds request payloads and turns validation failures
// into client errors.
//
// Payload types implement Validatable. Required-field failures are reported
// one at a time, in field order, as "Missing required field: <name>"; every
// other failure is reported as a list of field errors.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rk2835/aquahub/internal/errs"
)

type Validatable interface {
	Validate() error
}

// CustomValidationError is a failure that struct tags cannot express.
type CustomValidationError struct {
	Field   string
	Message string
}

type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// MissingFieldError reports the first required field that was absent or blank.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return "Missing required field: " + e.Field
}

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct runs tag validation on v. The first failed required rule wins
// and is returned as a MissingFieldError.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fe := range validationErrors {
			if fe.Tag() == "required" {
				return MissingFieldError{Field: fe.Field()}
			}
		}
	}

	return err
}

// BindAndValidate decodes the request into payload and validates it.
// Failures come back as *errs.HTTPError with status 400.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), false, nil, nil, nil)
	}

	if err := payload.Validate(); err != nil {
		return toHTTPError(err)
	}

	return nil
}

func bindErrorMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msg, ok := he.Message.(string); ok && msg != "" {
			return "Invalid request body: " + msg
		}
	}
	return "Invalid request body"
}

func toHTTPError(err error) error {
	var missing MissingFieldError
	if errors.As(err, &missing) {
		return errs.NewMissingFieldError(missing.Field)
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	msg, fieldErrors := extractValidationError(err)
	return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, ce := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: ce.Field,
				Error: ce.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Validation failed", []errs.FieldError{{Field: "body", Error: err.Error()}}
	}

	for _, fe := range validationErrors {
		var msg string

		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "min":
			if fe.Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", fe.Param())
			}
		case "max":
			if fe.Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", fe.Param())
			}
		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", fe.Param())
		case "email":
			msg = "must be a valid email address"
		case "datetime":
			msg = fmt.Sprintf("must be a date in %s format", dateLayoutLabel(fe.Param()))
		case "dive":
			msg = "some items are invalid"
		default:
			if fe.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", fe.Field(), fe.Tag(), fe.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", fe.Field(), fe.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: fieldPath(fe),
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}

// fieldPath drops the root struct name from the namespace, so
// "VendorRegistration.services[0].pricePerLiter" becomes "services[0].pricePerLiter".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func dateLayoutLabel(layout string) string {
	if layout == "2006-01-02" {
		return "YYYY-MM-DD"
	}
	return layout
}

// TrimStrings trims surrounding whitespace from every string reachable
// from ptr through struct fields, pointers and slices. Fields tagged
// `trim:"-"` keep their value byte for byte unless it is only whitespace,
// in which case they are cleared so that a required check still fails.
func TrimStrings(ptr any) {
	trimValue(reflect.ValueOf(ptr))
}

func trimValue(v reflect.Value) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			trimValue(v.Elem())
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			field := v.Type().Field(i)
			switch {
			case !field.IsExported():
			case field.Tag.Get("trim") == "-":
				clearBlank(v.Field(i))
			default:
				trimValue(v.Field(i))
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			trimValue(v.Index(i))
		}
	case reflect.String:
		if v.CanSet() {
			v.SetString(strings.TrimSpace(v.String()))
		}
	}
}

func clearBlank(v reflect.Value) {
	if v.Kind() == reflect.String && v.CanSet() && strings.TrimSpace(v.String()) == "" {
		v.SetString("")
	}
}
