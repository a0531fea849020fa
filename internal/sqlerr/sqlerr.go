// Package sqlerr translates PostgreSQL driver errors into API errors.
//
// The users table carries the users_email_key unique constraint; a
// duplicate sign-up surfaces here as SQLSTATE 23505 and leaves as a 400
// with code USER_ALREADY_EXISTS.
package sqlerr

// Code is a coarse category of database failure.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	ExclusionViolation  Code = "exclusion_violation"
	InvalidText         Code = "invalid_text_representation"
	NumericOutOfRange   Code = "numeric_value_out_of_range"
	ConnectionFailure   Code = "connection_failure"
	QueryCanceled       Code = "query_canceled"
)

// Severity mirrors the severity field of a PostgreSQL error report.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// Error is a driver-independent view of a PostgreSQL error.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return string(e.Severity) + ": " + e.Message + " (SQLSTATE " + e.DatabaseCode + ")"
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// sqlStateCodes maps SQLSTATE values to Code. Class 08 (connection
// exceptions) is handled by prefix in MapCode.
var sqlStateCodes = map[string]Code{
	"23502": NotNullViolation,
	"23503": ForeignKeyViolation,
	"23505": UniqueViolation,
	"23514": CheckViolation,
	"23P01": ExclusionViolation,
	"22P02": InvalidText,
	"22003": NumericOutOfRange,
	"57014": QueryCanceled,
}

// MapCode maps a SQLSTATE to a Code.
func MapCode(sqlState string) Code {
	if code, ok := sqlStateCodes[sqlState]; ok {
		return code
	}
	if len(sqlState) == 5 && sqlState[:2] == "08" {
		return ConnectionFailure
	}
	return Other
}

// MapSeverity maps the severity string reported by the server.
func MapSeverity(severity string) Severity {
	switch Severity(severity) {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return Severity(severity)
	default:
		return SeverityError
	}
}
