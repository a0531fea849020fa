package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rk2835/aquahub/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var uniqueKeyConstraint = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// ErrCode reports the Code of err, converting a raw *pgconn.PgError when
// needed. Anything else is Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return MapCode(pgErr.Code)
	}
	return Other
}

// IsUniqueViolation reports whether err was caused by a unique constraint.
func IsUniqueViolation(err error) bool {
	return ErrCode(err) == UniqueViolation
}

// ConvertPgError converts a raw pgx server error into an Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode builds <DOMAIN>_<ACTION>, e.g. users + unique violation
// gives USER_ALREADY_EXISTS.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidText, NumericOutOfRange:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		// "identifier" is swapped for the column name by HandleError when
		// the constraint name reveals it.
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case InvalidText, NumericOutOfRange:
		return "One or more values have an invalid format"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName prefers the base of an *_id column, then the singular table
// name, then "record".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

// humanizeText turns "customer_profile" into "Customer Profile".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation recovers the column from constraint names
// shaped like unique_<table>_<column> or <table>_<column>_key.
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueKeyConstraint.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError converts a repository error into an *errs.HTTPError.
//
//   - *errs.HTTPError passes through unchanged
//   - constraint violations become 400s with a generated code
//   - no rows becomes 404
//   - everything else becomes a generic 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			return errs.NewBadRequestError(userMessage, false, &errorCode, nil, nil)

		case UniqueViolation:
			columnName := extractColumnForUniqueViolation(sqlErr.ConstraintName)
			if columnName != "" {
				userMessage = strings.ReplaceAll(userMessage, "identifier", humanizeText(columnName))
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, fieldErrors, nil)

		case CheckViolation, InvalidText, NumericOutOfRange:
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		default:
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
