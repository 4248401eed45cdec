// Package errors provides standardized error handling for the points API.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeRulesLoadFailed    ErrorCode = "RULES_LOAD_FAILED"
	ErrCodeRulesSchemaInvalid ErrorCode = "RULES_SCHEMA_INVALID"

	ErrCodeRequestParseFailed       ErrorCode = "REQUEST_PARSE_FAILED"
	ErrCodeProfileValidationFailed  ErrorCode = "PROFILE_VALIDATION_FAILED"
	ErrCodeEvaluationFailed         ErrorCode = "EVALUATION_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewRulesLoadFailedError signals a fatal rule-table load failure at startup.
func NewRulesLoadFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRulesLoadFailed,
		Message:   "Rule table could not be loaded",
		Details:   fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Timestamp: time.Now().UTC(),
	}
}

// NewRulesSchemaInvalidError signals a structurally invalid rule table.
func NewRulesSchemaInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRulesSchemaInvalid,
		Message:   "Rule table failed schema validation",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewRequestParseFailedError signals an unreadable or non-JSON request body.
func NewRequestParseFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequestParseFailed,
		Message:   "Request body could not be parsed",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileValidationFailedError signals a structurally invalid applicant profile.
func NewProfileValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileValidationFailed,
		Message:   "Applicant profile failed validation",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewEvaluationFailedError signals an unexpected failure inside the scoring
// engine. Evaluation is all-or-nothing: no partial breakdown accompanies it.
func NewEvaluationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeEvaluationFailed,
		Message:   "Score evaluation failed",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Mapping
// ==========================

// httpStatusMapping maps internal error codes to HTTP status codes.
var httpStatusMapping = map[ErrorCode]int{
	ErrCodeRulesLoadFailed:         http.StatusServiceUnavailable,
	ErrCodeRulesSchemaInvalid:      http.StatusServiceUnavailable,
	ErrCodeRequestParseFailed:      http.StatusBadRequest,
	ErrCodeProfileValidationFailed: http.StatusBadRequest,
	ErrCodeEvaluationFailed:        http.StatusBadRequest,
}

// HTTPStatus returns the HTTP status code for an error code.
func HTTPStatus(code ErrorCode) int {
	if status, ok := httpStatusMapping[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// AsStandardError extracts a StandardError from an error chain, wrapping
// unknown errors as evaluation failures.
func AsStandardError(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return NewEvaluationFailedError(err.Error())
}
