// internal/server/models.go
package server

import apperrors "auswo-calculator/internal/common/errors"

// HealthResponse reports liveness plus rule-table identity.
type HealthResponse struct {
	OK           bool   `json:"ok"`
	RulesVersion string `json:"rules_version"`
	UpdatedAt    string `json:"updated_at"`
}

// ErrorResponse is the single error envelope the API emits.
type ErrorResponse struct {
	Error  *apperrors.StandardError `json:"error"`
	Fields []FieldError             `json:"fields,omitempty"`
}

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
