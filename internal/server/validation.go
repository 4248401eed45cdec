// internal/server/validation.go
package server

import (
	"github.com/xeipuuv/gojsonschema"
)

// calcRequestSchema enforces the structural contract the engine assumes:
// required fields, enum membership, and numeric ranges. The engine itself
// does not re-validate these.
const calcRequestSchema = `{
  "$schema": "http://json-schema.org/draft-04/schema#",
  "type": "object",
  "required": ["visa", "age", "english", "education", "work_experience"],
  "properties": {
    "visa": {"type": "string", "enum": ["189", "190", "491"]},
    "age": {"type": "integer", "minimum": 0, "maximum": 100},
    "english": {
      "type": "object",
      "required": ["test"],
      "properties": {
        "test": {"type": "string", "enum": ["ielts", "pte"]},
        "overall": {"type": "number", "minimum": 0},
        "listening": {"type": "number", "minimum": 0},
        "reading": {"type": "number", "minimum": 0},
        "writing": {"type": "number", "minimum": 0},
        "speaking": {"type": "number", "minimum": 0}
      }
    },
    "education": {
      "type": "string",
      "enum": ["phd", "master", "bachelor", "diploma", "trade"]
    },
    "work_experience": {
      "type": "object",
      "properties": {
        "overseas_years": {"type": "integer", "minimum": 0},
        "aus_years": {"type": "integer", "minimum": 0}
      }
    },
    "australia_study": {
      "type": "object",
      "properties": {
        "completed": {"type": "boolean"},
        "regional": {"type": "boolean"}
      }
    },
    "professional_year": {"type": "boolean"},
    "naati": {"type": "boolean"},
    "partner": {
      "type": "string",
      "enum": ["single", "skilled", "english_only", "none"]
    }
  }
}`

var compiledCalcSchema = gojsonschema.NewStringLoader(calcRequestSchema)

// validateCalcRequest checks a raw request body against the profile schema
// and returns field-level errors for anything out of contract.
func validateCalcRequest(body []byte) ([]FieldError, error) {
	result, err := gojsonschema.Validate(compiledCalcSchema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, err
	}

	if result.Valid() {
		return nil, nil
	}

	fields := make([]FieldError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		fields = append(fields, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return fields, nil
}
