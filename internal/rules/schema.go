// internal/rules/schema.go
package rules

// tableSchema is the JSON Schema every rule table must satisfy before it is
// decoded. A table that fails here prevents the process from starting.
const tableSchema = `{
  "$schema": "http://json-schema.org/draft-04/schema#",
  "type": "object",
  "required": [
    "meta", "age", "english", "education", "work_experience",
    "australia_study", "professional_year", "naati", "partner",
    "state_nomination"
  ],
  "definitions": {
    "bucket": {
      "type": "object",
      "required": ["min", "points"],
      "properties": {
        "min": {"type": "number"},
        "max": {"type": "number"},
        "points": {"type": "integer"}
      }
    },
    "bucketList": {
      "type": "array",
      "minItems": 1,
      "items": {"$ref": "#/definitions/bucket"}
    },
    "pointsMap": {
      "type": "object",
      "additionalProperties": {"type": "integer"}
    },
    "fixedPoints": {
      "type": "object",
      "required": ["points"],
      "properties": {
        "points": {"type": "integer"}
      }
    }
  },
  "properties": {
    "meta": {
      "type": "object",
      "required": ["version", "updated_at"],
      "properties": {
        "version": {"type": "string"},
        "updated_at": {"type": "string"}
      }
    },
    "age": {"$ref": "#/definitions/bucketList"},
    "english": {
      "type": "object",
      "required": ["ielts_overall", "pte_overall", "ielts_bands", "pte_bands"],
      "properties": {
        "ielts_overall": {"$ref": "#/definitions/bucketList"},
        "pte_overall": {"$ref": "#/definitions/bucketList"},
        "ielts_bands": {"$ref": "#/definitions/bucketList"},
        "pte_bands": {"$ref": "#/definitions/bucketList"}
      }
    },
    "education": {
      "type": "object",
      "required": ["mapping"],
      "properties": {
        "mapping": {"$ref": "#/definitions/pointsMap"}
      }
    },
    "work_experience": {
      "type": "object",
      "required": ["overseas", "australia", "mode", "cap_points"],
      "properties": {
        "overseas": {"$ref": "#/definitions/bucketList"},
        "australia": {"$ref": "#/definitions/bucketList"},
        "mode": {"type": "string", "enum": ["sum_cap", "max_only"]},
        "cap_points": {"type": "integer"}
      }
    },
    "australia_study": {
      "type": "object",
      "required": ["points", "regional_bonus"],
      "properties": {
        "points": {"type": "integer"},
        "regional_bonus": {"type": "integer"}
      }
    },
    "professional_year": {"$ref": "#/definitions/fixedPoints"},
    "naati": {"$ref": "#/definitions/fixedPoints"},
    "partner": {"$ref": "#/definitions/pointsMap"},
    "state_nomination": {"$ref": "#/definitions/pointsMap"}
  }
}`
