// internal/rules/load.go
package rules

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	apperrors "auswo-calculator/internal/common/errors"
)

// Load reads and validates the rule table at path. Any failure is a
// configuration error: the caller must not start serving with a nil table.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewRulesLoadFailedError(path, err)
	}
	return Parse(path, data)
}

// Parse validates raw rule-table JSON against the schema and decodes it.
// Split from Load so tests can exercise malformed tables without files.
func Parse(path string, data []byte) (*Table, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(tableSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, apperrors.NewRulesLoadFailedError(path, err)
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, apperrors.NewRulesSchemaInvalidError(strings.Join(msgs, "; "))
	}

	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, apperrors.NewRulesLoadFailedError(path, err)
	}

	return &table, nil
}
