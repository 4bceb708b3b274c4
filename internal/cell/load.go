package cell

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadLibrary reads a library file, validates it against the CUE schema,
// and returns the cells keyed by name. The format follows the extension:
// .json, or .yaml/.yml. YAML documents are converted to JSON before
// validation so both formats face the same schema.
func LoadLibrary(path string) (Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load library: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("load library %s: unsupported extension (want .json, .yaml, or .yml)", path)
	}
}

// ParseJSON validates and decodes a JSON library document.
func ParseJSON(data []byte) (Library, error) {
	if errs := ValidateSchema(data); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	var cells []Cell
	if err := json.Unmarshal(data, &cells); err != nil {
		return nil, fmt.Errorf("parse library: %w", err)
	}
	return index(cells)
}

// ParseYAML decodes a YAML library document and validates it through the
// same JSON schema path as ParseJSON.
func ParseYAML(data []byte) (Library, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse library: %w", err)
	}
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("parse library: %w", err)
	}
	return ParseJSON(jsonData)
}

// index keys cells by name, rejecting duplicates and empty libraries.
func index(cells []Cell) (Library, error) {
	if len(cells) == 0 {
		return nil, ValidationError{
			Field:   "library",
			Message: "library must define at least one cell",
			Code:    ErrEmptyLibrary,
		}
	}

	lib := make(Library, len(cells))
	for i, c := range cells {
		if _, exists := lib[c.Name]; exists {
			return nil, ValidationError{
				Field:   fmt.Sprintf("library[%d].name", i),
				Message: fmt.Sprintf("duplicate cell name %q", c.Name),
				Code:    ErrDuplicateCell,
			}
		}
		lib[c.Name] = c
	}
	return lib, nil
}

// validationFailure joins schema violations into one error value.
func validationFailure(errs []ValidationError) error {
	joined := make([]error, len(errs))
	for i, e := range errs {
		joined[i] = e
	}
	return fmt.Errorf("library failed schema validation: %w", errors.Join(joined...))
}
