package cell

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaCUE string

// Validation error codes (E200-E219).
const (
	ErrSchemaViolation = "E200" // data does not satisfy the CUE schema
	ErrBadDocument     = "E201" // data is not parseable at all
	ErrDuplicateCell   = "E202" // two cells share a name
	ErrEmptyLibrary    = "E203" // library has no cells
)

// ValidationError represents a library schema validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Line    int    `json:"line,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] line %d: %s: %s", e.Code, e.Line, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// ValidateSchema checks a JSON library document against the embedded CUE
// schema. Returns all violations found, not just the first.
//
// JSON is a subset of CUE, so the document compiles directly and unifies
// with the #Library definition.
func ValidateSchema(jsonData []byte) []ValidationError {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return []ValidationError{{
			Field:   "schema",
			Message: fmt.Sprintf("internal schema error: %v", err),
			Code:    ErrBadDocument,
		}}
	}
	libraryDef := schema.LookupPath(cue.ParsePath("#Library"))

	doc := ctx.CompileBytes(jsonData, cue.Filename("library.json"))
	if err := doc.Err(); err != nil {
		return cueErrors(err, ErrBadDocument)
	}

	unified := libraryDef.Unify(doc)
	if err := unified.Validate(cue.Concrete(true), cue.Final()); err != nil {
		return cueErrors(err, ErrSchemaViolation)
	}

	return nil
}

// cueErrors converts a CUE error (possibly a list) into ValidationErrors.
func cueErrors(err error, code string) []ValidationError {
	var out []ValidationError
	for _, e := range cueerrors.Errors(err) {
		ve := ValidationError{
			Field:   strings.Join(e.Path(), "."),
			Message: e.Error(),
			Code:    code,
		}
		if pos := e.Position(); pos.IsValid() {
			ve.Line = pos.Line()
		}
		out = append(out, ve)
	}
	if len(out) == 0 {
		out = []ValidationError{{Field: "library", Message: err.Error(), Code: code}}
	}
	return out
}
