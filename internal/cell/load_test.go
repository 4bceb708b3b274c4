package cell

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLibraryJSON(t *testing.T) {
	lib, err := LoadLibrary(filepath.Join("testdata", "library.json"))
	require.NoError(t, err)

	assert.Equal(t, []string{"and2", "inv", "nand2", "or2"}, lib.Names())

	and2 := lib["and2"]
	assert.Equal(t, 4.0, and2.Area)
	assert.Equal(t, 2.5, and2.Power)
	assert.Equal(t, 1.2, and2.Timing)
	assert.Equal(t, "(& ?x ?y)", and2.Searcher)
	assert.Equal(t, "(and2 ?x ?y)", and2.Applier)
}

func TestLoadLibraryYAML(t *testing.T) {
	lib, err := LoadLibrary(filepath.Join("testdata", "library.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"and2", "inv"}, lib.Names())
	assert.Equal(t, "(! ?x)", lib["inv"].Searcher)
}

func TestLoadLibraryErrors(t *testing.T) {
	_, err := LoadLibrary(filepath.Join("testdata", "does_not_exist.json"))
	assert.Error(t, err)

	_, err = LoadLibrary(filepath.Join("testdata", "library.toml"))
	assert.ErrorContains(t, err, "unsupported extension")
}

func TestLoadLibrarySchemaViolation(t *testing.T) {
	_, err := LoadLibrary(filepath.Join("testdata", "negative_area.json"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "schema validation")
}

func TestParseJSONMissingField(t *testing.T) {
	// No searcher pattern: the engine could not build a rewrite from this.
	doc := []byte(`[{"name":"and2","area":1,"power":1,"timing":1,"applier":"(and2 ?x ?y)"}]`)

	_, err := ParseJSON(doc)
	assert.Error(t, err)
}

func TestParseJSONDuplicateCell(t *testing.T) {
	doc := []byte(`[
		{"name":"inv","area":1,"power":1,"timing":1,"searcher":"(! ?x)","applier":"(inv ?x)"},
		{"name":"inv","area":2,"power":2,"timing":2,"searcher":"(! ?y)","applier":"(inv ?y)"}
	]`)

	_, err := ParseJSON(doc)
	require.Error(t, err)

	var ve ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, ErrDuplicateCell, ve.Code)
}

func TestParseJSONEmptyLibrary(t *testing.T) {
	_, err := ParseJSON([]byte(`[]`))
	require.Error(t, err)

	var ve ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, ErrEmptyLibrary, ve.Code)
}

func TestParseYAMLMalformed(t *testing.T) {
	_, err := ParseYAML([]byte("::\n  - not yaml"))
	assert.Error(t, err)
}
