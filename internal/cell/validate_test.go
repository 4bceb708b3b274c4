package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSchemaAccepts(t *testing.T) {
	doc := []byte(`[
		{"name":"inv","area":1.5,"power":0.9,"timing":0.5,"searcher":"(! ?x)","applier":"(inv ?x)"}
	]`)

	assert.Empty(t, ValidateSchema(doc))
}

func TestValidateSchemaRejectsNegativeCost(t *testing.T) {
	doc := []byte(`[
		{"name":"inv","area":-1,"power":0.9,"timing":0.5,"searcher":"(! ?x)","applier":"(inv ?x)"}
	]`)

	errs := ValidateSchema(doc)
	require.NotEmpty(t, errs)
	assert.Equal(t, ErrSchemaViolation, errs[0].Code)
}

func TestValidateSchemaRejectsEmptyName(t *testing.T) {
	doc := []byte(`[
		{"name":"","area":1,"power":1,"timing":1,"searcher":"(! ?x)","applier":"(inv ?x)"}
	]`)

	errs := ValidateSchema(doc)
	assert.NotEmpty(t, errs)
}

func TestValidateSchemaRejectsMissingField(t *testing.T) {
	doc := []byte(`[{"name":"inv","area":1,"power":1,"timing":1,"searcher":"(! ?x)"}]`)

	errs := ValidateSchema(doc)
	assert.NotEmpty(t, errs)
}

func TestValidateSchemaRejectsGarbage(t *testing.T) {
	errs := ValidateSchema([]byte(`{]`))
	require.NotEmpty(t, errs)
	assert.Equal(t, ErrBadDocument, errs[0].Code)
}

func TestValidateSchemaRejectsNonList(t *testing.T) {
	errs := ValidateSchema([]byte(`{"name":"inv"}`))
	assert.NotEmpty(t, errs)
}
