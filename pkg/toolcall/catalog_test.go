package toolcall_test

import (
	"strings"
	"testing"

	// Packages
	taskrelay "github.com/mutablelogic/go-taskrelay"
	toolcall "github.com/mutablelogic/go-taskrelay/pkg/toolcall"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Catalog_001(t *testing.T) {
	assert := assert.New(t)

	catalog, err := toolcall.NewCatalog(
		toolcall.Definition{Name: "beta"},
		toolcall.Definition{Name: "alpha"},
	)
	if assert.NoError(err) {
		// Registration order is preserved, not sorted
		assert.Equal([]string{"beta", "alpha"}, catalog.Names())

		def, exists := catalog.Lookup("alpha")
		assert.True(exists)
		assert.Equal("alpha", def.Name)

		// Lookup is case-sensitive
		_, exists = catalog.Lookup("Alpha")
		assert.False(exists)
	}
}

func Test_Catalog_002(t *testing.T) {
	assert := assert.New(t)

	// Duplicate names are rejected
	_, err := toolcall.NewCatalog(
		toolcall.Definition{Name: "alpha"},
		toolcall.Definition{Name: "alpha"},
	)
	assert.ErrorIs(err, taskrelay.ErrBadParameter)
}

func Test_Catalog_003(t *testing.T) {
	assert := assert.New(t)

	// Invalid definitions are rejected at construction
	_, err := toolcall.NewCatalog(toolcall.Definition{Name: ""})
	assert.ErrorIs(err, taskrelay.ErrBadParameter)

	_, err = toolcall.NewCatalog(toolcall.Definition{
		Name: "alpha",
		Parameters: map[string]toolcall.Param{
			"mode": {Type: toolcall.TypeEnum},
		},
	})
	assert.ErrorIs(err, taskrelay.ErrBadParameter)

	_, err = toolcall.NewCatalog(toolcall.Definition{
		Name: "alpha",
		Parameters: map[string]toolcall.Param{
			"count": {Type: toolcall.TypeInteger, Enum: []string{"one"}},
		},
	})
	assert.ErrorIs(err, taskrelay.ErrBadParameter)
}

func Test_Catalog_004(t *testing.T) {
	assert := assert.New(t)

	// Schema generation for a definition
	def := toolcall.Definition{
		Name: "add_vikunja_task",
		Parameters: map[string]toolcall.Param{
			"project_id": {Type: toolcall.TypeInteger, Required: true},
			"title":      {Type: toolcall.TypeString, Required: true},
			"labels":     {Type: toolcall.TypeStringArray},
			"mode":       {Type: toolcall.TypeEnum, Enum: []string{"on", "off"}},
		},
	}
	schema, err := def.Schema()
	if assert.NoError(err) {
		assert.Equal("object", schema.Type)
		assert.Equal([]string{"project_id", "title"}, schema.Required)
		assert.Equal("integer", schema.Properties["project_id"].Type)
		assert.Equal("array", schema.Properties["labels"].Type)
		assert.Equal("string", schema.Properties["labels"].Items.Type)
		assert.Equal([]any{"on", "off"}, schema.Properties["mode"].Enum)
	}
}

func Test_File_001(t *testing.T) {
	assert := assert.New(t)

	document := `
tools:
  - name: add_vikunja_task
    description: Add a task
    parameters:
      project_id:
        type: integer
        required: true
      title:
        type: string
        required: true
aliases:
  projectId: project_id
`
	file, err := toolcall.Read(strings.NewReader(document))
	if assert.NoError(err) {
		assert.Len(file.Tools, 1)
		assert.Equal("project_id", file.Aliases["projectId"])

		catalog, err := file.Catalog()
		if assert.NoError(err) {
			assert.Equal([]string{"add_vikunja_task"}, catalog.Names())
		}
	}
}
