/*
prompt renders the system instruction shown to the chat model from the same
catalog the extractor validates against, so the prompt and the validation
schema cannot drift.
*/
package prompt

import (
	"bytes"
	"encoding/json"
	"text/template"

	// Packages
	toolcall "github.com/mutablelogic/go-taskrelay/pkg/toolcall"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const systemTemplate = `You are an assistant that picks exactly one tool to call from the list below. Respond ONLY with a tool call wrapped in {{ .Open }} JSON {{ .Close }} tags, and no other text.

Example:
{{ .Open }} {"name": "add_anylist_item", "arguments": {"list_name": "Grocery", "item_name": "Milk", "quantity": 1}} {{ .Close }}

Tools:
{{ range .Tools }}- {{ .Name }}: {{ .Description }}
  arguments schema: {{ .Schema }}
{{ end }}`

///////////////////////////////////////////////////////////////////////////////
// TYPES

type templateTool struct {
	Name        string
	Description string
	Schema      string
}

type templateContext struct {
	Open  string
	Close string
	Tools []templateTool
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// System renders the system prompt for the given catalog and sentinel pair
func System(catalog *toolcall.Catalog, open, close string) (string, error) {
	context := templateContext{
		Open:  open,
		Close: close,
	}
	for _, def := range catalog.Definitions() {
		schema, err := def.Schema()
		if err != nil {
			return "", err
		}
		data, err := json.Marshal(schema)
		if err != nil {
			return "", err
		}
		context.Tools = append(context.Tools, templateTool{
			Name:        def.Name,
			Description: def.Description,
			Schema:      string(data),
		})
	}

	tmpl, err := template.New("system").Parse(systemTemplate)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, context); err != nil {
		return "", err
	}
	return buf.String(), nil
}
