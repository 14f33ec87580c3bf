/*
toolcall turns a model's raw reply into a validated tool invocation. The
catalog of tool definitions is fixed at startup; the extractor is maximally
permissive about prose around the sentinel-wrapped payload and maximally
strict about the payload itself.
*/
package toolcall

import (
	"encoding/json"
	"sort"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	taskrelay "github.com/mutablelogic/go-taskrelay"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ParamType is the type tag for a tool parameter
type ParamType string

// Param describes one declared tool parameter
type Param struct {
	Type        ParamType `json:"type" yaml:"type"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool      `json:"required,omitempty" yaml:"required,omitempty"`
	Enum        []string  `json:"enum,omitempty" yaml:"enum,omitempty"`
}

// Definition is a static catalog entry for one tool
type Definition struct {
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Parameters  map[string]Param `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	TypeString      ParamType = "string"
	TypeInteger     ParamType = "integer"
	TypeStringArray ParamType = "array"
	TypeEnum        ParamType = "enum"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Validate checks the definition for a usable name, known parameter types
// and enum value sets
func (d Definition) Validate() error {
	if d.Name == "" {
		return taskrelay.ErrBadParameter.With("missing tool name")
	}
	for name, param := range d.Parameters {
		if name == "" {
			return taskrelay.ErrBadParameter.Withf("%s: empty parameter name", d.Name)
		}
		switch param.Type {
		case TypeString, TypeInteger, TypeStringArray:
			if len(param.Enum) > 0 {
				return taskrelay.ErrBadParameter.Withf("%s: parameter %q is not an enum", d.Name, name)
			}
		case TypeEnum:
			if len(param.Enum) == 0 {
				return taskrelay.ErrBadParameter.Withf("%s: parameter %q has no enum values", d.Name, name)
			}
		default:
			return taskrelay.ErrBadParameter.Withf("%s: parameter %q has unknown type %q", d.Name, name, param.Type)
		}
	}
	return nil
}

// Schema returns the JSON schema for the tool arguments
func (d Definition) Schema() (*jsonschema.Schema, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	properties := make(map[string]*jsonschema.Schema, len(d.Parameters))
	required := make([]string, 0, len(d.Parameters))
	for _, name := range d.paramNames() {
		param := d.Parameters[name]
		property := &jsonschema.Schema{
			Description: param.Description,
		}
		switch param.Type {
		case TypeString:
			property.Type = "string"
		case TypeInteger:
			property.Type = "integer"
		case TypeStringArray:
			property.Type = "array"
			property.Items = &jsonschema.Schema{Type: "string"}
		case TypeEnum:
			property.Type = "string"
			property.Enum = make([]any, 0, len(param.Enum))
			for _, value := range param.Enum {
				property.Enum = append(property.Enum, value)
			}
		}
		properties[name] = property
		if param.Required {
			required = append(required, name)
		}
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// paramNames returns declared parameter names in stable order
func (d Definition) paramNames() []string {
	names := make([]string, 0, len(d.Parameters))
	for name := range d.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (d Definition) String() string {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
