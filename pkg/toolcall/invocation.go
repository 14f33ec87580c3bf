package toolcall

import (
	"encoding/json"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Invocation is a validated tool call: the name matches a catalog entry and
// every required parameter is present and type-correct. Unknown extra keys
// are preserved for forward compatibility.
type Invocation struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Decode unmarshals the arguments into v
func (i *Invocation) Decode(v any) error {
	data, err := json.Marshal(i.Arguments)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (i *Invocation) String() string {
	data, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
