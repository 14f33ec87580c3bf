package toolcall

import (
	"encoding/json"

	// Packages
	taskrelay "github.com/mutablelogic/go-taskrelay"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Catalog is an immutable-after-construction collection of tool definitions
// with unique names
type Catalog struct {
	defs  map[string]Definition
	names []string
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewCatalog creates a catalog from the given definitions.
// Returns an error if any definition is invalid or has a duplicate name.
func NewCatalog(defs ...Definition) (*Catalog, error) {
	catalog := &Catalog{
		defs: make(map[string]Definition, len(defs)),
	}
	if err := catalog.register(defs...); err != nil {
		return nil, err
	}
	return catalog, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Lookup returns the definition with the given name. The match is
// case-sensitive and exact.
func (c *Catalog) Lookup(name string) (Definition, bool) {
	def, exists := c.defs[name]
	return def, exists
}

// Definitions returns all definitions in registration order
func (c *Catalog) Definitions() []Definition {
	result := make([]Definition, 0, len(c.names))
	for _, name := range c.names {
		result = append(result, c.defs[name])
	}
	return result
}

// Names returns all tool names in registration order
func (c *Catalog) Names() []string {
	result := make([]string, len(c.names))
	copy(result, c.names)
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Catalog) register(defs ...Definition) error {
	for _, def := range defs {
		if err := def.Validate(); err != nil {
			return err
		}
		if _, exists := c.defs[def.Name]; exists {
			return taskrelay.ErrBadParameter.Withf("duplicate tool name: %q", def.Name)
		}
		c.defs[def.Name] = def
		c.names = append(c.names, def.Name)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c *Catalog) String() string {
	data, err := json.MarshalIndent(c.Definitions(), "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
