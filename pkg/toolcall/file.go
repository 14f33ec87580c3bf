package toolcall

import (
	"io"
	"os"

	// Packages
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// File is a tool catalog document, typically loaded from YAML
type File struct {
	Tools   []Definition      `yaml:"tools"`
	Aliases map[string]string `yaml:"aliases,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Read decodes a catalog document from r
func Read(r io.Reader) (*File, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, err
	}
	return &file, nil
}

// Load reads a catalog document from a file on disk
func Load(path string) (*File, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Read(r)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Catalog constructs the catalog from the document
func (f *File) Catalog() (*Catalog, error) {
	return NewCatalog(f.Tools...)
}
