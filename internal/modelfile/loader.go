package modelfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"example-upgrader/internal/model"
)

// SupportedVersion is the model file format version this loader understands.
const SupportedVersion = "1"

// LoadFile loads, parses and resolves a YAML model file from the given path.
func LoadFile(path string) (*Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, err
	}

	return Resolve(f)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = SupportedVersion
	}

	if f.Namespaces == nil {
		f.Namespaces = make(map[string]string)
	}

	if _, ok := f.Namespaces[XSDPrefix]; !ok {
		f.Namespaces[XSDPrefix] = XSDNamespace
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal model: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write model file %s: %w", path, err)
	}

	return nil
}

// Loaded is a resolved model together with the file it was resolved from.
type Loaded struct {
	File  *File
	Model *model.Model
	r     *resolver
}

// Lookup resolves a type reference such as "ord:Order", "ord:Order#detail",
// "ord:Order#custom:VIP", "ord:Core#list" or "ord:OrderAlias#detail".
func (l *Loaded) Lookup(ref string) (model.Type, error) {
	return l.r.resolveType(ref)
}

// Root resolves a reference to a navigable member. Facet owners resolve to
// their preferred facet via the given function.
func (l *Loaded) Root(ref string, preferred func(*model.FacetOwner) (*model.Facet, error)) (model.Member, error) {
	t, err := l.Lookup(ref)
	if err != nil {
		return nil, err
	}

	switch tt := t.(type) {
	case *model.FacetOwner:
		return preferred(tt)
	case model.Member:
		return tt, nil
	default:
		return nil, fmt.Errorf("%s is a simple type and cannot be an example root", ref)
	}
}
