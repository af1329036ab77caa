package modelfile

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// File is the root of a YAML model file.
type File struct {
	Version string `yaml:"version"`
	// Namespace is the default namespace of unprefixed definitions.
	Namespace string `yaml:"namespace,omitempty"`
	// Namespaces binds prefixes to namespace URIs. "xsd" is always bound.
	Namespaces      map[string]string   `yaml:"namespaces,omitempty"`
	SimpleTypes     []SimpleTypeDef     `yaml:"simple_types,omitempty"`
	ValueTypes      []ValueTypeDef      `yaml:"value_types,omitempty"`
	Objects         []ObjectDef         `yaml:"objects,omitempty"`
	ActionFacets    []ActionFacetDef    `yaml:"action_facets,omitempty"`
	ExtensionPoints []ExtensionPointDef `yaml:"extension_points,omitempty"`
}

// SimpleTypeDef declares a simple type.
type SimpleTypeDef struct {
	Name        string   `yaml:"name"`
	Base        string   `yaml:"base,omitempty"`
	Enumeration []string `yaml:"enumeration,omitempty"`
	Example     string   `yaml:"example,omitempty"`
}

// ValueTypeDef declares a value-with-attributes type.
type ValueTypeDef struct {
	Name       string         `yaml:"name"`
	Parent     string         `yaml:"parent,omitempty"`
	Attributes []AttributeDef `yaml:"attributes,omitempty"`
	Indicators []IndicatorDef `yaml:"indicators,omitempty"`
	Example    string         `yaml:"example,omitempty"`
}

// ObjectDef declares a facet owner.
type ObjectDef struct {
	Kind    string     `yaml:"kind"` // business, core, choice or operation
	Name    string     `yaml:"name"`
	Extends string     `yaml:"extends,omitempty"`
	Roles   []string   `yaml:"roles,omitempty"`
	Aliases []string   `yaml:"aliases,omitempty"`
	Facets  []FacetDef `yaml:"facets,omitempty"`
}

// FacetDef declares one facet of an owner.
type FacetDef struct {
	Type    string `yaml:"type"`
	Context string `yaml:"context,omitempty"`
	Label   string `yaml:"label,omitempty"`
	// Parent names a contextual facet of the same owner as "type:label".
	Parent     string         `yaml:"parent,omitempty"`
	Attributes []AttributeDef `yaml:"attributes,omitempty"`
	Indicators []IndicatorDef `yaml:"indicators,omitempty"`
	Elements   []ElementDef   `yaml:"elements,omitempty"`
}

// AttributeDef declares an attribute.
type AttributeDef struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	Mandatory bool   `yaml:"mandatory,omitempty"`
	Example   string `yaml:"example,omitempty"`
}

// IndicatorDef declares an indicator.
type IndicatorDef struct {
	Name    string `yaml:"name"`
	Element bool   `yaml:"element,omitempty"`
}

// ElementDef declares an element.
type ElementDef struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	Repeat    Repeat `yaml:"repeat,omitempty"`
	Reference bool   `yaml:"reference,omitempty"`
	Example   string `yaml:"example,omitempty"`
}

// ActionFacetDef declares a resource action facet.
type ActionFacetDef struct {
	Name            string `yaml:"name"`
	BusinessObject  string `yaml:"business_object,omitempty"`
	Reference       string `yaml:"reference,omitempty"` // none, optional or required
	ReferenceFacet  string `yaml:"reference_facet,omitempty"`
	ReferenceRepeat int    `yaml:"reference_repeat,omitempty"`
	BasePayload     string `yaml:"base_payload,omitempty"`
}

// ExtensionPointDef declares an extension point facet.
type ExtensionPointDef struct {
	Namespace  string         `yaml:"namespace,omitempty"`
	Extends    string         `yaml:"extends"` // facet reference, e.g. "ord:Order#summary"
	Attributes []AttributeDef `yaml:"attributes,omitempty"`
	Indicators []IndicatorDef `yaml:"indicators,omitempty"`
	Elements   []ElementDef   `yaml:"elements,omitempty"`
}

// Repeat is an element's maximum occurrence: a number or "*" for unbounded.
type Repeat int

// Unbounded is the Repeat value of "*".
const Unbounded Repeat = -1

// UnmarshalYAML implements custom YAML unmarshaling for Repeat.
// Accepts an integer or "*".
func (r *Repeat) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected repeat count, got %v", node.Kind)
	}

	if node.Value == "*" || node.Value == "unbounded" {
		*r = Unbounded
		return nil
	}

	n, err := strconv.Atoi(node.Value)
	if err != nil {
		return fmt.Errorf("invalid repeat %q: %w", node.Value, err)
	}

	*r = Repeat(n)

	return nil
}

// MarshalYAML implements custom YAML marshaling for Repeat.
func (r Repeat) MarshalYAML() (any, error) {
	if r == Unbounded {
		return "*", nil
	}

	return int(r), nil
}
