package match

import (
	"strings"

	"example-upgrader/internal/common"
	"example-upgrader/internal/model"
	"example-upgrader/internal/xmltree"
)

// MatchType is the confidence that an output node was sourced from the legacy document.
type MatchType int

const (
	// MatchNone means nothing in the legacy document could be reused.
	MatchNone MatchType = iota
	// MatchPartial means the local name matched in a different version of the namespace.
	MatchPartial
	// MatchExact means local name and full namespace both matched.
	MatchExact
)

const (
	VerdictNone    = "none"
	VerdictPartial = "partial"
	VerdictExact   = "exact"
)

// IndicatorSuffix terminates every serialized indicator name.
const IndicatorSuffix = "Ind"

// String returns a human-readable name for the match type.
func (m MatchType) String() string {
	switch m {
	case MatchNone:
		return VerdictNone
	case MatchPartial:
		return VerdictPartial
	case MatchExact:
		return VerdictExact
	default:
		return common.UnknownStr
	}
}

// Score returns a numeric score for sorting (higher is better).
func (m MatchType) Score() int {
	return int(m)
}

// MarshalYAML renders the match type by name.
func (m MatchType) MarshalYAML() (any, error) {
	return m.String(), nil
}

// Classifier compares expected model names with candidate document nodes.
type Classifier struct {
	scheme VersionScheme
}

// NewClassifier creates a Classifier using the given version scheme.
// A nil scheme selects DefaultVersionScheme.
func NewClassifier(scheme VersionScheme) *Classifier {
	if scheme == nil {
		scheme = DefaultVersionScheme()
	}

	return &Classifier{scheme: scheme}
}

// Classify compares an expected qualified name with a candidate node.
//
// Elements match exactly when local name and namespace are equal, and
// partially when only the base namespaces agree. Attributes ignore namespaces
// and are either exact or not matched at all.
func (c *Classifier) Classify(expected model.QName, candidate xmltree.Node) MatchType {
	switch node := candidate.(type) {
	case *xmltree.Element:
		if node == nil {
			return MatchNone
		}

		return c.classifyElement(expected, node.Name)

	case *xmltree.Attr:
		if node == nil || xmltree.IsNamespaceDecl(node) {
			return MatchNone
		}

		return classifyLocal(expected.Local, node.Name.Local)

	default:
		return MatchNone
	}
}

// ClassifyIndicator compares a model indicator name with a candidate node.
// The name is normalized to carry the "Ind" suffix and namespaces are ignored
// for elements as well as attributes.
func (c *Classifier) ClassifyIndicator(name string, candidate xmltree.Node) MatchType {
	expected := IndicatorName(name)

	switch node := candidate.(type) {
	case *xmltree.Element:
		if node == nil {
			return MatchNone
		}

		return classifyLocal(expected, node.Name.Local)

	case *xmltree.Attr:
		if node == nil || xmltree.IsNamespaceDecl(node) {
			return MatchNone
		}

		return classifyLocal(expected, node.Name.Local)

	default:
		return MatchNone
	}
}

// Scheme returns the version scheme used for partial matches.
func (c *Classifier) Scheme() VersionScheme {
	return c.scheme
}

func (c *Classifier) classifyElement(expected model.QName, actual xmltree.Name) MatchType {
	if expected.Local != actual.Local {
		return MatchNone
	}

	if expected.Namespace == actual.Space {
		return MatchExact
	}

	if c.scheme.BaseNamespace(expected.Namespace) == c.scheme.BaseNamespace(actual.Space) {
		return MatchPartial
	}

	return MatchNone
}

func classifyLocal(expected, actual string) MatchType {
	if expected == actual {
		return MatchExact
	}

	return MatchNone
}

// IndicatorName returns the serialized name of an indicator, appending the
// "Ind" suffix when the model name lacks it.
func IndicatorName(name string) string {
	if strings.HasSuffix(name, IndicatorSuffix) {
		return name
	}

	return name + IndicatorSuffix
}
