package model

// ExtensionRegistry looks up the extension point facets that patch a facet level.
type ExtensionRegistry interface {
	ExtensionPointsFor(facet *Facet) []*ExtensionPointFacet
}

// Model is a fully materialized entity graph. It must not be modified while
// an upgrade is running.
type Model struct {
	SimpleTypes     []*SimpleType
	ValueTypes      []*ValueWithAttributes
	Owners          []*FacetOwner
	ActionFacets    []*ActionFacet
	ExtensionPoints []*ExtensionPointFacet
}

// ExtensionPointsFor returns the extension points targeting the facet, in declaration order.
func (m *Model) ExtensionPointsFor(facet *Facet) []*ExtensionPointFacet {
	var result []*ExtensionPointFacet

	for _, ep := range m.ExtensionPoints {
		if ep.Extends == facet {
			result = append(result, ep)
		}
	}

	return result
}

// Owner returns the facet owner with the given qualified name, or nil.
func (m *Model) Owner(name QName) *FacetOwner {
	for _, o := range m.Owners {
		if QualifiedName(o) == name {
			return o
		}
	}

	return nil
}

// NoExtensions is an ExtensionRegistry with no registered extension points.
type NoExtensions struct{}

// ExtensionPointsFor always returns nil.
func (NoExtensions) ExtensionPointsFor(*Facet) []*ExtensionPointFacet {
	return nil
}
