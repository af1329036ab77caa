// Package model defines the versioned business-object entity graph consumed
// by the example upgrader.
//
// Key types:
//   - FacetOwner: business, core and choice objects and operations
//   - Facet: one field-group level (ID, Summary, Detail, contextual facets ...)
//   - ListFacet, Alias, ExtensionPointFacet, ActionFacet
//   - Attribute, Indicator, Element: leaf and reference fields
//
// Member is a closed union: only the types in this package implement it, and
// the navigator dispatches on it with a type switch.
package model
