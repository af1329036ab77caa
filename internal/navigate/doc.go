// Package navigate visits model members in schema emission order.
//
// For a facet the order is: inherited attributes, inherited indicators that
// are not published as elements, then elements level by level with extension
// point facets interleaved at level boundaries. Elements recurse into the
// structure of their referenced type between VisitElement and VisitElementEnd.
package navigate
