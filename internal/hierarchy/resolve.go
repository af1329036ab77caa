package hierarchy

import (
	"example-upgrader/internal/model"
)

// Structure returns the navigable member a referenced type expands to.
// Owners resolve to their preferred facet; simple types return nil.
func Structure(t model.Type) (model.Member, error) {
	switch tt := t.(type) {
	case nil:
		return nil, model.NewError(model.ErrUnsupportedEntityType, nil, "missing type reference")
	case *model.SimpleType:
		return nil, nil
	case *model.FacetOwner:
		return PreferredFacet(tt)
	case *model.Facet:
		return tt, nil
	case *model.ListFacet:
		return tt, nil
	case *model.Alias:
		return tt, nil
	case *model.ActionFacet:
		return tt, nil
	case *model.ValueWithAttributes:
		return tt, nil
	default:
		return nil, model.NewError(model.ErrUnsupportedEntityType, t, "type %T", t)
	}
}

// GlobalElementName returns the qualified name of the global element emitted
// for a structural member.
func GlobalElementName(m model.Member) (model.QName, error) {
	switch m.(type) {
	case *model.Facet, *model.ListFacet, *model.Alias, *model.ActionFacet,
		*model.ExtensionPointFacet, *model.ValueWithAttributes:
	default:
		return model.QName{}, model.NewError(model.ErrUnsupportedEntityType, m, "not a global element")
	}

	name := model.QualifiedName(m)
	if name.IsZero() {
		return model.QName{}, model.NewError(model.ErrMissingGlobalElementName, m, "cannot derive element name")
	}

	return name, nil
}

// ElementName returns the name of the child element an element field emits,
// together with the member its content expands to (nil for simple leaves).
// Leaves are named after the field; complex references take the global element
// name of the referenced structure.
func ElementName(e *model.Element) (model.QName, model.Member, error) {
	if e.Reference {
		return leafName(e, nil)
	}

	structure, err := Structure(e.Type)
	if err != nil {
		return model.QName{}, nil, err
	}

	if vwa, ok := structure.(*model.ValueWithAttributes); ok || structure == nil {
		return leafName(e, vwa)
	}

	name, err := GlobalElementName(structure)
	if err != nil {
		return model.QName{}, nil, err
	}

	return name, structure, nil
}

func leafName(e *model.Element, vwa *model.ValueWithAttributes) (model.QName, model.Member, error) {
	name := model.QualifiedName(e)
	if name.IsZero() {
		return model.QName{}, nil, model.NewError(model.ErrMissingGlobalElementName, e, "unnamed element")
	}

	if vwa == nil {
		return name, nil, nil
	}

	return name, vwa, nil
}
