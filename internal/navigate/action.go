package navigate

import (
	"example-upgrader/internal/hierarchy"
	"example-upgrader/internal/model"
)

// ReferenceElement returns the implicit element an action facet carries for
// its business object reference. Without an explicit reference facet the
// business object's preferred facet is referenced.
func ReferenceElement(action *model.ActionFacet) (*model.Element, error) {
	if action.BusinessObject == nil {
		return nil, model.NewError(model.ErrUnsupportedEntityType, action, "reference without business object")
	}

	var (
		target *model.Facet
		err    error
	)

	if action.ReferenceFacet == model.FacetUnknown {
		target, err = hierarchy.PreferredFacet(action.BusinessObject)
	} else {
		target, err = hierarchy.FacetOfType(action.BusinessObject, action.ReferenceFacet)
	}

	if err != nil {
		return nil, err
	}

	return &model.Element{
		Owner:  action,
		Name:   target.EntityName(),
		Type:   target,
		Repeat: action.ReferenceRepeat,
	}, nil
}

// PayloadFacet returns the facet whose content an action facet's base payload
// contributes: Summary for core objects, Shared for choice objects.
func PayloadFacet(action *model.ActionFacet) (*model.Facet, error) {
	payload := action.BasePayload

	switch payload.Kind {
	case model.OwnerCoreObject:
		return hierarchy.FacetOfType(payload, model.FacetSummary)
	case model.OwnerChoiceObject:
		return hierarchy.FacetOfType(payload, model.FacetShared)
	default:
		return nil, model.NewError(model.ErrUnsupportedEntityType, payload, "base payload must be a core or choice object")
	}
}
