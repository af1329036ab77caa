package hierarchy

import (
	"example-upgrader/internal/common"
	"example-upgrader/internal/model"
)

// FacetOfType returns the owner's first facet of the given type.
func FacetOfType(owner *model.FacetOwner, facetType model.FacetType) (*model.Facet, error) {
	if owner == nil {
		return nil, model.NewError(model.ErrFacetNotFound, nil, "no owner for %s facet", facetType)
	}

	if f := lookupFacet(owner, facetType); f != nil {
		return f, nil
	}

	return nil, model.NewError(model.ErrFacetNotFound, owner, "no %s facet", facetType)
}

// HasDeclaredContent returns true if the facet declares any attribute, indicator or element.
func HasDeclaredContent(facet *model.Facet) bool {
	if facet == nil {
		return false
	}

	return !common.IsEmpty(facet.Attributes) || !common.IsEmpty(facet.Indicators) || !common.IsEmpty(facet.Elements)
}

// FacetOwnerExtension returns the owner extended by the given owner.
// Extension links to an owner of a different kind are ignored.
func FacetOwnerExtension(owner *model.FacetOwner) *model.FacetOwner {
	if owner == nil || owner.Extends == nil {
		return nil
	}

	if owner.Extends.Kind != owner.Kind {
		return nil
	}

	return owner.Extends
}

// ExtensionChain returns the owner followed by every owner it transitively extends.
func ExtensionChain(owner *model.FacetOwner) ([]*model.FacetOwner, error) {
	var chain []*model.FacetOwner

	visited := make(map[*model.FacetOwner]bool)

	for current := owner; current != nil; current = FacetOwnerExtension(current) {
		if visited[current] {
			return nil, model.NewError(model.ErrCircularExtension, owner, "revisits %s", current.Name)
		}

		visited[current] = true
		chain = append(chain, current)
	}

	return chain, nil
}

// LocalFacetHierarchy returns the facet levels of the facet's own owner, ordered
// from the root level (ID or Shared) down to the facet itself. Owner extension
// and extension point facets are not considered.
//
//	Summary -> ID, Summary
//	Detail  -> ID, Summary, Detail
//	Custom  -> ID, Summary, [contextual parents], Custom
//	Choice  -> Shared, [contextual parents], Choice
//	Query, Request, Response, Notification -> [contextual parents], facet
func LocalFacetHierarchy(facet *model.Facet) []*model.Facet {
	var levels []*model.Facet

	owner := facet.Owner

	var rootTypes []model.FacetType

	switch facet.Type {
	case model.FacetSummary:
		rootTypes = []model.FacetType{model.FacetID}
	case model.FacetDetail, model.FacetCustom:
		rootTypes = []model.FacetType{model.FacetID, model.FacetSummary}
	case model.FacetChoice:
		rootTypes = []model.FacetType{model.FacetShared}
	default:
	}

	for _, t := range rootTypes {
		if f := lookupFacet(owner, t); f != nil {
			levels = append(levels, f)
		}
	}

	levels = append(levels, contextualParents(facet)...)

	return append(levels, facet)
}

// FacetHierarchy returns every level whose members the facet inherits: for each
// local level, the matching facets of extended owners (base first) followed by
// the level itself.
func FacetHierarchy(facet *model.Facet) ([]*model.Facet, error) {
	if _, err := walkParents(facet); err != nil {
		return nil, err
	}

	chain, err := ExtensionChain(facet.Owner)
	if err != nil {
		return nil, err
	}

	var levels []*model.Facet

	for _, level := range LocalFacetHierarchy(facet) {
		for i := len(chain) - 1; i > 0; i-- {
			if inherited := matchingFacet(chain[i], level); inherited != nil {
				levels = append(levels, inherited)
			}
		}

		levels = append(levels, level)
	}

	return levels, nil
}

// SuperFacet returns the facet an empty facet defers to and where extension
// content attaches:
//
//	Summary        -> the owner's ID facet
//	Custom, Detail -> nearest Summary or ID with declared content
//	Choice         -> nearest Shared with declared content
//
// The search walks contextual parents first, then the owner extension chain.
// Nil is returned when no super facet exists.
func SuperFacet(facet *model.Facet) (*model.Facet, error) {
	switch facet.Type {
	case model.FacetSummary:
		return lookupFacet(facet.Owner, model.FacetID), nil
	case model.FacetCustom, model.FacetDetail:
		return nearestDeclared(facet, model.FacetSummary, model.FacetID)
	case model.FacetChoice:
		return nearestDeclared(facet, model.FacetShared)
	default:
		return nil, nil
	}
}

// PreferredFacet returns the facet that stands for the owner when it is
// referenced as a type: Summary for business and core objects (deferring to
// its super facet when empty), Shared for choice objects and Request for
// operations.
func PreferredFacet(owner *model.FacetOwner) (*model.Facet, error) {
	switch owner.Kind {
	case model.OwnerBusinessObject, model.OwnerCoreObject:
		summary, err := FacetOfType(owner, model.FacetSummary)
		if err != nil {
			return nil, err
		}

		if HasDeclaredContent(summary) {
			return summary, nil
		}

		super, err := SuperFacet(summary)
		if err != nil {
			return nil, err
		}

		if HasDeclaredContent(super) {
			return super, nil
		}

		return summary, nil

	case model.OwnerChoiceObject:
		return FacetOfType(owner, model.FacetShared)

	case model.OwnerOperation:
		return FacetOfType(owner, model.FacetRequest)

	default:
		return nil, model.NewError(model.ErrUnsupportedEntityType, owner, "unknown owner kind")
	}
}

// AliasTarget resolves an alias to the facet whose members it stands for.
// A nil facet is returned for list facets wrapping something other than a plain facet.
func AliasTarget(alias *model.Alias) (*model.Facet, error) {
	switch owner := alias.Owner.(type) {
	case *model.Facet:
		return owner, nil
	case *model.ListFacet:
		item, _ := owner.Item.(*model.Facet)

		return item, nil
	case *model.FacetOwner:
		return PreferredFacet(owner)
	default:
		return nil, model.NewError(model.ErrUnsupportedAliasOwner, alias, "owner %T", alias.Owner)
	}
}

func nearestDeclared(facet *model.Facet, types ...model.FacetType) (*model.Facet, error) {
	root, err := walkParents(facet)
	if err != nil {
		return nil, err
	}

	chain, err := ExtensionChain(root.Owner)
	if err != nil {
		return nil, err
	}

	for _, owner := range chain {
		for _, t := range types {
			if f := lookupFacet(owner, t); f != nil && f != facet && HasDeclaredContent(f) {
				return f, nil
			}
		}
	}

	return nil, nil
}

// walkParents follows the contextual parent links and returns the outermost facet.
func walkParents(facet *model.Facet) (*model.Facet, error) {
	visited := map[*model.Facet]bool{facet: true}

	current := facet
	for current.Parent != nil {
		if visited[current.Parent] {
			return nil, model.NewError(model.ErrCircularExtension, facet, "contextual parent cycle")
		}

		current = current.Parent
		visited[current] = true
	}

	return current, nil
}

// contextualParents returns the contextual parents of the facet, outermost first.
// Callers must have checked for cycles.
func contextualParents(facet *model.Facet) []*model.Facet {
	var parents []*model.Facet

	seen := map[*model.Facet]bool{facet: true}

	for p := facet.Parent; p != nil && !seen[p]; p = p.Parent {
		seen[p] = true
		parents = append([]*model.Facet{p}, parents...)
	}

	return parents
}

func lookupFacet(owner *model.FacetOwner, facetType model.FacetType) *model.Facet {
	if owner == nil {
		return nil
	}

	for _, f := range owner.Facets {
		if f.Type == facetType {
			return f
		}
	}

	return nil
}

func matchingFacet(owner *model.FacetOwner, level *model.Facet) *model.Facet {
	key := level.Key()

	for _, f := range owner.Facets {
		if f.Key() == key {
			return f
		}
	}

	return nil
}
