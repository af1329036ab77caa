package navigate

import (
	"example-upgrader/internal/common"
	"example-upgrader/internal/hierarchy"
	"example-upgrader/internal/model"
)

// DefaultMaxRepeat caps the number of occurrences emitted for repeating elements.
const DefaultMaxRepeat = 2

// Listener receives model members in schema emission order.
//
// Every VisitElement is matched by exactly one VisitElementEnd, and every
// VisitExtensionPoint by one VisitExtensionPointEnd. Members visited in between
// belong to that element or extension point.
type Listener interface {
	VisitAttribute(attr *model.Attribute) error
	VisitIndicator(ind *model.Indicator) error
	VisitElement(elem *model.Element) error
	VisitElementEnd(elem *model.Element) error
	VisitExtensionPoint(ep *model.ExtensionPointFacet) error
	VisitExtensionPointEnd(ep *model.ExtensionPointFacet) error
}

// Navigator walks the entity graph and calls back into a Listener.
// It holds configuration only; all traversal state lives on the call stack.
type Navigator struct {
	listener   Listener
	extensions model.ExtensionRegistry
	maxRepeat  int
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithMaxRepeat caps the occurrences of repeating elements (minimum 1).
func WithMaxRepeat(n int) Option {
	return func(nav *Navigator) {
		if n < 1 {
			n = 1
		}

		nav.maxRepeat = n
	}
}

// New creates a Navigator. A nil registry means no extension points.
func New(listener Listener, extensions model.ExtensionRegistry, opts ...Option) *Navigator {
	if extensions == nil {
		extensions = model.NoExtensions{}
	}

	nav := &Navigator{
		listener:   listener,
		extensions: extensions,
		maxRepeat:  DefaultMaxRepeat,
	}

	for _, opt := range opts {
		opt(nav)
	}

	return nav
}

// Navigate visits the entity according to its kind.
func (n *Navigator) Navigate(entity model.Member) error {
	switch e := entity.(type) {
	case *model.Facet:
		return n.navigateFacet(e)
	case *model.ListFacet:
		return n.navigateListFacet(e)
	case *model.Alias:
		return n.navigateAlias(e)
	case *model.ExtensionPointFacet:
		return n.navigateExtensionPoint(e)
	case *model.ActionFacet:
		return n.navigateActionFacet(e)
	case *model.Attribute:
		return n.listener.VisitAttribute(e)
	case *model.Indicator:
		return n.listener.VisitIndicator(e)
	case *model.Element:
		return n.navigateElement(e)
	case *model.ValueWithAttributes:
		return n.navigateValueWithAttributes(e)
	default:
		return model.NewError(model.ErrUnsupportedEntityType, entity, "cannot navigate %T", entity)
	}
}

// Occurrences returns how many times a repeating element is emitted.
func (n *Navigator) Occurrences(elem *model.Element) int {
	switch {
	case elem.Repeat < 0:
		return n.maxRepeat
	case elem.Repeat <= 1:
		return 1
	default:
		return min(elem.Repeat, n.maxRepeat)
	}
}

// navigateFacet emits inherited attributes, then inherited attribute-published
// indicators, then elements level by level. Extension points of the preceding
// levels are emitted before the first element of each new level; the remaining
// ones (including the facet's own level) after the last element.
func (n *Navigator) navigateFacet(facet *model.Facet) error {
	levels, err := hierarchy.FacetHierarchy(facet)
	if err != nil {
		return err
	}

	for _, level := range levels {
		for _, attr := range level.Attributes {
			if err := n.listener.VisitAttribute(attr); err != nil {
				return err
			}
		}
	}

	for _, level := range levels {
		for _, ind := range level.Indicators {
			if ind.PublishAsElement {
				continue
			}

			if err := n.listener.VisitIndicator(ind); err != nil {
				return err
			}
		}
	}

	local := hierarchy.LocalFacetHierarchy(facet)
	processed := make(map[model.FacetKey]bool)

	for _, level := range levels {
		if !hasElementContent(level) {
			continue
		}

		if err := n.emitPrecedingExtensionPoints(levels, local, level.Key(), processed); err != nil {
			return err
		}

		if err := n.navigateElements(level.Elements, level.Indicators); err != nil {
			return err
		}
	}

	for _, lvl := range local {
		if err := n.emitExtensionPoints(levels, lvl.Key(), processed); err != nil {
			return err
		}
	}

	return nil
}

// emitPrecedingExtensionPoints emits the extension points of every local level
// that comes before the current one and has not been emitted yet.
func (n *Navigator) emitPrecedingExtensionPoints(levels, local []*model.Facet, current model.FacetKey,
	processed map[model.FacetKey]bool,
) error {
	for _, lvl := range local {
		key := lvl.Key()
		if key == current {
			return nil
		}

		if err := n.emitExtensionPoints(levels, key, processed); err != nil {
			return err
		}
	}

	return nil
}

func (n *Navigator) emitExtensionPoints(levels []*model.Facet, key model.FacetKey,
	processed map[model.FacetKey]bool,
) error {
	if processed[key] {
		return nil
	}

	processed[key] = true

	for _, lvl := range levels {
		if lvl.Key() != key {
			continue
		}

		for _, ep := range n.extensions.ExtensionPointsFor(lvl) {
			if err := n.navigateExtensionPoint(ep); err != nil {
				return err
			}
		}
	}

	return nil
}

// navigateListFacet emits the item facet's content once per role of the
// owning core object.
func (n *Navigator) navigateListFacet(list *model.ListFacet) error {
	item, ok := list.Item.(*model.Facet)
	if !ok {
		return nil
	}

	for i, count := 0, list.Cardinality(); i < count; i++ {
		if err := n.navigateFacet(item); err != nil {
			return err
		}
	}

	return nil
}

func (n *Navigator) navigateAlias(alias *model.Alias) error {
	if list, ok := alias.Owner.(*model.ListFacet); ok {
		return n.navigateListFacet(list)
	}

	target, err := hierarchy.AliasTarget(alias)
	if err != nil {
		return err
	}

	if target == nil {
		return nil
	}

	return n.navigateFacet(target)
}

func (n *Navigator) navigateExtensionPoint(ep *model.ExtensionPointFacet) error {
	if err := n.listener.VisitExtensionPoint(ep); err != nil {
		return err
	}

	for _, attr := range ep.Attributes {
		if err := n.listener.VisitAttribute(attr); err != nil {
			return err
		}
	}

	for _, ind := range ep.Indicators {
		if ind.PublishAsElement {
			continue
		}

		if err := n.listener.VisitIndicator(ind); err != nil {
			return err
		}
	}

	if err := n.navigateElements(ep.Elements, ep.Indicators); err != nil {
		return err
	}

	return n.listener.VisitExtensionPointEnd(ep)
}

// navigateActionFacet emits the implicit business object reference (when the
// reference type requires one) followed by the base payload's content.
func (n *Navigator) navigateActionFacet(action *model.ActionFacet) error {
	if !action.IsPayloadShaped() {
		return nil
	}

	if action.ReferenceType != model.ReferenceNone {
		ref, err := ReferenceElement(action)
		if err != nil {
			return err
		}

		if err := n.navigateElement(ref); err != nil {
			return err
		}
	}

	if action.BasePayload == nil {
		return nil
	}

	payload, err := PayloadFacet(action)
	if err != nil {
		return err
	}

	return n.navigateFacet(payload)
}

// navigateValueWithAttributes emits the attributes and indicators of the value
// type's parent chain. Simple content has no room for child elements, so an
// element-published indicator is a model-integrity failure.
func (n *Navigator) navigateValueWithAttributes(vwa *model.ValueWithAttributes) error {
	chain, err := valueTypeChain(vwa)
	if err != nil {
		return err
	}

	for _, v := range chain {
		for _, ind := range v.Indicators {
			if ind.PublishAsElement {
				return model.NewError(model.ErrUnsupportedEntityType, ind,
					"value type %s cannot publish indicators as elements", v.Name)
			}
		}
	}

	for _, v := range chain {
		for _, attr := range v.Attributes {
			if err := n.listener.VisitAttribute(attr); err != nil {
				return err
			}
		}
	}

	for _, v := range chain {
		for _, ind := range v.Indicators {
			if err := n.listener.VisitIndicator(ind); err != nil {
				return err
			}
		}
	}

	return nil
}

func (n *Navigator) navigateElements(elements []*model.Element, indicators []*model.Indicator) error {
	for _, elem := range elements {
		if err := n.navigateElement(elem); err != nil {
			return err
		}
	}

	for _, ind := range indicators {
		if !ind.PublishAsElement {
			continue
		}

		if err := n.listener.VisitIndicator(ind); err != nil {
			return err
		}
	}

	return nil
}

// navigateElement emits each occurrence of the element and, unless the element
// is a reference or of a simple type, the content of its referenced structure.
func (n *Navigator) navigateElement(elem *model.Element) error {
	var structure model.Member

	if !elem.Reference {
		var err error

		structure, err = hierarchy.Structure(elem.Type)
		if err != nil {
			return err
		}
	}

	for i, count := 0, n.Occurrences(elem); i < count; i++ {
		if err := n.listener.VisitElement(elem); err != nil {
			return err
		}

		if structure != nil {
			if err := n.Navigate(structure); err != nil {
				return err
			}
		}

		if err := n.listener.VisitElementEnd(elem); err != nil {
			return err
		}
	}

	return nil
}

func hasElementContent(facet *model.Facet) bool {
	if !common.IsEmpty(facet.Elements) {
		return true
	}

	for _, ind := range facet.Indicators {
		if ind.PublishAsElement {
			return true
		}
	}

	return false
}

// valueTypeChain returns the value type's parent chain, base first.
func valueTypeChain(vwa *model.ValueWithAttributes) ([]*model.ValueWithAttributes, error) {
	var chain []*model.ValueWithAttributes

	visited := make(map[*model.ValueWithAttributes]bool)

	for current := vwa; current != nil; {
		if visited[current] {
			return nil, model.NewError(model.ErrCircularExtension, vwa, "value type parent cycle")
		}

		visited[current] = true
		chain = append([]*model.ValueWithAttributes{current}, chain...)

		parent, _ := current.Parent.(*model.ValueWithAttributes)
		current = parent
	}

	return chain, nil
}
