package model

import (
	"strings"

	"example-upgrader/internal/common"
)

// QName is a namespace-qualified name.
type QName struct {
	Namespace string
	Local     string
}

// String returns the name in {namespace}local form.
func (q QName) String() string {
	if q.Namespace == "" {
		return q.Local
	}

	return "{" + q.Namespace + "}" + q.Local
}

// IsZero returns true if the local part is empty.
func (q QName) IsZero() bool {
	return q.Local == ""
}

// FacetType identifies one field-group level of a facet owner.
type FacetType int

const (
	FacetUnknown FacetType = iota
	FacetID
	FacetSummary
	FacetDetail
	FacetCustom
	FacetQuery
	FacetShared
	FacetChoice
	FacetRequest
	FacetResponse
	FacetNotification
)

var facetTypeNames = map[FacetType]string{
	FacetID:           "ID",
	FacetSummary:      "Summary",
	FacetDetail:       "Detail",
	FacetCustom:       "Custom",
	FacetQuery:        "Query",
	FacetShared:       "Shared",
	FacetChoice:       "Choice",
	FacetRequest:      "Request",
	FacetResponse:     "Response",
	FacetNotification: "Notification",
}

// String returns the facet type name.
func (t FacetType) String() string {
	if name, ok := facetTypeNames[t]; ok {
		return name
	}

	return common.UnknownStr
}

// IsContextual returns true for facet types keyed by a context and label.
func (t FacetType) IsContextual() bool {
	switch t {
	case FacetCustom, FacetQuery, FacetChoice, FacetRequest, FacetResponse, FacetNotification:
		return true
	default:
		return false
	}
}

// ParseFacetType converts a case-insensitive facet type name.
func ParseFacetType(s string) (FacetType, bool) {
	for t, name := range facetTypeNames {
		if strings.EqualFold(name, s) {
			return t, true
		}
	}

	return FacetUnknown, false
}

// FacetKey is the identity of a facet level within an owner.
// Contextual facets also carry their context and label.
type FacetKey struct {
	Type    FacetType
	Context string
	Label   string
}

// String returns a readable key such as "Custom:VIP".
func (k FacetKey) String() string {
	if k.Label == "" {
		return k.Type.String()
	}

	return k.Type.String() + ":" + k.Label
}

//go:generate go tool stringer -type=MemberKind,OwnerKind -linecomment -output=kind_string.go

// OwnerKind distinguishes the concrete kinds of facet owner.
type OwnerKind int

const (
	OwnerUnknown        OwnerKind = iota // unknown
	OwnerBusinessObject                  // business_object
	OwnerCoreObject                      // core_object
	OwnerChoiceObject                    // choice_object
	OwnerOperation                       // operation
)

// MemberKind enumerates the closed set of navigable members.
type MemberKind int

const (
	KindFacet               MemberKind = iota + 1 // facet
	KindListFacet                                 // list_facet
	KindAlias                                     // alias
	KindExtensionPointFacet                       // extension_point_facet
	KindActionFacet                               // action_facet
	KindAttribute                                 // attribute
	KindElement                                   // element
	KindIndicator                                 // indicator
	KindValueWithAttributes                       // value_with_attributes
)

// ReferenceType describes whether an action facet carries a business object reference.
type ReferenceType int

const (
	ReferenceNone ReferenceType = iota
	ReferenceOptional
	ReferenceRequired
)

// NamedEntity is the base of every typed model member.
type NamedEntity interface {
	EntityName() string
	EntityNamespace() string
}

// Member is the closed union of entities the navigator can visit.
// Only types in this package implement it.
type Member interface {
	NamedEntity
	Kind() MemberKind
	isMember()
}

// Type is the closed union of entities an element or attribute may reference.
type Type interface {
	NamedEntity
	isType()
}

// SimpleType is a leaf value type.
type SimpleType struct {
	Name        string
	Namespace   string
	Base        string   // builtin base, e.g. "string", "int", "date"
	Enumeration []string // allowed values, if any
	Example     string
}

// FacetOwner is a complex type owning an ordered set of facets.
type FacetOwner struct {
	Kind      OwnerKind
	Name      string
	Namespace string
	Facets    []*Facet
	Extends   *FacetOwner // base owner, same kind only
	Aliases   []*Alias
	Roles     []string // core object roles, one list item per role
	Lists     []*ListFacet
}

// Facet is one field-group level of a facet owner.
type Facet struct {
	Owner      *FacetOwner
	Type       FacetType
	Context    string
	Label      string
	Parent     *Facet // contextual parent, nil for top-level facets
	Attributes []*Attribute
	Indicators []*Indicator
	Elements   []*Element
}

// Key returns the facet identity within its owner.
func (f *Facet) Key() FacetKey {
	if !f.Type.IsContextual() {
		return FacetKey{Type: f.Type}
	}

	return FacetKey{Type: f.Type, Context: f.Context, Label: f.Label}
}

// ListFacet wraps an item facet to represent the repeated-role view of a core object.
type ListFacet struct {
	Owner *FacetOwner
	Item  Type
}

// Cardinality returns how many times the item is emitted: once per role of
// the owning core object, and at least once.
func (l *ListFacet) Cardinality() int {
	if l.Owner == nil {
		return 1
	}

	return max(len(l.Owner.Roles), 1)
}

// Alias is an alternate qualified name bound to a facet owner, facet or list facet.
type Alias struct {
	Name  string
	Owner Type
}

// ExtensionPointFacet contributes content to one facet level, usually from another namespace.
type ExtensionPointFacet struct {
	Namespace  string
	Extends    *Facet
	Attributes []*Attribute
	Indicators []*Indicator
	Elements   []*Element
}

// ActionFacet is a resource action payload: an optional business object reference
// followed by the content of a base payload.
type ActionFacet struct {
	Name            string
	Namespace       string
	BusinessObject  *FacetOwner
	ReferenceType   ReferenceType
	ReferenceFacet  FacetType
	ReferenceRepeat int
	BasePayload     *FacetOwner
}

// IsPayloadShaped returns true if the action facet produces its own payload content.
func (a *ActionFacet) IsPayloadShaped() bool {
	return a.ReferenceType != ReferenceNone || a.BasePayload != nil
}

// ValueWithAttributes is a simple-content type that also carries attributes.
type ValueWithAttributes struct {
	Name       string
	Namespace  string
	Parent     Type // *SimpleType or *ValueWithAttributes
	Attributes []*Attribute
	Indicators []*Indicator
	Example    string
}

// Attribute is a leaf field serialized as an XML attribute.
type Attribute struct {
	Owner     NamedEntity
	Name      string
	Type      Type
	Mandatory bool
	Example   string
}

// Indicator is a boolean flag; its serialized name always ends in "Ind".
type Indicator struct {
	Owner            NamedEntity
	Name             string
	PublishAsElement bool
}

// Element is a field serialized as a child element.
type Element struct {
	Owner     NamedEntity
	Name      string
	Type      Type
	Repeat    int // 0 or 1 single, n > 1 bounded, -1 unbounded
	Reference bool
	Example   string
}
