package model

// Member and Type implementations. Each entity reports the local name of its
// global element (or field) and the namespace it belongs to.

func (*Facet) isMember()               {}
func (*ListFacet) isMember()           {}
func (*Alias) isMember()               {}
func (*ExtensionPointFacet) isMember() {}
func (*ActionFacet) isMember()         {}
func (*Attribute) isMember()           {}
func (*Element) isMember()             {}
func (*Indicator) isMember()           {}
func (*ValueWithAttributes) isMember() {}

func (*SimpleType) isType()          {}
func (*FacetOwner) isType()          {}
func (*Facet) isType()               {}
func (*ListFacet) isType()           {}
func (*Alias) isType()               {}
func (*ActionFacet) isType()         {}
func (*ValueWithAttributes) isType() {}

// Kind implements Member.
func (*Facet) Kind() MemberKind { return KindFacet }

// Kind implements Member.
func (*ListFacet) Kind() MemberKind { return KindListFacet }

// Kind implements Member.
func (*Alias) Kind() MemberKind { return KindAlias }

// Kind implements Member.
func (*ExtensionPointFacet) Kind() MemberKind { return KindExtensionPointFacet }

// Kind implements Member.
func (*ActionFacet) Kind() MemberKind { return KindActionFacet }

// Kind implements Member.
func (*Attribute) Kind() MemberKind { return KindAttribute }

// Kind implements Member.
func (*Element) Kind() MemberKind { return KindElement }

// Kind implements Member.
func (*Indicator) Kind() MemberKind { return KindIndicator }

// Kind implements Member.
func (*ValueWithAttributes) Kind() MemberKind { return KindValueWithAttributes }

func (t *SimpleType) EntityName() string      { return t.Name }
func (t *SimpleType) EntityNamespace() string { return t.Namespace }

func (o *FacetOwner) EntityName() string      { return o.Name }
func (o *FacetOwner) EntityNamespace() string { return o.Namespace }

// EntityName returns the facet's global element name.
//
//	Summary, Shared          -> Owner
//	ID, Detail               -> OwnerID, OwnerDetail
//	Custom, Query, Choice    -> Owner + type + label, e.g. OrderCustomVIP
//	Request, Response, Notif -> OwnerRQ, OwnerRS, OwnerNIF (+ label)
func (f *Facet) EntityName() string {
	if f.Owner == nil || f.Owner.Name == "" {
		return ""
	}

	owner := f.Owner.Name

	switch f.Type {
	case FacetSummary, FacetShared:
		return owner
	case FacetID:
		return owner + "ID"
	case FacetDetail:
		return owner + "Detail"
	case FacetRequest:
		return owner + "RQ" + f.Label
	case FacetResponse:
		return owner + "RS" + f.Label
	case FacetNotification:
		return owner + "NIF" + f.Label
	case FacetCustom, FacetQuery, FacetChoice:
		return owner + f.Type.String() + f.Label
	default:
		return ""
	}
}

func (f *Facet) EntityNamespace() string {
	if f.Owner == nil {
		return ""
	}

	return f.Owner.Namespace
}

// EntityName returns the item facet name followed by "List".
func (l *ListFacet) EntityName() string {
	if l.Item == nil || l.Item.EntityName() == "" {
		return ""
	}

	return l.Item.EntityName() + "List"
}

func (l *ListFacet) EntityNamespace() string {
	if l.Owner == nil {
		return ""
	}

	return l.Owner.Namespace
}

func (a *Alias) EntityName() string { return a.Name }

func (a *Alias) EntityNamespace() string {
	if a.Owner == nil {
		return ""
	}

	return a.Owner.EntityNamespace()
}

// EntityName returns the name of the extension point wrapper element, which
// depends on the facet level being extended.
func (e *ExtensionPointFacet) EntityName() string {
	if e.Extends == nil {
		return ""
	}

	switch e.Extends.Type {
	case FacetID:
		return "ExtensionPoint"
	case FacetUnknown:
		return ""
	default:
		return "ExtensionPoint_" + e.Extends.Type.String()
	}
}

func (e *ExtensionPointFacet) EntityNamespace() string { return e.Namespace }

func (a *ActionFacet) EntityName() string      { return a.Name }
func (a *ActionFacet) EntityNamespace() string { return a.Namespace }

func (v *ValueWithAttributes) EntityName() string      { return v.Name }
func (v *ValueWithAttributes) EntityNamespace() string { return v.Namespace }

func (a *Attribute) EntityName() string { return a.Name }

func (a *Attribute) EntityNamespace() string { return ownerNamespace(a.Owner) }

func (i *Indicator) EntityName() string { return i.Name }

func (i *Indicator) EntityNamespace() string { return ownerNamespace(i.Owner) }

func (e *Element) EntityName() string { return e.Name }

func (e *Element) EntityNamespace() string { return ownerNamespace(e.Owner) }

func ownerNamespace(owner NamedEntity) string {
	if owner == nil {
		return ""
	}

	return owner.EntityNamespace()
}

// QualifiedName returns the entity's namespace-qualified name.
func QualifiedName(e NamedEntity) QName {
	return QName{Namespace: e.EntityNamespace(), Local: e.EntityName()}
}

// Describe returns a short human-readable identity for diagnostics.
func Describe(e NamedEntity) string {
	if e == nil {
		return "<nil>"
	}

	desc := QualifiedName(e).String()
	if desc == "" {
		desc = "<unnamed>"
	}

	if m, ok := e.(Member); ok {
		return m.Kind().String() + " " + desc
	}

	return desc
}
