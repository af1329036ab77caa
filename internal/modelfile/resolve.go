package modelfile

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"example-upgrader/internal/model"
)

const (
	// XSDPrefix is always bound to XSDNamespace.
	XSDPrefix = "xsd"
	// XSDNamespace holds the builtin simple types.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema"
)

var builtinTypes = map[string]bool{
	"string": true, "normalizedString": true, "token": true, "boolean": true,
	"int": true, "integer": true, "long": true, "short": true, "byte": true,
	"positiveInteger": true, "nonNegativeInteger": true,
	"decimal": true, "float": true, "double": true,
	"date": true, "dateTime": true, "time": true, "duration": true,
	"anyURI": true, "ID": true, "IDREF": true, "language": true,
}

var ownerKinds = map[string]model.OwnerKind{
	"business":  model.OwnerBusinessObject,
	"core":      model.OwnerCoreObject,
	"choice":    model.OwnerChoiceObject,
	"operation": model.OwnerOperation,
}

var referenceTypes = map[string]model.ReferenceType{
	"":         model.ReferenceNone,
	"none":     model.ReferenceNone,
	"optional": model.ReferenceOptional,
	"required": model.ReferenceRequired,
}

// Resolve builds the entity graph described by the file. All reference
// problems are collected and returned together.
func Resolve(f *File) (*Loaded, error) {
	applyDefaults(f)

	if f.Version != SupportedVersion {
		return nil, fmt.Errorf("unsupported model file version %q, expected %q", f.Version, SupportedVersion)
	}

	r := &resolver{
		file:         f,
		types:        make(map[model.QName]model.Type),
		facetAliases: make(map[string]*model.Alias),
		m:            &model.Model{},
	}

	r.declare()
	r.link()

	if err := r.errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return &Loaded{File: f, Model: r.m, r: r}, nil
}

type pendingFacet struct {
	facet *model.Facet
	def   *FacetDef
}

type resolver struct {
	file         *File
	types        map[model.QName]model.Type
	facetAliases map[string]*model.Alias
	facets       []pendingFacet
	errs         *multierror.Error
	m            *model.Model
}

func (r *resolver) fail(format string, args ...any) {
	r.errs = multierror.Append(r.errs, fmt.Errorf(format, args...))
}

// declare creates every named entity so that references can be resolved in
// any order.
func (r *resolver) declare() {
	for _, def := range r.file.SimpleTypes {
		q, ok := r.define(def.Name)
		if !ok {
			continue
		}

		st := &model.SimpleType{
			Name:        q.Local,
			Namespace:   q.Namespace,
			Base:        def.Base,
			Enumeration: def.Enumeration,
			Example:     def.Example,
		}
		r.types[q] = st
		r.m.SimpleTypes = append(r.m.SimpleTypes, st)
	}

	for _, def := range r.file.ValueTypes {
		q, ok := r.define(def.Name)
		if !ok {
			continue
		}

		vwa := &model.ValueWithAttributes{Name: q.Local, Namespace: q.Namespace, Example: def.Example}
		r.types[q] = vwa
		r.m.ValueTypes = append(r.m.ValueTypes, vwa)
	}

	for i := range r.file.Objects {
		r.declareOwner(&r.file.Objects[i])
	}

	for _, def := range r.file.ActionFacets {
		q, ok := r.define(def.Name)
		if !ok {
			continue
		}

		af := &model.ActionFacet{Name: q.Local, Namespace: q.Namespace}
		r.types[q] = af
		r.m.ActionFacets = append(r.m.ActionFacets, af)
	}
}

func (r *resolver) declareOwner(def *ObjectDef) {
	kind, ok := ownerKinds[def.Kind]
	if !ok {
		r.fail("object %s: unknown kind %q", def.Name, def.Kind)
		return
	}

	q, ok := r.define(def.Name)
	if !ok {
		return
	}

	owner := &model.FacetOwner{Kind: kind, Name: q.Local, Namespace: q.Namespace, Roles: def.Roles}
	r.types[q] = owner
	r.m.Owners = append(r.m.Owners, owner)

	for i := range def.Facets {
		fd := &def.Facets[i]

		ft, ok := model.ParseFacetType(fd.Type)
		if !ok {
			r.fail("object %s: unknown facet type %q", def.Name, fd.Type)
			continue
		}

		facet := &model.Facet{Owner: owner, Type: ft, Context: fd.Context, Label: fd.Label}
		owner.Facets = append(owner.Facets, facet)
		r.facets = append(r.facets, pendingFacet{facet: facet, def: fd})

		if kind == model.OwnerCoreObject && (ft == model.FacetSummary || ft == model.FacetDetail) {
			owner.Lists = append(owner.Lists, &model.ListFacet{Owner: owner, Item: facet})
		}
	}

	for _, name := range def.Aliases {
		alias := &model.Alias{Name: localPart(name), Owner: owner}
		owner.Aliases = append(owner.Aliases, alias)

		aq := model.QName{Namespace: owner.Namespace, Local: alias.Name}
		if _, exists := r.types[aq]; exists {
			r.fail("alias %s: duplicate name", aq)
			continue
		}

		r.types[aq] = alias
	}
}

// define parses a declaration name and checks it is not already taken.
func (r *resolver) define(name string) (model.QName, bool) {
	q, err := r.qname(name)
	if err != nil {
		r.fail("%w", err)
		return model.QName{}, false
	}

	if _, exists := r.types[q]; exists {
		r.fail("%s: duplicate definition", q)
		return model.QName{}, false
	}

	return q, true
}

// link resolves every reference between declared entities.
func (r *resolver) link() {
	for i := range r.file.Objects {
		r.linkOwner(&r.file.Objects[i])
	}

	for _, pf := range r.facets {
		r.linkFacet(pf.facet, pf.def)
	}

	for i := range r.file.ValueTypes {
		def := &r.file.ValueTypes[i]

		q, err := r.qname(def.Name)
		if err != nil {
			continue
		}

		if vwa, ok := r.types[q].(*model.ValueWithAttributes); ok {
			r.linkValueType(vwa, def)
		}
	}

	for i := range r.file.ActionFacets {
		r.linkActionFacet(&r.file.ActionFacets[i])
	}

	for i := range r.file.ExtensionPoints {
		r.linkExtensionPoint(&r.file.ExtensionPoints[i])
	}
}

func (r *resolver) linkOwner(def *ObjectDef) {
	if def.Extends == "" {
		return
	}

	owner := r.ownerNamed(def.Name)
	if owner == nil {
		return
	}

	base := r.ownerNamed(def.Extends)
	if base == nil {
		r.fail("object %s: extends unknown object %s", def.Name, def.Extends)
		return
	}

	owner.Extends = base
}

func (r *resolver) linkFacet(facet *model.Facet, def *FacetDef) {
	where := fmt.Sprintf("%s#%s", facet.Owner.Name, facet.Key())

	if def.Parent != "" {
		parent, err := facetByRef(facet.Owner, def.Parent)
		if err != nil {
			r.fail("facet %s: parent: %w", where, err)
		} else {
			facet.Parent = parent
		}
	}

	facet.Attributes = r.attributes(facet, def.Attributes, where)
	facet.Indicators = indicators(facet, def.Indicators)
	facet.Elements = r.elements(facet, def.Elements, where)
}

func (r *resolver) linkValueType(vwa *model.ValueWithAttributes, def *ValueTypeDef) {
	where := "value type " + vwa.Name

	if def.Parent != "" {
		parent, err := r.resolveType(def.Parent)

		switch p := parent.(type) {
		case *model.SimpleType, *model.ValueWithAttributes:
			vwa.Parent = p
		default:
			if err == nil {
				err = fmt.Errorf("%s is not a simple or value type", def.Parent)
			}

			r.fail("%s: parent: %w", where, err)
		}
	}

	for _, ind := range def.Indicators {
		if ind.Element {
			r.fail("%s: indicator %s: simple content cannot hold element indicators", where, ind.Name)
		}
	}

	vwa.Attributes = r.attributes(vwa, def.Attributes, where)
	vwa.Indicators = indicators(vwa, def.Indicators)
}

func (r *resolver) linkActionFacet(def *ActionFacetDef) {
	q, err := r.qname(def.Name)
	if err != nil {
		return
	}

	af, ok := r.types[q].(*model.ActionFacet)
	if !ok {
		return
	}

	where := "action facet " + af.Name

	refType, ok := referenceTypes[def.Reference]
	if !ok {
		r.fail("%s: unknown reference type %q", where, def.Reference)
	}

	af.ReferenceType = refType
	af.ReferenceRepeat = def.ReferenceRepeat

	if def.ReferenceFacet != "" {
		ft, ok := model.ParseFacetType(def.ReferenceFacet)
		if !ok {
			r.fail("%s: unknown reference facet %q", where, def.ReferenceFacet)
		}

		af.ReferenceFacet = ft
	}

	if def.BusinessObject != "" {
		af.BusinessObject = r.ownerNamed(def.BusinessObject)
		if af.BusinessObject == nil {
			r.fail("%s: unknown business object %s", where, def.BusinessObject)
		}
	}

	if def.BasePayload != "" {
		af.BasePayload = r.ownerNamed(def.BasePayload)
		if af.BasePayload == nil {
			r.fail("%s: unknown base payload %s", where, def.BasePayload)
		}
	}
}

func (r *resolver) linkExtensionPoint(def *ExtensionPointDef) {
	where := "extension point on " + def.Extends

	target, err := r.resolveType(def.Extends)
	if err != nil {
		r.fail("%s: %w", where, err)
		return
	}

	facet, ok := target.(*model.Facet)
	if !ok {
		r.fail("%s: target is not a facet", where)
		return
	}

	ns := def.Namespace
	if ns == "" {
		ns = r.file.Namespace
	}

	ep := &model.ExtensionPointFacet{Namespace: ns, Extends: facet}
	ep.Attributes = r.attributes(ep, def.Attributes, where)
	ep.Indicators = indicators(ep, def.Indicators)
	ep.Elements = r.elements(ep, def.Elements, where)

	r.m.ExtensionPoints = append(r.m.ExtensionPoints, ep)
}

func (r *resolver) attributes(owner model.NamedEntity, defs []AttributeDef, where string) []*model.Attribute {
	var result []*model.Attribute

	for _, def := range defs {
		typeRef := def.Type
		if typeRef == "" {
			typeRef = XSDPrefix + ":string"
		}

		t, err := r.resolveType(typeRef)
		if err != nil {
			r.fail("%s: attribute %s: %w", where, def.Name, err)
			continue
		}

		if _, ok := t.(*model.SimpleType); !ok {
			r.fail("%s: attribute %s: %s is not a simple type", where, def.Name, typeRef)
			continue
		}

		result = append(result, &model.Attribute{
			Owner:     owner,
			Name:      def.Name,
			Type:      t,
			Mandatory: def.Mandatory,
			Example:   def.Example,
		})
	}

	return result
}

func indicators(owner model.NamedEntity, defs []IndicatorDef) []*model.Indicator {
	var result []*model.Indicator
	for _, def := range defs {
		result = append(result, &model.Indicator{Owner: owner, Name: def.Name, PublishAsElement: def.Element})
	}

	return result
}

func (r *resolver) elements(owner model.NamedEntity, defs []ElementDef, where string) []*model.Element {
	var result []*model.Element

	for _, def := range defs {
		elem := &model.Element{
			Owner:     owner,
			Name:      def.Name,
			Repeat:    int(def.Repeat),
			Reference: def.Reference,
			Example:   def.Example,
		}

		switch {
		case def.Type != "":
			t, err := r.resolveType(def.Type)
			if err != nil {
				r.fail("%s: element %s: %w", where, def.Name, err)
				continue
			}

			elem.Type = t
		case !def.Reference:
			r.fail("%s: element %s: missing type", where, def.Name)
			continue
		}

		result = append(result, elem)
	}

	return result
}

// resolveType resolves "qname[#fragment]" references.
func (r *resolver) resolveType(ref string) (model.Type, error) {
	base, fragment, _ := strings.Cut(ref, "#")

	t, err := r.lookupName(base)
	if err != nil {
		return nil, err
	}

	if fragment == "" {
		return t, nil
	}

	switch tt := t.(type) {
	case *model.FacetOwner:
		if fragment == "list" {
			return listFacet(tt, "")
		}

		if itemType, ok := strings.CutSuffix(fragment, "-list"); ok {
			return listFacet(tt, itemType)
		}

		return facetByRef(tt, fragment)

	case *model.Alias:
		return r.facetAlias(tt, fragment)

	default:
		return nil, fmt.Errorf("%s: only objects and aliases take a facet fragment", ref)
	}
}

func (r *resolver) lookupName(name string) (model.Type, error) {
	if !strings.Contains(name, ":") && builtinTypes[name] {
		name = XSDPrefix + ":" + name
	}

	q, err := r.qname(name)
	if err != nil {
		return nil, err
	}

	if t, ok := r.types[q]; ok {
		return t, nil
	}

	if q.Namespace == XSDNamespace && builtinTypes[q.Local] {
		st := &model.SimpleType{Name: q.Local, Namespace: XSDNamespace, Base: q.Local}
		r.types[q] = st

		return st, nil
	}

	return nil, fmt.Errorf("unknown type %s", name)
}

// facetAlias returns the alias of one facet of an aliased owner, named
// "<alias>_<FacetType>".
func (r *resolver) facetAlias(alias *model.Alias, fragment string) (*model.Alias, error) {
	owner, ok := alias.Owner.(*model.FacetOwner)
	if !ok {
		return nil, fmt.Errorf("alias %s does not alias an object", alias.Name)
	}

	facet, err := facetByRef(owner, fragment)
	if err != nil {
		return nil, err
	}

	key := alias.Name + "#" + facet.Key().String()
	if existing, ok := r.facetAliases[key]; ok {
		return existing, nil
	}

	facetAlias := &model.Alias{Name: alias.Name + "_" + facet.Type.String() + facet.Label, Owner: facet}
	r.facetAliases[key] = facetAlias

	return facetAlias, nil
}

func (r *resolver) ownerNamed(name string) *model.FacetOwner {
	q, err := r.qname(name)
	if err != nil {
		return nil
	}

	owner, _ := r.types[q].(*model.FacetOwner)

	return owner
}

// qname splits "prefix:Local"; unprefixed names take the file's default namespace.
func (r *resolver) qname(name string) (model.QName, error) {
	if name == "" {
		return model.QName{}, fmt.Errorf("empty name")
	}

	prefix, local, ok := strings.Cut(name, ":")
	if !ok {
		return model.QName{Namespace: r.file.Namespace, Local: name}, nil
	}

	ns, bound := r.file.Namespaces[prefix]
	if !bound {
		return model.QName{}, fmt.Errorf("%s: unbound prefix %q", name, prefix)
	}

	return model.QName{Namespace: ns, Local: local}, nil
}

// facetByRef finds a facet by "type" or "type:label".
func facetByRef(owner *model.FacetOwner, ref string) (*model.Facet, error) {
	typeName, label, _ := strings.Cut(ref, ":")

	ft, ok := model.ParseFacetType(typeName)
	if !ok {
		return nil, fmt.Errorf("unknown facet type %q", typeName)
	}

	for _, f := range owner.Facets {
		if f.Type == ft && (label == "" || f.Label == label) {
			return f, nil
		}
	}

	return nil, fmt.Errorf("object %s has no facet %s", owner.Name, ref)
}

// listFacet finds a core object's list facet by item facet type (default summary).
func listFacet(owner *model.FacetOwner, typeName string) (*model.ListFacet, error) {
	ft := model.FacetSummary

	if typeName != "" {
		var ok bool

		ft, ok = model.ParseFacetType(typeName)
		if !ok {
			return nil, fmt.Errorf("unknown facet type %q", typeName)
		}
	}

	for _, l := range owner.Lists {
		if item, ok := l.Item.(*model.Facet); ok && item.Type == ft {
			return l, nil
		}
	}

	return nil, fmt.Errorf("object %s has no %s list facet", owner.Name, ft)
}

func localPart(name string) string {
	if _, local, ok := strings.Cut(name, ":"); ok {
		return local
	}

	return name
}
