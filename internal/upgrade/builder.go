package upgrade

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"example-upgrader/internal/common"
	"example-upgrader/internal/diagnostic"
	"example-upgrader/internal/hierarchy"
	"example-upgrader/internal/match"
	"example-upgrader/internal/model"
	"example-upgrader/internal/navigate"
	"example-upgrader/internal/valuegen"
	"example-upgrader/internal/xmltree"
)

// ValueGenerator invents example values whenever no legacy value can be reused.
type ValueGenerator interface {
	ExampleValue(field, owner model.NamedEntity) string
}

// Options configures a Builder. Zero values select the defaults.
type Options struct {
	// VersionScheme derives base namespaces for partial matches.
	VersionScheme match.VersionScheme
	// Values synthesizes leaf values.
	Values ValueGenerator
	// Extensions registers the extension point facets of the model.
	Extensions model.ExtensionRegistry
	// Logger receives debug events and the per-run summary.
	Logger logrus.FieldLogger
	// MaxRepeat caps the occurrences of repeating elements.
	MaxRepeat int
	// MatchUnmatchedRoot keeps matching members against the legacy root's
	// children when the root itself does not match. By default the whole
	// document is synthesized.
	MatchUnmatchedRoot bool
}

// Result is the output of one upgrade run.
type Result struct {
	Document    *xmltree.Document
	Root        *Node
	Diagnostics diagnostic.Diagnostics
	Counts      map[match.MatchType]int
}

// Builder reconciles a navigator walk of the model with a legacy document.
// A Builder runs one upgrade at a time and is not safe for concurrent use.
type Builder struct {
	opts       Options
	classifier *match.Classifier
	log        logrus.FieldLogger

	stack  contextStack
	diags  diagnostic.Diagnostics
	counts map[match.MatchType]int
}

// NewBuilder creates a Builder, filling in defaults for unset options.
func NewBuilder(opts Options) *Builder {
	if opts.VersionScheme == nil {
		opts.VersionScheme = match.DefaultVersionScheme()
	}

	if opts.Values == nil {
		opts.Values = valuegen.New()
	}

	if opts.Extensions == nil {
		opts.Extensions = model.NoExtensions{}
	}

	if opts.Logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		opts.Logger = logger
	}

	if opts.MaxRepeat <= 0 {
		opts.MaxRepeat = navigate.DefaultMaxRepeat
	}

	return &Builder{
		opts:       opts,
		classifier: match.NewClassifier(opts.VersionScheme),
		log:        opts.Logger,
	}
}

// Build produces a new example for root, reusing what remains valid in the
// legacy root element (which may be nil). Any model-integrity failure aborts
// the run and no partial output is returned.
func (b *Builder) Build(root model.Member, legacy *xmltree.Element) (*Result, error) {
	b.stack = contextStack{}
	b.diags = diagnostic.Diagnostics{}
	b.counts = make(map[match.MatchType]int)

	if _, ok := root.(*model.ExtensionPointFacet); ok {
		return nil, model.NewError(model.ErrUnsupportedEntityType, root,
			"extension point facets are emitted inside the facet they extend")
	}

	name, err := hierarchy.GlobalElementName(root)
	if err != nil {
		return nil, err
	}

	mt := match.MatchNone
	if legacy != nil {
		mt = b.classifier.Classify(name, legacy)
	}

	out := xmltree.NewElement(toXMLName(name))
	rootNode := &Node{
		Member:      root,
		DocNode:     out,
		Match:       mt,
		LegacyIndex: -1,
		path:        NewNodePath(name.Local),
	}
	b.counts[mt]++

	matchAgainst := b.rootLegacy(rootNode, legacy)

	if vwa, ok := root.(*model.ValueWithAttributes); ok {
		b.fillText(out, matchAgainst, mt, vwa, nil)
	}

	b.stack.push(newNodeContext(rootNode, matchAgainst))

	nav := navigate.New(b, b.opts.Extensions, navigate.WithMaxRepeat(b.opts.MaxRepeat))
	if err := nav.Navigate(root); err != nil {
		return nil, fmt.Errorf("upgrade of %s failed: %w", name, err)
	}

	if _, err := b.stack.pop(root); err != nil {
		return nil, err
	}

	if b.stack.depth() != 0 {
		return nil, fmt.Errorf("%w: %d contexts left open", ErrUnbalancedEvents, b.stack.depth())
	}

	b.log.WithFields(logrus.Fields{
		"root":    name.String(),
		"exact":   b.counts[match.MatchExact],
		"partial": b.counts[match.MatchPartial],
		"none":    b.counts[match.MatchNone],
	}).Info("example upgraded")

	return &Result{
		Document:    &xmltree.Document{Root: out},
		Root:        rootNode,
		Diagnostics: b.diags,
		Counts:      b.counts,
	}, nil
}

// rootLegacy decides what the root's members are matched against.
func (b *Builder) rootLegacy(root *Node, legacy *xmltree.Element) *xmltree.Element {
	if legacy == nil {
		return nil
	}

	if root.Match == match.MatchNone {
		b.diags.AddWarning(diagnostic.CodeUnmatchedRoot,
			fmt.Sprintf("legacy root %s does not match", legacy.Name.Local),
			model.Describe(root.Member), root.Path())

		if !b.opts.MatchUnmatchedRoot {
			return nil
		}

		return legacy
	}

	if root.Match == match.MatchPartial {
		b.noteVersionChange(root, legacy)
	}

	return legacy
}

type versionComparer interface {
	CompareVersions(legacy, current string) (int, bool)
}

func (b *Builder) noteVersionChange(root *Node, legacy *xmltree.Element) {
	cmp, ok := b.opts.VersionScheme.(versionComparer)
	if !ok {
		return
	}

	current := root.Element().Name.Space

	order, ok := cmp.CompareVersions(legacy.Name.Space, current)
	if !ok {
		return
	}

	direction := "newer"
	if order < 0 {
		direction = "older"
	}

	b.diags.AddInfo(diagnostic.CodeVersionChange,
		fmt.Sprintf("legacy namespace %s is %s than %s", legacy.Name.Space, direction, current),
		model.Describe(root.Member), root.Path())

	b.log.WithFields(logrus.Fields{
		"legacy":  legacy.Name.Space,
		"current": current,
	}).Infof("legacy document is %s than the model", direction)
}

// VisitAttribute matches the attribute by name on the current legacy element.
// A blank legacy value is reused unless the attribute is mandatory.
func (b *Builder) VisitAttribute(attr *model.Attribute) error {
	if attr.Name == "" {
		return model.NewError(model.ErrMissingGlobalElementName, attr, "unnamed attribute")
	}

	ctx := b.stack.top()
	legacy := ctx.lookupAttr(attr.Name)

	mt := match.MatchNone
	if legacy != nil {
		mt = b.classifier.Classify(model.QName{Local: attr.Name}, legacy)
	}

	value := b.opts.Values.ExampleValue(attr, attr.Owner)
	if mt == match.MatchExact && !(attr.Mandatory && common.IsBlank(legacy.Value)) {
		value = legacy.Value
	}

	out := ctx.node.Element().SetAttr(xmltree.Name{Local: attr.Name}, value)
	b.record(ctx, &Node{
		Member:      attr,
		DocNode:     out,
		Match:       mt,
		LegacyIndex: -1,
		path:        ctx.node.path.Attr(attr.Name),
	})

	return nil
}

// VisitIndicator matches the indicator under its normalized "...Ind" name,
// as an attribute or, when published as an element, by skip-ahead search.
func (b *Builder) VisitIndicator(ind *model.Indicator) error {
	if ind.Name == "" {
		return model.NewError(model.ErrMissingGlobalElementName, ind, "unnamed indicator")
	}

	ctx := b.stack.top()
	name := match.IndicatorName(ind.Name)

	if ind.PublishAsElement {
		legacy, index, mt := ctx.skipAhead(func(candidate *xmltree.Element) match.MatchType {
			return b.classifier.ClassifyIndicator(ind.Name, candidate)
		})

		occurrence := ctx.node.occurrence(name)
		out := ctx.node.Element().AddElement(xmltree.Name{Space: ind.EntityNamespace(), Local: name})
		b.fillText(out, legacy, mt, ind, ind.Owner)
		b.record(ctx, &Node{
			Member:      ind,
			DocNode:     out,
			Match:       mt,
			LegacyIndex: index,
			path:        ctx.node.path.Child(name, occurrence),
		})

		return nil
	}

	legacy := ctx.lookupAttr(name)

	mt := match.MatchNone
	if legacy != nil {
		mt = b.classifier.ClassifyIndicator(ind.Name, legacy)
	}

	value := b.opts.Values.ExampleValue(ind, ind.Owner)
	if mt == match.MatchExact {
		value = legacy.Value
	}

	out := ctx.node.Element().SetAttr(xmltree.Name{Local: name}, value)
	b.record(ctx, &Node{
		Member:      ind,
		DocNode:     out,
		Match:       mt,
		LegacyIndex: -1,
		path:        ctx.node.path.Attr(name),
	})

	return nil
}

// VisitElement creates the output element, searches the legacy siblings ahead
// of the cursor for it and opens a context for its content. Unmatched complex
// content is matched against nothing, so the whole subtree is synthesized.
func (b *Builder) VisitElement(elem *model.Element) error {
	name, structure, err := hierarchy.ElementName(elem)
	if err != nil {
		return err
	}

	ctx := b.stack.top()
	legacy, index, mt := ctx.skipAhead(func(candidate *xmltree.Element) match.MatchType {
		return b.classifier.Classify(name, candidate)
	})

	occurrence := ctx.node.occurrence(name.Local)
	out := ctx.node.Element().AddElement(toXMLName(name))
	node := &Node{
		Member:      elem,
		DocNode:     out,
		Match:       mt,
		LegacyIndex: index,
		path:        ctx.node.path.Child(name.Local, occurrence),
	}
	b.record(ctx, node)

	if _, isValue := structure.(*model.ValueWithAttributes); structure == nil || isValue {
		b.fillText(out, legacy, mt, elem, elem.Owner)
	}

	b.stack.push(newNodeContext(node, legacy))
	b.log.WithFields(logrus.Fields{"path": node.Path(), "depth": b.stack.depth()}).Debug("push context")

	return nil
}

// VisitElementEnd closes the element's context.
func (b *Builder) VisitElementEnd(elem *model.Element) error {
	ctx, err := b.stack.pop(elem)
	if err != nil {
		return err
	}

	b.log.WithFields(logrus.Fields{"path": ctx.node.Path(), "depth": b.stack.depth()}).Debug("pop context")

	return nil
}

// VisitExtensionPoint creates the extension point wrapper element. Extension
// point content is never matched against the legacy document.
func (b *Builder) VisitExtensionPoint(ep *model.ExtensionPointFacet) error {
	name, err := hierarchy.GlobalElementName(ep)
	if err != nil {
		return err
	}

	ctx := b.stack.top()
	occurrence := ctx.node.occurrence(name.Local)
	out := ctx.node.Element().AddElement(toXMLName(name))
	node := &Node{
		Member:      ep,
		DocNode:     out,
		Match:       match.MatchNone,
		LegacyIndex: -1,
		path:        ctx.node.path.Child(name.Local, occurrence),
	}
	b.record(ctx, node)

	if ctx.legacy != nil {
		b.diags.AddInfo(diagnostic.CodeExtensionPoint, "extension point content is always synthesized",
			model.Describe(ep), node.Path())
	}

	b.stack.push(newNodeContext(node, nil))

	return nil
}

// VisitExtensionPointEnd closes the extension point's context.
func (b *Builder) VisitExtensionPointEnd(ep *model.ExtensionPointFacet) error {
	_, err := b.stack.pop(ep)
	return err
}

// fillText sets the text of a leaf element: the legacy text when the element
// matched and the legacy text is not blank, a synthesized value otherwise.
func (b *Builder) fillText(out, legacy *xmltree.Element, mt match.MatchType, field, owner model.NamedEntity) {
	if mt != match.MatchNone && legacy != nil {
		if text := legacy.Text(); !common.IsBlank(text) {
			out.SetText(strings.TrimSpace(text))
			return
		}
	}

	out.SetText(b.opts.Values.ExampleValue(field, owner))
}

// record attaches the node to the current context's node and notes the outcome.
func (b *Builder) record(ctx *nodeContext, node *Node) {
	ctx.node.addChild(node)
	b.counts[node.Match]++

	b.log.WithFields(logrus.Fields{
		"member":       model.Describe(node.Member),
		"match":        node.Match.String(),
		"legacy_index": node.LegacyIndex,
	}).Debug("classified")

	switch {
	case node.Match == match.MatchPartial:
		b.diags.AddWarning(diagnostic.CodePartialMatch, "reused content from a different namespace version",
			model.Describe(node.Member), node.Path())
	case node.Match == match.MatchNone && ctx.legacy != nil:
		b.diags.AddInfo(diagnostic.CodeSynthesized, "no reusable legacy content",
			model.Describe(node.Member), node.Path())
	}
}

func toXMLName(q model.QName) xmltree.Name {
	return xmltree.Name{Space: q.Namespace, Local: q.Local}
}
