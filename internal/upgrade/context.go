package upgrade

import (
	"errors"
	"fmt"

	"example-upgrader/internal/match"
	"example-upgrader/internal/model"
	"example-upgrader/internal/xmltree"
)

// nodeContext pairs an upgrade node with a forward-only cursor over the child
// elements of the legacy element it was matched to.
type nodeContext struct {
	node     *Node
	legacy   *xmltree.Element // nil when there is nothing to reuse
	children []*xmltree.Element
	cursor   int // index of the first unconsumed legacy child
}

func newNodeContext(node *Node, legacy *xmltree.Element) *nodeContext {
	ctx := &nodeContext{node: node, legacy: legacy}
	if legacy != nil {
		ctx.children = legacy.ChildElements()
	}

	return ctx
}

// skipAhead scans forward from the cursor for the first legacy child that
// classifies as anything but MatchNone. The cursor moves past the match, or
// to the end when nothing matches. The returned index is -1 without a match.
func (c *nodeContext) skipAhead(classify func(*xmltree.Element) match.MatchType) (*xmltree.Element, int, match.MatchType) {
	for c.cursor < len(c.children) {
		index := c.cursor
		candidate := c.children[index]
		c.cursor++

		if mt := classify(candidate); mt != match.MatchNone {
			return candidate, index, mt
		}
	}

	return nil, -1, match.MatchNone
}

// lookupAttr finds a legacy attribute by local name, ignoring order and namespace.
func (c *nodeContext) lookupAttr(local string) *xmltree.Attr {
	if c.legacy == nil {
		return nil
	}

	return c.legacy.Attr(local)
}

// ErrUnbalancedEvents reports navigator end events that do not close the open context.
var ErrUnbalancedEvents = errors.New("unbalanced navigator events")

// contextStack is the active traversal path. Pushes and pops follow the
// navigator's element and extension point enter/exit events exactly.
type contextStack struct {
	items []*nodeContext
}

func (s *contextStack) push(ctx *nodeContext) {
	s.items = append(s.items, ctx)
}

func (s *contextStack) pop(member model.Member) (*nodeContext, error) {
	if len(s.items) == 0 {
		return nil, fmt.Errorf("%w: end of %s without start", ErrUnbalancedEvents, model.Describe(member))
	}

	top := s.items[len(s.items)-1]
	if top.node.Member != member {
		return nil, fmt.Errorf("%w: end of %s while %s is open", ErrUnbalancedEvents,
			model.Describe(member), model.Describe(top.node.Member))
	}

	s.items = s.items[:len(s.items)-1]

	return top, nil
}

func (s *contextStack) top() *nodeContext {
	return s.items[len(s.items)-1]
}

func (s *contextStack) depth() int {
	return len(s.items)
}
