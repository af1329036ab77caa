package upgrade

import (
	"fmt"

	"github.com/xlab/treeprint"

	"example-upgrader/internal/match"
	"example-upgrader/internal/model"
	"example-upgrader/internal/xmltree"
)

// Node pairs a model member with the output document node built for it and
// the confidence that the node's content came from the legacy document.
type Node struct {
	Member   model.Member
	DocNode  xmltree.Node // *xmltree.Element or *xmltree.Attr
	Match    match.MatchType
	Children []*Node
	Parent   *Node

	// LegacyIndex is the position of the consumed legacy sibling among its
	// parent's child elements, or -1 when nothing was consumed.
	LegacyIndex int

	path *NodePath
}

// Path returns the node's output document path.
func (n *Node) Path() string {
	if n.path == nil {
		return ""
	}

	return n.path.String()
}

// Element returns the output element, or nil for attribute nodes.
func (n *Node) Element() *xmltree.Element {
	e, _ := n.DocNode.(*xmltree.Element)
	return e
}

// Walk calls fn for the node and every descendant in document order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)

	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Tree renders the node tree with match annotations.
func (n *Node) Tree() string {
	tree := treeprint.NewWithRoot(n.label())
	n.addBranches(tree)

	return tree.String()
}

func (n *Node) addBranches(tree treeprint.Tree) {
	for _, c := range n.Children {
		if len(c.Children) == 0 {
			tree.AddNode(c.label())
			continue
		}

		c.addBranches(tree.AddBranch(c.label()))
	}
}

func (n *Node) label() string {
	switch d := n.DocNode.(type) {
	case *xmltree.Attr:
		return fmt.Sprintf("@%s = %s [%s]", d.Name.Local, d.Value, n.Match)
	case *xmltree.Element:
		if text := d.FirstNonBlankText(); text != "" {
			return fmt.Sprintf("%s = %s [%s]", d.Name.Local, text, n.Match)
		}

		return fmt.Sprintf("%s [%s]", d.Name.Local, n.Match)
	default:
		return fmt.Sprintf("? [%s]", n.Match)
	}
}

func (n *Node) addChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// occurrence returns the 1-based occurrence number a new child element with
// the given local name would have.
func (n *Node) occurrence(local string) int {
	count := 1

	for _, c := range n.Children {
		if e := c.Element(); e != nil && e.Name.Local == local {
			count++
		}
	}

	return count
}
