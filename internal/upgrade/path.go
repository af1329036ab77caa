package upgrade

import (
	"strconv"
	"strings"
)

// NodePath builds a readable path for an output node.
// Examples:
//   - "Order" for the root element
//   - "Order/@id" for an attribute
//   - "Order/item[2]" for the second occurrence of a repeated element
type NodePath struct {
	parts []string
}

// NewNodePath creates a new NodePath from the root element name.
func NewNodePath(root string) *NodePath {
	return &NodePath{
		parts: []string{root},
	}
}

// Child appends an element step. Occurrences after the first are indexed.
func (p *NodePath) Child(name string, occurrence int) *NodePath {
	step := name
	if occurrence > 1 {
		step += "[" + strconv.Itoa(occurrence) + "]"
	}

	return p.append(step)
}

// Attr appends an attribute step.
func (p *NodePath) Attr(name string) *NodePath {
	return p.append("@" + name)
}

// String returns the full path string.
func (p *NodePath) String() string {
	return strings.Join(p.parts, "/")
}

func (p *NodePath) append(step string) *NodePath {
	return &NodePath{
		parts: append(append([]string{}, p.parts...), step),
	}
}
