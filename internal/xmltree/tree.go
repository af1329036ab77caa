package xmltree

import (
	"encoding/xml"
	"strings"
)

// Name is a namespace-qualified XML name. Space holds the namespace URI.
type Name = xml.Name

// Node is any node held in an element's child list, or an attribute.
type Node interface {
	isNode()
}

// Document is an in-memory XML document with a single root element.
type Document struct {
	Root *Element
}

// Element is a namespace-qualified element.
type Element struct {
	Name     Name
	Attrs    []*Attr
	Children []Node
	Parent   *Element
}

// Attr is a namespace-qualified attribute.
type Attr struct {
	Name  Name
	Value string
}

// Text is character data.
type Text struct {
	Data string
}

// Comment is an XML comment.
type Comment struct {
	Data string
}

func (*Element) isNode() {}
func (*Attr) isNode()    {}
func (*Text) isNode()    {}
func (*Comment) isNode() {}

// NewElement creates a detached element.
func NewElement(name Name) *Element {
	return &Element{Name: name}
}

// AddElement appends a new child element and returns it.
func (e *Element) AddElement(name Name) *Element {
	child := &Element{Name: name, Parent: e}
	e.Children = append(e.Children, child)

	return child
}

// SetAttr sets or replaces an attribute and returns it.
func (e *Element) SetAttr(name Name, value string) *Attr {
	for _, a := range e.Attrs {
		if a.Name == name {
			a.Value = value
			return a
		}
	}

	a := &Attr{Name: name, Value: value}
	e.Attrs = append(e.Attrs, a)

	return a
}

// SetText replaces the element's character data with a single text node.
// Child elements are kept.
func (e *Element) SetText(text string) {
	kept := e.Children[:0]

	for _, c := range e.Children {
		if _, ok := c.(*Text); !ok {
			kept = append(kept, c)
		}
	}

	e.Children = append([]Node{&Text{Data: text}}, kept...)
}

// ChildElements returns the element children in document order.
func (e *Element) ChildElements() []*Element {
	var result []*Element

	for _, c := range e.Children {
		if child, ok := c.(*Element); ok {
			result = append(result, child)
		}
	}

	return result
}

// Attr returns the first attribute with the given local name, ignoring its
// namespace, or nil. Namespace declarations are never returned.
func (e *Element) Attr(local string) *Attr {
	for _, a := range e.Attrs {
		if a.Name.Local == local && !IsNamespaceDecl(a) {
			return a
		}
	}

	return nil
}

// Text returns the concatenated direct character data of the element.
func (e *Element) Text() string {
	var sb strings.Builder

	for _, c := range e.Children {
		if t, ok := c.(*Text); ok {
			sb.WriteString(t.Data)
		}
	}

	return sb.String()
}

// FirstNonBlankText returns the first direct text child that is not blank, trimmed.
func (e *Element) FirstNonBlankText() string {
	for _, c := range e.Children {
		if t, ok := c.(*Text); ok {
			if trimmed := strings.TrimSpace(t.Data); trimmed != "" {
				return trimmed
			}
		}
	}

	return ""
}

// IsNamespaceDecl returns true for xmlns and xmlns:* attributes.
func IsNamespaceDecl(a *Attr) bool {
	return a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns")
}
