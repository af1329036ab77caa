package xmltree

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"example-upgrader/internal/common"
)

// Write serializes the document with two-space indentation. Namespaces are
// declared once on the root: the root's namespace becomes the default
// namespace unless some element is unqualified, every other namespace gets an
// nsN prefix in first-use order.
func Write(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	nw := &nsWriter{w: bw, prefixes: make(map[string]string)}

	nw.collect(doc.Root)
	nw.writeString(xml.Header)
	nw.writeElement(doc.Root, 0, true)
	nw.writeString("\n")

	if nw.err != nil {
		return nw.err
	}

	return bw.Flush()
}

// String serializes the document and returns it as a string.
func (d *Document) String() string {
	var sb strings.Builder
	if err := Write(&sb, d); err != nil {
		return ""
	}

	return sb.String()
}

type nsWriter struct {
	w        *bufio.Writer
	prefixes map[string]string // namespace -> prefix, "" for default
	order    []string
	prefixed int
	err      error
}

func (n *nsWriter) collect(root *Element) {
	unqualified := false
	walk(root, func(e *Element) {
		if e.Name.Space == "" {
			unqualified = true
		}
	})

	if root.Name.Space != "" && !unqualified {
		n.prefixes[root.Name.Space] = ""
		n.order = append(n.order, root.Name.Space)
	}

	walk(root, func(e *Element) {
		n.assign(e.Name.Space)

		for _, a := range e.Attrs {
			if !IsNamespaceDecl(a) {
				n.assign(a.Name.Space)
			}
		}
	})
}

func (n *nsWriter) assign(ns string) {
	if ns == "" {
		return
	}

	if _, ok := n.prefixes[ns]; ok {
		return
	}

	n.prefixed++
	n.prefixes[ns] = fmt.Sprintf("ns%d", n.prefixed)
	n.order = append(n.order, ns)
}

func (n *nsWriter) qualify(name Name) string {
	prefix := n.prefixes[name.Space]
	if name.Space == "" || prefix == "" {
		return name.Local
	}

	return prefix + ":" + name.Local
}

func (n *nsWriter) writeElement(e *Element, depth int, root bool) {
	indent := strings.Repeat("  ", depth)
	tag := n.qualify(e.Name)

	n.writeString(indent + "<" + tag)

	if root {
		for _, ns := range n.order {
			if p := n.prefixes[ns]; p == "" {
				n.writeAttr("xmlns", ns)
			} else {
				n.writeAttr("xmlns:"+p, ns)
			}
		}
	}

	for _, a := range e.Attrs {
		if !IsNamespaceDecl(a) {
			n.writeAttr(n.qualifyAttr(a.Name), a.Value)
		}
	}

	children := e.ChildElements()
	text := e.Text()

	switch {
	case len(children) == 0 && text == "":
		n.writeString("/>")
	case len(children) == 0:
		n.writeString(">")
		n.escape(text)
		n.writeString("</" + tag + ">")
	default:
		n.writeString(">")

		if !common.IsBlank(text) {
			n.escape(strings.TrimSpace(text))
		}

		for _, c := range children {
			n.writeString("\n")
			n.writeElement(c, depth+1, false)
		}

		n.writeString("\n" + indent + "</" + tag + ">")
	}
}

// qualifyAttr never uses the default namespace: unprefixed attributes are unqualified.
func (n *nsWriter) qualifyAttr(name Name) string {
	if name.Space == "" {
		return name.Local
	}

	prefix := n.prefixes[name.Space]
	if prefix == "" {
		return name.Local
	}

	return prefix + ":" + name.Local
}

func (n *nsWriter) writeAttr(name, value string) {
	n.writeString(" " + name + `="`)
	n.escape(value)
	n.writeString(`"`)
}

func (n *nsWriter) escape(s string) {
	if n.err != nil {
		return
	}

	n.err = xml.EscapeText(n.w, []byte(s))
}

func (n *nsWriter) writeString(s string) {
	if n.err != nil {
		return
	}

	_, n.err = n.w.WriteString(s)
}

func walk(e *Element, fn func(*Element)) {
	fn(e)

	for _, c := range e.ChildElements() {
		walk(c, fn)
	}
}
