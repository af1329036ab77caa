package xmltree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// ParseFile reads and parses an XML document from the given path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document %s: %w", path, err)
	}

	return doc, nil
}

// Parse builds a document tree from XML input. Element and attribute names
// carry resolved namespace URIs; prefixes are not preserved.
func Parse(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)

	var stack []*Element

	var root *Element

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, fmt.Errorf("unexpected element %s after document end", t.Name.Local)
			}

			elem := &Element{Name: t.Name}
			for _, a := range t.Attr {
				elem.Attrs = append(elem.Attrs, &Attr{Name: a.Name, Value: a.Value})
			}

			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				elem.Parent = parent
				parent.Children = append(parent.Children, elem)
			} else {
				root = elem
			}

			stack = append(stack, elem)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case xml.CharData:
			if len(stack) == 0 {
				if !isIgnorableOutsideRoot(string(t)) {
					return nil, errors.New("unexpected character data outside root element")
				}

				continue
			}

			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, &Text{Data: string(t)})

		case xml.Comment:
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, &Comment{Data: string(t)})
			}
		}
	}

	if root == nil {
		return nil, io.ErrUnexpectedEOF
	}

	return &Document{Root: root}, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

func isIgnorableOutsideRoot(data string) bool {
	for _, r := range data {
		if r == '\uFEFF' {
			continue
		}

		if !unicode.IsSpace(r) {
			return false
		}
	}

	return true
}
