package present

import (
	"strings"

	"github.com/xlab/treeprint"

	"example-upgrader/internal/xmltree"
)

// DisplayNode is one labeled node of the original document's display tree.
type DisplayNode struct {
	Label    string
	Children []*DisplayNode
}

// Build transforms an element into a display tree. Each element and each
// attribute other than namespace declarations gets one node. Attributes come
// before child elements; comments and text nodes are skipped.
func Build(root *xmltree.Element) *DisplayNode {
	node := &DisplayNode{Label: label(root.Name.Local, root.FirstNonBlankText())}

	for _, a := range root.Attrs {
		if xmltree.IsNamespaceDecl(a) {
			continue
		}

		node.Children = append(node.Children, &DisplayNode{Label: label(a.Name.Local, strings.TrimSpace(a.Value))})
	}

	for _, c := range root.ChildElements() {
		node.Children = append(node.Children, Build(c))
	}

	return node
}

// Render draws the display tree as indented text.
func Render(root *DisplayNode) string {
	tree := treeprint.NewWithRoot(root.Label)
	addBranches(tree, root)

	return tree.String()
}

func addBranches(tree treeprint.Tree, node *DisplayNode) {
	for _, c := range node.Children {
		if len(c.Children) == 0 {
			tree.AddNode(c.Label)
			continue
		}

		addBranches(tree.AddBranch(c.Label), c)
	}
}

func label(name, text string) string {
	if text == "" {
		return name
	}

	return name + " = " + text
}
