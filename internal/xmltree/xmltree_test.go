package xmltree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ns = "http://example.com/ord/v2"

func TestParse(t *testing.T) {
	input := `<?xml version="1.0"?>
<!-- generated -->
<ord:Order xmlns:ord="` + ns + `" id="42" ord:code="x">
  <!-- keep -->
  <ord:item>A</ord:item>
  <plain>  text  </plain>
</ord:Order>
`

	doc, err := ParseString(input)
	require.NoError(t, err)

	root := doc.Root
	assert.Equal(t, Name{Space: ns, Local: "Order"}, root.Name)
	assert.Nil(t, root.Parent)

	require.NotNil(t, root.Attr("id"))
	assert.Equal(t, "42", root.Attr("id").Value)
	assert.Equal(t, "x", root.Attr("code").Value)
	assert.Nil(t, root.Attr("ord"), "namespace declarations are not attributes")

	children := root.ChildElements()
	require.Len(t, children, 2)
	assert.Equal(t, Name{Space: ns, Local: "item"}, children[0].Name)
	assert.Equal(t, "A", children[0].Text())
	assert.Same(t, root, children[0].Parent)
	assert.Equal(t, "plain", children[1].Name.Local)
	assert.Empty(t, children[1].Name.Space)
	assert.Equal(t, "text", children[1].FirstNonBlankText())

	var comments int
	for _, c := range root.Children {
		if _, ok := c.(*Comment); ok {
			comments++
		}
	}

	assert.Equal(t, 1, comments)
}

func TestParseByteOrderMark(t *testing.T) {
	doc, err := ParseString("\uFEFF\n<a>x</a>\n")
	require.NoError(t, err)
	assert.Equal(t, "a", doc.Root.Name.Local)
}

func TestParseErrors(t *testing.T) {
	_, err := ParseString("")
	require.Error(t, err)

	_, err = ParseString("<a><b></a>")
	require.Error(t, err)

	_, err = ParseString("<a/><b/>")
	require.Error(t, err)

	_, err = ParseString("text<a/>")
	require.Error(t, err)
}

func TestElementEditing(t *testing.T) {
	root := NewElement(Name{Space: ns, Local: "Order"})
	child := root.AddElement(Name{Space: ns, Local: "status"})

	attr := root.SetAttr(Name{Local: "id"}, "1")
	same := root.SetAttr(Name{Local: "id"}, "2")
	assert.Same(t, attr, same)
	assert.Equal(t, "2", root.Attr("id").Value)
	assert.Len(t, root.Attrs, 1)

	root.SetText("first")
	root.SetText("second")
	assert.Equal(t, "second", root.Text())
	assert.Equal(t, []*Element{child}, root.ChildElements())
}

func TestWrite(t *testing.T) {
	root := NewElement(Name{Space: ns, Local: "Order"})
	root.SetAttr(Name{Local: "id"}, `4<2>"`)
	root.AddElement(Name{Space: ns, Local: "status"}).SetText("Open & shut")
	ext := root.AddElement(Name{Space: "http://example.com/ext/v1", Local: "ExtensionPoint"})
	ext.AddElement(Name{Space: "http://example.com/ext/v1", Local: "extra"})

	var sb strings.Builder
	require.NoError(t, Write(&sb, &Document{Root: root}))

	expected := `<?xml version="1.0" encoding="UTF-8"?>
<Order xmlns="` + ns + `" xmlns:ns1="http://example.com/ext/v1" id="4&lt;2&gt;&#34;">
  <status>Open &amp; shut</status>
  <ns1:ExtensionPoint>
    <ns1:extra/>
  </ns1:ExtensionPoint>
</Order>
`
	assert.Equal(t, expected, sb.String())
}

func TestWritePrefixesInFirstUseOrder(t *testing.T) {
	root := NewElement(Name{Space: ns, Local: "Order"})
	root.AddElement(Name{Space: "urn:b", Local: "second"})
	root.AddElement(Name{Space: "urn:a", Local: "first"})
	root.AddElement(Name{Space: "urn:b", Local: "again"})

	out := (&Document{Root: root}).String()

	assert.Contains(t, out, `<Order xmlns="`+ns+`" xmlns:ns1="urn:b" xmlns:ns2="urn:a">`)
	assert.Contains(t, out, "<ns1:second/>")
	assert.Contains(t, out, "<ns2:first/>")
	assert.Contains(t, out, "<ns1:again/>")
}

func TestWriteUnqualifiedChildDisablesDefaultNamespace(t *testing.T) {
	root := NewElement(Name{Space: ns, Local: "Order"})
	root.AddElement(Name{Local: "plain"}).SetText("x")

	out := (&Document{Root: root}).String()

	assert.Contains(t, out, `<ns1:Order xmlns:ns1="`+ns+`">`)
	assert.Contains(t, out, "<plain>x</plain>")
}

func TestWriteParseRoundTrip(t *testing.T) {
	input := `<Order xmlns="` + ns + `" id="42"><item>A</item><item>B</item><note/></Order>`

	doc, err := ParseString(input)
	require.NoError(t, err)

	again, err := ParseString(doc.String())
	require.NoError(t, err)

	assert.Equal(t, doc.Root.Name, again.Root.Name)
	assert.Equal(t, "42", again.Root.Attr("id").Value)

	items := again.Root.ChildElements()
	require.Len(t, items, 3)
	assert.Equal(t, "A", items[0].Text())
	assert.Equal(t, "B", items[1].Text())
	assert.Equal(t, Name{Space: ns, Local: "note"}, items[2].Name)
}
