package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddInfo(CodeSynthesized, "no reusable legacy content", "element item", "Order/item[2]")
	d.AddWarning(CodePartialMatch, "reused content", "element item", "Order/item")
	d.AddInfo(CodeSynthesized, "no reusable legacy content", "attribute id", "Order/@id")

	assert.True(t, d.IsValid())
	assert.False(t, d.HasErrors())
	assert.Equal(t, 2, d.Count(CodeSynthesized))
	assert.Equal(t, 1, d.Count(CodePartialMatch))
	assert.Zero(t, d.Count(CodeUnmatchedRoot))

	d.AddError("broken", "first", "", "")
	d.AddError("broken", "second", "", "Order")

	assert.False(t, d.IsValid())
	require.EqualError(t, d.Error(), "[broken] first; Order: [broken] second")
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Code: CodePartialMatch, Message: "reused", Entity: "element item", Path: "Order/item"}
	assert.Equal(t, "[element item] Order/item: [partial-match] reused", d.String())

	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}

func TestMerge(t *testing.T) {
	var a, b Diagnostics

	a.AddInfo(CodeSynthesized, "x", "", "")
	b.AddWarning(CodeUnmatchedRoot, "y", "", "")
	b.AddError("e", "z", "", "")

	a.Merge(b)

	assert.Len(t, a.Infos, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Errors, 1)
}
