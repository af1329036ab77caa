package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example-upgrader/internal/model"
)

const ns = "http://example.com/ord/v2"

var str = &model.SimpleType{Name: "string", Base: "string"}

func owner(kind model.OwnerKind, name string, facets ...*model.Facet) *model.FacetOwner {
	o := &model.FacetOwner{Kind: kind, Name: name, Namespace: ns}
	for _, f := range facets {
		f.Owner = o
		o.Facets = append(o.Facets, f)
	}

	return o
}

func withElement(f *model.Facet, name string) *model.Facet {
	f.Elements = append(f.Elements, &model.Element{Owner: f, Name: name, Type: str})
	return f
}

func facet(o *model.FacetOwner, key model.FacetKey) *model.Facet {
	for _, f := range o.Facets {
		if f.Key() == key {
			return f
		}
	}

	return nil
}

func keys(levels []*model.Facet) []string {
	var result []string
	for _, l := range levels {
		result = append(result, l.Owner.Name+"#"+l.Key().String())
	}

	return result
}

func TestLocalFacetHierarchy(t *testing.T) {
	gold := &model.Facet{Type: model.FacetCustom, Label: "Gold"}
	vip := &model.Facet{Type: model.FacetCustom, Label: "VIP", Parent: gold}

	order := owner(model.OwnerBusinessObject, "Order",
		&model.Facet{Type: model.FacetID},
		&model.Facet{Type: model.FacetSummary},
		&model.Facet{Type: model.FacetDetail},
		gold, vip,
		&model.Facet{Type: model.FacetQuery, Label: "ByDate"},
	)

	tests := []struct {
		name     string
		facet    *model.Facet
		expected []string
	}{
		{"summary", facet(order, model.FacetKey{Type: model.FacetSummary}), []string{"Order#ID", "Order#Summary"}},
		{"detail", facet(order, model.FacetKey{Type: model.FacetDetail}),
			[]string{"Order#ID", "Order#Summary", "Order#Detail"}},
		{"nested custom", vip, []string{"Order#ID", "Order#Summary", "Order#Custom:Gold", "Order#Custom:VIP"}},
		{"query", facet(order, model.FacetKey{Type: model.FacetQuery, Label: "ByDate"}), []string{"Order#Query:ByDate"}},
		{"id", facet(order, model.FacetKey{Type: model.FacetID}), []string{"Order#ID"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, keys(LocalFacetHierarchy(tt.facet)))
		})
	}
}

func TestLocalFacetHierarchyChoice(t *testing.T) {
	choice := owner(model.OwnerChoiceObject, "Payment",
		&model.Facet{Type: model.FacetShared},
		&model.Facet{Type: model.FacetChoice, Label: "Card"},
	)

	levels := LocalFacetHierarchy(choice.Facets[1])
	assert.Equal(t, []string{"Payment#Shared", "Payment#Choice:Card"}, keys(levels))
}

func TestFacetHierarchyIncludesExtendedOwners(t *testing.T) {
	root := owner(model.OwnerBusinessObject, "Entity",
		&model.Facet{Type: model.FacetID},
		&model.Facet{Type: model.FacetSummary},
	)
	base := owner(model.OwnerBusinessObject, "BaseOrder",
		&model.Facet{Type: model.FacetSummary},
		&model.Facet{Type: model.FacetDetail},
	)
	order := owner(model.OwnerBusinessObject, "Order",
		&model.Facet{Type: model.FacetID},
		&model.Facet{Type: model.FacetSummary},
		&model.Facet{Type: model.FacetDetail},
	)
	order.Extends = base
	base.Extends = root

	levels, err := FacetHierarchy(facet(order, model.FacetKey{Type: model.FacetDetail}))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Entity#ID", "Order#ID",
		"Entity#Summary", "BaseOrder#Summary", "Order#Summary",
		"BaseOrder#Detail", "Order#Detail",
	}, keys(levels))
}

func TestExtensionChain(t *testing.T) {
	a := owner(model.OwnerBusinessObject, "A")
	b := owner(model.OwnerBusinessObject, "B")
	core := owner(model.OwnerCoreObject, "C")

	a.Extends = b

	chain, err := ExtensionChain(a)
	require.NoError(t, err)
	assert.Equal(t, []*model.FacetOwner{a, b}, chain)

	t.Run("different kind is ignored", func(t *testing.T) {
		b.Extends = core
		defer func() { b.Extends = nil }()

		chain, err := ExtensionChain(a)
		require.NoError(t, err)
		assert.Len(t, chain, 2)
		assert.Nil(t, FacetOwnerExtension(b))
	})

	t.Run("cycle", func(t *testing.T) {
		b.Extends = a
		defer func() { b.Extends = nil }()

		_, err := ExtensionChain(a)
		require.ErrorIs(t, err, model.ErrCircularExtension)
	})
}

func TestFacetHierarchyCircularExtension(t *testing.T) {
	a := owner(model.OwnerBusinessObject, "A", &model.Facet{Type: model.FacetSummary})
	b := owner(model.OwnerBusinessObject, "B", &model.Facet{Type: model.FacetSummary})
	a.Extends = b
	b.Extends = a

	_, err := FacetHierarchy(a.Facets[0])
	require.ErrorIs(t, err, model.ErrCircularExtension)

	_, err = SuperFacet(&model.Facet{Owner: a, Type: model.FacetDetail})
	require.ErrorIs(t, err, model.ErrCircularExtension)
}

func TestContextualParentCycle(t *testing.T) {
	x := &model.Facet{Type: model.FacetCustom, Label: "X"}
	y := &model.Facet{Type: model.FacetCustom, Label: "Y", Parent: x}
	x.Parent = y
	owner(model.OwnerBusinessObject, "Order", x, y)

	_, err := FacetHierarchy(y)
	require.ErrorIs(t, err, model.ErrCircularExtension)
}

func TestSuperFacet(t *testing.T) {
	id := withElement(&model.Facet{Type: model.FacetID}, "orderId")
	summary := &model.Facet{Type: model.FacetSummary}
	detail := &model.Facet{Type: model.FacetDetail}
	owner(model.OwnerBusinessObject, "Order", id, summary, detail)

	super, err := SuperFacet(summary)
	require.NoError(t, err)
	assert.Same(t, id, super)

	// empty summary is skipped
	super, err = SuperFacet(detail)
	require.NoError(t, err)
	assert.Same(t, id, super)

	withElement(summary, "status")

	super, err = SuperFacet(detail)
	require.NoError(t, err)
	assert.Same(t, summary, super)

	super, err = SuperFacet(id)
	require.NoError(t, err)
	assert.Nil(t, super)

	t.Run("inherited from extended owner", func(t *testing.T) {
		baseSummary := withElement(&model.Facet{Type: model.FacetSummary}, "code")
		base := owner(model.OwnerBusinessObject, "Base", baseSummary)
		custom := &model.Facet{Type: model.FacetCustom, Label: "VIP"}
		derived := owner(model.OwnerBusinessObject, "Derived", custom)
		derived.Extends = base

		super, err := SuperFacet(custom)
		require.NoError(t, err)
		assert.Same(t, baseSummary, super)
	})

	t.Run("choice", func(t *testing.T) {
		shared := withElement(&model.Facet{Type: model.FacetShared}, "amount")
		card := &model.Facet{Type: model.FacetChoice, Label: "Card"}
		owner(model.OwnerChoiceObject, "Payment", shared, card)

		super, err := SuperFacet(card)
		require.NoError(t, err)
		assert.Same(t, shared, super)
	})
}

func TestPreferredFacet(t *testing.T) {
	t.Run("summary with content", func(t *testing.T) {
		summary := withElement(&model.Facet{Type: model.FacetSummary}, "status")
		o := owner(model.OwnerBusinessObject, "Order", &model.Facet{Type: model.FacetID}, summary)

		f, err := PreferredFacet(o)
		require.NoError(t, err)
		assert.Same(t, summary, f)
	})

	t.Run("empty summary defers to id", func(t *testing.T) {
		id := withElement(&model.Facet{Type: model.FacetID}, "orderId")
		o := owner(model.OwnerBusinessObject, "Order", id, &model.Facet{Type: model.FacetSummary})

		f, err := PreferredFacet(o)
		require.NoError(t, err)
		assert.Same(t, id, f)
	})

	t.Run("empty summary and empty id", func(t *testing.T) {
		summary := &model.Facet{Type: model.FacetSummary}
		o := owner(model.OwnerCoreObject, "Amount", &model.Facet{Type: model.FacetID}, summary)

		f, err := PreferredFacet(o)
		require.NoError(t, err)
		assert.Same(t, summary, f)
	})

	t.Run("choice and operation", func(t *testing.T) {
		shared := &model.Facet{Type: model.FacetShared}
		choice := owner(model.OwnerChoiceObject, "Payment", shared)

		f, err := PreferredFacet(choice)
		require.NoError(t, err)
		assert.Same(t, shared, f)

		rq := &model.Facet{Type: model.FacetRequest}
		op := owner(model.OwnerOperation, "GetOrder", rq, &model.Facet{Type: model.FacetResponse})

		f, err = PreferredFacet(op)
		require.NoError(t, err)
		assert.Same(t, rq, f)
	})

	t.Run("missing summary", func(t *testing.T) {
		_, err := PreferredFacet(owner(model.OwnerBusinessObject, "Empty"))
		require.ErrorIs(t, err, model.ErrFacetNotFound)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := PreferredFacet(owner(model.OwnerUnknown, "Odd"))
		require.ErrorIs(t, err, model.ErrUnsupportedEntityType)
	})
}

func TestFacetOfTypeNilOwner(t *testing.T) {
	_, err := FacetOfType(nil, model.FacetSummary)
	require.ErrorIs(t, err, model.ErrFacetNotFound)
}

func TestAliasTarget(t *testing.T) {
	summary := withElement(&model.Facet{Type: model.FacetSummary}, "status")
	detail := &model.Facet{Type: model.FacetDetail}
	o := owner(model.OwnerCoreObject, "Address", summary, detail)

	f, err := AliasTarget(&model.Alias{Name: "Addr", Owner: o})
	require.NoError(t, err)
	assert.Same(t, summary, f)

	f, err = AliasTarget(&model.Alias{Name: "AddrDetail", Owner: detail})
	require.NoError(t, err)
	assert.Same(t, detail, f)

	f, err = AliasTarget(&model.Alias{Name: "AddrList", Owner: &model.ListFacet{Owner: o, Item: detail}})
	require.NoError(t, err)
	assert.Same(t, detail, f)

	f, err = AliasTarget(&model.Alias{Name: "Odd", Owner: &model.ListFacet{Owner: o, Item: str}})
	require.NoError(t, err)
	assert.Nil(t, f)

	_, err = AliasTarget(&model.Alias{Name: "Str", Owner: str})
	require.ErrorIs(t, err, model.ErrUnsupportedAliasOwner)
}
