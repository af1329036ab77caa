package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example-upgrader/internal/model"
)

func TestStructure(t *testing.T) {
	summary := withElement(&model.Facet{Type: model.FacetSummary}, "status")
	order := owner(model.OwnerBusinessObject, "Order", summary)
	vwa := &model.ValueWithAttributes{Name: "Money", Namespace: ns}

	m, err := Structure(str)
	require.NoError(t, err)
	assert.Nil(t, m)

	m, err = Structure(order)
	require.NoError(t, err)
	assert.Same(t, summary, m)

	m, err = Structure(vwa)
	require.NoError(t, err)
	assert.Same(t, vwa, m)

	_, err = Structure(nil)
	require.ErrorIs(t, err, model.ErrUnsupportedEntityType)
}

func TestGlobalElementName(t *testing.T) {
	summary := &model.Facet{Type: model.FacetSummary}
	owner(model.OwnerBusinessObject, "Order", summary)

	name, err := GlobalElementName(summary)
	require.NoError(t, err)
	assert.Equal(t, model.QName{Namespace: ns, Local: "Order"}, name)

	_, err = GlobalElementName(&model.Facet{Type: model.FacetSummary, Owner: &model.FacetOwner{Namespace: ns}})
	require.ErrorIs(t, err, model.ErrMissingGlobalElementName)

	_, err = GlobalElementName(&model.Attribute{Name: "id"})
	require.ErrorIs(t, err, model.ErrUnsupportedEntityType)
}

func TestElementName(t *testing.T) {
	summary := withElement(&model.Facet{Type: model.FacetSummary}, "status")
	customer := owner(model.OwnerBusinessObject, "Customer", summary)

	orderSummary := &model.Facet{Type: model.FacetSummary}
	owner(model.OwnerBusinessObject, "Order", orderSummary)

	money := &model.ValueWithAttributes{Name: "Money", Namespace: ns, Parent: str}

	t.Run("simple leaf uses the field name", func(t *testing.T) {
		name, m, err := ElementName(&model.Element{Owner: orderSummary, Name: "status", Type: str})
		require.NoError(t, err)
		assert.Equal(t, model.QName{Namespace: ns, Local: "status"}, name)
		assert.Nil(t, m)
	})

	t.Run("value type leaf uses the field name", func(t *testing.T) {
		name, m, err := ElementName(&model.Element{Owner: orderSummary, Name: "total", Type: money})
		require.NoError(t, err)
		assert.Equal(t, "total", name.Local)
		assert.Same(t, money, m)
	})

	t.Run("complex type uses the global element name", func(t *testing.T) {
		name, m, err := ElementName(&model.Element{Owner: orderSummary, Name: "buyer", Type: customer})
		require.NoError(t, err)
		assert.Equal(t, model.QName{Namespace: ns, Local: "Customer"}, name)
		assert.Same(t, summary, m)
	})

	t.Run("reference uses the field name", func(t *testing.T) {
		name, m, err := ElementName(&model.Element{Owner: orderSummary, Name: "customerRef", Type: customer, Reference: true})
		require.NoError(t, err)
		assert.Equal(t, "customerRef", name.Local)
		assert.Nil(t, m)
	})

	t.Run("unnamed leaf", func(t *testing.T) {
		_, _, err := ElementName(&model.Element{Owner: orderSummary, Type: str})
		require.ErrorIs(t, err, model.ErrMissingGlobalElementName)
	})
}
