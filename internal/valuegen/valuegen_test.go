package valuegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"example-upgrader/internal/model"
)

func TestExampleValue(t *testing.T) {
	g := New()

	status := &model.SimpleType{Name: "Status", Base: "string", Enumeration: []string{"Open", "Closed"}}
	code := &model.SimpleType{Name: "Code", Base: "token", Example: "ABC"}
	date := &model.SimpleType{Name: "date", Base: "date"}
	opaque := &model.SimpleType{Name: "Opaque"}
	money := &model.ValueWithAttributes{Name: "Money", Parent: &model.SimpleType{Name: "decimal", Base: "decimal"}}
	customer := &model.FacetOwner{Kind: model.OwnerBusinessObject, Name: "Customer"}

	tests := []struct {
		name     string
		field    model.NamedEntity
		expected string
	}{
		{"indicator", &model.Indicator{Name: "Active"}, "true"},
		{"explicit attribute example", &model.Attribute{Name: "id", Type: code, Example: "42"}, "42"},
		{"type example", &model.Attribute{Name: "id", Type: code}, "ABC"},
		{"enumeration", &model.Element{Name: "status", Type: status}, "Open"},
		{"builtin base", &model.Element{Name: "created", Type: date}, "2026-01-01"},
		{"field name fallback", &model.Element{Name: "blob", Type: opaque}, "blob"},
		{"value type parent", &model.Element{Name: "total", Type: money}, "100.00"},
		{"value type root", money, "100.00"},
		{"reference", &model.Element{Name: "customerRef", Type: customer, Reference: true}, "customerRef_ID001"},
		{"complex type", &model.Element{Name: "buyer", Type: customer}, "buyer"},
		{"other entity", &model.FacetOwner{Name: "Order"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, g.ExampleValue(tt.field, nil))
		})
	}
}

func TestExampleValueIsDeterministic(t *testing.T) {
	g := New()
	elem := &model.Element{Name: "count", Type: &model.SimpleType{Name: "int", Base: "int"}}

	assert.Equal(t, g.ExampleValue(elem, nil), g.ExampleValue(elem, nil))
	assert.Equal(t, "100", g.ExampleValue(elem, nil))
}
