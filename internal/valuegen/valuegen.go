package valuegen

import (
	"strings"

	"example-upgrader/internal/model"
)

// Generator invents example values for fields that have nothing reusable in
// the legacy document. Values are deterministic.
type Generator struct{}

// New creates a Generator.
func New() *Generator {
	return &Generator{}
}

// builtinExamples maps builtin base type names to example values.
var builtinExamples = map[string]string{
	"string":             "Text",
	"normalizedstring":   "Text",
	"token":              "Token",
	"boolean":            "true",
	"int":                "100",
	"integer":            "100",
	"long":               "100",
	"short":              "10",
	"byte":               "1",
	"positiveinteger":    "1",
	"nonnegativeinteger": "0",
	"decimal":            "100.00",
	"float":              "1.5",
	"double":             "1.5",
	"date":               "2026-01-01",
	"datetime":           "2026-01-01T09:00:00",
	"time":               "09:00:00",
	"duration":           "P1D",
	"anyuri":             "http://www.example.com",
	"id":                 "ID001",
	"idref":              "ID001",
	"language":           "en",
}

// ExampleValue returns an example value for the field. Explicit examples take
// precedence, then the referenced type's example or first enumeration value,
// then a value for the builtin base type.
func (g *Generator) ExampleValue(field, _ model.NamedEntity) string {
	switch f := field.(type) {
	case *model.Indicator:
		return "true"

	case *model.Attribute:
		if f.Example != "" {
			return f.Example
		}

		return typeExample(f.Type, f.Name)

	case *model.Element:
		if f.Example != "" {
			return f.Example
		}

		if f.Reference {
			return referenceID(f)
		}

		return typeExample(f.Type, f.Name)

	case *model.ValueWithAttributes:
		return typeExample(f, f.Name)

	default:
		return ""
	}
}

func typeExample(t model.Type, fieldName string) string {
	seen := make(map[model.Type]bool)

	for t != nil && !seen[t] {
		seen[t] = true

		switch tt := t.(type) {
		case *model.SimpleType:
			if tt.Example != "" {
				return tt.Example
			}

			if len(tt.Enumeration) > 0 {
				return tt.Enumeration[0]
			}

			if v, ok := builtinExamples[strings.ToLower(tt.Base)]; ok {
				return v
			}

			if v, ok := builtinExamples[strings.ToLower(tt.Name)]; ok {
				return v
			}

			return fieldName

		case *model.ValueWithAttributes:
			if tt.Example != "" {
				return tt.Example
			}

			t = tt.Parent

		default:
			return fieldName
		}
	}

	return fieldName
}

func referenceID(e *model.Element) string {
	name := e.Name
	if name == "" && e.Type != nil {
		name = e.Type.EntityName()
	}

	return name + "_ID001"
}
