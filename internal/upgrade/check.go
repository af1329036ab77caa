package upgrade

import (
	"github.com/sirupsen/logrus"

	"example-upgrader/internal/diagnostic"
	"example-upgrader/internal/model"
)

// ExampleRoots lists every model member an example document can be built for:
// the facets, list facets and aliases of each owner, the value types and the
// payload-shaped action facets, in declaration order.
func ExampleRoots(m *model.Model) []model.Member {
	var roots []model.Member

	for _, owner := range m.Owners {
		for _, facet := range owner.Facets {
			roots = append(roots, facet)
		}

		for _, list := range owner.Lists {
			roots = append(roots, list)
		}

		for _, alias := range owner.Aliases {
			roots = append(roots, alias)
		}
	}

	for _, vwa := range m.ValueTypes {
		roots = append(roots, vwa)
	}

	for _, action := range m.ActionFacets {
		if action.IsPayloadShaped() {
			roots = append(roots, action)
		}
	}

	return roots
}

// Check builds a fresh example for every root. A root whose build aborts is
// recorded as an error diagnostic; the diagnostics of the others are merged.
func (b *Builder) Check(roots []model.Member) diagnostic.Diagnostics {
	var all diagnostic.Diagnostics

	for _, root := range roots {
		result, err := b.Build(root, nil)
		if err != nil {
			all.AddError(diagnostic.CodeModelIntegrity, err.Error(), model.Describe(root), "")
			b.log.WithError(err).WithField("root", model.Describe(root)).Warn("example root failed")

			continue
		}

		all.Merge(result.Diagnostics)
	}

	b.log.WithFields(logrus.Fields{
		"roots":  len(roots),
		"failed": len(all.Errors),
	}).Info("model checked")

	return all
}
