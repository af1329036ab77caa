// Package upgrade builds a new example document for a model entity while
// reusing what is still valid in an example generated for an older revision.
//
// The Builder is the navigator's listener. It keeps an explicit stack of node
// contexts, one per open element, each holding a forward-only cursor over the
// matched legacy element's children. Elements are found by skip-ahead search
// from the cursor; attributes and indicators by name. Every output node is
// annotated as exact, partial (cross-version) or none (synthesized).
//
// Known limitations:
//   - Legacy siblings are never revisited, so reordered content is not reused.
//   - Extension point content is always synthesized.
package upgrade
