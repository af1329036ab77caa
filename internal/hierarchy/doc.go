// Package hierarchy resolves facet levels, owner extension chains and the
// preferred/super facet rules used to place inherited and extension content.
//
// Every walk over extension links or contextual parents keeps a visited set
// and fails with model.ErrCircularExtension when an entity is revisited.
package hierarchy
