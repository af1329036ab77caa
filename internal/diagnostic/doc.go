// Package diagnostic provides structured warnings and notes explaining how an
// upgraded example was assembled.
//
// Key capabilities:
//   - Partial (cross-version) match warnings
//   - Notes for nodes synthesized although legacy content was available
//   - Unmatched root and extension point reports
package diagnostic
