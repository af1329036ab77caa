// Package match classifies legacy document nodes against the names the model
// expects at a position.
//
// Key functions:
//   - Classifier.Classify: Exact, Partial (cross-version) or None for elements;
//     Exact or None for attributes
//   - Classifier.ClassifyIndicator: indicator matching with "Ind" normalization
//   - NamespaceVersionScheme: base-namespace derivation for partial matches
package match
