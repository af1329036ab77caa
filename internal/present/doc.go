// Package present turns an existing example document into a read-only display
// tree. It has no knowledge of the model and performs no matching.
package present
