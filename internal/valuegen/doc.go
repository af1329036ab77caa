// Package valuegen provides the default example value generator used when no
// legacy value can be reused.
package valuegen
