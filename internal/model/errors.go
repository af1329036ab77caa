package model

import (
	"errors"
	"fmt"
)

// Model-integrity failures. Each aborts the whole run.
var (
	ErrUnsupportedEntityType    = errors.New("unsupported entity type")
	ErrUnsupportedAliasOwner    = errors.New("unsupported alias owner")
	ErrFacetNotFound            = errors.New("facet not found")
	ErrCircularExtension        = errors.New("circular extension")
	ErrMissingGlobalElementName = errors.New("missing global element name")
)

// Error carries a model-integrity failure together with the entity it concerns.
type Error struct {
	Err    error  // one of the Err* sentinels
	Entity string // Describe() of the offending entity
	Detail string
}

// NewError creates an Error for the given sentinel and entity.
func NewError(sentinel error, entity NamedEntity, format string, args ...any) *Error {
	return &Error{
		Err:    sentinel,
		Entity: Describe(entity),
		Detail: fmt.Sprintf(format, args...),
	}
}

// Error implements error.
func (e *Error) Error() string {
	msg := e.Err.Error() + ": " + e.Entity
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	return msg
}

// Unwrap returns the sentinel so callers can use errors.Is.
func (e *Error) Unwrap() error {
	return e.Err
}
