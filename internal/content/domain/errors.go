package domain

import "errors"

var (
	// ErrProjectNotFound is returned by lookups with no matching project.
	ErrProjectNotFound = errors.New("project not found")

	// ErrUnknownVariant is returned when a content record's discriminator is
	// outside the closed set of four project types.
	ErrUnknownVariant = errors.New("unknown project variant")
)
