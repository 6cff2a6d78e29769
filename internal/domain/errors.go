package domain

import "errors"

var (
	// ErrInvalidGoals is returned when caller-supplied planning goals fail validation.
	ErrInvalidGoals = errors.New("invalid planning goals")

	// ErrInvalidPackage marks a catalog record that violates package invariants.
	ErrInvalidPackage = errors.New("invalid itinerary package")

	// ErrPackageNotFound is returned when a catalog lookup has no match.
	ErrPackageNotFound = errors.New("itinerary package not found")
)
