package community

import (
	"fmt"
	"strings"

	errs "github.com/urbancharge/urbancharge/pkg/errors"
)

// RemovalStatus is the outcome of an attempt to remove a charging point.
type RemovalStatus int

const (
	// Removed means the point was removed and the community stays accessible.
	Removed RemovalStatus = iota
	// RefusedSelf means the city has no neighbor with a charging point, so
	// removing its own point would leave it without access.
	RefusedSelf
	// RefusedDependents means one or more neighbors without a point of their
	// own rely on this city as their only charging neighbor.
	RefusedDependents
)

// String returns a short label for logs.
func (s RemovalStatus) String() string {
	switch s {
	case Removed:
		return "removed"
	case RefusedSelf:
		return "refused-self"
	case RefusedDependents:
		return "refused-dependents"
	default:
		return fmt.Sprintf("RemovalStatus(%d)", int(s))
	}
}

// Removal describes the result of [UrbanCommunity.TryRemoveChargingPoint].
type Removal struct {
	City       string        // Name of the city whose point was targeted
	Status     RemovalStatus // Outcome
	Dependents []string      // Stranded neighbors, set only for RefusedDependents
}

// OK reports whether the point was removed.
func (r Removal) OK() bool { return r.Status == Removed }

// Err converts a refusal into an ACCESSIBILITY_VIOLATION error wrapping an
// *AccessibilityError. It returns nil when the point was removed.
func (r Removal) Err() error {
	if r.OK() {
		return nil
	}
	ae := &AccessibilityError{
		City:       r.City,
		Self:       r.Status == RefusedSelf,
		Dependents: r.Dependents,
	}
	return errs.Wrap(errs.ErrCodeAccessibilityViolation, ae, "cannot remove the charging point of %s", r.City)
}

// AccessibilityError names the cities a refused removal would have stranded.
// Retrieve it with errors.As from the error returned by RemoveChargingPoint.
type AccessibilityError struct {
	City       string   // City whose point was targeted
	Self       bool     // City itself has no charging neighbor
	Dependents []string // Neighbors whose only charging neighbor is City
}

// Stranded returns every city that would lose access, in neighbor order.
func (e *AccessibilityError) Stranded() []string {
	if e.Self {
		return []string{e.City}
	}
	return e.Dependents
}

// Error implements the error interface.
func (e *AccessibilityError) Error() string {
	if e.Self {
		return fmt.Sprintf("%s has no neighbor with a charging point", e.City)
	}
	return fmt.Sprintf("%s would be left without a charging point nearby", strings.Join(e.Dependents, ", "))
}
