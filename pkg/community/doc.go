// Package community models an urban community: a fixed, ordered set of cities
// joined by roads, some of which host an electric-vehicle charging point.
//
// # Accessibility
//
// A community is valid when every city without a charging point is adjacent
// to at least one city that has one; in graph terms the charging cities form a
// dominating set. A freshly built community holds no points and is usually
// invalid; [UrbanCommunity.IsValid] checks the property globally at any time.
//
// Validity is protected on the way down rather than on the way up: adding a
// charging point can never break it, so [UrbanCommunity.AddChargingPoint] only
// rejects repeated additions, while [UrbanCommunity.RemoveChargingPoint]
// refuses any removal that would leave the city itself, or a neighbor that
// relied on it exclusively, without access to a charging point.
//
// # Refusals
//
// A refused removal is routine for the search strategies in package solver,
// which attempt thousands of them. [UrbanCommunity.TryRemoveChargingPoint]
// reports the refusal as a [Removal] value without building an error;
// [UrbanCommunity.RemoveChargingPoint] converts the same refusal into an
// ACCESSIBILITY_VIOLATION error carrying an [*AccessibilityError] that lists
// the stranded cities.
//
// # Names
//
// City names are matched case-insensitively. [New] rejects two cities whose
// names differ only in case, so a lookup never has to choose between matches.
//
// # Concurrency
//
// UrbanCommunity holds mutable state without locking. Use one community per
// goroutine, or guard the whole value with a single mutex.
package community
