// Package compare models the ordering capability.
//
// An ordering is expressed by the Interface capability, whose Compare method
// maps a pair of values to the classic negative / zero / positive contract.
// Orderings compose through the functions in this package (Reversed,
// ThenComparing, NullsFirst, ...), each of which returns a named node type
// rather than a closure, so that a composed ordering built from
// transmittable parts stays transmittable through the funcwire registry.
package compare

import (
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

// Interface defines how comparison can be implemented.
//
// Types implementing this interface must provide a Compare method that
// defines a total ordering over T values.
// This pattern is useful when working with:
// 1. Custom user-defined types requiring comparison logic
// 2. Encapsulated values needing semantic comparisons
// 3. Comparison-agnostic systems (e.g., sorting algorithms)
//
// Example usage:
//
//	type ByLength struct{}
//
//	func (ByLength) Compare(a, b string) int {
//		return compare.Numbers(len(a), len(b))
//	}
type Interface[T any] interface {
	// Compare returns:
	//   -1 if a is less than b,
	//    0 if they're equal, and
	//   +1 if a is greater.
	//
	// Think of the result of Compare like a seesaw:
	// The side that’s lower (touching the ground) represents the smaller value.
	// The side that’s up shows the larger value — it’s higher, so it’s greater.
	//
	// Implementors must ensure consistent ordering semantics.
	Compare(a, b T) int
}

// Func (compare.Func) is a default implementation for creating an ordering
// from an ordinary go function.
//
// Values of Func are not transmittable.
// Use the named node types of this package when the ordering
// has to travel through a funcwire registry.
type Func[T any] func(a, b T) int

func (fn Func[T]) Compare(a, b T) int { return fn(a, b) }

// IsEqual reports whether two values are equal based on their comparison result.
func IsEqual(cmp int) bool {
	return cmp == 0
}

// IsLess reports whether the receiver is less than another value.
func IsLess(cmp int) bool {
	return cmp < 0
}

// IsLessOrEqual reports whether the receiver is less than or equal to another value.
func IsLessOrEqual(cmp int) bool {
	return cmp <= 0
}

// IsMore reports whether the receiver is greater than another value.
func IsMore(cmp int) bool {
	return 0 < cmp
}

// IsMoreOrEqual reports whether the receiver is more than or equal to another value.
func IsMoreOrEqual(cmp int) bool {
	return 0 <= cmp
}

// IsGreater reports whether the receiver is greater than another value.
func IsGreater(cmp int) bool {
	return IsMore(cmp)
}

// IsGreaterOrEqual reports whether the receiver is greater than or equal to another value.
func IsGreaterOrEqual(cmp int) bool {
	return IsMoreOrEqual(cmp)
}

// Number is a constraint that includes the numeric types ordered by "<".
type Number interface {
	constraints.Integer | constraints.Float
}

func Numbers[T Number](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func Strings[S ~string](a, b S) int {
	return strings.Compare(string(a), string(b))
}

// Sort sorts the values in place into the order described by the ordering.
//
// The sort is not guaranteed to be stable.
func Sort[T any](values []T, o Interface[T]) {
	sort.Slice(values, func(i, j int) bool {
		return IsLess(o.Compare(values[i], values[j]))
	})
}

// IsSorted reports whether the values are in the order described by the ordering.
func IsSorted[T any](values []T, o Interface[T]) bool {
	return sort.SliceIsSorted(values, func(i, j int) bool {
		return IsLess(o.Compare(values[i], values[j]))
	})
}
