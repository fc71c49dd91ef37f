package funcwire

import (
	"golang.org/x/exp/constraints"

	"go.llib.dev/funcwire/compare"
	"go.llib.dev/funcwire/function"
	"go.llib.dev/funcwire/predicate"
	"go.llib.dev/funcwire/supplier"
)

// RegisterOrdered registers the built-in capability nodes instantiated at T
// in the default registry, and returns a function that undoes it.
//
// It covers the ordering nodes of the compare package along with the nodes
// of the other vocabulary packages that an ordering composition commonly
// carries, so for value types with a natural order a single call makes the
// whole built-in suite transmittable.
func RegisterOrdered[T constraints.Ordered]() func() {
	return Register(
		compare.NaturalOrder[T]{},
		compare.ReverseOrder[T]{},
		compare.Inverted[T]{},
		compare.Then[T]{},
		compare.ByKey[T, T]{},
		compare.Nulls[T]{},
		&compare.Delegating[T]{},
		function.Identity[T]{},
		predicate.EqualTo[T]{},
		supplier.Constant[compare.Interface[T]]{},
	)
}
