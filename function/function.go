// Package function models the unary and binary mapping capabilities.
//
// A Function is the capability of turning an input value into an output
// value. The package mirrors the classic functional vocabulary:
//
//   - Function:       A -> R
//   - BiFunction:     (A, B) -> R
//   - UnaryOperator:  T -> T
//   - BinaryOperator: (T, T) -> T
//
// Composition is expressed with free functions (Compose, AndThen) that
// return named node types instead of closures. A tree built from such nodes
// and registered leaf types stays transmittable through the funcwire
// registry, while the Func adapters remain available for in-process use
// where transmittability is not a concern.
package function

// Function is the capability of mapping an A value to an R value.
type Function[A, R any] interface {
	// Apply performs the mapping on the given input value.
	Apply(A) R
}

// BiFunction is the capability of mapping a pair of values to an R value.
type BiFunction[A, B, R any] interface {
	Apply(A, B) R
}

// UnaryOperator is a Function whose input and output share the same type.
type UnaryOperator[T any] interface {
	Function[T, T]
}

// BinaryOperator is a BiFunction operating on and returning a single type.
type BinaryOperator[T any] interface {
	BiFunction[T, T, T]
}

// Func (function.Func) is a default implementation for creating a Function
// from an ordinary go function.
//
// Values of Func are not transmittable.
type Func[A, R any] func(A) R

func (fn Func[A, R]) Apply(a A) R { return fn(a) }

// BiFunc is a default implementation for creating a BiFunction.
//
// Values of BiFunc are not transmittable.
type BiFunc[A, B, R any] func(A, B) R

func (fn BiFunc[A, B, R]) Apply(a A, b B) R { return fn(a, b) }

// Composed is the mapping that applies First and feeds its output to Then.
type Composed[A, B, R any] struct {
	First Function[A, B]
	Then  Function[B, R]
}

func (c Composed[A, B, R]) Apply(a A) R {
	return c.Then.Apply(c.First.Apply(a))
}

// Compose returns the mapping that first applies before, then fn.
//
// Compose(fn, before).Apply(v) == fn.Apply(before.Apply(v))
func Compose[A, B, R any](fn Function[B, R], before Function[A, B]) Function[A, R] {
	if fn == nil {
		panic("function.Compose: missing Function")
	}
	if before == nil {
		panic("function.Compose: missing before Function")
	}
	return Composed[A, B, R]{First: before, Then: fn}
}

// AndThen returns the mapping that first applies fn, then after.
//
// AndThen(fn, after).Apply(v) == after.Apply(fn.Apply(v))
func AndThen[A, B, R any](fn Function[A, B], after Function[B, R]) Function[A, R] {
	if fn == nil {
		panic("function.AndThen: missing Function")
	}
	if after == nil {
		panic("function.AndThen: missing after Function")
	}
	return Composed[A, B, R]{First: fn, Then: after}
}

// Identity is the operator that returns its input unchanged.
type Identity[T any] struct{}

func (Identity[T]) Apply(v T) T { return v }

// gob refuses struct types without exported fields.
func (Identity[T]) GobEncode() ([]byte, error) { return []byte{}, nil }

func (*Identity[T]) GobDecode([]byte) error { return nil }
