// Package predicate models the boolean-valued testing capability.
package predicate

// Predicate is the capability of testing whether a value matches a condition.
type Predicate[T any] interface {
	// Test reports whether the condition holds for the given value.
	Test(T) bool
}

// BiPredicate is the capability of testing a condition over a pair of values.
type BiPredicate[A, B any] interface {
	Test(A, B) bool
}

// Func (predicate.Func) is a default implementation for creating a Predicate
// from an ordinary go function.
//
// Values of Func are not transmittable.
type Func[T any] func(T) bool

func (fn Func[T]) Test(v T) bool { return fn(v) }

// BiFunc is a default implementation for creating a BiPredicate.
//
// Values of BiFunc are not transmittable.
type BiFunc[A, B any] func(A, B) bool

func (fn BiFunc[A, B]) Test(a A, b B) bool { return fn(a, b) }

// Conjunction is the predicate that holds when both A and B hold.
//
// B is not consulted when A already rejects the value.
type Conjunction[T any] struct{ A, B Predicate[T] }

func (c Conjunction[T]) Test(v T) bool {
	return c.A.Test(v) && c.B.Test(v)
}

// Disjunction is the predicate that holds when either A or B holds.
//
// B is not consulted when A already accepts the value.
type Disjunction[T any] struct{ A, B Predicate[T] }

func (d Disjunction[T]) Test(v T) bool {
	return d.A.Test(v) || d.B.Test(v)
}

// Negation is the predicate that holds when Base rejects the value.
type Negation[T any] struct{ Base Predicate[T] }

func (n Negation[T]) Test(v T) bool {
	return !n.Base.Test(v)
}

// EqualTo is the predicate that accepts values equal to Value.
type EqualTo[T comparable] struct{ Value T }

func (e EqualTo[T]) Test(v T) bool { return v == e.Value }

// And returns the short-circuiting conjunction of p and other.
func And[T any](p, other Predicate[T]) Predicate[T] {
	if p == nil {
		panic("predicate.And: missing Predicate")
	}
	if other == nil {
		panic("predicate.And: missing other Predicate")
	}
	return Conjunction[T]{A: p, B: other}
}

// Or returns the short-circuiting disjunction of p and other.
func Or[T any](p, other Predicate[T]) Predicate[T] {
	if p == nil {
		panic("predicate.Or: missing Predicate")
	}
	if other == nil {
		panic("predicate.Or: missing other Predicate")
	}
	return Disjunction[T]{A: p, B: other}
}

// Negate returns the logical negation of p.
func Negate[T any](p Predicate[T]) Predicate[T] {
	if p == nil {
		panic("predicate.Negate: missing Predicate")
	}
	return Negation[T]{Base: p}
}

// IsEqualTo returns the predicate accepting values equal to the given one.
func IsEqualTo[T comparable](v T) Predicate[T] {
	return EqualTo[T]{Value: v}
}

// BiConjunction is the pairwise predicate that holds when both A and B hold.
type BiConjunction[A, B any] struct{ X, Y BiPredicate[A, B] }

func (c BiConjunction[A, B]) Test(a A, b B) bool {
	return c.X.Test(a, b) && c.Y.Test(a, b)
}

// BiDisjunction is the pairwise predicate that holds when either X or Y holds.
type BiDisjunction[A, B any] struct{ X, Y BiPredicate[A, B] }

func (d BiDisjunction[A, B]) Test(a A, b B) bool {
	return d.X.Test(a, b) || d.Y.Test(a, b)
}

// BiNegation is the pairwise predicate that holds when Base rejects the pair.
type BiNegation[A, B any] struct{ Base BiPredicate[A, B] }

func (n BiNegation[A, B]) Test(a A, b B) bool {
	return !n.Base.Test(a, b)
}

// BiAnd returns the short-circuiting conjunction of p and other.
func BiAnd[A, B any](p, other BiPredicate[A, B]) BiPredicate[A, B] {
	if p == nil {
		panic("predicate.BiAnd: missing BiPredicate")
	}
	if other == nil {
		panic("predicate.BiAnd: missing other BiPredicate")
	}
	return BiConjunction[A, B]{X: p, Y: other}
}

// BiOr returns the short-circuiting disjunction of p and other.
func BiOr[A, B any](p, other BiPredicate[A, B]) BiPredicate[A, B] {
	if p == nil {
		panic("predicate.BiOr: missing BiPredicate")
	}
	if other == nil {
		panic("predicate.BiOr: missing other BiPredicate")
	}
	return BiDisjunction[A, B]{X: p, Y: other}
}

// BiNegate returns the logical negation of p.
func BiNegate[A, B any](p BiPredicate[A, B]) BiPredicate[A, B] {
	if p == nil {
		panic("predicate.BiNegate: missing BiPredicate")
	}
	return BiNegation[A, B]{Base: p}
}
