// Package consumer models the side-effecting acceptor capability.
package consumer

// Consumer is the capability of accepting a value for its side effects.
type Consumer[T any] interface {
	Accept(T)
}

// BiConsumer is the capability of accepting a pair of values.
type BiConsumer[A, B any] interface {
	Accept(A, B)
}

// Func (consumer.Func) is a default implementation for creating a Consumer
// from an ordinary go function.
//
// Values of Func are not transmittable.
type Func[T any] func(T)

func (fn Func[T]) Accept(v T) { fn(v) }

// BiFunc is a default implementation for creating a BiConsumer.
//
// Values of BiFunc are not transmittable.
type BiFunc[A, B any] func(A, B)

func (fn BiFunc[A, B]) Accept(a A, b B) { fn(a, b) }

// Sequence is the consumer that accepts with First, then with Then.
//
// When First panics, Then is not consulted.
type Sequence[T any] struct{ First, Then Consumer[T] }

func (s Sequence[T]) Accept(v T) {
	s.First.Accept(v)
	s.Then.Accept(v)
}

// BiSequence is the pairwise consumer that accepts with First, then with Then.
type BiSequence[A, B any] struct{ First, Then BiConsumer[A, B] }

func (s BiSequence[A, B]) Accept(a A, b B) {
	s.First.Accept(a, b)
	s.Then.Accept(a, b)
}

// AndThen returns the consumer that accepts with c, then with after.
func AndThen[T any](c, after Consumer[T]) Consumer[T] {
	if c == nil {
		panic("consumer.AndThen: missing Consumer")
	}
	if after == nil {
		panic("consumer.AndThen: missing after Consumer")
	}
	return Sequence[T]{First: c, Then: after}
}

// BiAndThen returns the pairwise consumer that accepts with c, then with after.
func BiAndThen[A, B any](c, after BiConsumer[A, B]) BiConsumer[A, B] {
	if c == nil {
		panic("consumer.BiAndThen: missing BiConsumer")
	}
	if after == nil {
		panic("consumer.BiAndThen: missing after BiConsumer")
	}
	return BiSequence[A, B]{First: c, Then: after}
}
