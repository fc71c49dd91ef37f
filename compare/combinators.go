package compare

import (
	"golang.org/x/exp/constraints"

	"go.llib.dev/funcwire/function"
)

func orderedCompare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case b < a:
		return 1
	default:
		return 0
	}
}

// NaturalOrder is the ordering given by the "<" operator of the value type.
type NaturalOrder[T constraints.Ordered] struct{}

func (NaturalOrder[T]) Compare(a, b T) int { return orderedCompare(a, b) }

// gob refuses struct types without exported fields.
func (NaturalOrder[T]) GobEncode() ([]byte, error) { return []byte{}, nil }

func (*NaturalOrder[T]) GobDecode([]byte) error { return nil }

// ReverseOrder is the reverse of the natural ordering of the value type.
type ReverseOrder[T constraints.Ordered] struct{}

func (ReverseOrder[T]) Compare(a, b T) int { return orderedCompare(b, a) }

func (ReverseOrder[T]) GobEncode() ([]byte, error) { return []byte{}, nil }

func (*ReverseOrder[T]) GobDecode([]byte) error { return nil }

// Natural returns the ordering given by the "<" operator of the value type.
func Natural[T constraints.Ordered]() Interface[T] {
	return NaturalOrder[T]{}
}

// Reverse returns the reverse of the natural ordering of the value type.
func Reverse[T constraints.Ordered]() Interface[T] {
	return ReverseOrder[T]{}
}

// Inverted is the ordering that imposes the reverse of Base.
type Inverted[T any] struct{ Base Interface[T] }

func (o Inverted[T]) Compare(a, b T) int {
	return o.Base.Compare(b, a)
}

// Reversed returns the ordering that imposes the reverse of the given one.
//
// Reversing twice restores the original ordering's results.
func Reversed[T any](o Interface[T]) Interface[T] {
	if o == nil {
		panic("compare.Reversed: missing ordering")
	}
	return Inverted[T]{Base: o}
}

// Then is the ordering that breaks ties of Primary with Secondary.
type Then[T any] struct {
	Primary   Interface[T]
	Secondary Interface[T]
}

func (o Then[T]) Compare(a, b T) int {
	if cmp := o.Primary.Compare(a, b); !IsEqual(cmp) {
		return cmp
	}
	return o.Secondary.Compare(a, b)
}

// ThenComparing returns the ordering that uses secondary to break the ties
// of primary. When primary already decides, secondary is not consulted.
func ThenComparing[T any](primary, secondary Interface[T]) Interface[T] {
	if primary == nil {
		panic("compare.ThenComparing: missing ordering")
	}
	if secondary == nil {
		panic("compare.ThenComparing: missing secondary ordering")
	}
	return Then[T]{Primary: primary, Secondary: secondary}
}

// ByKey is the ordering that maps values through Key and orders the keys.
type ByKey[T, K any] struct {
	Key   function.Function[T, K]
	Order Interface[K]
}

func (o ByKey[T, K]) Compare(a, b T) int {
	return o.Order.Compare(o.Key.Apply(a), o.Key.Apply(b))
}

// ComparingBy returns the ordering of T values given by extracting a key
// from each and comparing the keys with the given key ordering.
func ComparingBy[T, K any](key function.Function[T, K], order Interface[K]) Interface[T] {
	if key == nil {
		panic("compare.ComparingBy: missing key function")
	}
	if order == nil {
		panic("compare.ComparingBy: missing key ordering")
	}
	return ByKey[T, K]{Key: key, Order: order}
}

// Comparing returns the ordering of T values given by extracting a key from
// each and comparing the keys with their natural ordering.
func Comparing[T any, K constraints.Ordered](key function.Function[T, K]) Interface[T] {
	if key == nil {
		panic("compare.Comparing: missing key function")
	}
	return ByKey[T, K]{Key: key, Order: NaturalOrder[K]{}}
}

// ThenComparingBy returns the ordering that breaks the ties of primary by
// a key extraction compared with the given key ordering.
func ThenComparingBy[T, K any](primary Interface[T], key function.Function[T, K], order Interface[K]) Interface[T] {
	if primary == nil {
		panic("compare.ThenComparingBy: missing ordering")
	}
	return ThenComparing[T](primary, ComparingBy[T, K](key, order))
}

// ThenComparingOrdered returns the ordering that breaks the ties of primary
// by a key extraction compared with the key's natural ordering.
func ThenComparingOrdered[T any, K constraints.Ordered](primary Interface[T], key function.Function[T, K]) Interface[T] {
	if primary == nil {
		panic("compare.ThenComparingOrdered: missing ordering")
	}
	return ThenComparing[T](primary, Comparing[T, K](key))
}

// Nulls is the ordering of pointers in which nil sorts before or after
// every non-nil value, and non-nil pairs are ordered by dereferencing into
// Order. Order never receives nil.
type Nulls[T any] struct {
	Order Interface[T]
	// Last makes nil sort after every non-nil value instead of before.
	Last bool
}

func (o Nulls[T]) Compare(a, b *T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		if o.Last {
			return 1
		}
		return -1
	case b == nil:
		if o.Last {
			return -1
		}
		return 1
	default:
		return o.Order.Compare(*a, *b)
	}
}

// NullsFirst returns the pointer ordering in which nil is the smallest
// value, two nils compare equal, and non-nil pairs use the given ordering.
func NullsFirst[T any](o Interface[T]) Interface[*T] {
	if o == nil {
		panic("compare.NullsFirst: missing ordering")
	}
	return Nulls[T]{Order: o}
}

// NullsLast returns the pointer ordering in which nil is the greatest
// value, two nils compare equal, and non-nil pairs use the given ordering.
func NullsLast[T any](o Interface[T]) Interface[*T] {
	if o == nil {
		panic("compare.NullsLast: missing ordering")
	}
	return Nulls[T]{Order: o, Last: true}
}
