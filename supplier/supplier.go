// Package supplier models the value-producing capability.
package supplier

// Supplier is the capability of producing a value on demand.
//
// Get may be called any number of times, and there is no requirement
// that a new or distinct value is produced on each call.
type Supplier[T any] interface {
	Get() T
}

// Func (supplier.Func) is a default implementation for creating a Supplier
// from an ordinary go function.
//
// Values of Func are not transmittable.
type Func[T any] func() T

func (fn Func[T]) Get() T { return fn() }

// Constant is the supplier that produces the same Value on every Get call.
type Constant[T any] struct{ Value T }

func (c Constant[T]) Get() T { return c.Value }

// Const returns a supplier producing the given value on every Get call.
func Const[T any](v T) Supplier[T] {
	return Constant[T]{Value: v}
}
