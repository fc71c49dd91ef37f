package compare

import (
	"sync"

	"go.llib.dev/funcwire/supplier"
)

// Delegating is an ordering that defers to another ordering which it
// obtains lazily from Factory on first use.
//
// Delegating exists for orderings that cannot travel between processes,
// such as ones backed by an ordinary go function or by process-local state
// like a collation table. Instead of transmitting the ordering itself,
// a Delegating value transmits the recipe: the Factory survives
// marshaling, while the obtained ordering is process-local state that is
// dropped on marshaling and rebuilt on first use after unmarshaling.
//
// Example usage:
//
//	type CollatedOrder struct{ Lang string }
//
//	func (f CollatedOrder) Get() compare.Interface[string] {
//		c := collate.New(language.MustParse(f.Lang))
//		return compare.Func[string](c.CompareString)
//	}
//
//	var byName = compare.Delegate[string](CollatedOrder{Lang: "en"})
type Delegating[T any] struct {
	// Factory produces the ordering that Compare defers to.
	//
	// Factory is consulted on the first Compare call, and on every
	// subsequent call until it produces an ordering without failing.
	Factory supplier.Supplier[Interface[T]]

	lock  sync.RWMutex
	cache Interface[T]
}

// Delegate returns the ordering that obtains its actual ordering from the
// given factory on first use.
//
// The factory is not consulted during construction,
// so a misbehaving factory surfaces on use, not here.
func Delegate[T any](factory supplier.Supplier[Interface[T]]) *Delegating[T] {
	if factory == nil {
		panic("compare.Delegate: missing factory")
	}
	return &Delegating[T]{Factory: factory}
}

// Compare orders a and b with the ordering produced by Factory.
//
// The first call obtains the ordering from Factory and retains it for
// every later call. Concurrent first use is safe, and Factory is
// consulted exactly once for a successful initialisation.
// When Factory panics, the panic propagates to the
// caller, nothing is retained, and the next call consults Factory again.
// When the produced ordering panics, the panic propagates, and the
// ordering stays retained.
func (d *Delegating[T]) Compare(a, b T) int {
	return d.delegate().Compare(a, b)
}

func (d *Delegating[T]) delegate() Interface[T] {
	if o, ok := d.lookup(); ok {
		return o
	}
	return d.init()
}

func (d *Delegating[T]) lookup() (Interface[T], bool) {
	d.lock.RLock()
	defer d.lock.RUnlock()
	return d.cache, d.cache != nil
}

func (d *Delegating[T]) init() Interface[T] {
	d.lock.Lock()
	defer d.lock.Unlock()
	if d.cache != nil {
		return d.cache
	}
	if d.Factory == nil {
		panic("compare.Delegating: missing Factory")
	}
	// a nil result is not retained, so it is requested again on the next call
	d.cache = d.Factory.Get()
	return d.cache
}
