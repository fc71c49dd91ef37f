package funcwire

import (
	"encoding/gob"
	"reflect"
	"sync"

	"go.llib.dev/frameless/pkg/zerokit"
)

// Registry keeps track of the concrete capability types that may travel
// through its codec inside interface slots.
//
// The zero value is ready to use. Wire names are forwarded to encoding/gob,
// whose name table is process-global, so two registries cannot bind the
// same type to different wire names; what is per-registry is the visibility
// used by Check, Marshal and Unmarshal.
type Registry struct {
	// Codec is the wire format used by Marshal and Unmarshal.
	//
	// Defaults to GobCodec.
	Codec Codec

	mutex sync.RWMutex
	types map[reflect.Type]struct{}
}

// Register marks the concrete types of the given values as transmittable
// and returns a function that undoes the marking.
//
// A nil value is refused by panic, in which case none of the values
// get registered.
//
// Register with the form that travels: capabilities with pointer
// receivers, such as *compare.Delegating, are registered by a pointer
// value, the rest by their plain value. The wire name binds to one of
// the two forms per type, not both.
func (r *Registry) Register(values ...any) func() {
	for _, v := range values {
		if v == nil {
			panic("funcwire.Register: missing value")
		}
	}
	var deregs []func()
	for _, v := range values {
		gob.Register(v)
		deregs = append(deregs, r.add(reflect.TypeOf(v)))
	}
	return func() {
		for _, dereg := range deregs {
			dereg()
		}
	}
}

// RegisterName is like Register for a single value,
// but binds the type to the given wire name instead of the derived default.
//
// Renaming a type breaks decoding of previously persisted representations,
// while registering a moved or renamed type under its original wire name
// keeps them decodable.
func (r *Registry) RegisterName(name string, v any) func() {
	if v == nil {
		panic("funcwire.RegisterName: missing value")
	}
	if name == "" {
		panic("funcwire.RegisterName: missing wire name")
	}
	gob.RegisterName(name, v)
	return r.add(reflect.TypeOf(v))
}

// IsRegistered reports whether the concrete type of v is known to the registry.
func (r *Registry) IsRegistered(v any) bool {
	return r.isRegistered(reflect.TypeOf(v))
}

func (r *Registry) init() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if r.types == nil {
		r.types = make(map[reflect.Type]struct{})
	}
}

func (r *Registry) add(rType reflect.Type) func() {
	r.init()
	r.mutex.Lock()
	r.types[rType] = struct{}{}
	r.mutex.Unlock()
	return func() {
		r.mutex.Lock()
		defer r.mutex.Unlock()
		delete(r.types, rType)
	}
}

func (r *Registry) isRegistered(rType reflect.Type) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	if r.types == nil {
		return false
	}
	_, ok := r.types[rType]
	return ok
}

// Marshal validates the value with Check and turns it into its persisted
// representation using the registry's codec.
func (r *Registry) Marshal(v any) ([]byte, error) {
	if err := r.Check(v); err != nil {
		return nil, err
	}
	return r.codec().Marshal(v)
}

// Unmarshal rebuilds a value from its persisted representation.
//
// Process-local state is not part of the persisted representation,
// so fields holding such state start over from their zero value.
func (r *Registry) Unmarshal(data []byte, ptr any) error {
	return r.codec().Unmarshal(data, ptr)
}

func (r *Registry) codec() Codec {
	return zerokit.Coalesce[Codec](r.Codec, GobCodec{})
}

var defaultRegistry Registry

// Register marks concrete capability types as transmittable in the default
// registry and returns a function that undoes the marking.
func Register(values ...any) func() { return defaultRegistry.Register(values...) }

// RegisterName registers a single value in the default registry under an
// explicit wire name.
func RegisterName(name string, v any) func() { return defaultRegistry.RegisterName(name, v) }

// IsRegistered reports whether the concrete type of v is known to the
// default registry.
func IsRegistered(v any) bool { return defaultRegistry.IsRegistered(v) }

// Check validates the value against the default registry.
func Check(v any) error { return defaultRegistry.Check(v) }

// Marshal turns the value into its persisted representation using the
// default registry.
func Marshal(v any) ([]byte, error) { return defaultRegistry.Marshal(v) }

// Unmarshal rebuilds a value from its persisted representation using the
// default registry.
func Unmarshal(data []byte, ptr any) error { return defaultRegistry.Unmarshal(data, ptr) }
