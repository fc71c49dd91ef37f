// Package funcwire makes functional capability values transmittable.
//
// The subpackages declare the classic functional vocabulary as capability
// interfaces: orderings (compare), mappings (function), conditions
// (predicate), producers (supplier) and acceptors (consumer). A value built
// from the named node types of those packages is plain data, and funcwire
// can move it between processes once its concrete types are registered.
//
// Quick Reference:
// ┌──────────────┬──────────────────────────---┬─────────────────────────┐
// │ Operation    │ Input/Output                │ Best For                │
// ├──────────────┼─────────────────────────--─-┼─────────────────────────┤
// │ Register     │ Values    → deregister fn   │ Marking types wire-safe │
// │ Check        │ Value     → error           │ Pre-flight validation   │
// │ Marshal      │ Value     → []byte (memory) │ Complete serialization  │
// │ Unmarshal    │ []byte    → Value (memory)  │ Complete deserialization│
// └──────────────┴────────────────────────---──┴─────────────────────────┘
//
// Registration is the transmittability marker. A capability value backed by
// an ordinary go function (compare.Func, predicate.Func, ...) can never be
// registered and is rejected by Check, which is how a non-transmittable
// ordering such as one backed by a collation table is caught before it
// reaches the wire. Transmit the recipe instead: compare.Delegate carries a
// registered factory value across and rebuilds the ordering on first use on
// the receiving side.
package funcwire

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"reflect"

	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	// ErrNotTransmittable is returned when a value is backed by process-local
	// state that no codec can represent, such as a go function or a channel.
	ErrNotTransmittable errorkit.Error = "[funcwire] value is not transmittable"
	// ErrNotRegistered is returned when a concrete type held in an interface
	// slot was not registered, so the receiving side could not rebuild it.
	ErrNotRegistered errorkit.Error = "[funcwire] concrete type is not registered"
)

// Codec defines the typeless common codec bundle,
// which should have the ability to marshal/unmarshal various types.
type Codec interface {
	Marshaler
	Unmarshaler
}

type Marshaler interface {
	Marshal(v any) ([]byte, error)
}

type Unmarshaler interface {
	Unmarshal(data []byte, ptr any) error
}

type MarshalerFunc func(v any) ([]byte, error)

func (fn MarshalerFunc) Marshal(v any) ([]byte, error) { return fn(v) }

type UnmarshalerFunc func(data []byte, ptr any) error

func (fn UnmarshalerFunc) Unmarshal(data []byte, ptr any) error { return fn(data, ptr) }

// GobCodec is the default wire format of the package.
//
// Values are wrapped in an envelope,
// so capability values held in interface variables round-trip as well.
// The encoding inherits gob's field visibility rule:
// unexported struct fields are not transmitted,
// which is what keeps process-local state like the cache of
// a delegating ordering out of the persisted form.
type GobCodec struct{}

type gobEnvelope struct{ Value any }

func (GobCodec) Marshal(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := gob.NewEncoder(buf)
	if err := enc.Encode(gobEnvelope{Value: v}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (GobCodec) Unmarshal(data []byte, ptr any) error {
	dec := gob.NewDecoder(bytes.NewReader(data))
	var env gobEnvelope
	if err := dec.Decode(&env); err != nil {
		return err
	}
	out := reflect.ValueOf(ptr)
	if out.Kind() != reflect.Pointer || out.IsNil() {
		return fmt.Errorf("unmarshal target must be a non-nil pointer, but got %T", ptr)
	}
	target := out.Elem()
	if env.Value == nil {
		target.Set(reflect.Zero(target.Type()))
		return nil
	}
	got := reflect.ValueOf(env.Value)
	if !got.Type().AssignableTo(target.Type()) {
		return fmt.Errorf("unmarshaled %s is not assignable to %s", got.Type(), target.Type())
	}
	target.Set(got)
	return nil
}
