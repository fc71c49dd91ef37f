package funcwire

import (
	"reflect"

	"go.llib.dev/frameless/pkg/reflectkit"
)

// Check reports whether the given value could travel through the registry.
//
// A value passes when every part of it that the codec would transmit is
// representable on the wire: no part is backed by a go function, channel or
// unsafe pointer (ErrNotTransmittable), and every concrete type held in an
// interface slot is registered (ErrNotRegistered). Unexported struct fields
// are skipped, exactly as the codec skips them.
func (r *Registry) Check(v any) error {
	if v == nil {
		return nil
	}
	w := walker{registry: r, visited: make(map[visit]struct{})}
	return w.walk(reflect.ValueOf(v), true)
}

type walker struct {
	registry *Registry
	visited  map[visit]struct{}
}

// visit keys on type as well, as a struct and its first field share an address.
type visit struct {
	ptr uintptr
	typ reflect.Type
}

func (w walker) walk(v reflect.Value, inInterface bool) error {
	if !v.IsValid() {
		return nil
	}
	t := v.Type()
	switch k := v.Kind(); k {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return ErrNotTransmittable.F("%s is a %s type", reflectkit.SymbolicName(v.Interface()), k)
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return w.walk(v.Elem(), true)
	}
	if inInterface && !gobBuiltin(t) && !w.registry.isRegistered(t) {
		return ErrNotRegistered.F("missing registration for %s", t)
	}
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() || w.seen(v) {
			return nil
		}
		return w.walk(v.Elem(), false)
	case reflect.Struct:
		for i, n := 0, t.NumField(); i < n; i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			if err := w.walk(v.Field(i), false); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		if isBasic(t.Elem().Kind()) {
			return nil
		}
		for i, n := 0, v.Len(); i < n; i++ {
			if err := w.walk(v.Index(i), false); err != nil {
				return err
			}
		}
	case reflect.Map:
		if v.IsNil() || w.seen(v) {
			return nil
		}
		if isBasic(t.Key().Kind()) && isBasic(t.Elem().Kind()) {
			return nil
		}
		iter := v.MapRange()
		for iter.Next() {
			if err := w.walk(iter.Key(), false); err != nil {
				return err
			}
			if err := w.walk(iter.Value(), false); err != nil {
				return err
			}
		}
	}
	return nil
}

// gob pre-registers the predeclared basic types and slices of them,
// so values of those types travel through interface slots unregistered.
func gobBuiltin(t reflect.Type) bool {
	if t.PkgPath() != "" {
		return false
	}
	if isBasic(t.Kind()) {
		return true
	}
	return t.Kind() == reflect.Slice &&
		t.Elem().PkgPath() == "" && isBasic(t.Elem().Kind())
}

func (w walker) seen(v reflect.Value) bool {
	ref := visit{ptr: v.Pointer(), typ: v.Type()}
	if _, ok := w.visited[ref]; ok {
		return true
	}
	w.visited[ref] = struct{}{}
	return false
}

func isBasic(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	default:
		return false
	}
}
