// SPDX-License-Identifier: MIT

package concept

import (
	"reflect"
	"sync"
)

type elemResult struct {
	t  reflect.Type
	ok bool
}

var (
	elemCache    sync.Map // reflect.Type -> elemResult
	bitwiseCache sync.Map // reflect.Type -> bool
)

// Elem resolves the element type of position type P. See ElemOf.
func Elem[P any]() (reflect.Type, bool) {
	return ElemOf(reflect.TypeFor[P]())
}

// ElemOf resolves the element type of position type t. The first matching
// rule wins:
//
//  1. node-backed: t has Node() *S where S is a struct with a Value field
//     and a Next *S field; the element type is the type of Value.
//  2. address-backed: t has Addr() *E; the element type is E.
//  3. declared: t has Read() E, or failing that Write(E), and E is not a
//     function type; the element type is E.
//
// Otherwise ok is false and the type can be neither Readable nor Writable.
func ElemOf(t reflect.Type) (elem reflect.Type, ok bool) {
	if t == nil {
		return nil, false
	}
	if r, hit := elemCache.Load(t); hit {
		res := r.(elemResult)
		return res.t, res.ok
	}
	elem, ok = resolveElem(t)
	elemCache.Store(t, elemResult{t: elem, ok: ok})

	return elem, ok
}

func resolveElem(t reflect.Type) (reflect.Type, bool) {
	if in, out, ok := signature(t, "Node"); ok && len(in) == 0 && len(out) == 1 {
		if v, ok := nodeValue(out[0]); ok {
			return v, true
		}
	}
	if in, out, ok := signature(t, "Addr"); ok && len(in) == 0 && len(out) == 1 && out[0].Kind() == reflect.Pointer {
		return out[0].Elem(), true
	}
	if in, out, ok := signature(t, "Read"); ok && len(in) == 0 && len(out) == 1 && out[0].Kind() != reflect.Func {
		return out[0], true
	}
	if in, out, ok := signature(t, "Write"); ok && len(in) == 1 && len(out) == 0 && in[0].Kind() != reflect.Func {
		return in[0], true
	}

	return nil, false
}

// nodeValue returns the Value field type of *S when S looks like a
// singly-linked node.
func nodeValue(p reflect.Type) (reflect.Type, bool) {
	if p.Kind() != reflect.Pointer || p.Elem().Kind() != reflect.Struct {
		return nil, false
	}
	s := p.Elem()
	value, okValue := s.FieldByName("Value")
	next, okNext := s.FieldByName("Next")
	if !okValue || !okNext || next.Type != p {
		return nil, false
	}

	return value.Type, true
}

// Bitwise reports whether values of T may be duplicated by a raw memory
// move. See IsBitwise.
func Bitwise[T any]() bool {
	return IsBitwise(reflect.TypeFor[T]())
}

// IsBitwise reports whether t holds no pointers: booleans, numbers, and
// arrays or structs built only from those. Strings, slices, maps, channels,
// functions, interfaces and pointers are not bitwise-movable.
func IsBitwise(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if b, ok := bitwiseCache.Load(t); ok {
		return b.(bool)
	}
	b := pointerFree(t)
	bitwiseCache.Store(t, b)

	return b
}

func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
