package pool

import (
	"reflect"
	"sync"
)

var pointerFree sync.Map // reflect.Type -> bool

// NeedsClear reports whether buffers of T hold references that would keep
// values alive while pooled. Pointer-free element types (numbers, structs of
// numbers, arrays of those) are returned without clearing.
func NeedsClear[T any]() bool {
	t := reflect.TypeFor[T]()
	if v, ok := pointerFree.Load(t); ok {
		return !v.(bool)
	}
	free := isPointerFree(t)
	pointerFree.Store(t, free)
	return !free
}

func isPointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || isPointerFree(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !isPointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func clearBuffer[T any](buf []T) {
	clear(buf)
}
