package tree

import (
	"reflect"

	"github.com/pkg/errors"
)

// ErrNilElement is the panic value used when a nil element is passed
// to an operation that requires a value to be present
var ErrNilElement = errors.New("tree: element must not be nil")

// ErrNoLesser is the panic value used when a tree has no Lesser to
// order its values, either because New got nil or because the tree
// was not created with a constructor
var ErrNoLesser = errors.New("tree: lesser must be set")

// isNil returns true if v holds no value. Only types that can
// be nil are considered, any other type is never nil
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice,
		reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func mustNotBeNil[T any](v T) {
	if isNil(v) {
		panic(ErrNilElement)
	}
}
