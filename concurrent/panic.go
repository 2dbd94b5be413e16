package concurrent

import (
	"fmt"
	"runtime/debug"
)

// ErrPanic is the error returned when a supplier panics
type ErrPanic struct {
	Value      interface{}
	Stacktrace string
}

// Error implementation of error for ErrPanic
func (e ErrPanic) Error() string {
	switch x := e.Value.(type) {
	case string:
		return fmt.Sprintf("panic error %s", x)
	case error:
		return fmt.Sprintf("panic error %s", x.Error())
	default:
		return fmt.Sprintf("unknown panic %+v", x)
	}
}

func errorFromPanic(r interface{}) error {
	return ErrPanic{Value: r, Stacktrace: string(debug.Stack())}
}

// supply runs the supplier and turns a panic into an error
func supply[T any](s Supplier[T]) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errorFromPanic(r)
		}
	}()

	return s.Supply()
}
