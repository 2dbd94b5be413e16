package concurrent

// Supplier defines an arbitrary operation
type Supplier[T any] interface {
	Supply() (T, error)
}

// SupplierFunc allows a function to act as a Supplier
type SupplierFunc[T any] func() (T, error)

// Implementation of Supplier interface for SupplierFunc.
func (f SupplierFunc[T]) Supply() (T, error) {
	return f()
}

// Result of a supplier
type Result[T any] struct {
	value T
	err   error
}

// Value returned by the supplier
func (r Result[T]) Value() T {
	return r.value
}

// Err returned by the supplier
func (r Result[T]) Err() error {
	return r.err
}
