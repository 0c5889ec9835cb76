package orion

// fixed holds a value that is decided once and never changes afterwards.
type fixed[T any] struct {
	value    T
	hasValue bool
}

func (f *fixed[T]) set(value T) {
	if f.hasValue {
		panic("value already set")
	}

	f.value = value
	f.hasValue = true
}

// Get returns the value, or the zero value of T if it was not decided yet.
func (f *fixed[T]) Get() T {
	return f.value
}
