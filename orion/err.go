package orion

import (
	"errors"
	"fmt"
)

var (
	ErrBackendInit  = errors.New("initialize backend")
	ErrWindowCreate = errors.New("create window")
	ErrOSDInit      = errors.New("initialize on-screen display")

	ErrNotInitialized     = errors.New("viewer not initialized")
	ErrAlreadyInitialized = errors.New("viewer already initialized")
)

// initError wraps the cause of a failed Init with one of the
// sentinel errors above, so both match with errors.Is.
type initError struct {
	kind  error
	cause error
}

func (e *initError) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *initError) Unwrap() []error {
	return []error{e.kind, e.cause}
}

func initFailed(kind, cause error) error {
	return &initError{kind: kind, cause: cause}
}

// Handle panics if err is not nil. Use it in application hooks for
// failures the viewer can not recover from.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		panic(text + ": " + err.Error())
	}
}
