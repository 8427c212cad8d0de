package placement

import (
	"errors"
	"fmt"
)

// Failure kinds. Use errors.Is to classify a *Failure.
var (
	ErrLoad  = errors.New("load failed")
	ErrPlace = errors.New("placement failed")
	ErrClear = errors.New("clear failed")

	// ErrBusy is returned when a store request is already outstanding.
	ErrBusy = errors.New("placement: request already in flight")
)

// Failure is a blocks store failure surfaced to the user. The grid is left
// as it was before the request.
type Failure struct {
	Kind error // ErrLoad, ErrPlace or ErrClear
	Err  error // cause reported by the store
}

func (f *Failure) Error() string {
	return fmt.Sprintf("placement: %v: %v", f.Kind, f.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (f *Failure) Unwrap() []error {
	return []error{f.Kind, f.Err}
}

// Message returns the line shown to the user.
func (f *Failure) Message() string {
	switch f.Kind {
	case ErrLoad:
		return "Could not load blocks: " + f.Err.Error()
	case ErrPlace:
		return "Could not add block: " + f.Err.Error()
	case ErrClear:
		return "Could not clear blocks: " + f.Err.Error()
	default:
		return f.Error()
	}
}

// UserMessage returns the user-facing text for any error returned by the
// Controller.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var f *Failure
	if errors.As(err, &f) {
		return f.Message()
	}
	if errors.Is(err, ErrBusy) {
		return "Still waiting for the blocks store"
	}
	return err.Error()
}
