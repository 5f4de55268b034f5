package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a listing file does not exist.
	ErrNotFound = errors.New("not found")

	// ErrRead indicates a listing file could not be read or decoded.
	ErrRead = errors.New("read error")
)

// LoadError records why a listing file could not be loaded.
type LoadError struct {
	// Path is the listing file as given by the caller.
	Path string

	// Kind is ErrNotFound or ErrRead.
	Kind error

	// Cause is the underlying failure, nil for ErrNotFound.
	Cause error
}

func newLoadError(path string, kind, cause error) *LoadError {
	return &LoadError{Path: path, Kind: kind, Cause: cause}
}

func (e *LoadError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %v", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Cause)
}

func (e *LoadError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// LoadErrors returns the load failures contained in err, in order.
func LoadErrors(err error) []*LoadError {
	switch e := err.(type) {
	case nil:
		return nil
	case *LoadError:
		return []*LoadError{e}
	case interface{ Unwrap() []error }:
		var out []*LoadError
		for _, inner := range e.Unwrap() {
			out = append(out, LoadErrors(inner)...)
		}
		return out
	}
	var le *LoadError
	if errors.As(err, &le) {
		return []*LoadError{le}
	}
	return nil
}
