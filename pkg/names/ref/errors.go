package ref

import (
	"errors"
	"fmt"
)

// ErrMalformedReference indicates the reference text does not match the
// supported grammar.
var ErrMalformedReference = errors.New("malformed reference")

// MalformedReferenceError reports why a reference string was rejected.
type MalformedReferenceError struct {
	Text   string
	Reason string
}

func (e *MalformedReferenceError) Error() string {
	return fmt.Sprintf("cannot parse reference %q: %s", e.Text, e.Reason)
}

func (e *MalformedReferenceError) Unwrap() error {
	return ErrMalformedReference
}

// NewMalformedReferenceError creates a new MalformedReferenceError.
func NewMalformedReferenceError(text, reason string) *MalformedReferenceError {
	return &MalformedReferenceError{Text: text, Reason: reason}
}
