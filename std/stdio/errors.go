package stdio

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports an argument of the wrong kind for its verb,
	// or a nil destination.
	ErrInvalidArgument = errors.New("stdio: invalid argument")
	// ErrBufferOverflow reports input that does not fit its destination.
	ErrBufferOverflow = errors.New("stdio: buffer overflow")
	// ErrUnsupportedVerb reports a conversion verb the engines do not know.
	ErrUnsupportedVerb = errors.New("stdio: unsupported verb")
	// ErrMissingArgument reports a verb with no argument left to consume.
	ErrMissingArgument = errors.New("stdio: missing argument")
)

// VerbError locates an unsupported verb in its format string.
type VerbError struct {
	Verb   byte
	Offset int
}

func (e *VerbError) Error() string {
	return fmt.Sprintf("stdio: unsupported verb %%%c at offset %d", e.Verb, e.Offset)
}

func (e *VerbError) Unwrap() error {
	return ErrUnsupportedVerb
}
