package lookup

import (
	"errors"
	"fmt"
)

var (
	ErrFormat   = errors.New("incorrect format")
	ErrNotFound = errors.New("no matching record")
)

// FormatError reports input that does not carry a tower/apartment code.
type FormatError struct {
	Text   string
	Digits int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("incorrect format: %q has %d digits, need at least %d", e.Text, e.Digits, MinDigits)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// SourceUnavailableError wraps a failed snapshot fetch. It is the only
// error Reply returns to the caller.
type SourceUnavailableError struct {
	Err error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("record source unavailable: %v", e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }
