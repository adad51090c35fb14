package docvalues

import (
	"errors"
	"fmt"
)

var (
	// ErrOrdOutOfRange is returned when an ordinal is outside the
	// dictionary's [0, valueCount) range. It indicates a caller bug, not a
	// recoverable condition.
	ErrOrdOutOfRange = errors.New("docvalues: ordinal out of range")

	// ErrCorruptedDict is returned when a dictionary block fails to decode.
	ErrCorruptedDict = errors.New("docvalues: corrupted dictionary block")
)

// ErrUnsortedTerm indicates a term added to a dictionary builder out of
// lexicographic order.
//
// The offending term can be inspected via the Term field.
type ErrUnsortedTerm struct {
	Term []byte
}

func (e *ErrUnsortedTerm) Error() string {
	return fmt.Sprintf("docvalues: term %q added out of order", e.Term)
}
