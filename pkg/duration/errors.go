package duration

import (
	"errors"
	"fmt"
)

// Leaf error sentinels, matchable with errors.Is.
var (
	// ErrNonIntegerValue matches errors caused by a present field whose
	// value is not a whole number.
	ErrNonIntegerValue = errors.New("non-integer field value")

	// ErrEmptyDuration matches errors caused by formatting a duration
	// with no present fields.
	ErrEmptyDuration = errors.New("empty duration")

	// ErrInvalidOption matches errors caused by an invalid format option.
	ErrInvalidOption = errors.New("invalid option")
)

// Kind categorizes duration errors.
type Kind uint8

const (
	// KindNonIntegerValue is a present field holding a fractional,
	// NaN, or infinite value. Raised by every operation that reads
	// field values: Normalize, Format, TotalMilliseconds, Marshal.
	KindNonIntegerValue Kind = iota + 1

	// KindEmptyDuration is a format call left with nothing to render
	// because no field is present. Raised by Format only.
	KindEmptyDuration

	// KindInvalidOption is a MaxEntries option that is present but not
	// a positive integer. Raised by Format and ParsePreset.
	KindInvalidOption
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNonIntegerValue:
		return "non-integer value"
	case KindEmptyDuration:
		return "empty duration"
	case KindInvalidOption:
		return "invalid option"
	default:
		return "unknown"
	}
}

// Error is the error type returned by all operations in this package.
// Matching *Error with errors.As catches every duration error; matching a
// leaf sentinel with errors.Is catches one kind.
type Error struct {
	// Kind is the error category.
	Kind Kind

	// Op is the failing operation ("normalize", "format", ...).
	Op string

	// Unit is the offending field for KindNonIntegerValue.
	Unit Unit

	// Value is the offending value for KindNonIntegerValue.
	Value float64

	// Reason carries option detail for KindInvalidOption.
	Reason string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNonIntegerValue:
		return fmt.Sprintf("duration: %s: %s field holds non-integer value %v", e.Op, e.Unit, e.Value)
	case KindEmptyDuration:
		return fmt.Sprintf("duration: %s: no present fields to render", e.Op)
	case KindInvalidOption:
		return fmt.Sprintf("duration: %s: %s", e.Op, e.Reason)
	default:
		return fmt.Sprintf("duration: %s: unknown error", e.Op)
	}
}

// Is maps each kind to its leaf sentinel.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNonIntegerValue:
		return e.Kind == KindNonIntegerValue
	case ErrEmptyDuration:
		return e.Kind == KindEmptyDuration
	case ErrInvalidOption:
		return e.Kind == KindInvalidOption
	}
	return false
}
