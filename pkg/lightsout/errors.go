package lightsout

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every OutOfRangeError via errors.Is.
var ErrOutOfRange = errors.New("out of range")

// OutOfRangeError reports an argument outside its inclusive bounds.
type OutOfRangeError struct {
	Arg   string
	Value int
	Min   int
	Max   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Arg, e.Value, e.Min, e.Max)
}

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }

func checkRange(arg string, value, lo, hi int) error {
	if value < lo || value > hi {
		return &OutOfRangeError{Arg: arg, Value: value, Min: lo, Max: hi}
	}
	return nil
}

// ValidateSize checks rows and columns against the supported dimension bounds.
func ValidateSize(rows, columns int) error {
	if err := checkRange("rows", rows, MinDim, MaxDim); err != nil {
		return err
	}
	return checkRange("columns", columns, MinDim, MaxDim)
}

// ValidateInitialCount checks a requested starting lit count for the given size.
func ValidateInitialCount(rows, columns, count int) error {
	if err := ValidateSize(rows, columns); err != nil {
		return err
	}
	return checkRange("initialCount", count, 1, rows*columns-1)
}
