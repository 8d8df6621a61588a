package lager

import (
	"errors"
	"fmt"

	"github.com/0xalexb/lager/value"
)

// ErrInvalidType is returned when a provider produces a value whose shape
// does not match what its position requires. Use errors.Is to match it and
// errors.As with *TypeError to inspect the observed kinds.
var ErrInvalidType = errors.New("invalid type")

// TypeError reports a shape mismatch in provider output. Actual is the kind
// that was observed, Expected the kind the position requires.
type TypeError struct {
	Actual   value.Kind
	Expected value.Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("invalid type: found %s, expected %s", e.Actual, e.Expected)
}

// Is matches ErrInvalidType so callers need not depend on the concrete type.
func (e *TypeError) Is(target error) bool {
	return target == ErrInvalidType
}
