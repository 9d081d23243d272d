package calculator

import (
	"errors"
	"fmt"
)

// ErrInvalidInput matches every validation failure via errors.Is.
var ErrInvalidInput = errors.New("property price and monthly rent must be positive")

// InvalidInputError reports the first field that failed validation.
type InvalidInputError struct {
	Field string
	Value float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %v: %v", e.Field, e.Value, ErrInvalidInput)
}

// Is lets errors.Is(err, ErrInvalidInput) succeed.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
