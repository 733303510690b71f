package toggle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPeriod indicates a toggle period below one frame.
	ErrInvalidPeriod = errors.New("toggle: period must be a positive frame count")

	// ErrUnknownVariant indicates a variant name that is not recognised.
	ErrUnknownVariant = errors.New("toggle: unknown scheduler variant")
)

// ConfigurationError wraps a rejected scheduler setting.
type ConfigurationError struct {
	Field   string
	Value   any
	Wrapped error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%v (%s=%v)", e.Wrapped, e.Field, e.Value)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Wrapped
}
