package css

import (
	"errors"
	"fmt"
)

// ErrInvalidValue is wrapped by errors for values that cannot be parsed.
var ErrInvalidValue = errors.New("invalid value")

// UnsupportedUnitError reports a well-formed dimension whose unit has no
// defined conversion to points.
type UnsupportedUnitError struct {
	Property string
	Value    string
	Unit     string
}

func (e *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("css: unsupported unit %q in %s: %s", e.Unit, e.Property, e.Value)
}

func invalid(property, value string) error {
	return fmt.Errorf("css: %s %q: %w", property, value, ErrInvalidValue)
}
