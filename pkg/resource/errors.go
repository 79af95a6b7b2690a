package resource

import (
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	ErrMissingAttribute = errors.New("no such attribute")
	ErrNoAPI            = errors.New("manager does not expose an API")
)

// MissingAttributeError is returned when an attribute is absent from the bag
// after the single lazy fetch has been spent.
type MissingAttributeError struct {
	Variant string
	Name    string
}

// Error implements the error interface.
func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("%s: %s has no attribute %q", ErrMissingAttribute, e.Variant, e.Name)
}

// Is reports whether target is ErrMissingAttribute.
func (e *MissingAttributeError) Is(target error) bool {
	return target == ErrMissingAttribute
}

// IsMissingAttribute checks if the error is a missing attribute error.
func IsMissingAttribute(err error) bool {
	return errors.Is(err, ErrMissingAttribute)
}
