package breakpoint

import "fmt"

// EmptySetError is returned when no breakpoints are given.
type EmptySetError struct{}

func (e *EmptySetError) Error() string {
	return "no breakpoints defined"
}

// InvalidValueError is returned when a breakpoint value has no leading
// number, or the number is not finite.
type InvalidValueError struct {
	Name string
	Raw  interface{}
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for breakpoint %q: %q", e.Name, fmt.Sprint(e.Raw))
}

// DuplicateValueError is returned when two breakpoints share a raw value.
type DuplicateValueError struct {
	Name     string
	Conflict string
	Value    Value
}

func (e *DuplicateValueError) Error() string {
	return fmt.Sprintf("duplicate value %q for breakpoint %q, already used by %q", e.Value.String(), e.Name, e.Conflict)
}
