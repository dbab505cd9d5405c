package mrz

import "fmt"

// ValidationError reports a field value that violates the length, charset or
// range constraints of its MRZ field. It is returned before any state is
// mutated.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// IntegrityError reports a check digit that disagrees with the data run it
// guards. Parsed data carrying one is rejected, never silently accepted.
type IntegrityError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s check digit mismatch: computed %s, found %s", e.Field, e.Expected, e.Actual)
}
