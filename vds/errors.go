package vds

import "fmt"

// ValidationError reports a seal field value that violates its length,
// charset or range constraints. It is returned before any state is mutated.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// FormatError reports a structural defect in seal bytes: a wrong magic byte,
// an unknown or unexpected version, or framing that cannot be walked.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed seal: %s", e.Msg)
}

// LengthMismatchError reports a declared TLV or DER length that disagrees
// with the bytes actually present.
type LengthMismatchError struct {
	Declared int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("declared length %d does not match %d remaining bytes", e.Declared, e.Actual)
}
