package generator

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a generation call failed. Callers use the kind
// to decide whether retrying, adjusting parameters, or giving up makes sense;
// the generator itself never retries beyond the compatibility fallback ladder
// and never substitutes placeholder content.
type FailureKind string

const (
	// ProviderRejected: the completion call failed for a reason outside the
	// recognized compatibility fallbacks. Provider detail is surfaced verbatim.
	ProviderRejected FailureKind = "provider_rejected"
	// EmptyResponse: no usable text remained after extraction.
	EmptyResponse FailureKind = "empty_response"
	// TruncatedResponse: the output was cut off by the token budget.
	TruncatedResponse FailureKind = "truncated_response"
	// MalformedJSON: extracted text failed to parse.
	MalformedJSON FailureKind = "malformed_json"
	// SchemaValidationFailed: parsed JSON did not satisfy the domain schema.
	SchemaValidationFailed FailureKind = "schema_validation_failed"
	// PhaseArithmeticInvalid: periodization produced a negative taper.
	PhaseArithmeticInvalid FailureKind = "phase_arithmetic_invalid"
)

// Error is a generation failure with a structured kind and human-readable
// detail.
type Error struct {
	Kind   FailureKind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error { return e.Err }

func failf(kind FailureKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func wrapf(kind FailureKind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the failure kind of err, or ProviderRejected if err carries
// no structured kind.
func KindOf(err error) FailureKind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return ProviderRejected
}
