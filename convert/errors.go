/*
errors.go - Centralized error taxonomy for the conversion layer

PURPOSE:
  All conversion failures fall into four categories. Converters never
  catch-and-default: every failure propagates to the immediate caller as a
  typed error carrying the entity type, the dotted field path, and the
  offending value, so a failure can be diagnosed without re-running with
  extra logging.

ERROR CATEGORIES:
  1. Validation errors  - a required open-format field is missing or empty
  2. Parse errors       - ledger input has the wrong shape or an unknown tag
  3. Schema mismatches  - a raw ledger record lacks the expected entity field
  4. Unknown entity type - a caller bug: no registry row for the given tag

RETRY SEMANTICS:
  None of these are retryable. A malformed payload fails identically on
  every retry; retry policy belongs to the network client around this layer.

USAGE:
  Callers can branch on category with errors.Is():

    if errors.Is(err, convert.ErrValidation) { ... }

  or pull structured context with errors.As():

    var verr *convert.ValidationError
    if errors.As(err, &verr) { log.Println(verr.Path) }

SEE ALSO:
  - registry.go: Raises UnknownEntityTypeError and SchemaMismatchError
  - mapper.go: Raises ValidationError and ParseError per field
*/
package convert

import (
	"errors"
	"fmt"

	"github.com/Fairmint/ocp-canton-sdk-sub006/ocf"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrValidation is the category for missing/empty required open-format
	// fields, detected before conversion to ledger format.
	ErrValidation = errors.New("validation failed")

	// ErrParse is the category for ledger-format input that does not match
	// the expected shape, including unrecognized enum tags.
	ErrParse = errors.New("parse failed")

	// ErrSchemaMismatch is the category for raw ledger records missing the
	// registered entity-data field, or a field that must be an object but
	// is not.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrUnknownEntityType indicates a caller passed a tag with no registry
	// row. This is a programming error, not bad data.
	ErrUnknownEntityType = errors.New("unknown entity type")

	// ErrNumericFormat is raised for numeric strings this layer refuses to
	// canonicalize (scientific notation, non-numeric text).
	ErrNumericFormat = errors.New("invalid numeric format")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ValidationError reports a missing or empty required field on the
// open-format side. Path is dotted, e.g. "conversion_triggers.0.trigger_id".
type ValidationError struct {
	Entity   ocf.ObjectType
	Path     string
	Expected string // expected type/shape, when useful
}

func (e *ValidationError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("%s: required field %q missing or empty (expected %s)", e.Entity, e.Path, e.Expected)
	}
	return fmt.Sprintf("%s: required field %q missing or empty", e.Entity, e.Path)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ParseError reports ledger-format input that cannot be mapped back to the
// open format: wrong shape, or an enum/tag value with no table row.
type ParseError struct {
	Entity ocf.ObjectType
	Path   string
	Value  any
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: cannot parse %q (value %v): %s", e.Entity, e.Path, e.Value, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// SchemaMismatchError reports a raw ledger record that does not carry the
// entity-data field registered for the entity type.
type SchemaMismatchError struct {
	Entity        ocf.ObjectType
	ExpectedField string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("%s: ledger record missing expected field %q", e.Entity, e.ExpectedField)
}

func (e *SchemaMismatchError) Unwrap() error { return ErrSchemaMismatch }

// UnknownEntityTypeError reports dispatch on a tag outside the closed set.
type UnknownEntityTypeError struct {
	Type string
}

func (e *UnknownEntityTypeError) Error() string {
	return fmt.Sprintf("unknown entity type %q", e.Type)
}

func (e *UnknownEntityTypeError) Unwrap() error { return ErrUnknownEntityType }

// NumericFormatError reports a quantity string this layer refuses to
// canonicalize rather than silently coerce.
type NumericFormatError struct {
	Value  string
	Reason string
}

func (e *NumericFormatError) Error() string {
	return fmt.Sprintf("invalid numeric string %q: %s", e.Value, e.Reason)
}

func (e *NumericFormatError) Unwrap() error { return ErrNumericFormat }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true when the failure is caused by the input and
// the caller must fix the payload; false means a caller bug (bad tag).
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrParse) ||
		errors.Is(err, ErrSchemaMismatch) ||
		errors.Is(err, ErrNumericFormat)
}
