package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for manifest loading. All loading failures are fatal to
// the load operation; no partial manifest is ever produced. Callers should
// use errors.Is/errors.As.
var (
	ErrMissingField      = errors.New("manifest: required field missing")
	ErrMalformedTemplate = errors.New("manifest: malformed post command template")
	ErrUnknownAction     = errors.New("manifest: unknown action")
	ErrUnknownTool       = errors.New("manifest: unknown simulator tool")
	ErrDuplicateManifest = errors.New("manifest: duplicate top module")
)

// FieldError wraps ErrMissingField with the field name and the source file
// the manifest was loaded from. Use errors.Is(err, ErrMissingField) and
// errors.As(err, &fieldErr) to inspect.
type FieldError struct {
	Field  string
	Source string
}

// Error implements error.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v: %q", e.Source, ErrMissingField, e.Field)
}

// Unwrap returns ErrMissingField for errors.Is.
func (e *FieldError) Unwrap() error { return ErrMissingField }

// Compile-time check that FieldError implements error.
var _ error = (*FieldError)(nil)
