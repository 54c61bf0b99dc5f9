// Package parsererror defines the typed errors returned while converting a
// Nexo export. Every error is fatal to the run; the types exist so callers and
// tests can tell the failure kinds apart with errors.As.
package parsererror

import (
	"fmt"
	"strings"
)

// ParseError reports a field value that could not be interpreted.
type ParseError struct {
	Parser string
	Row    int
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("%s: row %d: failed to parse %s='%s': %v",
			e.Parser, e.Row, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaMismatchError reports columns required by the selected schema that are
// absent from the input header.
type SchemaMismatchError struct {
	FilePath string
	Schema   string
	Missing  []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("file '%s' does not match the %s schema: missing columns %s",
		e.FilePath, e.Schema, strings.Join(e.Missing, ", "))
}

// MalformedExchangePairError reports an Exchange row whose currency pair or
// amount pair is not made of exactly two "/"-separated halves.
type MalformedExchangePairError struct {
	Row   int
	Field string
	Value string
}

func (e *MalformedExchangePairError) Error() string {
	return fmt.Sprintf("row %d: malformed exchange pair in %s='%s': expected two values separated by '/'",
		e.Row, e.Field, e.Value)
}

// ValidationError reports an invalid option or configuration.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidFormatError reports input that is not a CSV document of the expected
// kind at all, such as an empty file.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
