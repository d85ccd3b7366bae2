package model

import "fmt"

// DecodeError reports a field that could not be decoded from the raw
// inventory input. It names both the record type being built and the
// JSON key that failed, so a user can locate the bad entry in a large
// export without guesswork.
//
// Design decision: We use one typed error with structured fields rather
// than per-field sentinel errors. The field set is large (four record
// types) and callers only ever need errors.As to detect "schema
// violation" as a class; the record/field detail belongs in the message.
type DecodeError struct {
	// Record is the record type being built (e.g., "Device", "Vulnerability").
	Record string

	// Field is the JSON key that was missing or mistyped.
	Field string

	// Want describes the expected kind (e.g., "string", "list of strings").
	// Empty when the field was missing entirely.
	Want string
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Want == "" {
		return fmt.Sprintf("missing field %q in %s", e.Field, e.Record)
	}
	return fmt.Sprintf("field %q in %s is not a %s", e.Field, e.Record, e.Want)
}

// missingField returns a DecodeError for an absent key.
func missingField(record, field string) *DecodeError {
	return &DecodeError{Record: record, Field: field}
}

// wrongKind returns a DecodeError for a present key holding the wrong kind.
func wrongKind(record, field, want string) *DecodeError {
	return &DecodeError{Record: record, Field: field, Want: want}
}
