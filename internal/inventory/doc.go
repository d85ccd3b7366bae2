// Package inventory loads the device inventory export from disk.
//
// The input is a single JSON array of device objects as produced by the
// endpoint API. The whole file is read into memory and decoded in one
// pass; there is no streaming. Load distinguishes three failure classes
// via sentinel errors so the CLI can show a precise one-line diagnostic:
// the file is missing (ErrInputNotFound), the file is not valid JSON
// (ErrMalformedInput), or a device entry violates the schema (a
// model.DecodeError propagated as-is).
package inventory
