// Package model defines the core data structures used throughout fleetsheet.
//
// This package contains the following main types:
//   - Device: A monitored network endpoint with identity and addresses
//   - OperatingSystem: The OS installed on a device
//   - SoftwareItem: An installed application on a device
//   - Vulnerability: A known vulnerability discovered on a device
//   - Fleet: An ordered collection of devices
//   - FleetSummary: Aggregate counts derived from a fleet
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (inventory, report, database) need to use
// these types, so centralizing them prevents import cycles.
//
// Records are constructed once by the Decode functions and never mutated
// afterwards. Decoding validates key presence and scalar kinds; it performs
// no normalization of values (no deduplication, no case-folding), so every
// string reaches the report exactly as it appeared in the input.
package model
