// Package config holds the runtime configuration for fleetsheet.
//
// Configuration is populated from CLI flags, optionally overlaid on a
// YAML config file (.fleetsheet) searched in the working directory, the
// user's home directory, and the XDG config directory, in that order.
// The config file can only change where data is read from and written
// to and which summary format is produced; the workbook layout itself
// (column set, styling, sheet order) is fixed and not configurable.
package config
