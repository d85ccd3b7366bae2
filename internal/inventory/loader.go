package inventory

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fleetsheet/fleetsheet/internal/model"
)

// Input loading errors.
// These are wrapped into the returned error so callers can classify
// failures with errors.Is while still seeing the underlying detail.
var (
	// ErrInputNotFound is returned when the inventory file does not exist
	// at the given path.
	ErrInputNotFound = errors.New("inventory file not found")

	// ErrMalformedInput is returned when the inventory file exists but is
	// not a valid JSON array.
	ErrMalformedInput = errors.New("inventory file is not valid JSON")
)

// Load reads and decodes the inventory file at path.
// The returned fleet preserves the order of the input array.
func Load(path string) (model.Fleet, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("failed to read inventory file: %w", err)
	}

	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	fleet, err := model.DecodeFleet(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid inventory in %s: %w", path, err)
	}
	return fleet, nil
}
