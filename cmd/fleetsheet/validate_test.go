package main

import (
	"strings"
	"testing"
)

func TestValidateCmd(t *testing.T) {
	t.Parallel()

	t.Run("reports counts for a valid inventory", func(t *testing.T) {
		t.Parallel()

		input, _ := writeTestInventory(t)
		out, err := runCommand(t, "validate", "-i", input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "OK: 2 devices, 2 software entries, 1 vulnerabilities") {
			t.Errorf("unexpected output:\n%s", out)
		}
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		t.Parallel()

		if _, err := runCommand(t, "validate", "-i", "no-such-inventory.json"); err == nil {
			t.Error("expected error, got nil")
		}
	})
}
