package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	if cfg.InputPath != DefaultInputFile {
		t.Errorf("InputPath = %q, want %q", cfg.InputPath, DefaultInputFile)
	}
	if cfg.OutputPath != DefaultOutputFile {
		t.Errorf("OutputPath = %q, want %q", cfg.OutputPath, DefaultOutputFile)
	}
	if cfg.SummaryFormat != FormatNone {
		t.Errorf("SummaryFormat = %q, want none", cfg.SummaryFormat)
	}
	if !cfg.SaveHistory {
		t.Error("SaveHistory = false, want true")
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*Config) {},
			wantErr: nil,
		},
		{
			name:    "empty input path",
			mutate:  func(c *Config) { c.InputPath = "" },
			wantErr: ErrEmptyInputPath,
		},
		{
			name:    "empty output path",
			mutate:  func(c *Config) { c.OutputPath = "" },
			wantErr: ErrEmptyOutputPath,
		},
		{
			name:    "json format is valid",
			mutate:  func(c *Config) { c.SummaryFormat = FormatJSON },
			wantErr: nil,
		},
		{
			name:    "markdown format is valid",
			mutate:  func(c *Config) { c.SummaryFormat = FormatMarkdown },
			wantErr: nil,
		},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.SummaryFormat = "pdf" },
			wantErr: ErrUnknownSummaryFormat,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads yaml values", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := "input: fleet.json\noutput: fleet.xlsx\nformat: markdown\nhistory: false\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.Input != "fleet.json" || cf.Output != "fleet.xlsx" || cf.Format != "markdown" {
			t.Errorf("unexpected file values: %+v", cf)
		}
		if cf.History == nil || *cf.History {
			t.Error("History = true, want false")
		}
	})

	t.Run("returns ErrConfigNotFound for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("rejects invalid yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("input: [unclosed"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for invalid YAML, got nil")
		}
	})
}

func TestConfigApply(t *testing.T) {
	t.Parallel()

	t.Run("overlays non-empty values", func(t *testing.T) {
		t.Parallel()

		history := false
		cfg := NewConfig()
		cfg.Apply(&File{Input: "fleet.json", Format: FormatJSON, History: &history})

		if cfg.InputPath != "fleet.json" {
			t.Errorf("InputPath = %q, want fleet.json", cfg.InputPath)
		}
		if cfg.OutputPath != DefaultOutputFile {
			t.Errorf("OutputPath = %q, want default untouched", cfg.OutputPath)
		}
		if cfg.SummaryFormat != FormatJSON {
			t.Errorf("SummaryFormat = %q, want json", cfg.SummaryFormat)
		}
		if cfg.SaveHistory {
			t.Error("SaveHistory = true, want false")
		}
	})

	t.Run("nil file is a no-op", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Apply(nil)
		if cfg.InputPath != DefaultInputFile {
			t.Errorf("InputPath = %q, want default", cfg.InputPath)
		}
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path wins", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("input: a.json\n"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		if got := FindConfigFile(path); got != path {
			t.Errorf("FindConfigFile() = %q, want %q", got, path)
		}
	})

	t.Run("explicit missing path returns empty", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing")); got != "" {
			t.Errorf("FindConfigFile() = %q, want empty", got)
		}
	})
}
