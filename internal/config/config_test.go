package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() is invalid: %v", err)
	}
}

func TestLoadMergesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "beamterms.yaml")
	contents := "format: cbor\ncolor: never\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Format != FormatCBOR {
		t.Errorf("Format = %q, want cbor", cfg.Format)
	}
	if cfg.Color != "never" {
		t.Errorf("Color = %q, want never", cfg.Color)
	}
	// CacheDir was not set in the file, so the default survives.
	if cfg.CacheDir == "" {
		t.Errorf("CacheDir is empty, want default to survive an unset field")
	}
}

func TestLoadMissingPathIsAnError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml")); err == nil {
		t.Fatalf("Load(missing path) succeeded, want error")
	}
}

func TestApplyFlagsOnlyOverridesSetFields(t *testing.T) {
	cfg := Default()
	cfg.ApplyFlags("", "never", "")
	if cfg.Format != FormatText {
		t.Errorf("Format = %q, want unchanged default text", cfg.Format)
	}
	if cfg.Color != "never" {
		t.Errorf("Color = %q, want never", cfg.Color)
	}
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	cfg := Default()
	cfg.Format = "yaml"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("Validate() accepted an unknown format")
	}
}
