package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCapabilitiesAllEnabled(t *testing.T) {
	c := DefaultCapabilities()
	if !c.MD5 || !c.SHA1 || !c.SHA256 || !c.SHA512 || !c.Regex || !c.JSON || !c.CompareVersions {
		t.Errorf("got %+v, want every capability enabled", c)
	}
}

func TestLoadCapabilitiesMissingFileReturnsDefaults(t *testing.T) {
	c, err := LoadCapabilities(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != DefaultCapabilities() {
		t.Errorf("got %+v, want defaults", c)
	}
}

func TestLoadCapabilitiesOverridesOnlyNamedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caps.yaml")
	if err := os.WriteFile(path, []byte("md5: false\nregex: false\n"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, err := LoadCapabilities(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.MD5 {
		t.Error("md5 should be disabled")
	}
	if c.Regex {
		t.Error("regex should be disabled")
	}
	if !c.SHA256 {
		t.Error("sha256 should remain enabled (untouched field keeps its default)")
	}
}

func TestLoadCapabilitiesMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("md5: [this is not a bool"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := LoadCapabilities(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
