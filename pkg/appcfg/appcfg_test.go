package appcfg

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "log_level: debug\nhide_secrets_in_console: true\nworkers: 8\n")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.LogLevel != "debug" {
		t.Fatalf("log level = %q, want debug", c.LogLevel)
	}
	if !c.HideSecretsInConsole {
		t.Fatalf("expected hide_secrets_in_console true")
	}
	if c.Workers != 8 {
		t.Fatalf("workers = %d, want 8", c.Workers)
	}
}

func TestLoad_DefaultsLevel(t *testing.T) {
	path := writeConfig(t, "workers: 0\n")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.LogLevel != "info" {
		t.Fatalf("log level = %q, want info default", c.LogLevel)
	}
}

func TestLoad_RejectsNegativeWorkers(t *testing.T) {
	path := writeConfig(t, "workers: -1\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for negative workers")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
