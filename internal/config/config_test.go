package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteDefaultAndLoad(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(".remind", "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}
	if err := WriteDefault(path); err == nil {
		t.Error("WriteDefault should refuse to overwrite an existing file")
	}

	if err := Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if got := GetString("model"); got == "" {
		t.Error("model should have a default")
	}
	if got := GetDuration("max-notify-delay"); got <= 0 {
		t.Errorf("max-notify-delay = %v, want positive duration", got)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("REMIND_MODEL", "test-model-override")

	if err := Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if got := GetString("model"); got != "test-model-override" {
		t.Errorf("model = %q, want env override", got)
	}
}

func TestDefaultsWithoutConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	os.Unsetenv("REMIND_MODEL")

	if err := Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if GetBool("json") {
		t.Error("json should default to false")
	}
}
