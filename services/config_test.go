package services

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GIN_MODE", "")

	cfg := LoadConfig()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode = %q, want %q", cfg.GinMode, "release")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GIN_MODE", "debug")

	cfg := LoadConfig()

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9000")
	}
	if cfg.GinMode != "debug" {
		t.Errorf("GinMode = %q, want %q", cfg.GinMode, "debug")
	}
}

func TestLoadConfigDotenv(t *testing.T) {
	// godotenv does not override variables already set, so clear them
	t.Setenv("PORT", "")
	t.Setenv("GIN_MODE", "")
	os.Unsetenv("PORT")
	os.Unsetenv("GIN_MODE")

	dir := t.TempDir()
	env := "PORT=7070\nGIN_MODE=test\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	// equivalent of t.Chdir, which needs Go 1.24+
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})

	cfg := LoadConfig()

	if cfg.Port != "7070" {
		t.Errorf("Port = %q, want %q", cfg.Port, "7070")
	}
	if cfg.GinMode != "test" {
		t.Errorf("GinMode = %q, want %q", cfg.GinMode, "test")
	}
}
