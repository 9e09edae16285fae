package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("roles:\n  - National\n  - CMS\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if len(c.Roles) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(c.Roles))
	}
	if c.Roles[0] != "National" || c.Roles[1] != "CMS" {
		t.Errorf("unexpected roles: %v", c.Roles)
	}
}

func TestLoadFromFile_BlankRole(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("roles:\n  - National\n  - \"  \"\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err == nil {
		t.Fatal("expected error for blank role entry")
	}
}

func TestLoadFromFile_EmptyDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("roles: []\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if len(c.Roles) != 3 {
		t.Errorf("expected 3 default roles, got %d: %v", len(c.Roles), c.Roles)
	}
}

func TestFirstEnv(t *testing.T) {
	t.Setenv("FEEFORM_TEST_A", "")
	t.Setenv("FEEFORM_TEST_B", "second")
	if got := FirstEnv("FEEFORM_TEST_A", "FEEFORM_TEST_B"); got != "second" {
		t.Errorf("got %q, want second", got)
	}
	if got := FirstEnv("FEEFORM_TEST_MISSING"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestValidateServe(t *testing.T) {
	c := Config{PromptPath: "prompts/assistant_prompt.txt"}
	if err := c.ValidateServe(); err == nil {
		t.Fatal("expected error without DSN")
	}
	c.DSN = "postgresql://localhost/fees"
	if err := c.ValidateServe(); err != nil {
		t.Fatalf("ValidateServe: %v", err)
	}
	if len(c.Roles) == 0 {
		t.Error("roles should default during validation")
	}
}
