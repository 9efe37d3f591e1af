package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.General.Language != "zh_CN" {
		t.Fatalf("default language = %q, want zh_CN", cfg.General.Language)
	}
	if cfg.Execution.DefaultOrigin != [3]int{0, 64, 0} {
		t.Fatalf("default origin = %v, want [0 64 0]", cfg.Execution.DefaultOrigin)
	}
	if !cfg.Execution.ContinueOnError {
		t.Fatal("continue_on_error should default to true")
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"general": {"language": "en_US"}, "execution": {"default_origin": [10, 0, -5]}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.General.Language != "en_US" {
		t.Fatalf("language = %q, want en_US", cfg.General.Language)
	}
	if cfg.Execution.DefaultOrigin != [3]int{10, 0, -5} {
		t.Fatalf("origin = %v, want [10 0 -5]", cfg.Execution.DefaultOrigin)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, _ := LoadConfig(path)
	cfg.UI.ColoredOutput = false
	cfg.Features.AutoBackup = true
	if err := cfg.SaveConfig(path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.UI.ColoredOutput {
		t.Fatal("colored_output should be false after round trip")
	}
	if !loaded.Features.AutoBackup {
		t.Fatal("auto_backup should be true after round trip")
	}
}
