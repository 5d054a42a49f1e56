package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rosqa.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Output != "questions.json" {
		t.Errorf("Output = %q", cfg.Output)
	}
	if cfg.Negatives != 5 {
		t.Errorf("Negatives = %d", cfg.Negatives)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
output: out/sensors.json
compress: true
negatives: 10
seed: 42
log_level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output != "out/sensors.json" || !cfg.Compress {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Negatives != 10 || cfg.Seed != 42 || cfg.LogLevel != "debug" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `compress: true`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output != "questions.json" {
		t.Errorf("absent field must keep its default: %+v", cfg)
	}
	if !cfg.Compress {
		t.Errorf("present field must override: %+v", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing output", `output: ""`},
		{"negatives out of range", `negatives: 100000`},
		{"bad log level", `log_level: loud`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Errorf("config %q must fail validation", tt.content)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file must error")
	}
}
