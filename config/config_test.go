package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pdfsplit.yml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Split.Pages != 100 || cfg.Split.Prefix != "output" || cfg.Split.OutputDir != "." {
		t.Errorf("unexpected split defaults: %+v", cfg.Split)
	}
	if cfg.Server.Port != "8080" || cfg.Server.MaxFileSize != 10*1024*1024 {
		t.Errorf("unexpected server defaults: %+v", cfg.Server)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
split:
  pages: 25
  prefix: chapter
server:
  port: "9000"
log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Split.Pages != 25 || cfg.Split.Prefix != "chapter" {
		t.Errorf("file values not applied: %+v", cfg.Split)
	}
	if cfg.Split.OutputDir != "." {
		t.Errorf("unset key lost its default: %q", cfg.Split.OutputDir)
	}
	if cfg.Server.Port != "9000" || cfg.Log.Level != "debug" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "split:\n  pages: 25\n")
	t.Setenv("PDFSPLIT_PAGES", "7")
	t.Setenv("PDFSPLIT_VERIFY", "true")
	t.Setenv("TEMP_DIR", "/tmp/x")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Split.Pages != 7 {
		t.Errorf("expected env pages 7, got %d", cfg.Split.Pages)
	}
	if !cfg.Split.Verify {
		t.Error("expected verify from env")
	}
	if cfg.Server.TempDir != "/tmp/x" {
		t.Errorf("expected env temp dir, got %q", cfg.Server.TempDir)
	}
}

func TestLoad_InvalidEnvIgnored(t *testing.T) {
	t.Setenv("PDFSPLIT_PAGES", "lots")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Split.Pages != DefaultPages {
		t.Errorf("expected default pages, got %d", cfg.Split.Pages)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeConfig(t, "split: [not, a, map")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty prefix", func(c *Config) { c.Split.Prefix = "" }, true},
		{"prefix with slash", func(c *Config) { c.Split.Prefix = "a/b" }, true},
		{"empty output dir", func(c *Config) { c.Split.OutputDir = "" }, true},
		// the splitter reports the page limit itself
		{"zero pages", func(c *Config) { c.Split.Pages = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateServer(t *testing.T) {
	cfg := Default()
	if err := cfg.ValidateServer(); err != nil {
		t.Fatalf("defaults: %v", err)
	}
	cfg.Server.MaxFileSize = 0
	if err := cfg.ValidateServer(); err == nil {
		t.Error("expected error for zero max file size")
	}
}
