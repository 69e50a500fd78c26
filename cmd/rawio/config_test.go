package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("RAWIO_CONFIG", "")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("LoadConfig(\"\") = %+v, want defaults", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rawio.yaml")
	data := "output: out.txt\nmode: a+\nrename_to: moved.txt\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("explicit path", func(t *testing.T) {
		t.Setenv("RAWIO_CONFIG", "")
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Output != "out.txt" || cfg.Mode != "a+" || cfg.RenameTo != "moved.txt" {
			t.Errorf("unexpected config %+v", cfg)
		}
		// Unset keys keep their defaults.
		if cfg.Message != "Hello, World!" || cfg.Prompt != "Enter a number: " {
			t.Errorf("defaults lost: %+v", cfg)
		}
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("RAWIO_CONFIG", path)
		cfg, err := LoadConfig("")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Output != "out.txt" {
			t.Errorf("RAWIO_CONFIG ignored: %+v", cfg)
		}
	})
}

func TestLoadConfigErrors(t *testing.T) {
	t.Setenv("RAWIO_CONFIG", "")
	dir := t.TempDir()

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("output: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadConfig(bad)
	if err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr []string
	}{
		{name: "defaults", modify: func(*Config) {}},
		{name: "append", modify: func(c *Config) { c.Mode = "a+" }},
		{name: "read plus", modify: func(c *Config) { c.Mode = "r+" }},
		{name: "missing output", modify: func(c *Config) { c.Output = "" }, wantErr: []string{"output is required"}},
		{name: "unknown mode", modify: func(c *Config) { c.Mode = "rw" }, wantErr: []string{`mode "rw"`}},
		{name: "read only", modify: func(c *Config) { c.Mode = "r" }, wantErr: []string{"cannot write"}},
		{name: "same rename", modify: func(c *Config) { c.RenameTo = c.Output }, wantErr: []string{"rename_to"}},
		{
			name: "several",
			modify: func(c *Config) {
				c.Output = ""
				c.Mode = "z"
			},
			wantErr: []string{"output is required", `mode "z"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected an error")
			}
			for _, want := range tt.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q does not mention %q", err, want)
				}
			}
		})
	}
}
