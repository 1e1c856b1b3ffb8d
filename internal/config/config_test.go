package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mwhitfield/enroll/internal/registration"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Endpoint != registration.DefaultEndpoint {
		t.Errorf("Endpoint = %s, want %s", cfg.Endpoint, registration.DefaultEndpoint)
	}
	if cfg.TimeoutSeconds != 0 {
		t.Errorf("TimeoutSeconds = %d, want 0", cfg.TimeoutSeconds)
	}
}

func TestDefaultPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	want := filepath.Join("/tmp/xdg", "enroll", "config.yaml")
	if path != want {
		t.Errorf("DefaultPath() = %s, want %s", path, want)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "endpoint: https://forms.example.com/f/reg\ntimeout_seconds: 10\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Endpoint != "https://forms.example.com/f/reg" {
		t.Errorf("Endpoint = %s, want https://forms.example.com/f/reg", cfg.Endpoint)
	}
	if cfg.Timeout() != 10*time.Second {
		t.Errorf("Timeout() = %v, want 10s", cfg.Timeout())
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "timeout_seconds: 3\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Endpoint != registration.DefaultEndpoint {
		t.Errorf("Endpoint = %s, want the default endpoint", cfg.Endpoint)
	}
	if cfg.TimeoutSeconds != 3 {
		t.Errorf("TimeoutSeconds = %d, want 3", cfg.TimeoutSeconds)
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	// Point the default path at an empty directory
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() with no config file error = %v, want defaults", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() with missing explicit path = nil error, want error")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "endpoint: [not: valid: yaml\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() with malformed YAML = nil error, want error")
	}
	if !strings.Contains(err.Error(), "parse") {
		t.Errorf("error = %v, want a parse error", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"Defaults", Default(), false},
		{"Plain http", Config{Endpoint: "http://localhost:8080/f/reg"}, false},
		{"Missing scheme", Config{Endpoint: "forms.example.com/f/reg"}, true},
		{"Wrong scheme", Config{Endpoint: "ftp://forms.example.com"}, true},
		{"No host", Config{Endpoint: "https://"}, true},
		{"Negative timeout", Config{Endpoint: registration.DefaultEndpoint, TimeoutSeconds: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
