// Package config loads the optional enroll configuration file.
//
// The tool works with no configuration at all: the endpoint and timeout
// have compiled-in defaults, and command-line flags override anything the
// file sets. The file exists for users who submit to a non-default
// endpoint repeatedly and do not want to pass --endpoint every time.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mwhitfield/enroll/internal/registration"
)

const (
	appName    = "enroll"
	configFile = "config.yaml"
)

// Config holds the tool's settings.
type Config struct {
	// Endpoint is the form-submission URL registrations are posted to
	Endpoint string `yaml:"endpoint"`

	// TimeoutSeconds bounds the submission request. Zero (the default)
	// means no timeout; the call follows the network stack's defaults.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Default returns the compiled-in configuration
func Default() Config {
	return Config{
		Endpoint:       registration.DefaultEndpoint,
		TimeoutSeconds: 0,
	}
}

// DefaultPath returns the conventional location of the config file:
// $XDG_CONFIG_HOME/enroll/config.yaml, or $HOME/.config/enroll/config.yaml.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, configFile), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName, configFile), nil
}

// Load reads the config file at path, or from DefaultPath when path is
// empty. A missing file is not an error; defaults are returned.
func Load(path string) (Config, error) {
	explicit := path != ""
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Default(), err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("endpoint is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint must be an http or https URL, got %q", c.Endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("endpoint has no host: %q", c.Endpoint)
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must be >= 0, got %d", c.TimeoutSeconds)
	}
	return nil
}

// Timeout returns the configured request timeout (zero = none)
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
