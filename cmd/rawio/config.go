package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the rawio run configuration. Flags override file values.
type Config struct {
	// Output is the file the message is written to.
	Output string `yaml:"output"`

	// Mode is the fopen style mode used for Output.
	// Default: w+
	Mode string `yaml:"mode"`

	// Message is written to Output.
	Message string `yaml:"message"`

	// RenameTo, when set, is where Output is moved after closing.
	RenameTo string `yaml:"rename_to"`

	// Prompt is echoed before reading the number.
	Prompt string `yaml:"prompt"`
}

// DefaultConfig mirrors the classic demo: prompt for a number, write
// "Hello, World!" to test.txt.
func DefaultConfig() *Config {
	return &Config{
		Output:  "test.txt",
		Mode:    "w+",
		Message: "Hello, World!",
		Prompt:  "Enter a number: ",
	}
}

// LoadConfig reads path over the defaults. An empty path falls back to
// RAWIO_CONFIG, and to the defaults alone when that is unset too.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv("RAWIO_CONFIG")
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the fields the run command cannot work without.
func (c *Config) Validate() error {
	var errs []error
	if c.Output == "" {
		errs = append(errs, errors.New("output is required"))
	}
	switch c.Mode {
	case "r", "r+", "w", "w+", "a", "a+":
	default:
		errs = append(errs, fmt.Errorf("mode %q must be one of r, r+, w, w+, a, a+", c.Mode))
	}
	if c.Mode == "r" {
		errs = append(errs, errors.New("mode r cannot write the message"))
	}
	if c.RenameTo != "" && c.RenameTo == c.Output {
		errs = append(errs, errors.New("rename_to must differ from output"))
	}
	return errors.Join(errs...)
}
