// Package config provides configuration file parsing for textreport.
package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Defaults used when neither a flag nor the config file sets a value.
const (
	DefaultInputPath = "books/frankenstein.txt"
	DefaultColor     = "auto"
)

// Dir returns the textreport config directory, respecting XDG_CONFIG_HOME.
// Defaults to ~/.config/textreport if XDG_CONFIG_HOME is not set.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "textreport"), nil
}

// Config holds user defaults read from {dir}/config.
type Config struct {
	// InputPath is the document reported on when no path is given.
	InputPath string
	// Color is one of "auto", "always" or "never". Validated by the caller.
	Color string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		InputPath: DefaultInputPath,
		Color:     DefaultColor,
	}
}

// Load reads the config file at {dir}/config and returns the parsed
// config on top of the defaults. If the file does not exist, the defaults
// are returned without an error. Malformed lines and unknown keys are
// silently skipped.
//
// File format, one setting per line:
//
//	# comment
//	input_path = books/frankenstein.txt
//	color = never
func Load(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, "config")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip blank lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		if value == "" {
			continue
		}

		switch key {
		case "input_path":
			cfg.InputPath = value
		case "color":
			cfg.Color = value
		}
	}

	if err := scanner.Err(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
