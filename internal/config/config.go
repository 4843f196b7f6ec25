// Package config loads the settings of the command line calculator.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/goccy/go-yaml"

	"github.com/ErikKalkoken/exprcalc/internal/humanize"
)

// Config represents the settings which can be defined in a YAML file.
type Config struct {
	Base               int  `yaml:"base"` // also show integral results in this base, 0 to disable
	Compact            bool `yaml:"compact"`
	Precision          int  `yaml:"precision"`
	ShowPostfix        bool `yaml:"show_postfix"`
	ThousandsSeparator bool `yaml:"thousands_separator"`
	Workers            int  `yaml:"workers"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{Workers: runtime.NumCPU()}
}

// Load returns the configuration from a YAML file.
// Settings missing in the file keep their default.
// When the file does not exist it returns the default configuration.
func Load(path string) (Config, error) {
	c, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return c, err
}

// LoadFile is like [Load], but returns an error wrapping [fs.ErrNotExist]
// when the file does not exist.
func LoadFile(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.UnmarshalWithOptions(data, &c, yaml.DisallowUnknownField()); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Validate reports an error when a setting has an invalid value.
func (c Config) Validate() error {
	if c.Base != 0 && (c.Base < 2 || c.Base > 16) {
		return fmt.Errorf("base must be between 2 and 16: %d", c.Base)
	}
	if c.Precision < 0 {
		return fmt.Errorf("precision must not be negative: %d", c.Precision)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1: %d", c.Workers)
	}
	return nil
}

// FormatOptions returns the options for rendering results.
func (c Config) FormatOptions() humanize.Options {
	return humanize.Options{
		Compact:            c.Compact,
		Precision:          c.Precision,
		ThousandsSeparator: c.ThousandsSeparator,
	}
}
