// Package config loads the command line defaults from a YAML file in the
// application data directory.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	ndastro "github.com/dhuruvah-apps/ndastro-core"
	"github.com/dhuruvah-apps/ndastro-core/almanac"
	"github.com/dhuruvah-apps/ndastro-core/appdir"
)

// AppName names the application data directory.
const AppName = "ndastro"

// FileName is the configuration file inside the data directory.
const FileName = "config.yaml"

// Config holds the defaults applied when a flag is not given.
type Config struct {
	DefaultSystem string           `yaml:"default_system"`
	Location      almanac.Observer `yaml:"location"`
	Format        string           `yaml:"format"`
}

// Default returns the built-in configuration: Lahiri, Bangalore, text output.
func Default() Config {
	return Config{
		DefaultSystem: ndastro.Lahiri.Slug(),
		Location:      almanac.NewObserver(12.97, 77.59),
		Format:        "text",
	}
}

// DefaultPath returns <data dir>/ndastro/config.yaml.
func DefaultPath() (string, error) {
	return appdir.File(AppName, FileName)
}

// Load reads the file at path over the defaults. A missing file is not an
// error and yields Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the system name, the location and the output format.
func (c Config) Validate() error {
	if _, err := c.System(); err != nil {
		return fmt.Errorf("config default_system: %w", err)
	}
	if err := c.Location.Validate(); err != nil {
		return fmt.Errorf("config location: %w", err)
	}
	if c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("config format %q: must be text or json", c.Format)
	}
	return nil
}

// System resolves DefaultSystem.
func (c Config) System() (ndastro.System, error) {
	return ndastro.ParseSystem(c.DefaultSystem)
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
