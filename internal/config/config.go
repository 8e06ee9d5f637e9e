// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Githu836/Phone-Lookup/internal/carrier"
)

// Config holds all phone-lookup configuration.
type Config struct {
	Lookup   Lookup   `yaml:"lookup"`
	Carriers Carriers `yaml:"carriers"`
	Output   Output   `yaml:"output"`
}

// Lookup holds pipeline settings.
type Lookup struct {
	DefaultRegion string `yaml:"default_region"` // ISO region for input without "+"
	Locale        string `yaml:"locale"`         // language for carrier/geocoding names
}

// Carriers holds local carrier resolution settings.
type Carriers struct {
	DialingCode int               `yaml:"dialing_code"` // country whose carriers are tracked
	Prefixes    map[string]string `yaml:"prefixes"`     // overrides layered onto the built-in table
}

// Output holds rendering settings.
type Output struct {
	Plain bool `yaml:"plain"` // force plain rendering even on a TTY
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Lookup: Lookup{
			DefaultRegion: "ID",
			Locale:        "en",
		},
		Carriers: Carriers{
			DialingCode: carrier.IndonesiaDialingCode,
		},
	}
}

// PrefixTable returns the effective carrier prefix table: the built-in
// Indonesian table when the tracked dialing code is 62, with any configured
// prefixes layered on top.
func (c *Config) PrefixTable() map[string]string {
	table := map[string]string{}
	if c.Carriers.DialingCode == carrier.IndonesiaDialingCode {
		table = carrier.Indonesia()
	}
	for prefix, name := range c.Carriers.Prefixes {
		table[prefix] = name
	}
	return table
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if len(c.Lookup.DefaultRegion) != 2 {
		return fmt.Errorf("config: lookup.default_region must be a two-letter ISO region, got %q", c.Lookup.DefaultRegion)
	}
	for _, r := range c.Lookup.DefaultRegion {
		if r < 'A' || r > 'Z' {
			return fmt.Errorf("config: lookup.default_region must be uppercase letters, got %q", c.Lookup.DefaultRegion)
		}
	}
	if c.Lookup.Locale == "" {
		return errors.New("config: lookup.locale cannot be empty")
	}
	if c.Carriers.DialingCode <= 0 {
		return fmt.Errorf("config: carriers.dialing_code must be positive, got %d", c.Carriers.DialingCode)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: PHONE_LOOKUP_REGION, PHONE_LOOKUP_LOCALE, PHONE_LOOKUP_PLAIN.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("PHONE_LOOKUP_REGION"); v != "" {
		c.Lookup.DefaultRegion = v
	}
	if v := os.Getenv("PHONE_LOOKUP_LOCALE"); v != "" {
		c.Lookup.Locale = v
	}
	if v := os.Getenv("PHONE_LOOKUP_PLAIN"); v != "" {
		plain, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid PHONE_LOOKUP_PLAIN %q: %w", v, err)
		}
		c.Output.Plain = plain
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Lookup   *rawLookup   `yaml:"lookup"`
	Carriers *rawCarriers `yaml:"carriers"`
	Output   *rawOutput   `yaml:"output"`
}

type rawLookup struct {
	DefaultRegion *string `yaml:"default_region"`
	Locale        *string `yaml:"locale"`
}

type rawCarriers struct {
	DialingCode *int              `yaml:"dialing_code"`
	Prefixes    map[string]string `yaml:"prefixes"`
}

type rawOutput struct {
	Plain *bool `yaml:"plain"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
// Prefix tables merge per key so a later layer can add or retarget a single
// prefix without restating the whole table.
func (c *Config) merge(layer *rawConfig) {
	if layer.Lookup != nil {
		if layer.Lookup.DefaultRegion != nil {
			c.Lookup.DefaultRegion = *layer.Lookup.DefaultRegion
		}
		if layer.Lookup.Locale != nil {
			c.Lookup.Locale = *layer.Lookup.Locale
		}
	}
	if layer.Carriers != nil {
		if layer.Carriers.DialingCode != nil {
			c.Carriers.DialingCode = *layer.Carriers.DialingCode
		}
		if layer.Carriers.Prefixes != nil {
			if c.Carriers.Prefixes == nil {
				c.Carriers.Prefixes = map[string]string{}
			}
			for prefix, name := range layer.Carriers.Prefixes {
				c.Carriers.Prefixes[prefix] = name
			}
		}
	}
	if layer.Output != nil {
		if layer.Output.Plain != nil {
			c.Output.Plain = *layer.Output.Plain
		}
	}
}
