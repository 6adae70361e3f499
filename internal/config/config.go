package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/marwest/doxgen/internal/header"
)

// Config holds tool-level options. The header block format itself is a fixed
// external convention and is not configurable; only the surface around it is.
type Config struct {
	// Listen is the address the HTTP integration surface binds to.
	Listen string `yaml:"listen"`
	// Verbose and Quiet adjust diagnostic output. Quiet wins when both are set.
	Verbose bool `yaml:"verbose"`
	Quiet   bool `yaml:"quiet"`
	// Briefs are extra brief heuristics, consulted after the built-in ones.
	Briefs []Brief `yaml:"briefs"`
}

// Brief is one user-supplied brief rule.
type Brief struct {
	Name     string `yaml:"name"`
	Contains bool   `yaml:"contains"`
	Brief    string `yaml:"brief"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Listen: "127.0.0.1:7433",
	}
}

// Load reads a YAML config file. A missing file is not an error; defaults are
// returned instead.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config '%s': %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config '%s': %w", path, err)
	}
	return cfg, nil
}

// BriefRules converts the configured briefs into generator rules.
func (c *Config) BriefRules() []header.BriefRule {
	rules := make([]header.BriefRule, 0, len(c.Briefs))
	for _, b := range c.Briefs {
		rules = append(rules, header.BriefRule{
			Name:     b.Name,
			Contains: b.Contains,
			Brief:    b.Brief,
		})
	}
	return rules
}
