package restroute

import (
	"sort"
	"strings"

	"gopkg.in/yaml.v2"
)

// Config holds the per-controller-scan derivation settings. A Config is
// validated once at deriver construction and never mutated afterwards;
// create a fresh deriver to change it.
type Config struct {
	// PathPrefix is inserted into the path right after the parent-chain
	// segments, e.g. "api".
	PathPrefix string `yaml:"path_prefix"`

	// NamePrefix is prepended to every registered route name.
	NamePrefix string `yaml:"name_prefix"`

	// Version, when set, ANDs a version-matching predicate into every
	// route condition.
	Version string `yaml:"version"`

	Pluralize PluralizePolicy `yaml:"pluralize"`

	// Parents is the ordered ancestor resource chain for nested-resource
	// routing. Entries must be non-empty and must not end in "/".
	Parents []string `yaml:"parents"`

	// IncludeFormat appends a .{_format} suffix to every derived path.
	IncludeFormat bool `yaml:"include_format"`

	// Formats maps format keys to media types; the sorted keys become the
	// default {_format} requirement.
	Formats map[string]string `yaml:"formats"`
}

// ConfigFromYAML hydrates and validates a Config from routing config data.
func ConfigFromYAML(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, newConfigError("invalid routing config", map[string]any{
			"error": err.Error(),
		})
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	for i, parent := range c.Parents {
		if parent == "" || strings.HasSuffix(parent, "/") {
			return newConfigError("parent resource names must be non-empty and must not end in a path separator", map[string]any{
				"parent": parent,
				"index":  i,
			})
		}
	}
	return nil
}

// formatKeys returns the configured format keys sorted, so the derived
// {_format} requirement is stable across runs.
func (c Config) formatKeys() []string {
	keys := make([]string, 0, len(c.Formats))
	for k := range c.Formats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
