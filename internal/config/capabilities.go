// Package config holds the evaluator's ambient configuration: the
// optional capability flags, loadable from a small YAML document.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Capabilities is the optional-capability object embedders configure.
// Every field defaults to enabled; an embedder ships a YAML document
// to disable individual ones (e.g. to build a reduced-surface
// sandbox) rather than removing the corresponding builtin from scope —
// disabled builtins stay resolvable but fail NotEnabled when called.
type Capabilities struct {
	MD5             bool `yaml:"md5"`
	SHA1            bool `yaml:"sha1"`
	SHA256          bool `yaml:"sha256"`
	SHA512          bool `yaml:"sha512"`
	Regex           bool `yaml:"regex"`
	JSON            bool `yaml:"json"`
	CompareVersions bool `yaml:"compare_versions"`
}

// DefaultCapabilities returns every capability enabled.
func DefaultCapabilities() Capabilities {
	return Capabilities{
		MD5: true, SHA1: true, SHA256: true, SHA512: true,
		Regex: true, JSON: true, CompareVersions: true,
	}
}

// LoadCapabilities reads a capabilities YAML document from path,
// starting from DefaultCapabilities() so an omitted field stays
// enabled. A missing file is not an error — callers that only wire
// this up for an optional --config flag get the defaults.
func LoadCapabilities(path string) (Capabilities, error) {
	caps := DefaultCapabilities()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return caps, nil
		}
		return caps, fmt.Errorf("reading capabilities file: %w", err)
	}
	if err := yaml.Unmarshal(data, &caps); err != nil {
		return caps, fmt.Errorf("parsing capabilities file: %w", err)
	}
	return caps, nil
}
