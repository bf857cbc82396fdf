package policy

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"launchgate/pkg/platform/sentinel"
)

// document is the on-disk YAML shape of a policy. Absent fields keep the
// default policy values.
type document struct {
	CanonicalValue     *int64   `yaml:"canonical_value"`
	BadgeSymbol        *string  `yaml:"badge_symbol"`
	AllowedSources     []string `yaml:"allowed_sources"`
	BlacklistedSources []string `yaml:"blacklisted_sources"`
}

// LoadFile reads a YAML policy document from path.
func LoadFile(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("policy load failed (%s): %w", path, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("policy load failed (%s): %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("policy parse failed (%s): %w", path, err)
	}
	return p, nil
}

// Parse decodes a YAML policy document. Unknown keys are rejected.
func Parse(data []byte) (*Policy, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", sentinel.ErrInvalidInput, err)
	}

	spec := DefaultSpec()
	if doc.CanonicalValue != nil {
		spec.CanonicalValue = *doc.CanonicalValue
	}
	if doc.BadgeSymbol != nil {
		spec.BadgeSymbol = *doc.BadgeSymbol
	}
	if doc.AllowedSources != nil {
		spec.AllowedSources = doc.AllowedSources
	}
	if doc.BlacklistedSources != nil {
		spec.BlacklistedSources = doc.BlacklistedSources
	}
	return New(spec)
}
