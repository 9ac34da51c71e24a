package mgtools

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFilename is the name of the manifest in an export directory.
const ManifestFilename = "manifest.yaml"

// Manifest describes an export directory. Positions without a record were
// not exported and are taken from a base container when generating.
type Manifest struct {
	Version  string `yaml:"version"`
	Platform uint16 `yaml:"platform"`
	Files    int    `yaml:"files"`

	SeparateChars bool `yaml:"separate_chars,omitempty"`

	Records []Record `yaml:"records"`
}

// Record describes one exported position.
type Record struct {
	Index int    `yaml:"index"`
	Kind  string `yaml:"kind"`
	Type  string `yaml:"type"`

	// Variants is the number of sprite images.
	Variants int `yaml:"variants,omitempty"`
	// Blocks is the number of locale blocks.
	Blocks int `yaml:"blocks,omitempty"`
}

var errBadManifest = errors.New("invalid manifest")

func (m *Manifest) validate() error {
	if m.Files < 0 {
		return fmt.Errorf("%w: %d files", errBadManifest, m.Files)
	}
	seen := make(map[int]bool, len(m.Records))
	for _, r := range m.Records {
		if r.Index < 0 || r.Index >= m.Files {
			return fmt.Errorf("%w: record %d out of range [0, %d)", errBadManifest, r.Index, m.Files)
		}
		if seen[r.Index] {
			return fmt.Errorf("%w: record %d listed twice", errBadManifest, r.Index)
		}
		seen[r.Index] = true
	}
	return nil
}

func (m *Manifest) records() map[int]Record {
	records := make(map[int]Record, len(m.Records))
	for _, r := range m.Records {
		records[r.Index] = r
	}
	return records
}

func writeYAML(file string, v interface{}) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return writeFile(file, b)
}

func readYAML(file string, v interface{}) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, v); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	return nil
}

func writeFile(file string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return err
	}
	return os.WriteFile(file, b, 0o644)
}
