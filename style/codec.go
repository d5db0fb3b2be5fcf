package style

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// ToJSON serializes the schema to indented JSON.
func (s *Schema) ToJSON() (string, error) {
	data, err := sonic.ConfigDefault.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema: %w", err)
	}
	return string(data), nil
}

// FromJSON parses a schema from JSON text.
func FromJSON(text string) (*Schema, error) {
	var doc Document
	if err := sonic.UnmarshalString(text, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}
	return Decode(doc)
}

// ToYAML serializes the schema to YAML.
func (s *Schema) ToYAML() (string, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema: %w", err)
	}
	return string(data), nil
}

// FromYAML parses a schema from YAML text.
func FromYAML(text string) (*Schema, error) {
	var doc Document
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}
	return Decode(doc)
}

// ToTOML serializes the schema to TOML.
func (s *Schema) ToTOML() (string, error) {
	data, err := toml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema: %w", err)
	}
	return string(data), nil
}

// FromTOML parses a schema from TOML text.
func FromTOML(text string) (*Schema, error) {
	var doc Document
	if err := toml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema TOML: %w", err)
	}
	return Decode(doc)
}

// SaveFile writes the schema to a file, selecting the codec from the
// extension (.json, .yaml, .yml, .toml).
func (s *Schema) SaveFile(path string) error {
	text, err := s.encodeFor(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write style file: %w", err)
	}
	return nil
}

// LoadFile reads a schema from a file, selecting the codec from the
// extension.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style file: %w", err)
	}
	switch normalizeExt(path) {
	case ".json":
		return FromJSON(string(data))
	case ".yaml", ".yml":
		return FromYAML(string(data))
	case ".toml":
		return FromTOML(string(data))
	default:
		return nil, fmt.Errorf("unsupported style file format: %s", filepath.Ext(path))
	}
}

func (s *Schema) encodeFor(path string) (string, error) {
	switch normalizeExt(path) {
	case ".json":
		return s.ToJSON()
	case ".yaml", ".yml":
		return s.ToYAML()
	case ".toml":
		return s.ToTOML()
	default:
		return "", fmt.Errorf("unsupported style file format: %s", filepath.Ext(path))
	}
}

func normalizeExt(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
