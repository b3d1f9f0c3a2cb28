// Package config loads TileCoder configurations from JSON or YAML
// files.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samuelfneumann/gotile/tilecoder"
)

// Format is a serialization format of a configuration file
type Format string

// Formats available for configuration files
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatOf returns the Format of a configuration file based on its
// extension
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil

	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("formatOf: cannot determine format of %q, "+
		"expected a .json, .yaml or .yml file", path)
}

// Load reads and validates the TileCoder configuration stored in the
// file at path
func Load(path string) (tilecoder.Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return tilecoder.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return tilecoder.Config{}, fmt.Errorf("load: %w", err)
	}

	c, err := Parse(data, format)
	if err != nil {
		return tilecoder.Config{}, fmt.Errorf("load %v: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a TileCoder configuration. Unknown
// fields are rejected.
func Parse(data []byte, format Format) (tilecoder.Config, error) {
	var c tilecoder.Config

	switch format {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&c); err != nil {
			return tilecoder.Config{}, fmt.Errorf("parse: %w", err)
		}

	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil {
			return tilecoder.Config{}, fmt.Errorf("parse: %w", err)
		}

	default:
		return tilecoder.Config{}, fmt.Errorf("parse: unknown format %q",
			format)
	}

	if err := c.Validate(); err != nil {
		return tilecoder.Config{}, err
	}
	return c, nil
}

// Save writes a TileCoder configuration to the file at path in the
// format given by the file's extension
func Save(path string, c tilecoder.Config) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case JSON:
		data, err = json.MarshalIndent(c, "", "\t")
	case YAML:
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
