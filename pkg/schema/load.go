package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// contractDoc is the on-disk shape of a contract file. Column entries may
// be plain strings or {name, type} mappings, so they decode as any first.
type contractDoc struct {
	Name    string `mapstructure:"name"`
	Strict  bool   `mapstructure:"strict"`
	Columns []any  `mapstructure:"columns"`
}

// ParseContract decodes a YAML contract document, e.g.:
//
//	name: products
//	strict: true
//	columns:
//	  - Brand
//	  - name: Price
//	    type: int64
func ParseContract(data []byte) (Contract, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Contract{}, fmt.Errorf("parse contract: %w", err)
	}

	var doc contractDoc
	if err := mapstructure.Decode(raw, &doc); err != nil {
		return Contract{}, fmt.Errorf("decode contract: %w", err)
	}

	c := Contract{Name: doc.Name, Strict: doc.Strict}
	for i, entry := range doc.Columns {
		switch v := entry.(type) {
		case string:
			c.Fields = append(c.Fields, Field{Name: v})
		case map[string]any:
			var field Field
			if err := mapstructure.Decode(v, &field); err != nil {
				return Contract{}, fmt.Errorf("decode column %d: %w", i, err)
			}
			if field.Name == "" {
				return Contract{}, fmt.Errorf("column %d: name is required", i)
			}
			c.Fields = append(c.Fields, field)
		default:
			return Contract{}, fmt.Errorf("column %d: expected string or mapping, got %T", i, entry)
		}
	}
	return c, nil
}

// LoadContract reads one contract from a YAML file. When the document does
// not set a name, the file's base name (without extension) is used.
func LoadContract(path string) (Contract, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Contract{}, err
	}
	c, err := ParseContract(data)
	if err != nil {
		return Contract{}, fmt.Errorf("%s: %w", path, err)
	}
	if c.Name == "" {
		base := filepath.Base(path)
		c.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return c, nil
}

// LoadContracts reads every .yaml/.yml file in dir and returns the
// contracts keyed by name. Duplicate names are an error.
func LoadContracts(dir string) (map[string]Contract, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	contracts := make(map[string]Contract)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		c, err := LoadContract(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if _, dup := contracts[c.Name]; dup {
			return nil, fmt.Errorf("duplicate contract name %q", c.Name)
		}
		contracts[c.Name] = c
	}
	return contracts, nil
}
