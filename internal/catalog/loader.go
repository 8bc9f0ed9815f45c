package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads a full catalog from a file. The codec is picked from the file
// extension: .yaml/.yml, .toml, or .json. Field-level validation is left to
// the registries; Load only rejects unreadable or undecodable files.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog file: %w", err)
	}

	var c Catalog
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Catalog{}, fmt.Errorf("parsing YAML catalog %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &c); err != nil {
			return Catalog{}, fmt.Errorf("parsing TOML catalog %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &c); err != nil {
			return Catalog{}, fmt.Errorf("parsing JSON catalog %s: %w", path, err)
		}
	default:
		return Catalog{}, fmt.Errorf("unsupported catalog format: %s", filepath.Ext(path))
	}

	return c, nil
}
