package catalog

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/substrate-dev/sandbox-agent/internal/errors"
)

// CatalogFileName is the catalog file looked up inside a config directory.
const CatalogFileName = "catalog.toml"

// catalogFile is the on-disk TOML shape:
//
//	[[templates]]
//	id = "rust-dev"
//	name = "Rust Development Environment"
//	base_image = "rust:1.79"
//	installed_packages = ["clippy", "rustfmt"]
//	setup_commands = ["cargo fetch"]
//
//	[resources.small]
//	cpu = "1"
//	memory = "2Gi"
//	disk = "10Gi"
type catalogFile struct {
	// Replace drops the built-in templates and presets instead of
	// overlaying on top of them.
	Replace bool `toml:"replace"`

	Templates []Template                `toml:"templates"`
	Resources map[string]ResourceConfig `toml:"resources"`
}

// LoadFile reads a TOML catalog file and merges it over the built-ins.
// Templates with an id already present replace the built-in entry in
// place; new templates append in file order. Resource presets with a
// known label replace that preset. With replace = true the file contents
// stand alone.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to read catalog file %s", path), err)
	}

	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to parse catalog file %s", path), err)
	}

	templates := defaultTemplates()
	resources := defaultResourceConfigs()
	if file.Replace {
		templates = nil
		resources = make(map[string]ResourceConfig)
	}

	for _, t := range file.Templates {
		if i := indexByID(templates, t.ID); i >= 0 {
			templates[i] = t
		} else {
			templates = append(templates, t)
		}
	}
	for size, r := range file.Resources {
		resources[size] = r
	}

	return New(templates, resources)
}

// Load resolves CatalogFileName inside configDir and loads it. The join
// is hardened against the file name escaping the directory. A missing
// file yields the built-in catalog.
func Load(configDir string) (*Catalog, error) {
	path, err := securejoin.SecureJoin(configDir, CatalogFileName)
	if err != nil {
		return nil, errors.ConfigError("failed to resolve catalog path", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	return LoadFile(path)
}

func indexByID(templates []Template, id string) int {
	for i, t := range templates {
		if t.ID == id {
			return i
		}
	}
	return -1
}
