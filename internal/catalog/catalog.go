package catalog

import (
	"fmt"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/substrate-dev/sandbox-agent/internal/errors"
)

// Template describes a sandbox environment preset.
type Template struct {
	ID                string   `toml:"id"`
	Name              string   `toml:"name"`
	Description       string   `toml:"description"`
	BaseImage         string   `toml:"base_image"`
	InstalledPackages []string `toml:"installed_packages"`
	SetupCommands     []string `toml:"setup_commands"`
}

// Validate checks that the Template is well-formed.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("id is required")
	}
	if t.BaseImage == "" {
		return fmt.Errorf("base_image is required")
	}
	for _, cmd := range t.SetupCommands {
		if _, err := shellquote.Split(cmd); err != nil {
			return fmt.Errorf("setup command %q: %w", cmd, err)
		}
	}
	return nil
}

// ResourceConfig is a named preset of compute quantities.
type ResourceConfig struct {
	CPU    string `toml:"cpu"`
	Memory string `toml:"memory"`
	Disk   string `toml:"disk"`
}

// Validate checks that all quantities are populated.
func (r *ResourceConfig) Validate() error {
	if r.CPU == "" || r.Memory == "" || r.Disk == "" {
		return fmt.Errorf("cpu, memory, and disk are all required")
	}
	return nil
}

// Map returns the preset as a resource key/value mapping.
func (r *ResourceConfig) Map() map[string]string {
	return map[string]string{
		"cpu":    r.CPU,
		"memory": r.Memory,
		"disk":   r.Disk,
	}
}

// Catalog is a read-only lookup table of templates and resource presets.
// Immutable after construction, so it is safe for concurrent use.
type Catalog struct {
	templates []Template
	byID      map[string]int
	resources map[string]ResourceConfig
	sizes     []string
}

// New builds a Catalog from the given templates and resource presets.
// Template ids must be unique and every entry must validate.
func New(templates []Template, resources map[string]ResourceConfig) (*Catalog, error) {
	c := &Catalog{
		templates: make([]Template, 0, len(templates)),
		byID:      make(map[string]int, len(templates)),
		resources: make(map[string]ResourceConfig, len(resources)),
	}

	for _, t := range templates {
		if err := t.Validate(); err != nil {
			return nil, errors.ConfigError(fmt.Sprintf("invalid template %q", t.ID), err)
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, errors.ConfigError(fmt.Sprintf("duplicate template id %q", t.ID), nil)
		}
		c.byID[t.ID] = len(c.templates)
		c.templates = append(c.templates, t)
	}

	for size, r := range resources {
		if err := r.Validate(); err != nil {
			return nil, errors.ConfigError(fmt.Sprintf("invalid resource config %q", size), err)
		}
		c.resources[size] = r
	}
	c.sizes = sortedSizes(c.resources)

	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultTemplates(), defaultResourceConfigs())
	if err != nil {
		// The built-in data is static; a failure here is a programming error.
		panic(err)
	}
	return c
}

// TemplateByID returns the template with the given id.
func (c *Catalog) TemplateByID(id string) (Template, error) {
	i, ok := c.byID[id]
	if !ok {
		return Template{}, errors.TemplateNotFound(id)
	}
	return c.templates[i], nil
}

// ResourceConfig returns the preset for the given size label.
func (c *Catalog) ResourceConfig(size string) (ResourceConfig, error) {
	r, ok := c.resources[size]
	if !ok {
		return ResourceConfig{}, errors.ResourceConfigNotFound(size)
	}
	return r, nil
}

// Templates returns all templates in declaration order.
func (c *Catalog) Templates() []Template {
	out := make([]Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// Sizes returns the known resource size labels, smallest first when the
// labels are the standard small/medium/large set, lexicographic otherwise.
func (c *Catalog) Sizes() []string {
	out := make([]string, len(c.sizes))
	copy(out, c.sizes)
	return out
}
