package catalog

import (
	"strings"
	"testing"

	"github.com/substrate-dev/sandbox-agent/internal/errors"
)

func TestTemplateByID(t *testing.T) {
	c := Default()

	for _, id := range []string{"python-dev", "node-dev", "go-dev"} {
		t.Run(id, func(t *testing.T) {
			tmpl, err := c.TemplateByID(id)
			if err != nil {
				t.Fatalf("TemplateByID(%q) error: %v", id, err)
			}
			if tmpl.ID != id {
				t.Errorf("ID = %q, want %q", tmpl.ID, id)
			}
			if tmpl.BaseImage == "" {
				t.Error("BaseImage is empty")
			}
		})
	}
}

func TestTemplateByID_NotFound(t *testing.T) {
	c := Default()

	_, err := c.TemplateByID("nonexistent")
	if err == nil {
		t.Fatal("TemplateByID should fail for unknown id")
	}
	if !errors.IsNotFound(err) {
		t.Errorf("error should be NotFound, got: %v", err)
	}
	if errors.GetExitCode(err) != errors.ExitTemplateNotFound {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitTemplateNotFound)
	}
}

func TestResourceConfig(t *testing.T) {
	c := Default()

	for _, size := range []string{"small", "medium", "large"} {
		t.Run(size, func(t *testing.T) {
			r, err := c.ResourceConfig(size)
			if err != nil {
				t.Fatalf("ResourceConfig(%q) error: %v", size, err)
			}
			if r.CPU == "" || r.Memory == "" || r.Disk == "" {
				t.Errorf("preset %q has empty fields: %+v", size, r)
			}
		})
	}
}

func TestResourceConfig_NotFound(t *testing.T) {
	c := Default()

	_, err := c.ResourceConfig("huge")
	if err == nil {
		t.Fatal("ResourceConfig should fail for unknown size")
	}
	if !errors.IsNotFound(err) {
		t.Errorf("error should be NotFound, got: %v", err)
	}
}

func TestTemplates_DeclarationOrder(t *testing.T) {
	c := Default()

	templates := c.Templates()
	want := []string{"python-dev", "node-dev", "go-dev"}

	if len(templates) != len(want) {
		t.Fatalf("len(Templates()) = %d, want %d", len(templates), len(want))
	}
	for i, id := range want {
		if templates[i].ID != id {
			t.Errorf("Templates()[%d].ID = %q, want %q", i, templates[i].ID, id)
		}
	}
}

func TestTemplates_ReturnsCopy(t *testing.T) {
	c := Default()

	templates := c.Templates()
	templates[0].ID = "mutated"

	fresh := c.Templates()
	if fresh[0].ID == "mutated" {
		t.Error("mutating the returned slice should not affect the catalog")
	}
}

func TestSizes(t *testing.T) {
	c := Default()

	sizes := c.Sizes()
	want := []string{"small", "medium", "large"}
	if len(sizes) != len(want) {
		t.Fatalf("Sizes() = %v, want %v", sizes, want)
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("Sizes()[%d] = %q, want %q", i, sizes[i], want[i])
		}
	}
}

func TestResourceConfig_Map(t *testing.T) {
	r := ResourceConfig{CPU: "2", Memory: "4Gi", Disk: "20Gi"}

	m := r.Map()
	if m["cpu"] != "2" || m["memory"] != "4Gi" || m["disk"] != "20Gi" {
		t.Errorf("Map() = %v", m)
	}
}

func TestNew_DuplicateID(t *testing.T) {
	templates := []Template{
		{ID: "dup", BaseImage: "img"},
		{ID: "dup", BaseImage: "img"},
	}

	_, err := New(templates, defaultResourceConfigs())
	if err == nil {
		t.Fatal("New should reject duplicate template ids")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error = %q, want mention of duplicate", err.Error())
	}
}

func TestNew_InvalidTemplate(t *testing.T) {
	tests := []struct {
		name string
		tmpl Template
	}{
		{"missing id", Template{BaseImage: "img"}},
		{"missing base image", Template{ID: "x"}},
		{"unterminated setup command", Template{ID: "x", BaseImage: "img", SetupCommands: []string{`echo "unterminated`}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New([]Template{tt.tmpl}, nil); err == nil {
				t.Error("New should reject invalid template")
			}
		})
	}
}

func TestNew_InvalidResourceConfig(t *testing.T) {
	resources := map[string]ResourceConfig{
		"partial": {CPU: "1", Memory: "2Gi"},
	}

	if _, err := New(nil, resources); err == nil {
		t.Error("New should reject a preset with missing fields")
	}
}
