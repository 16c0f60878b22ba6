package testutil

import (
	"testing"

	"github.com/substrate-dev/sandbox-agent/internal/app"
	"github.com/substrate-dev/sandbox-agent/internal/catalog"
	"github.com/substrate-dev/sandbox-agent/internal/provision"
)

func TestNewTestEnv(t *testing.T) {
	original := app.Default

	env := NewTestEnv(t)

	if app.Default != env.App {
		t.Error("NewTestEnv should install the test app as default")
	}
	if _, ok := app.Default.Provisioner.(*provision.Mock); !ok {
		t.Errorf("test app provisioner = %T, want *provision.Mock", app.Default.Provisioner)
	}

	env.Cleanup()
	if app.Default != original {
		t.Error("Cleanup should restore the original default app")
	}
}

func TestAddSandbox(t *testing.T) {
	env := NewTestEnv(t)

	sb := env.AddSandbox("scratch", "python-dev")

	if sb.ID != "sandbox-1" {
		t.Errorf("ID = %q, want %q", sb.ID, "sandbox-1")
	}
	got, err := env.Registry().Get(sb.ID)
	if err != nil {
		t.Fatalf("Get(%q) error: %v", sb.ID, err)
	}
	if got.Name != "scratch" {
		t.Errorf("Name = %q, want %q", got.Name, "scratch")
	}
}

func TestWriteCatalogFile(t *testing.T) {
	dir := WriteCatalogFile(t, `
[[templates]]
id = "rust-dev"
name = "Rust Development Environment"
base_image = "rust:1.79"
`)

	cat, err := catalog.Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := cat.TemplateByID("rust-dev"); err != nil {
		t.Errorf("overlay template missing: %v", err)
	}
	if _, err := cat.TemplateByID("python-dev"); err != nil {
		t.Errorf("builtin template should survive overlay: %v", err)
	}
}

func TestDefaultTemplate(t *testing.T) {
	tmpl := DefaultTemplate()
	if err := tmpl.Validate(); err != nil {
		t.Errorf("DefaultTemplate should validate: %v", err)
	}
}
