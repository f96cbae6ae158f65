package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "oxjs.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[package]
name = "demo"

[build]
src = "lib"
out = "dist/demo.js"

[run]
entry = "start"
`)
	cfg, err := Parse(filepath.Join(dir, "oxjs.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Package.Name != "demo" || cfg.Build.Src != "lib" ||
		cfg.Build.Out != "dist/demo.js" || cfg.Run.Entry != "start" {
		t.Fatalf("config = %+v", cfg)
	}
}

func TestParseDefaults(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[package]
name = "demo"
`)
	cfg, err := Parse(filepath.Join(dir, "oxjs.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Build.Src != "src" {
		t.Fatalf("default src = %q", cfg.Build.Src)
	}
}

func TestParseUnknownKey(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[package]
name = "demo"
flavor = "spicy"
`)
	if _, err := Parse(filepath.Join(dir, "oxjs.toml")); err == nil {
		t.Fatal("unknown key accepted")
	}
}

func TestLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `
[package]
name = "demo"

[build]
out = "out.js"
`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	m, ok, err := Load(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("manifest not found from nested dir")
	}
	if m.Root != root {
		t.Fatalf("root = %q, want %q", m.Root, root)
	}
	if got := m.OutPath(); got != filepath.Join(root, "out.js") {
		t.Fatalf("OutPath = %q", got)
	}
	if got := m.SrcDir(); got != filepath.Join(root, "src") {
		t.Fatalf("SrcDir = %q", got)
	}
}

func TestLoadAbsent(t *testing.T) {
	_, ok, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("phantom manifest")
	}
}
