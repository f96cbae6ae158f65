// Package project locates and parses the optional oxjs.toml manifest.
// A manifest is never required; the CLI works on bare files. When one
// exists it supplies defaults: output path, entry function, source dir.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest is a parsed oxjs.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the oxjs.toml schema.
type Config struct {
	Package PackageConfig `toml:"package"`
	Build   BuildConfig   `toml:"build"`
	Run     RunConfig     `toml:"run"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type BuildConfig struct {
	// Src is the source directory for directory mode, relative to the
	// manifest. Defaults to "src".
	Src string `toml:"src"`
	// Out is the output file path, relative to the manifest.
	Out string `toml:"out"`
}

type RunConfig struct {
	// Entry is the function called after evaluation. Empty keeps the
	// default (main, when present).
	Entry string `toml:"entry"`
}

// Find walks up from startDir to locate oxjs.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "oxjs.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and parses the nearest manifest above startDir. ok is
// false when no manifest exists, which is not an error.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := Parse(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// Parse decodes a manifest file.
func Parse(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: parse TOML: %w", path, err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undec[0].String())
	}
	if cfg.Build.Src == "" {
		cfg.Build.Src = "src"
	}
	return cfg, nil
}

// SrcDir resolves the source directory against the manifest root.
func (m *Manifest) SrcDir() string {
	return filepath.Join(m.Root, m.Config.Build.Src)
}

// OutPath resolves the configured output path against the manifest
// root, or returns "" when none is configured.
func (m *Manifest) OutPath() string {
	if m.Config.Build.Out == "" {
		return ""
	}
	return filepath.Join(m.Root, m.Config.Build.Out)
}
