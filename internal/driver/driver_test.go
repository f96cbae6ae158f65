package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"oxjs/internal/cache"
	"oxjs/internal/jsgen"
	"oxjs/internal/runjs"
)

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTranspileSource(t *testing.T) {
	u, err := TranspileSource("main.rs", []byte(`fn main() { println!("hi"); }`))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(u.JS, "function main() {") {
		t.Fatalf("fragment missing function:\n%s", u.JS)
	}
	if strings.Contains(u.JS, "debug_repr") {
		t.Fatal("unit fragments must not embed the preamble")
	}
}

func TestTranspileSourceParseError(t *testing.T) {
	_, err := TranspileSource("bad.rs", []byte(`fn {`))
	if err == nil {
		t.Fatal("parse error swallowed")
	}
	if !strings.Contains(err.Error(), "bad.rs:1:") {
		t.Fatalf("error does not carry a position: %v", err)
	}
}

func TestCacheHitSkipsRetranslation(t *testing.T) {
	c, err := cache.OpenAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := writeSource(t, t.TempDir(), "main.rs", `fn main() { println!("hi"); }`)

	first, err := TranspileFile(path, c)
	if err != nil {
		t.Fatal(err)
	}
	if first.FromCache {
		t.Fatal("cold cache reported a hit")
	}
	second, err := TranspileFile(path, c)
	if err != nil {
		t.Fatal(err)
	}
	if !second.FromCache {
		t.Fatal("warm cache missed")
	}
	if first.JS != second.JS {
		t.Fatal("cached output differs from fresh output")
	}
}

func TestTranspileDirOrderAndDeterminism(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "b.rs", `fn beta() -> i32 { 2 }`)
	writeSource(t, dir, "a.rs", `fn alpha() -> i32 { 1 }`)
	writeSource(t, dir, "c.rs", `
fn main() {
    println!("{}", alpha() + beta());
}`)

	units, err := TranspileDir(context.Background(), dir, 4, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(units) != 3 {
		t.Fatalf("got %d units", len(units))
	}
	if !strings.HasSuffix(units[0].Path, "a.rs") || !strings.HasSuffix(units[2].Path, "c.rs") {
		t.Fatalf("units out of order: %s, %s, %s", units[0].Path, units[1].Path, units[2].Path)
	}

	program := AssembleProgram(units)
	if !strings.HasPrefix(program, jsgen.Preamble()) {
		t.Fatal("program does not start with the preamble")
	}

	again, err := TranspileDir(context.Background(), dir, 4, nil)
	if err != nil {
		t.Fatal(err)
	}
	if AssembleProgram(again) != program {
		t.Fatal("parallel transpilation is not deterministic")
	}

	res, err := runjs.Run(program, runjs.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Stdout) != 1 || res.Stdout[0] != "3" {
		t.Fatalf("stdout = %#v", res.Stdout)
	}
}

func TestTranspileDirEmpty(t *testing.T) {
	units, err := TranspileDir(context.Background(), t.TempDir(), 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if units != nil {
		t.Fatalf("expected no units, got %d", len(units))
	}
}
