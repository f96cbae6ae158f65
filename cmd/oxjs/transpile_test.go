package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	return cmd, &out, &errOut
}

func TestTranspileSingleFileToOutput(t *testing.T) {
	resetFlags()
	flagNoCache = true
	flagColor = "off"

	dir := t.TempDir()
	src := filepath.Join(dir, "main.rs")
	if err := os.WriteFile(src, []byte(`fn main() { println!("hi"); }`), 0o644); err != nil {
		t.Fatal(err)
	}
	flagOutput = filepath.Join(dir, "out.js")

	cmd, _, errOut := newTestCmd()
	if err := runTranspile(cmd, []string{src}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(flagOutput)
	if err != nil {
		t.Fatal(err)
	}
	js := string(data)
	if !strings.Contains(js, "function debug_repr") || !strings.Contains(js, "function main() {") {
		t.Fatalf("output incomplete:\n%s", js)
	}
	if !strings.Contains(errOut.String(), "wrote ") {
		t.Fatalf("status line missing: %q", errOut.String())
	}
}

func TestTranspileAndRun(t *testing.T) {
	resetFlags()
	flagNoCache = true
	flagColor = "off"
	flagRun = "main"
	flagArgs = []string{"alpha"}

	dir := t.TempDir()
	src := filepath.Join(dir, "main.rs")
	program := `
fn main() {
    for a in env::args() {
        println!("arg {}", a);
    }
}`
	if err := os.WriteFile(src, []byte(program), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd, out, _ := newTestCmd()
	if err := runTranspile(cmd, []string{src}); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "arg alpha\n" {
		t.Fatalf("stdout = %q", got)
	}
}

func TestTranspileDirectoryPretty(t *testing.T) {
	resetFlags()
	flagNoCache = true
	flagColor = "off"
	flagPretty = true

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.rs"), []byte(`fn alpha() -> i32 { 1 }`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.rs"), []byte(`fn beta() -> i32 { 2 }`), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd, out, _ := newTestCmd()
	if err := runTranspile(cmd, []string{dir}); err != nil {
		t.Fatal(err)
	}
	js := out.String()
	if !strings.Contains(js, "// source: a.rs") || !strings.Contains(js, "// source: b.rs") {
		t.Fatalf("pretty banners missing:\n%s", js)
	}
	if strings.Index(js, "// source: a.rs") > strings.Index(js, "// source: b.rs") {
		t.Fatal("units out of order")
	}
}

func TestTranspileMissingInput(t *testing.T) {
	resetFlags()
	flagNoCache = true

	cmd, _, _ := newTestCmd()
	err := runTranspile(cmd, []string{filepath.Join(t.TempDir(), "absent.rs")})
	if err == nil {
		t.Fatal("missing input accepted")
	}
}
