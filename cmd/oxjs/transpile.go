package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"oxjs/internal/cache"
	"oxjs/internal/driver"
	"oxjs/internal/project"
	"oxjs/internal/runjs"
)

var (
	flagOutput  string
	flagRun     string
	flagArgs    []string
	flagPretty  bool
	flagJobs    int
	flagNoCache bool
	flagColor   string
)

const cacheAppDir = "oxjs"

func runTranspile(cmd *cobra.Command, args []string) error {
	input, entry, output, err := resolveInput(args)
	if err != nil {
		return err
	}

	var c *cache.Cache
	if !flagNoCache {
		c, err = cache.Open(cacheAppDir)
		if err != nil {
			// a broken cache dir degrades to cold builds, it never
			// blocks the transpile itself
			c = nil
		}
	}

	units, err := collectUnits(cmd, input, c)
	if err != nil {
		return err
	}
	if len(units) == 0 {
		return fmt.Errorf("no .rs files under %s", input)
	}

	program := driver.AssembleProgram(units)
	if flagPretty {
		program = annotate(units)
	}

	if flagRun != "" {
		// a bare --run keeps the manifest's entry; an explicit
		// --run=name wins over it
		if entry == "" || flagRun != "main" {
			entry = flagRun
		}
		res, runErr := runjs.Run(program, runjs.Options{Args: flagArgs, Entry: entry})
		if res != nil {
			for _, line := range res.Stdout {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			for _, line := range res.Stderr {
				fmt.Fprintln(cmd.ErrOrStderr(), line)
			}
		}
		if runErr != nil {
			return runErr
		}
	}

	switch {
	case flagOutput != "":
		output = flagOutput
	case flagRun != "" && output == "":
		// run-only invocation, nothing to write
		return nil
	}
	return writeProgram(cmd, program, output)
}

// resolveInput decides what to transpile: the positional argument, or
// the manifest's source directory when the argument is absent.
func resolveInput(args []string) (input, entry, output string, err error) {
	if len(args) == 1 {
		input = args[0]
	}
	manifest, ok, err := project.Load(".")
	if err != nil {
		return "", "", "", err
	}
	if ok {
		entry = manifest.Config.Run.Entry
		output = manifest.OutPath()
		if input == "" {
			input = manifest.SrcDir()
		}
	}
	if input == "" {
		return "", "", "", fmt.Errorf("no input file and no oxjs.toml manifest found")
	}
	return input, entry, output, nil
}

func collectUnits(cmd *cobra.Command, input string, c *cache.Cache) ([]*driver.Unit, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return driver.TranspileDir(cmd.Context(), input, flagJobs, c)
	}
	u, err := driver.TranspileFile(input, c)
	if err != nil {
		return nil, err
	}
	return []*driver.Unit{u}, nil
}

// annotate rebuilds the program with a source banner above each unit.
func annotate(units []*driver.Unit) string {
	banners := make([]*driver.Unit, len(units))
	for i, u := range units {
		banners[i] = &driver.Unit{
			Path: u.Path,
			Hash: u.Hash,
			JS:   fmt.Sprintf("// source: %s\n%s", filepath.Base(u.Path), u.JS),
		}
	}
	return driver.AssembleProgram(banners)
}

func writeProgram(cmd *cobra.Command, program, output string) error {
	if output == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), program)
		return err
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(output, []byte(program), 0o644); err != nil {
		return err
	}
	statusColor().Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", output, len(program))
	return nil
}

// resetFlags restores flag defaults between in-process test runs.
func resetFlags() {
	flagOutput = ""
	flagRun = ""
	flagArgs = nil
	flagPretty = false
	flagJobs = 0
	flagNoCache = false
	flagColor = "auto"
}
