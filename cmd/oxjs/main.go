package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"oxjs/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "oxjs [input]",
	Short: "Rust-subset to JavaScript source translator",
	Long: `oxjs translates programs written in a Rust subset into plain
JavaScript source text, and can optionally execute the result in an
embedded engine.

The input is a single .rs file, a directory of them, or nothing at all
when an oxjs.toml manifest describes the project.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runTranspile,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.Version = version.Version
	rootCmd.AddCommand(versionCmd)

	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write the program to this file instead of stdout")
	rootCmd.Flags().StringVar(&flagRun, "run", "", "execute the program, calling this entry function")
	rootCmd.Flags().Lookup("run").NoOptDefVal = "main"
	rootCmd.Flags().StringSliceVar(&flagArgs, "args", nil, "program arguments exposed through env.args()")
	rootCmd.Flags().BoolVar(&flagPretty, "pretty", false, "annotate the output with source-file banners")
	rootCmd.Flags().IntVarP(&flagJobs, "jobs", "j", 0, "parallel workers in directory mode (0 = all CPUs)")
	rootCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "skip the transpilation cache")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "colorize status output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		errColor().Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func colorEnabled() bool {
	switch flagColor {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(os.Stderr)
	}
}

func statusColor() *color.Color {
	c := color.New(color.FgGreen)
	if !colorEnabled() {
		c.DisableColor()
	}
	return c
}

func errColor() *color.Color {
	c := color.New(color.FgRed, color.Bold)
	if !colorEnabled() {
		c.DisableColor()
	}
	return c
}
