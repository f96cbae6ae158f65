// Package runjs executes generated JavaScript in an embedded engine.
// It exists for --run and for execution-backed tests; the translator
// itself never depends on it.
package runjs

import (
	"fmt"
	"strings"

	"github.com/dop251/goja"
)

// Options configures one execution.
type Options struct {
	// Args is exposed to the program as __program_args, which the
	// generated env.args() shim reads.
	Args []string

	// Entry names a global function to call after evaluation. Empty
	// means call main when (and only when) the program defines one.
	Entry string
}

// Result captures what the program wrote through the console shim.
type Result struct {
	Stdout []string // console.log lines
	Stderr []string // console.error lines
}

// ExecError reports a failure inside the engine, as opposed to a
// translation failure. Stage is "evaluate" or "call".
type ExecError struct {
	Stage string
	Err   error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("js %s: %v", e.Stage, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

// Run evaluates the program and optionally calls its entry function.
func Run(js string, opts Options) (*Result, error) {
	vm := goja.New()
	res := &Result{}

	if err := installConsole(vm, res); err != nil {
		return nil, &ExecError{Stage: "evaluate", Err: err}
	}

	args := make([]any, len(opts.Args))
	for i, a := range opts.Args {
		args[i] = a
	}
	// a native array, so the generated for-of loops can iterate it
	if err := vm.Set("__program_args", vm.NewArray(args...)); err != nil {
		return nil, &ExecError{Stage: "evaluate", Err: err}
	}

	if _, err := vm.RunString(js); err != nil {
		return res, &ExecError{Stage: "evaluate", Err: err}
	}

	entry := opts.Entry
	optional := entry == ""
	if optional {
		entry = "main"
	}
	fn, ok := goja.AssertFunction(vm.Get(entry))
	if !ok {
		if optional {
			return res, nil
		}
		return res, &ExecError{Stage: "call", Err: fmt.Errorf("no function %q in program", entry)}
	}
	if _, err := fn(goja.Undefined()); err != nil {
		return res, &ExecError{Stage: "call", Err: err}
	}
	return res, nil
}

// installConsole wires a console shim that captures output instead of
// writing to the host process streams.
func installConsole(vm *goja.Runtime, res *Result) error {
	console := vm.NewObject()
	if err := console.Set("log", func(call goja.FunctionCall) goja.Value {
		res.Stdout = append(res.Stdout, joinArgs(call))
		return goja.Undefined()
	}); err != nil {
		return err
	}
	if err := console.Set("error", func(call goja.FunctionCall) goja.Value {
		res.Stderr = append(res.Stderr, joinArgs(call))
		return goja.Undefined()
	}); err != nil {
		return err
	}
	return vm.Set("console", console)
}

func joinArgs(call goja.FunctionCall) string {
	parts := make([]string, len(call.Arguments))
	for i, a := range call.Arguments {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}
