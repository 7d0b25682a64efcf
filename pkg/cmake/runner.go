// Package cmake probes the local CMake installation and selects a generator.
package cmake

import (
	"io"
	"os/exec"
)

// Runner abstracts external process execution for testability.
type Runner interface {
	// LookPath searches for an executable in PATH.
	LookPath(file string) (string, error)
	// Output runs a command and returns its stdout.
	Output(name string, args ...string) (string, error)
	// Run executes a command in dir, streaming combined stdout and
	// stderr to w.
	Run(w io.Writer, dir, name string, args ...string) error
}

// RealRunner implements Runner using actual OS commands.
type RealRunner struct{}

// LookPath searches for an executable in PATH.
func (r *RealRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Output runs a command and returns its stdout.
func (r *RealRunner) Output(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	return string(out), err
}

// Run executes a command in dir, streaming combined output to w.
func (r *RealRunner) Run(w io.Writer, dir, name string, args ...string) error {
	// #nosec G204 -- intentional: the command and arguments come from the
	// user's CLI invocation and project configuration.
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = w
	cmd.Stderr = w
	return cmd.Run()
}

// MockRunner is a test double for Runner.
type MockRunner struct {
	LookPathFunc func(file string) (string, error)
	OutputFunc   func(name string, args ...string) (string, error)
	RunFunc      func(w io.Writer, dir, name string, args ...string) error
}

// LookPath calls the mock function.
func (m *MockRunner) LookPath(file string) (string, error) {
	return m.LookPathFunc(file)
}

// Output calls the mock function.
func (m *MockRunner) Output(name string, args ...string) (string, error) {
	return m.OutputFunc(name, args...)
}

// Run calls the mock function.
func (m *MockRunner) Run(w io.Writer, dir, name string, args ...string) error {
	return m.RunFunc(w, dir, name, args...)
}
