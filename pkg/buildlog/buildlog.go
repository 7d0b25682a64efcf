// Package buildlog manages the per-run build output log.
package buildlog

import (
	"fmt"
	"io"
	"os"
)

// DefaultName is the log file written in the working directory.
const DefaultName = "build_output.log"

// Log captures subprocess output for one run. Create truncates any
// previous log; every build step appends to the same file.
type Log struct {
	path string
	f    *os.File
}

// Create opens (and truncates) the log file at path.
func Create(path string) (*Log, error) {
	f, err := os.Create(path) //nolint:gosec // intentional: the log path is fixed per run
	if err != nil {
		return nil, fmt.Errorf("failed to create log file %s: %w", path, err)
	}
	return &Log{path: path, f: f}, nil
}

// Path returns the log file path.
func (l *Log) Path() string {
	return l.path
}

// Write appends raw subprocess output. Implements io.Writer so the log
// can be handed to a command's stdout and stderr.
func (l *Log) Write(p []byte) (int, error) {
	return l.f.Write(p)
}

// Section writes a header line before an external step.
func (l *Log) Section(format string, args ...any) {
	fmt.Fprintf(l.f, format+"\n", args...)
}

// Close closes the underlying file. Safe to call more than once.
func (l *Log) Close() error {
	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}

// Dump writes the log contents to w between banner lines, for showing
// the user what the failed step printed.
func Dump(w io.Writer, path string) {
	fmt.Fprintf(w, "---- build log (%s) ----\n", path)
	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading back our own log
	switch {
	case os.IsNotExist(err):
		fmt.Fprintln(w, "(log file not found)")
	case err != nil:
		fmt.Fprintln(w, "(failed to read log)")
	default:
		w.Write(data) //nolint:errcheck // best effort terminal output
	}
	fmt.Fprintln(w, "---- end log ----")
}
