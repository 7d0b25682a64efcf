package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/crun-cli/crun/pkg/output"
)

// Version is set at build time via ldflags
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "crun <file> [flags] [-- args...]",
	Short: "Build and run a single C/C++ file",
	Long: `crun configures and builds a single C or C++ source file through CMake,
auto-detecting a generator, then runs the produced binary with any
arguments given after "--". Without a CMake project (or without CMake
itself) it compiles the file directly with the system compiler.`,
	Version:       Version,
	Args:          validateArgs,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			// Failure already reported; propagate the subprocess exit code.
			os.Exit(ee.code)
		}
		output.Errorf("%v", err)
		os.Exit(1)
	}
}

func validateArgs(cmd *cobra.Command, args []string) error {
	n := len(args)
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		n = dash
	}
	if n == 0 && listGenerators {
		return nil
	}
	if n != 1 {
		return errors.New(`expected exactly one source file (put program arguments after "--")`)
	}
	return nil
}
