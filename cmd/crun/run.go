package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/crun-cli/crun/pkg/build"
	"github.com/crun-cli/crun/pkg/buildlog"
	"github.com/crun-cli/crun/pkg/cmake"
	"github.com/crun-cli/crun/pkg/output"
	"github.com/crun-cli/crun/pkg/project"
	"github.com/crun-cli/crun/pkg/target"
)

var (
	generatorFlag  string
	configFlag     string
	cmakeArgsFlag  []string
	buildArgsFlag  []string
	listGenerators bool
	printBinary    bool
	reconfigure    bool
)

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&generatorFlag, "generator", "G", "", "CMake generator to use (overrides auto selection)")
	f.StringVar(&configFlag, "config", "", "build configuration, e.g. Debug or Release (default: $CMAKE_BUILD_CONFIG or Debug)")
	f.StringArrayVar(&cmakeArgsFlag, "cmake-arg", nil, "extra argument for the CMake configure step (repeatable)")
	f.StringArrayVar(&buildArgsFlag, "build-arg", nil, "extra argument for the CMake build step (repeatable)")
	f.BoolVar(&listGenerators, "list-generators", false, "list available CMake generators and exit")
	f.BoolVar(&printBinary, "print-binary", false, "print the binary path and exit")
	f.BoolVar(&reconfigure, "reconfigure", false, "force the CMake configure step to run again")
}

// exitError carries a subprocess exit code to main after the failure
// has already been reported.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

func runRoot(cmd *cobra.Command, args []string) error {
	runner := &cmake.RealRunner{}

	if listGenerators {
		return runListGenerators(runner)
	}

	file, execArgs := splitArgs(cmd, args)

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	fileAbs, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", file, err)
	}
	info, err := os.Stat(fileAbs)
	if err != nil {
		return fmt.Errorf("cannot read source file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, expected a C/C++ source file", file)
	}

	caps := cmake.Probe(runner)
	root, rootErr := project.FindRoot(wd)

	var cfg project.Config
	if rootErr == nil {
		if cfg, err = project.LoadConfig(root); err != nil {
			return err
		}
	}

	buildConfig := resolveConfig(configFlag, os.Getenv("CMAKE_BUILD_CONFIG"), cfg.Config)
	generatorOverride := generatorFlag
	if generatorOverride == "" {
		generatorOverride = cfg.Generator
	}
	cmakeArgs, err := gatherArgs(cfg.CMakeArgs, "CRUN_CMAKE_ARGS", cmakeArgsFlag)
	if err != nil {
		return err
	}
	buildArgs, err := gatherArgs(cfg.BuildArgs, "CRUN_BUILD_ARGS", buildArgsFlag)
	if err != nil {
		return err
	}

	// Decide between the CMake project path and direct compilation.
	var targetName string
	fallbackReason := ""
	switch {
	case !caps.Installed():
		fallbackReason = "CMake is not installed or not on PATH"
	case !caps.Supported():
		fallbackReason = fmt.Sprintf("CMake %s is too old to drive this project", caps.Version)
	case rootErr != nil:
		fallbackReason = "no CMakeLists.txt found above the current directory"
	default:
		targetName, err = target.Name(fileAbs, root)
		if errors.Is(err, target.ErrOutsideRoot) {
			fallbackReason = "the file is outside this project"
		} else if err != nil {
			return err
		}
	}

	if printBinary {
		return runPrintBinary(caps, root, targetName, generatorOverride, buildConfig, fallbackReason != "")
	}

	log, err := buildlog.Create(buildlog.DefaultName)
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	var binary, cleanupDir string
	if fallbackReason != "" {
		output.Warnf("%s; falling back to direct compilation", fallbackReason)

		compiler, err := build.FindCompiler(runner, fileAbs)
		if err != nil {
			return err
		}
		binary, err = build.DirectCompile(runner, log, compiler, fileAbs)
		if err != nil {
			return failWithLog(log, err, "compilation failed")
		}
		cleanupDir = filepath.Dir(binary)
	} else {
		gen, err := cmake.ChooseGenerator(caps.Generators, generatorOverride)
		if err != nil {
			return err
		}

		inv := &build.Invoker{Root: root, Generator: gen, Config: buildConfig, Log: log, Runner: runner}
		if err := inv.Configure(cmakeArgs, reconfigure); err != nil {
			return failWithLog(log, err, "CMake configure failed")
		}
		if err := inv.Build(targetName, buildArgs); err != nil {
			return failWithLog(log, err, "CMake build failed")
		}

		binary = inv.BinaryPath(targetName)
		if _, err := os.Stat(binary); err != nil {
			return fmt.Errorf("built binary not found at %s", binary)
		}
	}

	// Flush the log before the child writes to the terminal.
	_ = log.Close()

	output.Banner(binary, execArgs)
	runErr := runBinary(binary, execArgs)
	if cleanupDir != "" {
		_ = os.RemoveAll(cleanupDir)
	}
	if runErr != nil {
		var xe *exec.ExitError
		if errors.As(runErr, &xe) {
			output.Errorf("executable returned non-zero exit code %d", xe.ExitCode())
			return &exitError{code: xe.ExitCode()}
		}
		return fmt.Errorf("failed to execute %s: %w", binary, runErr)
	}
	return nil
}

// splitArgs separates the source file argument from the arguments
// following "--", which are forwarded to the built binary verbatim.
func splitArgs(cmd *cobra.Command, args []string) (file string, execArgs []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return args[0], nil
	}
	if dash > 0 {
		file = args[0]
	}
	return file, args[dash:]
}

// resolveConfig picks the build configuration: CLI flag, then the
// CMAKE_BUILD_CONFIG environment variable, then the project default.
func resolveConfig(flagValue, envValue, projectDefault string) string {
	for _, c := range []string{flagValue, envValue, projectDefault} {
		if c != "" {
			return c
		}
	}
	return "Debug"
}

// gatherArgs concatenates extra build-tool arguments in precedence
// order: project config file, then environment, then CLI flags.
func gatherArgs(fromConfig []string, envKey string, fromFlags []string) ([]string, error) {
	fromEnv, err := project.EnvArgs(envKey)
	if err != nil {
		return nil, err
	}
	args := append([]string{}, fromConfig...)
	args = append(args, fromEnv...)
	return append(args, fromFlags...), nil
}

func runListGenerators(r cmake.Runner) error {
	caps := cmake.Probe(r)
	if len(caps.Generators) == 0 {
		output.Infof("No generators found. Ensure CMake is installed and on PATH.")
		return nil
	}
	output.Infof("Available CMake generators:")
	for _, g := range caps.Generators {
		output.Infof("- %s", g)
	}
	return nil
}

func runPrintBinary(caps cmake.Capabilities, root, targetName, override, buildConfig string, fallback bool) error {
	if fallback || targetName == "" {
		output.Infof("(file outside project)")
		return nil
	}
	gen, err := cmake.ChooseGenerator(caps.Generators, override)
	if err != nil {
		output.Infof("(no generator available)")
		return nil
	}
	inv := &build.Invoker{Root: root, Generator: gen, Config: buildConfig}
	output.Infof("%s", inv.BinaryPath(targetName))
	return nil
}

// failWithLog reports a failed build step, dumps the captured log, and
// converts the subprocess error into an exit code for main.
func failWithLog(log *buildlog.Log, err error, msg string) error {
	code := 1
	var xe *exec.ExitError
	if errors.As(err, &xe) {
		code = xe.ExitCode()
	}
	_ = log.Close()
	output.Errorf("%s with exit code %d, logs at %s", msg, code, log.Path())
	buildlog.Dump(os.Stdout, log.Path())
	return &exitError{code: code}
}

// runBinary executes the built program wired to the terminal.
func runBinary(binary string, args []string) error {
	// #nosec G204 -- intentional: running the binary the user asked us to build
	cmd := exec.Command(binary, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	return cmd.Run()
}
