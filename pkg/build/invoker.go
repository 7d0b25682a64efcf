// Package build drives CMake configure/build steps and the direct
// compiler fallback.
package build

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/crun-cli/crun/pkg/buildlog"
	"github.com/crun-cli/crun/pkg/cmake"
)

// Invoker runs the configure and build steps for one project.
type Invoker struct {
	Root      string // project root (contains CMakeLists.txt)
	Generator string
	Config    string // build configuration, e.g. Debug or Release
	Log       *buildlog.Log
	Runner    cmake.Runner
}

// BuildDir returns the CMake binary directory for the project.
func (inv *Invoker) BuildDir() string {
	return filepath.Join(inv.Root, "build")
}

// Configure runs the CMake configure step unless the existing build
// tree was configured with identical inputs. force bypasses the check.
func (inv *Invoker) Configure(extraArgs []string, force bool) error {
	stamp := inv.configureStamp(extraArgs)
	if !force && inv.configured(stamp) {
		inv.Log.Section("Configure up to date, skipping (generator: %s)", inv.Generator)
		return nil
	}

	args := []string{"-S", inv.Root, "-B", inv.BuildDir(), "-G", inv.Generator, "-Wno-dev"}
	// Only pass a config to single-config generators
	if !cmake.IsMultiConfig(inv.Generator) {
		args = append(args, "-DCMAKE_BUILD_TYPE="+inv.Config)
	}
	args = append(args, extraArgs...)

	inv.Log.Section("Configuring with generator: %s", inv.Generator)
	if err := inv.Runner.Run(inv.Log, inv.Root, "cmake", args...); err != nil {
		return fmt.Errorf("cmake configure: %w", err)
	}

	inv.writeStamp(stamp)
	return nil
}

// Build builds the named target.
func (inv *Invoker) Build(target string, extraArgs []string) error {
	args := []string{"--build", inv.BuildDir(), "--target", target}
	if cmake.IsMultiConfig(inv.Generator) {
		args = append(args, "--config", inv.Config)
	}
	args = append(args, extraArgs...)

	inv.Log.Section("Building target: %s", target)
	if err := inv.Runner.Run(inv.Log, inv.Root, "cmake", args...); err != nil {
		return fmt.Errorf("cmake build: %w", err)
	}
	return nil
}

// BinaryPath returns where the built target's executable lands.
// Multi-config generators nest binaries under a per-config directory.
func (inv *Invoker) BinaryPath(target string) string {
	dir := inv.BuildDir()
	if cmake.IsMultiConfig(inv.Generator) {
		dir = filepath.Join(dir, inv.Config)
	}
	name := target
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(dir, name)
}
