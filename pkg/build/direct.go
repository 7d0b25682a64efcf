package build

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/crun-cli/crun/pkg/buildlog"
	"github.com/crun-cli/crun/pkg/cmake"
)

// Compiler probe order when falling back to direct compilation.
var (
	cCompilers   = []string{"cc", "gcc", "clang", "cl"}
	cxxCompilers = []string{"c++", "g++", "clang++", "cl"}
)

// IsC reports whether the file compiles as C rather than C++.
func IsC(file string) bool {
	return strings.EqualFold(filepath.Ext(file), ".c")
}

// FindCompiler probes for a usable compiler for the given source file,
// trying C or C++ candidates in preference order.
func FindCompiler(r cmake.Runner, file string) (string, error) {
	candidates := cxxCompilers
	if IsC(file) {
		candidates = cCompilers
	}
	for _, compiler := range candidates {
		if _, err := r.LookPath(compiler); err == nil {
			return compiler, nil
		}
	}
	return "", fmt.Errorf("no compiler found, looked for: %s", strings.Join(candidates, ", "))
}

// DirectCompile compiles file into a fresh temporary directory,
// bypassing CMake, and returns the binary path. The caller removes the
// binary's directory once the program has run; on compile failure the
// directory is already cleaned up.
func DirectCompile(r cmake.Runner, log *buildlog.Log, compiler, file string) (string, error) {
	isC := IsC(file)
	prefix := "cpp-run-"
	if isC {
		prefix = "c-run-"
	}
	tempDir, err := os.MkdirTemp("", prefix)
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}

	outName := "a.out"
	if runtime.GOOS == "windows" {
		outName = "a.exe"
	}
	output := filepath.Join(tempDir, outName)

	args := compileArgs(compiler, file, output, isC)

	log.Section("Compiling with %s", compiler)
	if err := r.Run(log, "", compiler, args...); err != nil {
		_ = os.RemoveAll(tempDir)
		return "", fmt.Errorf("%s: %w", compiler, err)
	}
	return output, nil
}

// compileArgs builds the compiler command line. MSVC's cl takes a
// different flag dialect than the gcc-compatible compilers.
func compileArgs(compiler, file, output string, isC bool) []string {
	if compiler == "cl" {
		stdFlag := "/std:c++20"
		langFlag := "/TP"
		if isC {
			stdFlag = "/std:c17"
			langFlag = "/TC"
		}
		return []string{file, langFlag, stdFlag, "/Fe" + output, "/nologo"}
	}

	stdFlag := "-std=c++20"
	if isC {
		stdFlag = "-std=c17"
	}
	return []string{file, stdFlag, "-O0", "-g", "-o", output}
}
