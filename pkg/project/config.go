package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kballard/go-shellquote"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional per-project defaults file, read from
// the project root.
const ConfigFileName = "crun.yaml"

// Config holds per-project defaults. CLI flags and environment
// variables override these.
type Config struct {
	Generator string   `yaml:"generator"`
	Config    string   `yaml:"config"`
	CMakeArgs []string `yaml:"cmake_args"`
	BuildArgs []string `yaml:"build_args"`
}

// LoadConfig reads crun.yaml from the project root. A missing file
// yields a zero Config and no error.
func LoadConfig(root string) (Config, error) {
	path := filepath.Join(root, ConfigFileName)
	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading project config
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// EnvArgs splits the shell-quoted value of the named environment
// variable into arguments. An unset or empty variable yields nil.
func EnvArgs(key string) ([]string, error) {
	value := os.Getenv(key)
	if value == "" {
		return nil, nil
	}
	args, err := shellquote.Split(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return args, nil
}
