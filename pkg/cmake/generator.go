package cmake

import (
	"fmt"
	"strings"
)

// PreferredGenerators lists generators in selection priority order.
var PreferredGenerators = []string{
	"Ninja Multi-Config",
	"Ninja",
	"Unix Makefiles",
	"MinGW Makefiles",
	"Visual Studio 17 2022",
}

// ChooseGenerator picks a generator from the available set. A non-empty
// override wins when available; otherwise the first preferred generator
// present in the set is chosen.
func ChooseGenerator(available []string, override string) (string, error) {
	set := make(map[string]bool, len(available))
	for _, g := range available {
		set[g] = true
	}

	if override != "" {
		if !set[override] {
			return "", fmt.Errorf("generator %q is not available (available: %s)",
				override, strings.Join(available, ", "))
		}
		return override, nil
	}

	for _, g := range PreferredGenerators {
		if set[g] {
			return g, nil
		}
	}
	return "", fmt.Errorf("no suitable CMake generator found (tried: %s)",
		strings.Join(PreferredGenerators, ", "))
}

// IsMultiConfig reports whether the generator produces multi-config
// build trees, where the configuration is chosen at build time.
func IsMultiConfig(generator string) bool {
	name := strings.ToLower(generator)
	return strings.Contains(name, "multi-config") || strings.Contains(name, "visual studio")
}
