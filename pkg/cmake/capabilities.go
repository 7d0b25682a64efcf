package cmake

import (
	"github.com/Masterminds/semver/v3"
	"github.com/tidwall/gjson"
)

// minVersion is the oldest CMake this tool drives through the project
// path. Older releases lack the -S/-B configure flags.
var minVersion = semver.MustParse("3.13.0")

// Capabilities describes what the installed CMake can do, as reported
// by `cmake -E capabilities`.
type Capabilities struct {
	Generators []string
	Version    *semver.Version
}

// Probe queries the local CMake installation. A missing binary, a
// failing command, or unparsable output all yield empty Capabilities.
func Probe(r Runner) Capabilities {
	if _, err := r.LookPath("cmake"); err != nil {
		return Capabilities{}
	}

	out, err := r.Output("cmake", "-E", "capabilities")
	if err != nil || !gjson.Valid(out) {
		return Capabilities{}
	}

	var caps Capabilities
	for _, g := range gjson.Get(out, "generators.#.name").Array() {
		if name := g.String(); name != "" {
			caps.Generators = append(caps.Generators, name)
		}
	}
	if s := gjson.Get(out, "version.string").String(); s != "" {
		if v, err := semver.NewVersion(s); err == nil {
			caps.Version = v
		}
	}
	return caps
}

// Installed reports whether a working CMake was found.
func (c Capabilities) Installed() bool {
	return len(c.Generators) > 0
}

// Supported reports whether the installed CMake is recent enough.
// An unknown version is assumed recent enough.
func (c Capabilities) Supported() bool {
	if !c.Installed() {
		return false
	}
	return c.Version == nil || !c.Version.LessThan(minVersion)
}
