package build

import (
	"encoding/hex"
	"io"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/crun-cli/crun/pkg/cmake"
)

// stampName records the configure inputs inside the build directory so
// an unchanged configuration can skip the configure step.
const stampName = ".crun-configure"

func (inv *Invoker) stampPath() string {
	return filepath.Join(inv.BuildDir(), stampName)
}

// configureStamp hashes everything the configure step depends on: the
// generator, the configuration (for single-config generators), the
// extra arguments, and the root CMakeLists.txt itself.
func (inv *Invoker) configureStamp(extraArgs []string) string {
	h := blake3.New()
	io.WriteString(h, inv.Generator+"\n") //nolint:errcheck // hash writes cannot fail
	if !cmake.IsMultiConfig(inv.Generator) {
		io.WriteString(h, inv.Config+"\n") //nolint:errcheck
	}
	for _, a := range extraArgs {
		io.WriteString(h, a+"\n") //nolint:errcheck
	}
	if data, err := os.ReadFile(filepath.Join(inv.Root, "CMakeLists.txt")); err == nil {
		h.Write(data) //nolint:errcheck
	}
	return hex.EncodeToString(h.Sum(nil))
}

// configured reports whether the build tree already matches stamp.
// CMakeCache.txt must exist as well, in case the tree was wiped.
func (inv *Invoker) configured(stamp string) bool {
	if _, err := os.Stat(filepath.Join(inv.BuildDir(), "CMakeCache.txt")); err != nil {
		return false
	}
	data, err := os.ReadFile(inv.stampPath())
	if err != nil {
		return false
	}
	return string(data) == stamp
}

// writeStamp records the configure inputs. Failure is not fatal; the
// next run just re-configures.
func (inv *Invoker) writeStamp(stamp string) {
	_ = os.MkdirAll(inv.BuildDir(), 0o755)
	_ = os.WriteFile(inv.stampPath(), []byte(stamp), 0o644) //nolint:gosec // stamp is not sensitive
}
