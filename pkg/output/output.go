// Package output prints user-facing terminal messages.
package output

import (
	"fmt"
	"os"

	"github.com/jwalton/go-supportscolor"
	"github.com/kballard/go-shellquote"
)

var (
	yellow = "\033[33m"
	red    = "\033[31m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		yellow, red, reset = "", "", ""
	}
}

// Infof prints a plain informational line.
func Infof(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}

// Warnf prints a warning line.
func Warnf(format string, args ...any) {
	fmt.Printf("%swarning:%s "+format+"\n", append([]any{yellow, reset}, args...)...)
}

// Errorf prints an error line to stderr.
func Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%serror:%s "+format+"\n", append([]any{red, reset}, args...)...)
}

// Banner announces the binary about to run and its forwarded
// arguments.
func Banner(binary string, args []string) {
	fmt.Printf("--- Executing: %s\n", binary)
	if len(args) > 0 {
		fmt.Printf("--- Arguments: %s\n", shellquote.Join(args...))
	}
	fmt.Print("-------------------------------\n\n")
}
