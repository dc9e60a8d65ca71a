// Package display holds presentation helpers shared by the CLI surface.
package display

import (
	"fmt"
	"os"

	"github.com/backmassage/rawpress/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, "\033[1;95m")
	}
	fmt.Fprint(os.Stdout, ` ____                  ____
|  _ \ __ ___      __ |  _ \ _ __ ___  ___ ___
| |_) / _`+"`"+` \ \ /\ / / | |_) | '__/ _ \/ __/ __|
|  _ < (_| |\ V  V /  |  __/| | |  __/\__ \__ \
|_| \_\__,_| \_/\_/   |_|   |_|  \___||___/___/
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
