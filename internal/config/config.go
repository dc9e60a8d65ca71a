// Package config holds runtime configuration: defaults, config-file loading,
// and validation.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid from a config file ([ApplyFile]), and then mutated by
// CLI flag parsing before being passed (by pointer) to packages that need it.
type Config struct {
	// Input selection. Exactly one of InputDir or Files must be set
	// (enforced by Validate unless CheckOnly).
	InputDir string   // Directory containing RAW files to convert.
	Files    []string // Explicit list of RAW files to convert.

	// Output.
	OutputDir string // Directory to write converted DNGs. Required.
	FormatStr string // Filename template; empty means the original stem.

	// Conversion options.
	Artist        string // Overrides the decoded artist field when set.
	EmbedOriginal bool   // Embed the source RAW inside the DNG.
	Force         bool   // Overwrite existing regular files.
	DryRun        bool   // Resolve names only; never write.

	// Concurrency.
	Jobs int // Worker count. Default: number of CPUs.

	// Display and logging.
	Quiet     bool
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults applied. Used as the base
// before config-file and CLI overrides.
func DefaultConfig() Config {
	return Config{
		Jobs:      runtime.NumCPU(),
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and, when not in CheckOnly mode, that an output
// directory and exactly one input source were given. The filename template is
// not validated here; template compilation (and its batch-fatal failure) is
// owned by the pipeline preflight.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Jobs < 1 {
		return fmt.Errorf("invalid job count %d (must be >= 1)", c.Jobs)
	}

	if c.CheckOnly {
		return nil
	}

	if c.OutputDir == "" {
		return errors.New("output directory is required (-o/--out-dir)")
	}

	hasDir := c.InputDir != ""
	hasFiles := len(c.Files) > 0
	if hasDir == hasFiles {
		return errors.New("need either an input directory (-i/--in-dir) or a list of files, not both")
	}
	return nil
}
