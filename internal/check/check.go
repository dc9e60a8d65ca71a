// Package check provides system diagnostics (--check mode) and pre-pipeline
// dependency validation (CheckDeps) for exiftool and dnglab.
package check

import (
	"errors"
	"os/exec"
	"strings"
)

// Sentinel errors returned by CheckDeps when a required tool is missing.
var (
	ErrExiftoolNotFound = errors.New("exiftool not found on PATH")
	ErrDnglabNotFound   = errors.New("dnglab not found on PATH")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive --check flow: prints availability and
// versions of exiftool and dnglab. Informational only, never stops on
// failure.
func RunCheck(log Logger) {
	log.Info("=== System Check ===")

	checkTool(log, "exiftool", []string{"-ver"})
	checkTool(log, "dnglab", []string{"--version"})
}

func checkTool(log Logger, name string, versionArgs []string) {
	if _, err := exec.LookPath(name); err != nil {
		log.Error("%s not found", name)
		return
	}
	out, err := exec.Command(name, versionArgs...).Output()
	if err != nil {
		log.Warn("%s found but version query failed: %v", name, err)
		return
	}
	version := strings.TrimSpace(string(out))
	if idx := strings.Index(version, "\n"); idx > 0 {
		version = version[:idx]
	}
	log.Success("%s: %s", name, version)
}

// CheckDeps is the pre-pipeline validation: it verifies that exiftool and
// dnglab are on PATH. Returns a sentinel error on failure.
func CheckDeps() error {
	if _, err := exec.LookPath("exiftool"); err != nil {
		return ErrExiftoolNotFound
	}
	if _, err := exec.LookPath("dnglab"); err != nil {
		return ErrDnglabNotFound
	}
	return nil
}
