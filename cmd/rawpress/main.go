// Command rawpress is the entrypoint for the rawpress RAW-to-DNG converter.
// It parses flags, overlays the optional config file, and either runs system
// diagnostics (--check) or the conversion pipeline.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/rawpress/internal/check"
	"github.com/backmassage/rawpress/internal/config"
	"github.com/backmassage/rawpress/internal/display"
	"github.com/backmassage/rawpress/internal/logging"
	"github.com/backmassage/rawpress/internal/naming"
	"github.com/backmassage/rawpress/internal/pipeline"
	"github.com/backmassage/rawpress/internal/rawcodec"
)

// version and commit are set at build time via -ldflags (e.g. Makefile).
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

// Exit codes: 1 for usage and template errors, 2 for runtime failures that
// abort the batch. Per-file conversion failures do not affect the exit code.
const (
	exitSuccess = 0
	exitUsage   = 1
	exitRuntime = 2
)

var (
	cfg        = config.DefaultConfig()
	configPath string
)

var rootCmd = &cobra.Command{
	Use:     "rawpress [files...]",
	Short:   "Batch convert camera RAW files to DNG with template-driven renaming",
	Long: `rawpress converts camera RAW files (ARW, NEF, CR3, RAF, ...) to DNG,
naming each output from a filename template expanded with the image's
capture date and camera metadata.`,
	Version: version + " (" + commit + ")",
	Args:    cobra.ArbitraryArgs,
	// Errors are logged where they occur, with the right exit code attached.
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&cfg.InputDir, "in-dir", "i", "", "directory containing RAW files to convert")
	f.StringVarP(&cfg.OutputDir, "out-dir", "o", "", "directory to write converted DNG files (required)")
	f.StringVarP(&cfg.FormatStr, "format", "F", "", "filename template, e.g. '%Y-%m-%d_{image.original_filename}'")
	f.StringVarP(&cfg.Artist, "artist", "a", "", "artist name to embed in converted files")
	f.BoolVar(&cfg.EmbedOriginal, "embed-original", false, "embed the original RAW file in the DNG")
	f.BoolVarP(&cfg.Force, "force", "f", false, "overwrite files that already exist at computed paths")
	f.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "resolve output names without writing anything")
	f.IntVarP(&cfg.Jobs, "jobs", "j", cfg.Jobs, "number of concurrent conversion workers")
	f.BoolVarP(&cfg.Quiet, "quiet", "q", false, "suppress all output except errors")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug output")
	f.StringVar((*string)(&cfg.ColorMode), "color", string(cfg.ColorMode), "colorize output: auto, always or never")
	f.StringVar(&cfg.LogFile, "log-file", "", "append a plain-text copy of all output to this file")
	f.StringVar(&configPath, "config", "", "config file (default: "+configHint()+")")
	f.BoolVar(&cfg.CheckOnly, "check", false, "check that exiftool and dnglab are usable, then exit")
}

func configHint() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "~/.config/rawpress/config.yaml"
	}
	return dir + "/rawpress/config.yaml"
}

// exitError carries the process exit code for an already-reported failure.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit %d", e.code) }

func run(cmd *cobra.Command, args []string) error {
	v, err := config.LoadFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rawpress: %v\n", err)
		return &exitError{exitUsage}
	}
	config.ApplyFile(&cfg, v, cmd.Flags().Changed)

	cfg.InputDir = config.NormalizeDirArg(cfg.InputDir)
	cfg.OutputDir = config.NormalizeDirArg(cfg.OutputDir)
	cfg.Files = args

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "rawpress: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'rawpress --help' for usage.")
		return &exitError{exitUsage}
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rawpress: %v\n", err)
		return &exitError{exitRuntime}
	}
	defer log.Close()

	if !cfg.Quiet {
		display.PrintBanner()
	}
	log.Debug("effective config: in=%q files=%d out=%q jobs=%d force=%t dry_run=%t",
		cfg.InputDir, len(cfg.Files), cfg.OutputDir, cfg.Jobs, cfg.Force, cfg.DryRun)

	if cfg.CheckOnly {
		check.RunCheck(log)
		return nil
	}

	if err := check.CheckDeps(); err != nil {
		log.Error("%v", err)
		return &exitError{exitRuntime}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	paths, err := pipeline.Discover(&cfg, log)
	if err != nil {
		log.Error("%v", err)
		return &exitError{exitRuntime}
	}
	if len(paths) == 0 {
		log.Warn("No RAW files to convert")
		return nil
	}

	pipeline.SoftwareTag = "rawpress " + version
	codec := rawcodec.NewToolCodec()

	results, err := pipeline.Run(ctx, &cfg, log, codec, paths)
	if err != nil {
		log.Error("%v", err)
		var perr *naming.ParseError
		if errors.As(err, &perr) {
			return &exitError{exitUsage}
		}
		return &exitError{exitRuntime}
	}
	if err := ctx.Err(); err != nil {
		log.Warn("Interrupted: %d of %d files processed", len(results), len(paths))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		// Cobra flag-parse errors land here; report them like usage errors.
		fmt.Fprintf(os.Stderr, "rawpress: %v\n", err)
		os.Exit(exitUsage)
	}
	os.Exit(exitSuccess)
}
