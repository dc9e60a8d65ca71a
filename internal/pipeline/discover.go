package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/backmassage/rawpress/internal/config"
)

// Supported RAW file extensions (lowercase, with leading dot).
var rawExtensions = map[string]bool{
	".3fr": true,
	".arw": true,
	".cr2": true,
	".cr3": true,
	".crw": true,
	".dng": true,
	".erf": true,
	".iiq": true,
	".kdc": true,
	".mos": true,
	".mrw": true,
	".nef": true,
	".nrw": true,
	".orf": true,
	".pef": true,
	".raf": true,
	".rw2": true,
	".sr2": true,
	".srf": true,
	".srw": true,
	".x3f": true,
}

// IsRawFile reports whether path has a supported RAW extension.
func IsRawFile(path string) bool {
	return rawExtensions[strings.ToLower(filepath.Ext(path))]
}

// warner is the slice of the logger Discover needs for skip notices.
type warner interface {
	Warn(string, ...interface{})
}

// Discover resolves the batch input list. With an input directory it lists
// the directory (non-recursive) and keeps regular files with RAW extensions;
// with an explicit file list it keeps the entries that are regular RAW
// files, warning about anything skipped. Returned paths are sorted for a
// deterministic dispatch order.
func Discover(cfg *config.Config, log warner) ([]string, error) {
	if cfg.InputDir != "" {
		return discoverDir(cfg.InputDir, log)
	}
	return filterFiles(cfg.Files, log), nil
}

func discoverDir(dir string, log warner) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("couldn't read source directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if !IsRawFile(path) {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}

func filterFiles(candidates []string, log warner) []string {
	var files []string
	for _, path := range candidates {
		fi, err := os.Stat(path)
		if err != nil || fi.IsDir() {
			log.Warn("Ignoring %s: not a file", path)
			continue
		}
		if !IsRawFile(path) {
			log.Warn("Ignoring %s: not a supported RAW format", path)
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)
	return files
}
