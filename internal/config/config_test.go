package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/photos/import", "/photos/import"},
		{"single trailing slash", "/photos/import/", "/photos/import"},
		{"multiple trailing slashes", "/photos/import///", "/photos/import"},
		{"root path", "/", "/"},
		{"relative path", "out", "out"},
		{"relative with slash", "out/", "out"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDirArg(tt.in))
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.OutputDir = "/photos/dng"
		cfg.InputDir = "/photos/import"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"input dir only", func(c *Config) {}, false},
		{"files only", func(c *Config) {
			c.InputDir = ""
			c.Files = []string{"a.cr3", "b.nef"}
		}, false},
		{"no input source", func(c *Config) { c.InputDir = "" }, true},
		{"both input sources", func(c *Config) { c.Files = []string{"a.cr3"} }, true},
		{"missing output dir", func(c *Config) { c.OutputDir = "" }, true},
		{"zero jobs", func(c *Config) { c.Jobs = 0 }, true},
		{"negative jobs", func(c *Config) { c.Jobs = -2 }, true},
		{"bad color mode", func(c *Config) { c.ColorMode = "rainbow" }, true},
		{"color always", func(c *Config) { c.ColorMode = ColorAlways }, false},
		{"check only skips path requirements", func(c *Config) {
			c.CheckOnly = true
			c.OutputDir = ""
			c.InputDir = ""
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFile_Explicit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: \"%Y-%m-%d_{camera.model}\"\njobs: 2\n"), 0o644))

	v, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%Y-%m-%d_{camera.model}", v.GetString(KeyFormat))
	assert.Equal(t, 2, v.GetInt(KeyJobs))
}

func TestLoadFile_ExplicitMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestApplyFile_Precedence(t *testing.T) {
	v := viper.New()
	v.Set(KeyArtist, "From File")
	v.Set(KeyJobs, 3)
	v.Set(KeyOutDir, "/photos/dng/")

	cfg := DefaultConfig()
	cfg.Artist = "From Flag"

	// --artist was given on the command line; jobs and out_dir were not.
	changed := func(flag string) bool { return flag == "artist" }
	ApplyFile(&cfg, v, changed)

	assert.Equal(t, "From Flag", cfg.Artist)
	assert.Equal(t, 3, cfg.Jobs)
	assert.Equal(t, "/photos/dng", cfg.OutputDir)
}
