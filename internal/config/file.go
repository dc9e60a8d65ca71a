package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config file keys. The file is YAML; every key is optional.
const (
	KeyOutDir        = "out_dir"
	KeyFormat        = "format"
	KeyArtist        = "artist"
	KeyEmbedOriginal = "embed_original"
	KeyForce         = "force"
	KeyJobs          = "jobs"
	KeyColor         = "color"
	KeyLogFile       = "log_file"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	appConfigDir   = "rawpress"
)

// LoadFile reads the rawpress config file with Viper. When explicit is empty
// the platform config directory is searched (e.g. ~/.config/rawpress on
// Linux) and a missing file is not an error; an explicit path that cannot be
// read is.
func LoadFile(explicit string) (*viper.Viper, error) {
	v := viper.New()

	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", explicit, err)
		}
		return v, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		// No resolvable home; behave as if no config file exists.
		return v, nil
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(filepath.Join(dir, appConfigDir))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ApplyFile overlays file values onto cfg for every key whose corresponding
// CLI flag was not set. changed reports whether a flag was given on the
// command line, preserving flag > file > default precedence.
func ApplyFile(cfg *Config, v *viper.Viper, changed func(flag string) bool) {
	if v.IsSet(KeyOutDir) && !changed("out-dir") {
		cfg.OutputDir = NormalizeDirArg(v.GetString(KeyOutDir))
	}
	if v.IsSet(KeyFormat) && !changed("format") {
		cfg.FormatStr = v.GetString(KeyFormat)
	}
	if v.IsSet(KeyArtist) && !changed("artist") {
		cfg.Artist = v.GetString(KeyArtist)
	}
	if v.IsSet(KeyEmbedOriginal) && !changed("embed-original") {
		cfg.EmbedOriginal = v.GetBool(KeyEmbedOriginal)
	}
	if v.IsSet(KeyForce) && !changed("force") {
		cfg.Force = v.GetBool(KeyForce)
	}
	if v.IsSet(KeyJobs) && !changed("jobs") {
		cfg.Jobs = v.GetInt(KeyJobs)
	}
	if v.IsSet(KeyColor) && !changed("color") {
		cfg.ColorMode = ColorMode(v.GetString(KeyColor))
	}
	if v.IsSet(KeyLogFile) && !changed("log-file") {
		cfg.LogFile = v.GetString(KeyLogFile)
	}
}
