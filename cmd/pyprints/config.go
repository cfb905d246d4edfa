package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/axondata/go-pyprints"
)

// envPrefix is the prefix for environment overrides, e.g. PYPRINTS_ROOT
const envPrefix = "PYPRINTS"

// Config holds the settings shared by all commands
type Config struct {
	Root         string        `mapstructure:"root"`
	Platform     string        `mapstructure:"platform"`
	AllPlatforms bool          `mapstructure:"all-platforms"`
	Lenient      bool          `mapstructure:"lenient"`
	Verbose      bool          `mapstructure:"verbose"`
	SpoolDir     string        `mapstructure:"spool-dir"`
	Debounce     time.Duration `mapstructure:"debounce"`
}

// loadConfig merges flags, PYPRINTS_* environment variables and the
// optional config file, in that order of precedence
func loadConfig(flags *pflag.FlagSet, cfgFile string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("debounce", pyprints.DefaultWatchDebounce)

	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("binding flags: %w", err)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// newLogger returns the logger used by the CLI
func (c Config) newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "pyprints",
	})
	if c.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// clientOptions translates the config into library options
func (c Config) clientOptions(logger *log.Logger) ([]pyprints.Option, error) {
	platform, err := pyprints.ParsePlatform(c.Platform)
	if err != nil {
		return nil, err
	}

	opts := []pyprints.Option{
		pyprints.WithPlatform(platform),
		pyprints.WithStrictPaths(!c.Lenient),
		pyprints.WithLogger(logger),
	}
	if c.Root != "" {
		opts = append(opts, pyprints.WithRoot(c.Root))
	}
	if c.AllPlatforms {
		opts = append(opts, pyprints.WithLayout(pyprints.FullLayout()))
	}
	if c.SpoolDir != "" {
		opts = append(opts, pyprints.WithSpoolDir(c.SpoolDir))
	}
	if c.Debounce > 0 {
		opts = append(opts, pyprints.WithWatchDebounce(c.Debounce))
	}
	return opts, nil
}
