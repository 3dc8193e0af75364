// Package config resolves run settings from defaults, an optional YAML file,
// ISING_* environment variables and command-line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"ising/internal/sims/ferromagnet"
)

const (
	configFileName = "ising"
	configFileType = "yaml"
	envPrefix      = "ISING"
)

// Keys shared by viper, the YAML file and flags (flags use '-' for '_').
const (
	KeyWidth       = "width"
	KeyHeight      = "height"
	KeyCoupling    = "coupling"
	KeyField       = "field"
	KeyTrials      = "trials"
	KeySeed        = "seed"
	KeySteps       = "steps"
	KeySampleEvery = "sample_every"
	KeyScale       = "scale"
	KeyTPS         = "tps"
	KeyLogLevel    = "log_level"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds every setting the CLI hosts consume.
type Config struct {
	Width    int     `mapstructure:"width" yaml:"width"`
	Height   int     `mapstructure:"height" yaml:"height"`
	Coupling float64 `mapstructure:"coupling" yaml:"coupling"`
	Field    float64 `mapstructure:"field" yaml:"field"`
	Trials   int     `mapstructure:"trials" yaml:"trials"`
	Seed     int64   `mapstructure:"seed" yaml:"seed"`

	Steps       int `mapstructure:"steps" yaml:"steps"`
	SampleEvery int `mapstructure:"sample_every" yaml:"sample_every"`

	Scale int `mapstructure:"scale" yaml:"scale"`
	TPS   int `mapstructure:"tps" yaml:"tps"`

	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	sim := ferromagnet.DefaultConfig()
	return Config{
		Width:       sim.Width,
		Height:      sim.Height,
		Coupling:    sim.Coupling,
		Field:       sim.Field,
		Trials:      sim.Trials,
		Seed:        sim.Seed,
		Steps:       100,
		SampleEvery: 1,
		Scale:       3,
		TPS:         30,
		LogLevel:    "info",
	}
}

// Sim converts the settings into a simulation config.
func (c Config) Sim() ferromagnet.Config {
	return ferromagnet.Config{
		Width:    c.Width,
		Height:   c.Height,
		Coupling: c.Coupling,
		Field:    c.Field,
		Trials:   c.Trials,
		Seed:     c.Seed,
	}
}

// WithSim returns c with the simulation fields replaced by those of sim.
func (c Config) WithSim(sim ferromagnet.Config) Config {
	c.Width = sim.Width
	c.Height = sim.Height
	c.Coupling = sim.Coupling
	c.Field = sim.Field
	c.Trials = sim.Trials
	c.Seed = sim.Seed
	return c
}

// Validate reports the first setting no host can run with.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width %d", ErrInvalid, c.Width)
	case c.Height <= 0:
		return fmt.Errorf("%w: height %d", ErrInvalid, c.Height)
	case c.Trials <= 0:
		return fmt.Errorf("%w: trials %d", ErrInvalid, c.Trials)
	case c.Steps < 0:
		return fmt.Errorf("%w: steps %d", ErrInvalid, c.Steps)
	case c.SampleEvery <= 0:
		return fmt.Errorf("%w: sample_every %d", ErrInvalid, c.SampleEvery)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale %d", ErrInvalid, c.Scale)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.TPS)
	}
	return nil
}

// FlagName maps a config key to its command-line flag name.
func FlagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// BindFlags registers the lattice and dynamics flags shared by every host.
func BindFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Int(FlagName(KeyWidth), d.Width, "lattice width in sites")
	fs.Int(FlagName(KeyHeight), d.Height, "lattice height in sites")
	fs.Float64(FlagName(KeyCoupling), d.Coupling, "nearest-neighbour coupling J")
	fs.Float64(FlagName(KeyField), d.Field, "uniform external field h")
	fs.Int(FlagName(KeyTrials), d.Trials, "Metropolis trials per step")
	fs.Int64(FlagName(KeySeed), d.Seed, "seed for the initial lattice and dynamics")
	fs.String(FlagName(KeyLogLevel), d.LogLevel, "log level (debug, info, warn, error)")
}

// Load resolves settings. path names an explicit config file; when empty,
// ising.yaml is searched for in the working directory and $HOME/.ising and
// may be absent. fs may be nil; only flags the user changed override.
func Load(path string, fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyWidth, d.Width)
	v.SetDefault(KeyHeight, d.Height)
	v.SetDefault(KeyCoupling, d.Coupling)
	v.SetDefault(KeyField, d.Field)
	v.SetDefault(KeyTrials, d.Trials)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeySteps, d.Steps)
	v.SetDefault(KeySampleEvery, d.SampleEvery)
	v.SetDefault(KeyScale, d.Scale)
	v.SetDefault(KeyTPS, d.TPS)
	v.SetDefault(KeyLogLevel, d.LogLevel)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".ising"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if fs != nil {
		for _, key := range []string{
			KeyWidth, KeyHeight, KeyCoupling, KeyField, KeyTrials, KeySeed,
			KeySteps, KeySampleEvery, KeyScale, KeyTPS, KeyLogLevel,
		} {
			if f := fs.Lookup(FlagName(key)); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", f.Name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
