package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ising.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeFile(t, "width: 64\nheight: 32\nfield: 0.5\ntrials: 500\nsample_every: 5\n")
	t.Setenv("ISING_HEIGHT", "48")
	t.Setenv("ISING_COUPLING", "0.25")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	fs.Int(FlagName(KeySteps), 10, "")
	require.NoError(t, fs.Parse([]string{"--trials", "900", "--steps", "7"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width, "file")
	assert.Equal(t, 48, cfg.Height, "env beats file")
	assert.Equal(t, 0.25, cfg.Coupling, "env")
	assert.Equal(t, 0.5, cfg.Field, "file")
	assert.Equal(t, 900, cfg.Trials, "flag beats file")
	assert.Equal(t, 7, cfg.Steps, "flag")
	assert.Equal(t, 5, cfg.SampleEvery, "file")
	assert.Equal(t, Default().Seed, cfg.Seed, "default")
}

func TestUnchangedFlagsDoNotOverrideFile(t *testing.T) {
	path := writeFile(t, "width: 40\n")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeFile(t, "width: 0\n")
	_, err := Load(path, nil)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"height", func(c *Config) { c.Height = -1 }},
		{"trials", func(c *Config) { c.Trials = 0 }},
		{"steps", func(c *Config) { c.Steps = -1 }},
		{"sample", func(c *Config) { c.SampleEvery = 0 }},
		{"scale", func(c *Config) { c.Scale = 0 }},
		{"tps", func(c *Config) { c.TPS = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
	assert.NoError(t, Default().Validate())
}

func TestSimConversion(t *testing.T) {
	c := Default()
	c.Width, c.Field = 12, -0.3
	sim := c.Sim()
	assert.Equal(t, 12, sim.Width)
	assert.Equal(t, -0.3, sim.Field)
	assert.Equal(t, c.Trials, sim.Trials)
}

func TestWithSimRoundTrip(t *testing.T) {
	c := Default()
	sim := c.Sim().Apply(map[string]string{"w": "20", "field": "0.75", "trials": "bad"})
	got := c.WithSim(sim)
	assert.Equal(t, 20, got.Width)
	assert.Equal(t, 0.75, got.Field)
	assert.Equal(t, c.Trials, got.Trials)
	assert.Equal(t, c.Steps, got.Steps)
}
