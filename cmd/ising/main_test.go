package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"ising/internal/config"
	"ising/internal/runner"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestConfigCommandReflectsFlags(t *testing.T) {
	out := execute(t, "config", "--width", "12", "--field", "0.5", "--log-level", "error")

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, 12, cfg.Width)
	assert.Equal(t, 0.5, cfg.Field)
	assert.Equal(t, config.Default().Height, cfg.Height)
}

func TestRunCommandPrintsReport(t *testing.T) {
	out := execute(t, "run",
		"--width", "8", "--height", "8", "--trials", "64",
		"--steps", "4", "--sample-every", "2", "--log-level", "error")

	var rep runner.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, 4, rep.Steps)
	assert.Equal(t, 64, rep.Trials)
	assert.Len(t, rep.Samples, 2)
}

func TestSetOverridesSimulation(t *testing.T) {
	t.Cleanup(func() { flagOverrides = map[string]string{} })

	out := execute(t, "run",
		"--width", "8", "--height", "8", "--trials", "64", "--steps", "2",
		"--set", "w=6,field=0.5,trials=32", "--log-level", "error")

	var rep runner.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 6, rep.Width)
	assert.Equal(t, 8, rep.Height)
	assert.Equal(t, 0.5, rep.Field)
	assert.Equal(t, 32, rep.Trials)

	out = execute(t, "config", "--set", "coupling=0.25")
	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, 0.25, cfg.Coupling)
}
