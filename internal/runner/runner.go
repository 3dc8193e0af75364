// Package runner drives a ferromagnet world without a display and
// summarises the run as a report.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"ising/internal/sims/ferromagnet"
)

// DefaultChunk bounds how many trials run between cancellation checks.
const DefaultChunk = 4096

// Options controls a headless run.
type Options struct {
	Steps       int
	SampleEvery int
	Chunk       int
}

// Sample is one observation taken after a completed step.
type Sample struct {
	Step          int     `yaml:"step"`
	Magnetization float64 `yaml:"magnetization"`
	Energy        float64 `yaml:"energy"`
	Acceptance    float64 `yaml:"acceptance"`
}

// Report summarises a run. Steps counts completed steps only.
type Report struct {
	RunID             string   `yaml:"run_id"`
	Width             int      `yaml:"width"`
	Height            int      `yaml:"height"`
	Coupling          float64  `yaml:"coupling"`
	Field             float64  `yaml:"field"`
	Trials            int      `yaml:"trials_per_step"`
	Steps             int      `yaml:"steps"`
	Accepted          uint64   `yaml:"accepted"`
	AcceptanceRate    float64  `yaml:"acceptance_rate"`
	Magnetization     float64  `yaml:"magnetization"`
	MeanMagnetization float64  `yaml:"mean_magnetization"`
	Energy            float64  `yaml:"energy"`
	Samples           []Sample `yaml:"samples,omitempty"`
}

// Run advances w for opts.Steps steps. On cancellation it returns the report
// gathered so far together with the context error.
func Run(ctx context.Context, w *ferromagnet.World, opts Options, logger *log.Logger) (Report, error) {
	if w == nil {
		return Report{}, errors.New("runner: nil world")
	}
	if opts.Steps < 0 {
		return Report{}, fmt.Errorf("runner: negative steps %d", opts.Steps)
	}
	if opts.SampleEvery <= 0 {
		opts.SampleEvery = 1
	}
	if opts.Chunk <= 0 {
		opts.Chunk = DefaultChunk
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := w.Config()
	rep := Report{
		RunID:    uuid.NewString(),
		Width:    cfg.Width,
		Height:   cfg.Height,
		Coupling: cfg.Coupling,
		Field:    cfg.Field,
		Trials:   cfg.Trials,
	}
	logger = logger.With("run", rep.RunID)
	logger.Info("run started", "size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height), "steps", opts.Steps, "trials", cfg.Trials)

	var magSum float64
	var runErr error
	for step := 1; step <= opts.Steps; step++ {
		accepted, err := w.StepContext(ctx, opts.Chunk)
		rep.Accepted += uint64(accepted)
		if err != nil {
			runErr = err
			logger.Warn("run interrupted", "step", step, "err", err)
			break
		}
		rep.Steps = step
		m := w.Magnetization()
		magSum += m
		if step%opts.SampleEvery == 0 || step == opts.Steps {
			s := Sample{
				Step:          step,
				Magnetization: m,
				Energy:        w.Energy(),
				Acceptance:    w.AcceptanceRate(),
			}
			rep.Samples = append(rep.Samples, s)
			logger.Debug("sample", "step", step, "m", s.Magnetization, "e", s.Energy)
		}
	}

	rep.AcceptanceRate = w.AcceptanceRate()
	rep.Magnetization = w.Magnetization()
	rep.Energy = w.Energy()
	if rep.Steps > 0 {
		rep.MeanMagnetization = magSum / float64(rep.Steps)
	}
	logger.Info("run finished", "steps", rep.Steps, "m", rep.Magnetization, "acceptance", rep.AcceptanceRate)
	return rep, runErr
}

// WriteYAML encodes the report to out.
func (r Report) WriteYAML(out io.Writer) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}
