package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"

	"ising/internal/sims/ferromagnet"
)

// Sweepable parameters.
const (
	ParamCoupling = "coupling"
	ParamField    = "field"
)

// ErrUnknownParam is returned for a sweep over a parameter that cannot vary.
var ErrUnknownParam = errors.New("runner: unknown sweep parameter")

// SweepSpec describes a grid of evenly spaced values for one parameter.
type SweepSpec struct {
	Param   string
	From    float64
	To      float64
	Points  int
	Workers int
}

// Values returns the Points values from From to To inclusive.
func (s SweepSpec) Values() []float64 {
	if s.Points <= 0 {
		return nil
	}
	if s.Points == 1 {
		return []float64{s.From}
	}
	out := make([]float64, s.Points)
	step := (s.To - s.From) / float64(s.Points-1)
	for i := range out {
		out[i] = s.From + float64(i)*step
	}
	out[len(out)-1] = s.To
	return out
}

// Point is the outcome of one sweep value.
type Point struct {
	Value  float64 `yaml:"value"`
	Report Report  `yaml:"report"`
}

type sweepJob struct {
	index int
	value float64
}

type sweepResult struct {
	index int
	point Point
	err   error
}

// Sweep runs one independent world per value of spec.Param, spread over
// spec.Workers goroutines, and returns the points in value order. Each world
// is built from base with the swept parameter replaced, so every point uses
// the same seed. Points that failed or were interrupted are left out; only
// runs that finished all opts.Steps steps are returned.
func Sweep(ctx context.Context, base ferromagnet.Config, spec SweepSpec, opts Options, logger *log.Logger) ([]Point, error) {
	if spec.Param != ParamCoupling && spec.Param != ParamField {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParam, spec.Param)
	}
	values := spec.Values()
	workers := spec.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, max(len(values), 1))
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger.Info("sweep started", "param", spec.Param, "points", len(values), "workers", workers)

	jobs := make(chan sweepJob)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results <- runPoint(ctx, base, spec.Param, job, opts, logger)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for i, v := range values {
			select {
			case jobs <- sweepJob{index: i, value: v}:
			case <-ctx.Done():
				return
			}
		}
	}()

	points := make([]Point, len(values))
	done := make([]bool, len(values))
	var firstErr error
	for res := range results {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		points[res.index] = res.point
		done[res.index] = true
	}

	out := points[:0]
	for i, p := range points {
		if done[i] {
			out = append(out, p)
		}
	}
	if firstErr == nil {
		firstErr = ctx.Err()
	}
	logger.Info("sweep finished", "completed", len(out))
	return out, firstErr
}

func runPoint(ctx context.Context, base ferromagnet.Config, param string, job sweepJob, opts Options, logger *log.Logger) sweepResult {
	cfg := base
	switch param {
	case ParamCoupling:
		cfg.Coupling = job.value
	case ParamField:
		cfg.Field = job.value
	}
	w, err := ferromagnet.NewWithConfig(cfg)
	if err != nil {
		return sweepResult{index: job.index, err: err}
	}
	rep, err := Run(ctx, w, opts, logger.With(param, job.value))
	return sweepResult{index: job.index, point: Point{Value: job.value, Report: rep}, err: err}
}
