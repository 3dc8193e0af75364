package runner

import (
	"github.com/guptarohit/asciigraph"
)

// Plot renders the sampled magnetization as an ASCII chart fixed to [-1, 1].
// It returns an empty string when there is nothing to draw.
func (r Report) Plot(width, height int) string {
	if len(r.Samples) == 0 {
		return ""
	}
	series := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		series[i] = s.Magnetization
	}
	opts := []asciigraph.Option{
		asciigraph.LowerBound(-1),
		asciigraph.UpperBound(1),
		asciigraph.Caption("magnetization"),
	}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}
	if height > 0 {
		opts = append(opts, asciigraph.Height(height))
	}
	return asciigraph.Plot(series, opts...)
}
