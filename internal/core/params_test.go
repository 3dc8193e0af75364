package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSetters struct {
	ints   map[string]int
	floats map[string]float64
}

func (f *fakeSetters) SetIntParameter(key string, value int) bool {
	if _, ok := f.ints[key]; !ok {
		return false
	}
	f.ints[key] = value
	return true
}

func (f *fakeSetters) SetFloatParameter(key string, value float64) bool {
	if _, ok := f.floats[key]; !ok {
		return false
	}
	f.floats[key] = value
	return true
}

func TestAdjustClampsToBounds(t *testing.T) {
	ctrl := ParameterControl{Key: "field", Type: ParamTypeFloat, Step: 0.1, Min: -1, Max: 1, HasMin: true, HasMax: true}

	got, ok := ctrl.Adjust(0.95, 1)
	assert.True(t, ok)
	assert.Equal(t, 1.0, got)

	_, ok = ctrl.Adjust(1, 1)
	assert.False(t, ok, "already at max")

	got, ok = ctrl.Adjust(-0.95, -1)
	assert.True(t, ok)
	assert.Equal(t, -1.0, got)

	_, ok = ctrl.Adjust(0, 0)
	assert.False(t, ok)
}

func TestStepSizeDefaults(t *testing.T) {
	assert.Equal(t, 1.0, ParameterControl{Type: ParamTypeInt}.StepSize())
	assert.Equal(t, 1000.0, ParameterControl{Type: ParamTypeInt, Step: 1000}.StepSize())
	assert.Equal(t, 0.05, ParameterControl{Type: ParamTypeFloat}.StepSize())
}

func TestApplyControlRoutesBySetterType(t *testing.T) {
	sim := &fakeSetters{
		ints:   map[string]int{"trials": 10000},
		floats: map[string]float64{"coupling": 1},
	}
	trials := ParameterControl{Key: "trials", Type: ParamTypeInt, Step: 1000, Min: 1000, HasMin: true}
	coupling := ParameterControl{Key: "coupling", Type: ParamTypeFloat, Step: 0.25}

	v, ok := ApplyControl(sim, trials, 10000, -1)
	assert.True(t, ok)
	assert.Equal(t, 9000.0, v)
	assert.Equal(t, 9000, sim.ints["trials"])

	v, ok = ApplyControl(sim, coupling, 1, 1)
	assert.True(t, ok)
	assert.Equal(t, 1.25, v)
	assert.Equal(t, 1.25, sim.floats["coupling"])

	_, ok = ApplyControl(sim, ParameterControl{Key: "missing", Type: ParamTypeFloat}, 0, 1)
	assert.False(t, ok)

	_, ok = ApplyControl(struct{}{}, coupling, 1, 1)
	assert.False(t, ok, "sims without setters are read-only")
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "w", Value: "4"}}},
		{Name: "B", Params: []Parameter{{Key: "field", Value: "0.5"}}},
	}}
	p, ok := snap.Lookup("field")
	assert.True(t, ok)
	assert.Equal(t, "0.5", p.Value)
	_, ok = snap.Lookup("nope")
	assert.False(t, ok)
}
