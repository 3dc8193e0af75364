package core

import "math"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Parameter describes a single value exposed by a simulation.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of tunables exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterProvider exposes a snapshot of the current parameters.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// ParameterControl describes an adjustable parameter that hosts expose to
// the user. Steps and bounds are optional and interpreted based on the
// parameter type.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// StepSize returns the control's step, falling back to 1 for integers and
// 0.05 for floats.
func (c ParameterControl) StepSize() float64 {
	if c.Type == ParamTypeInt {
		step := math.Round(c.Step)
		if step <= 0 {
			return 1
		}
		return step
	}
	if c.Step <= 0 {
		return 0.05
	}
	return c.Step
}

// Adjust moves current by direction steps and clamps it to the bounds. It
// reports false when the clamped target equals current.
func (c ParameterControl) Adjust(current float64, direction int) (float64, bool) {
	if direction == 0 {
		return current, false
	}
	target := current + float64(direction)*c.StepSize()
	if c.HasMin && target < c.Min {
		target = c.Min
	}
	if c.HasMax && target > c.Max {
		target = c.Max
	}
	if c.Type == ParamTypeInt {
		target = math.Round(target)
	}
	if math.Abs(target-current) < 1e-9 {
		return current, false
	}
	return target, true
}

// ParameterControlsProvider exposes the list of host-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows host interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows host interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}

// ApplyControl adjusts the control's current value on sim through whichever
// setter matches the control type. It returns the new value on success.
func ApplyControl(sim any, ctrl ParameterControl, current float64, direction int) (float64, bool) {
	target, ok := ctrl.Adjust(current, direction)
	if !ok {
		return current, false
	}
	switch ctrl.Type {
	case ParamTypeInt:
		setter, ok := sim.(IntParameterSetter)
		if !ok || !setter.SetIntParameter(ctrl.Key, int(target)) {
			return current, false
		}
	case ParamTypeFloat:
		setter, ok := sim.(FloatParameterSetter)
		if !ok || !setter.SetFloatParameter(ctrl.Key, target) {
			return current, false
		}
	default:
		return current, false
	}
	return target, true
}
