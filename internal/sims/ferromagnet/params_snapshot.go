package ferromagnet

import (
	"strconv"

	"ising/internal/core"
)

// Parameters reports the lattice setup, couplings and live observables.
func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Hamiltonian",
			Params: []core.Parameter{
				floatParam("coupling", "Coupling J", w.cfg.Coupling),
				floatParam("field", "Field h", w.cfg.Field),
			},
			Summary: "kT fixed at 1",
		},
		{
			Name: "Dynamics",
			Params: []core.Parameter{
				intParam("trials", "Trials/step", w.cfg.Trials),
				floatParam("acceptance", "Acceptance", w.AcceptanceRate()),
			},
		},
		{
			Name: "Observables",
			Params: []core.Parameter{
				floatParam("magnetization", "Magnetization", w.Magnetization()),
				floatParam("energy", "Energy/site", w.Energy()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
