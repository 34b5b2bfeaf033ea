package genetic

import "math"

// Individual is one candidate parameter set in the population. Fitness is
// meaningless until Evaluated is set; a failed evaluation leaves Err set
// and the fitness at -Inf so the individual never wins selection.
type Individual struct {
	Params    []float64
	Lineage   string
	Fitness   float64
	Evaluated bool
	Err       error
}

func newIndividual(params []float64, lineage string) Individual {
	return Individual{
		Params:  params,
		Lineage: lineage,
		Fitness: math.Inf(-1),
	}
}

func (in Individual) clone() Individual {
	params := make([]float64, len(in.Params))
	copy(params, in.Params)
	return Individual{
		Params:    params,
		Lineage:   in.Lineage,
		Fitness:   in.Fitness,
		Evaluated: in.Evaluated,
	}
}

// deriveSeed gives every evaluation job an independent, reproducible seed
// from its (generation, index) coordinates. splitmix64 finalizer.
func deriveSeed(base uint64, generation, index int) uint64 {
	z := base ^ (uint64(generation)<<32 | uint64(index))
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
