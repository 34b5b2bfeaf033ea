package observables

import "github.com/swarmlab/swarmtrain/types"

// ConcentrationField observes the change in a decaying scalar field around
// a source, one value per colloid. Initialize captures the reference
// concentration of the fresh colloid set.
type ConcentrationField struct {
	Source      types.Vec3
	Decay       types.DecayFunction
	ScaleFactor float64

	previous map[int]float64
}

var _ types.Observable = (*ConcentrationField)(nil)

func (o *ConcentrationField) field(c types.Colloid) float64 {
	return o.Decay(c.Pos.Sub(o.Source).Norm())
}

func (o *ConcentrationField) Initialize(colloids []types.Colloid) {
	o.previous = make(map[int]float64, len(colloids))
	for _, c := range colloids {
		o.previous[c.ID] = o.field(c)
	}
}

func (o *ConcentrationField) Compute(colloids []types.Colloid) [][]float64 {
	if o.previous == nil {
		o.Initialize(colloids)
	}
	scale := o.ScaleFactor
	if scale == 0 {
		scale = 1
	}
	features := make([][]float64, len(colloids))
	for i, c := range colloids {
		current := o.field(c)
		features[i] = []float64{scale * (current - o.previous[c.ID])}
		o.previous[c.ID] = current
	}
	return features
}
