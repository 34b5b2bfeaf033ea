package observables

import "github.com/swarmlab/swarmtrain/types"

// PositionObservable reports colloid positions scaled by the box length.
type PositionObservable struct {
	BoxLength types.Vec3
}

var _ types.Observable = (*PositionObservable)(nil)

func (o *PositionObservable) Initialize(colloids []types.Colloid) {}

func (o *PositionObservable) Compute(colloids []types.Colloid) [][]float64 {
	features := make([][]float64, len(colloids))
	for i, c := range colloids {
		row := make([]float64, 3)
		for d := 0; d < 3; d++ {
			row[d] = c.Pos[d]
			if o.BoxLength[d] != 0 {
				row[d] /= o.BoxLength[d]
			}
		}
		features[i] = row
	}
	return features
}
