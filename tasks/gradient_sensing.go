package tasks

import "github.com/swarmlab/swarmtrain/types"

// GradientSensing rewards colloids for climbing a decaying concentration
// field toward its source. The decay profile is an injected strategy. When
// CaptureRadius is positive the task reports a kill as soon as any colloid
// of the batch comes that close to the source.
type GradientSensing struct {
	Source        types.Vec3
	Decay         types.DecayFunction
	RewardScale   float64
	CaptureRadius float64

	previous map[int]float64
}

var _ types.Task = (*GradientSensing)(nil)

func (t *GradientSensing) field(c types.Colloid) float64 {
	return t.Decay(c.Pos.Sub(t.Source).Norm())
}

func (t *GradientSensing) Initialize(colloids []types.Colloid) {
	t.previous = make(map[int]float64, len(colloids))
	for _, c := range colloids {
		t.previous[c.ID] = t.field(c)
	}
}

// Call returns one reward per colloid, clipped at zero so only progress
// toward the source is rewarded, and the OR-over-batch kill signal.
func (t *GradientSensing) Call(colloids []types.Colloid) ([]float64, bool) {
	if t.previous == nil {
		t.Initialize(colloids)
	}
	scale := t.RewardScale
	if scale == 0 {
		scale = 1
	}
	rewards := make([]float64, len(colloids))
	killed := false
	for i, c := range colloids {
		current := t.field(c)
		reward := scale * (current - t.previous[c.ID])
		if reward < 0 {
			reward = 0
		}
		rewards[i] = reward
		t.previous[c.ID] = current

		if t.CaptureRadius > 0 && c.Pos.Sub(t.Source).Norm() < t.CaptureRadius {
			killed = true
		}
	}
	return rewards, killed
}
