package policies

import "golang.org/x/exp/rand"

// ExplorationPolicy may override the sampled action index to force
// exploration.
type ExplorationPolicy interface {
	Apply(index, actionCount int) int
}

// RandomExploration replaces the chosen index with a uniformly random one
// with the configured probability. Probability zero makes it a no-op.
type RandomExploration struct {
	Probability float64
	rng         *rand.Rand
}

func NewRandomExploration(probability float64, seed uint64) *RandomExploration {
	return &RandomExploration{
		Probability: probability,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (r *RandomExploration) Apply(index, actionCount int) int {
	if r.Probability <= 0 {
		return index
	}
	if r.rng.Float64() < r.Probability {
		return r.rng.Intn(actionCount)
	}
	return index
}
