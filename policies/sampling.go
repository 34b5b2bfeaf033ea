package policies

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// SamplingStrategy picks a vocabulary index from a row of logits.
type SamplingStrategy interface {
	Sample(logits []float64) (int, error)
}

// Softmax converts logits to a probability distribution.
func Softmax(logits []float64) []float64 {
	max := math.Inf(-1)
	for _, l := range logits {
		if l > max {
			max = l
		}
	}
	sum := 0.0
	probs := make([]float64, len(logits))
	for i, l := range logits {
		probs[i] = math.Exp(l - max)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

const logEps = 1e-8

// LogProbs returns log(softmax(logits) + eps), the epsilon guards against
// log(0) for saturated logits.
func LogProbs(logits []float64) []float64 {
	probs := Softmax(logits)
	out := make([]float64, len(probs))
	for i, p := range probs {
		out[i] = math.Log(p + logEps)
	}
	return out
}

// CategoricalDistribution samples proportionally to the softmax weights.
type CategoricalDistribution struct {
	src rand.Source
}

func NewCategoricalDistribution(seed uint64) *CategoricalDistribution {
	return &CategoricalDistribution{src: rand.NewSource(seed)}
}

func (c *CategoricalDistribution) Sample(logits []float64) (int, error) {
	if len(logits) == 0 {
		return 0, fmt.Errorf("cannot sample from empty logits")
	}
	i, ok := sampleuv.NewWeighted(Softmax(logits), c.src).Take()
	if !ok {
		return 0, fmt.Errorf("weighted sampling failed")
	}
	return i, nil
}

// GumbelDistribution samples via the Gumbel-max trick, argmax over
// perturbed logits.
type GumbelDistribution struct {
	rng *rand.Rand
}

func NewGumbelDistribution(seed uint64) *GumbelDistribution {
	return &GumbelDistribution{rng: rand.New(rand.NewSource(seed))}
}

func (g *GumbelDistribution) Sample(logits []float64) (int, error) {
	if len(logits) == 0 {
		return 0, fmt.Errorf("cannot sample from empty logits")
	}
	best := 0
	bestVal := math.Inf(-1)
	for i, l := range logits {
		u := g.rng.Float64()
		for u == 0 {
			u = g.rng.Float64()
		}
		val := l - math.Log(-math.Log(u))
		if val > bestVal {
			bestVal = val
			best = i
		}
	}
	return best, nil
}
