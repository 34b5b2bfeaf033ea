package losses

import (
	"fmt"

	"github.com/swarmlab/swarmtrain/types"
)

// PolicyGradientLoss turns an episode trajectory into a REINFORCE style
// parameter gradient: each step's score function is weighted by the
// discounted return from that step onward.
type PolicyGradientLoss struct {
	Gamma float64
}

func NewPolicyGradientLoss(gamma float64) *PolicyGradientLoss {
	if gamma <= 0 || gamma > 1 {
		gamma = 0.99
	}
	return &PolicyGradientLoss{Gamma: gamma}
}

var _ types.Loss = (*PolicyGradientLoss)(nil)

func (l *PolicyGradientLoss) ComputeGradient(policy types.Policy, trajectory *types.Trajectory) (types.Gradients, error) {
	diff, ok := policy.(types.DifferentiablePolicy)
	if !ok {
		return nil, fmt.Errorf("policy of type %T does not expose a score function", policy)
	}

	params, err := policy.Parameters()
	if err != nil {
		return nil, err
	}
	grads := make(types.Gradients, len(params))
	if trajectory.Len() == 0 {
		return grads, nil
	}

	returns := l.discountedReturns(trajectory)
	for t := 0; t < trajectory.Len(); t++ {
		record, _ := trajectory.Get(t)
		for n, features := range record.Features {
			g, err := diff.GradLogProb(features, record.Indices[n])
			if err != nil {
				return nil, err
			}
			for i := range grads {
				grads[i] += returns[t] * g[i]
			}
		}
	}

	norm := float64(trajectory.Len())
	for i := range grads {
		grads[i] /= norm
	}
	return grads, nil
}

func (l *PolicyGradientLoss) discountedReturns(trajectory *types.Trajectory) []float64 {
	n := trajectory.Len()
	returns := make([]float64, n)
	acc := 0.0
	for t := n - 1; t >= 0; t-- {
		record, _ := trajectory.Get(t)
		acc = record.Reward + l.Gamma*acc
		returns[t] = acc
	}
	return returns
}
