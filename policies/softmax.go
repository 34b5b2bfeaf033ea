package policies

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/swarmlab/swarmtrain/types"
)

// SoftmaxPolicy is a linear softmax model over colloid features. Parameters
// are laid out as the weight matrix in row major order followed by the
// bias, one row per vocabulary entry.
type SoftmaxPolicy struct {
	inputDim  int
	actionDim int

	learningRate float64
	state        any
	strategy     SamplingStrategy
	exploration  ExplorationPolicy
	epochCount   int
}

type SoftmaxConfig struct {
	InputDim     int
	ActionDim    int
	LearningRate float64
	Strategy     SamplingStrategy
	Exploration  ExplorationPolicy
	Seed         uint64
}

func NewSoftmaxPolicy(cfg SoftmaxConfig) (*SoftmaxPolicy, error) {
	if cfg.InputDim <= 0 || cfg.ActionDim <= 0 {
		return nil, fmt.Errorf("invalid policy dimensions: input=%d actions=%d", cfg.InputDim, cfg.ActionDim)
	}
	if cfg.Strategy == nil {
		return nil, fmt.Errorf("sampling strategy is required")
	}
	if cfg.LearningRate <= 0 {
		cfg.LearningRate = 0.001
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	params := make([]float64, cfg.ActionDim*(cfg.InputDim+1))
	for i := range params {
		params[i] = rng.NormFloat64() * 0.1
	}

	return &SoftmaxPolicy{
		inputDim:     cfg.InputDim,
		actionDim:    cfg.ActionDim,
		learningRate: cfg.LearningRate,
		state:        &ModelState{Params: params},
		strategy:     cfg.Strategy,
		exploration:  cfg.Exploration,
	}, nil
}

var _ types.DifferentiablePolicy = (*SoftmaxPolicy)(nil)

// RestoreLegacyState replaces the model state with a checkpoint restored in
// the old map layout. Subsequent calls go through the legacy accessor path.
func (p *SoftmaxPolicy) RestoreLegacyState(state map[string][]float64) {
	p.state = state
}

func (p *SoftmaxPolicy) EpochCount() int {
	return p.epochCount
}

func (p *SoftmaxPolicy) logits(features []float64) ([]float64, error) {
	params, err := stateParams(p.state)
	if err != nil {
		return nil, err
	}
	if len(features) != p.inputDim {
		return nil, fmt.Errorf("feature size mismatch: got=%d want=%d", len(features), p.inputDim)
	}
	if len(params) != p.actionDim*(p.inputDim+1) {
		return nil, fmt.Errorf("parameter size mismatch: got=%d want=%d", len(params), p.actionDim*(p.inputDim+1))
	}
	bias := params[p.actionDim*p.inputDim:]
	logits := make([]float64, p.actionDim)
	for o := 0; o < p.actionDim; o++ {
		sum := bias[o]
		row := params[o*p.inputDim : (o+1)*p.inputDim]
		for i, x := range features {
			sum += row[i] * x
		}
		logits[o] = sum
	}
	return logits, nil
}

func (p *SoftmaxPolicy) ComputeAction(features [][]float64) ([]int, []float64, error) {
	indices := make([]int, len(features))
	logProbs := make([]float64, len(features))
	for n, row := range features {
		logits, err := p.logits(row)
		if err != nil {
			return nil, nil, err
		}
		idx, err := p.strategy.Sample(logits)
		if err != nil {
			return nil, nil, err
		}
		if p.exploration != nil {
			idx = p.exploration.Apply(idx, p.actionDim)
		}
		indices[n] = idx
		logProbs[n] = LogProbs(logits)[idx]
	}
	return indices, logProbs, nil
}

// GradLogProb returns d log pi(action|features) / d params for the linear
// softmax model.
func (p *SoftmaxPolicy) GradLogProb(features []float64, action int) (types.Gradients, error) {
	if action < 0 || action >= p.actionDim {
		return nil, fmt.Errorf("action index %d out of range [0,%d)", action, p.actionDim)
	}
	logits, err := p.logits(features)
	if err != nil {
		return nil, err
	}
	probs := Softmax(logits)
	grads := make(types.Gradients, p.actionDim*(p.inputDim+1))
	for o := 0; o < p.actionDim; o++ {
		indicator := 0.0
		if o == action {
			indicator = 1.0
		}
		dLogit := indicator - probs[o]
		for i, x := range features {
			grads[o*p.inputDim+i] = dLogit * x
		}
		grads[p.actionDim*p.inputDim+o] = dLogit
	}
	return grads, nil
}

// UpdateModel performs a gradient ascent step in place and advances the
// epoch counter.
func (p *SoftmaxPolicy) UpdateModel(grads types.Gradients) error {
	params, err := stateParams(p.state)
	if err != nil {
		return err
	}
	if len(grads) != len(params) {
		return fmt.Errorf("gradient size mismatch: got=%d want=%d", len(grads), len(params))
	}
	for i := range params {
		params[i] += p.learningRate * grads[i]
	}
	if s, ok := p.state.(*ModelState); ok {
		s.Step++
	}
	p.epochCount++
	return nil
}

func (p *SoftmaxPolicy) Parameters() ([]float64, error) {
	params, err := stateParams(p.state)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(params))
	copy(out, params)
	return out, nil
}

func (p *SoftmaxPolicy) SetParameters(params []float64) error {
	return setStateParams(p.state, params)
}
