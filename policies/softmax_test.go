package policies

import (
	"math"
	"testing"
)

func newTestPolicy(t *testing.T) *SoftmaxPolicy {
	t.Helper()
	policy, err := NewSoftmaxPolicy(SoftmaxConfig{
		InputDim:  2,
		ActionDim: 3,
		Strategy:  NewCategoricalDistribution(11),
		Seed:      11,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return policy
}

func TestSoftmaxPolicyComputeAction(t *testing.T) {
	policy := newTestPolicy(t)
	features := [][]float64{{0.1, 0.2}, {0.3, -0.4}, {0, 0}}
	indices, logProbs, err := policy.ComputeAction(features)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(indices) != 3 || len(logProbs) != 3 {
		t.Fatalf("expected 3 results, got %d indices and %d log probs", len(indices), len(logProbs))
	}
	for i, idx := range indices {
		if idx < 0 || idx >= 3 {
			t.Errorf("index %d out of vocabulary range: %d", i, idx)
		}
		if logProbs[i] > 0 {
			t.Errorf("log probability %d is positive: %f", i, logProbs[i])
		}
	}
}

func TestSoftmaxPolicyUpdateAdvancesEpoch(t *testing.T) {
	policy := newTestPolicy(t)
	before, err := policy.Parameters()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	grads := make([]float64, len(before))
	for i := range grads {
		grads[i] = 1
	}
	if err := policy.UpdateModel(grads); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if policy.EpochCount() != 1 {
		t.Errorf("expected epoch count 1, got %d", policy.EpochCount())
	}
	after, _ := policy.Parameters()
	for i := range after {
		if after[i] == before[i] {
			t.Errorf("parameter %d unchanged after update", i)
		}
	}
}

func TestSoftmaxPolicyRejectsBadGradient(t *testing.T) {
	policy := newTestPolicy(t)
	if err := policy.UpdateModel([]float64{1, 2}); err == nil {
		t.Errorf("expected error for gradient size mismatch")
	}
}

func TestSoftmaxPolicyLegacyStatePath(t *testing.T) {
	policy := newTestPolicy(t)
	params, _ := policy.Parameters()

	legacy := map[string][]float64{"params": make([]float64, len(params))}
	copy(legacy["params"], params)
	policy.RestoreLegacyState(legacy)

	// compute, update and parameter access must all work on the legacy
	// layout without surfacing an error
	if _, _, err := policy.ComputeAction([][]float64{{0.5, -0.5}}); err != nil {
		t.Fatalf("compute on legacy state: %v", err)
	}
	grads := make([]float64, len(params))
	grads[0] = 1
	if err := policy.UpdateModel(grads); err != nil {
		t.Fatalf("update on legacy state: %v", err)
	}
	restored, err := policy.Parameters()
	if err != nil {
		t.Fatalf("parameters on legacy state: %v", err)
	}
	if restored[0] == params[0] {
		t.Errorf("legacy state parameters not updated in place")
	}
}

func TestSoftmaxPolicyLegacyStateWithoutParams(t *testing.T) {
	policy := newTestPolicy(t)
	policy.RestoreLegacyState(map[string][]float64{"weights": {1}})
	if _, _, err := policy.ComputeAction([][]float64{{0, 0}}); err == nil {
		t.Errorf("expected error for legacy state without params entry")
	}
}

func TestGradLogProbSumsToZeroOverActions(t *testing.T) {
	policy := newTestPolicy(t)
	features := []float64{0.7, -0.3}
	// sum over all actions of grad log pi weighted by pi is zero for the
	// softmax score function
	total := make([]float64, 3*(2+1))
	logits, err := policy.logits(features)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	probs := Softmax(logits)
	for a := 0; a < 3; a++ {
		grads, err := policy.GradLogProb(features, a)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := range total {
			total[i] += probs[a] * grads[i]
		}
	}
	for i, v := range total {
		if math.Abs(v) > 1e-9 {
			t.Errorf("expected zero expected score at %d, got %g", i, v)
		}
	}
}
