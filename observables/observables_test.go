package observables

import (
	"testing"

	"github.com/swarmlab/swarmtrain/types"
)

func TestPositionObservableScalesByBox(t *testing.T) {
	obs := &PositionObservable{BoxLength: types.Vec3{100, 200, 1}}
	features := obs.Compute([]types.Colloid{{ID: 0, Pos: types.Vec3{50, 50, 0}}})
	if len(features) != 1 || len(features[0]) != 3 {
		t.Fatalf("unexpected feature shape: %v", features)
	}
	if features[0][0] != 0.5 || features[0][1] != 0.25 {
		t.Errorf("unexpected scaled position: %v", features[0])
	}
}

func TestConcentrationFieldObservesChange(t *testing.T) {
	obs := &ConcentrationField{
		Source:      types.Vec3{500, 500, 0},
		Decay:       func(d float64) float64 { return 1 - d/1000 },
		ScaleFactor: 10,
	}
	colloids := []types.Colloid{{ID: 0, Pos: types.Vec3{100, 500, 0}}}
	obs.Initialize(colloids)

	// no motion, no change
	features := obs.Compute(colloids)
	if features[0][0] != 0 {
		t.Errorf("expected zero change for stationary colloid, got %f", features[0][0])
	}

	colloids[0].Pos = types.Vec3{300, 500, 0}
	features = obs.Compute(colloids)
	if features[0][0] <= 0 {
		t.Errorf("expected positive change moving toward the source, got %f", features[0][0])
	}

	colloids[0].Pos = types.Vec3{100, 500, 0}
	features = obs.Compute(colloids)
	if features[0][0] >= 0 {
		t.Errorf("expected negative change moving away, got %f", features[0][0])
	}
}

func TestConcentrationFieldLazyInitialize(t *testing.T) {
	obs := &ConcentrationField{
		Source: types.Vec3{0, 0, 0},
		Decay:  func(d float64) float64 { return -d },
	}
	features := obs.Compute([]types.Colloid{{ID: 1, Pos: types.Vec3{5, 0, 0}}})
	if features[0][0] != 0 {
		t.Errorf("first observation should be zero change, got %f", features[0][0])
	}
}
