package engine

import (
	"fmt"
	"testing"

	"github.com/swarmlab/swarmtrain/types"
)

type countingSolver struct {
	calls int
	force float64
}

func (s *countingSolver) ComputeActions(colloids []types.Colloid) ([]types.Action, error) {
	s.calls++
	actions := make([]types.Action, len(colloids))
	for i := range actions {
		actions[i] = types.Action{Force: s.force}
	}
	return actions, nil
}

type failingSolver struct{}

func (failingSolver) ComputeActions(colloids []types.Colloid) ([]types.Action, error) {
	return nil, fmt.Errorf("solver exploded")
}

func testParams() Params {
	return Params{
		BoxLength: types.Vec3{100, 100, 0},
		TimeStep:  0.5,
		Drag:      1,
		Colloids:  map[int]int{0: 3, 1: 2},
	}
}

func TestEngineCallsSolverOncePerStep(t *testing.T) {
	e, err := New(testParams(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	solver := &countingSolver{}
	if err := e.Integrate(12, solver); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if solver.calls != 12 {
		t.Errorf("expected 12 solver calls, got %d", solver.calls)
	}
}

func TestEngineColloidSetup(t *testing.T) {
	e, err := New(testParams(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	colloids := e.Colloids()
	if len(colloids) != 5 {
		t.Fatalf("expected 5 colloids, got %d", len(colloids))
	}
	seen := map[int]bool{}
	counts := map[int]int{}
	for _, c := range colloids {
		if seen[c.ID] {
			t.Errorf("duplicate colloid id %d", c.ID)
		}
		seen[c.ID] = true
		counts[c.Type]++
	}
	if counts[0] != 3 || counts[1] != 2 {
		t.Errorf("unexpected type counts: %v", counts)
	}
}

func TestEngineMovesColloidsUnderForce(t *testing.T) {
	e, err := New(testParams(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := make([]types.Vec3, len(e.Colloids()))
	for i, c := range e.Colloids() {
		before[i] = c.Pos
	}
	if err := e.Integrate(5, &countingSolver{force: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	moved := false
	for i, c := range e.Colloids() {
		if c.Pos != before[i] {
			moved = true
		}
	}
	if !moved {
		t.Errorf("colloids did not move under a driving force")
	}
}

func TestEngineSolverErrorAborts(t *testing.T) {
	e, err := New(testParams(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.Integrate(3, failingSolver{}); err == nil {
		t.Errorf("expected solver error to propagate")
	}
}

func TestEngineFinalizeStopsIntegration(t *testing.T) {
	e, err := New(testParams(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.Finalize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.Integrate(1, &countingSolver{}); err == nil {
		t.Errorf("expected error integrating a finalized engine")
	}
}

func TestFactoryBuildsIndependentEngines(t *testing.T) {
	factory := Factory(testParams())
	a, err := factory(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := factory(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.Integrate(3, &countingSolver{force: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	same := true
	for i, c := range a.Colloids() {
		if c.Pos != b.Colloids()[i].Pos {
			same = false
		}
	}
	if same {
		t.Errorf("engines from different seeds share identical state")
	}
}
