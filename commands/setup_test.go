package commands

import "testing"

func TestDefaultActionSpace(t *testing.T) {
	space, err := defaultActionSpace()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{"RotateClockwise", "Translate", "RotateCounterClockwise", "DoNothing"}
	names := space.Names()
	if len(names) != len(expected) {
		t.Fatalf("expected %d actions, got %d", len(expected), len(names))
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("action %d: expected %s, got %s", i, name, names[i])
		}
	}
}

func TestBuildForceFunction(t *testing.T) {
	force, err := buildForceFunction(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(force.Agents()) != 1 {
		t.Errorf("expected a single agent, got %d", len(force.Agents()))
	}
	for _, agent := range force.Agents() {
		if agent.ParticleType() != 0 {
			t.Errorf("expected particle type 0, got %d", agent.ParticleType())
		}
	}
}

func TestEngineFactoryProducesColloids(t *testing.T) {
	factory := engineFactory(7)
	e, err := factory(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(e.Colloids()) != 7 {
		t.Errorf("expected 7 colloids, got %d", len(e.Colloids()))
	}
}
