package types

import "testing"

func TestActionSpaceOrder(t *testing.T) {
	space := NewActionSpace()
	names := []string{"RotateClockwise", "Translate", "RotateCounterClockwise", "DoNothing"}
	actions := []Action{
		{Torque: Vec3{0, 0, 10}},
		{Force: 10},
		{Torque: Vec3{0, 0, -10}},
		{},
	}
	for i, name := range names {
		if err := space.Add(name, actions[i]); err != nil {
			t.Fatalf("unexpected error adding %s: %v", name, err)
		}
	}
	if space.Len() != 4 {
		t.Errorf("expected 4 actions, got %d", space.Len())
	}
	for i := range names {
		got, err := space.Get(i)
		if err != nil {
			t.Fatalf("unexpected error getting index %d: %v", i, err)
		}
		if got != actions[i] {
			t.Errorf("index %d: expected %v, got %v", i, actions[i], got)
		}
	}
	for i, name := range space.Names() {
		if name != names[i] {
			t.Errorf("name order changed at %d: expected %s, got %s", i, names[i], name)
		}
	}
}

func TestActionSpaceRejectsDuplicates(t *testing.T) {
	space := NewActionSpace()
	if err := space.Add("Translate", Action{Force: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := space.Add("Translate", Action{Force: 5}); err == nil {
		t.Errorf("expected error for duplicate action name")
	}
	if err := space.Add("", Action{}); err == nil {
		t.Errorf("expected error for empty action name")
	}
}

func TestActionSpaceIndexOutOfRange(t *testing.T) {
	space := NewActionSpace()
	space.Add("DoNothing", Action{})
	if _, err := space.Get(1); err == nil {
		t.Errorf("expected error for out of range index")
	}
	if _, err := space.Get(-1); err == nil {
		t.Errorf("expected error for negative index")
	}
}
