package types

import "fmt"

// Action is an immutable effect descriptor applied to a colloid for one
// integration slice. The zero value is the no-op action.
type Action struct {
	Force  float64
	Torque Vec3
}

// NeutralAction is applied to colloids whose type has no registered agent.
func NeutralAction() Action {
	return Action{}
}

// ActionSpace is the fixed action vocabulary of one agent. Insertion order
// is the index order seen by the policy and never changes once the agent
// is constructed.
type ActionSpace struct {
	names   []string
	actions []Action
	byName  map[string]int
}

func NewActionSpace() *ActionSpace {
	return &ActionSpace{
		names:   make([]string, 0),
		actions: make([]Action, 0),
		byName:  make(map[string]int),
	}
}

// Add registers a named action. Duplicate names are rejected, indices of
// previously added actions must stay stable.
func (s *ActionSpace) Add(name string, action Action) error {
	if name == "" {
		return fmt.Errorf("action name cannot be empty")
	}
	if _, ok := s.byName[name]; ok {
		return fmt.Errorf("duplicate action name: %s", name)
	}
	s.byName[name] = len(s.actions)
	s.names = append(s.names, name)
	s.actions = append(s.actions, action)
	return nil
}

func (s *ActionSpace) Len() int {
	return len(s.actions)
}

// Get returns the action at the given vocabulary index.
func (s *ActionSpace) Get(index int) (Action, error) {
	if index < 0 || index >= len(s.actions) {
		return Action{}, fmt.Errorf("action index %d out of range [0,%d)", index, len(s.actions))
	}
	return s.actions[index], nil
}

// Names returns the vocabulary in insertion order.
func (s *ActionSpace) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}
