package dispatch

import (
	"fmt"

	"github.com/swarmlab/swarmtrain/agents"
	"github.com/swarmlab/swarmtrain/types"
)

// ForceFunction routes colloids to the agent registered for their type and
// merges the per-agent decisions back into the original colloid order. It
// is the solver handed to the engine on every integration slice.
type ForceFunction struct {
	agents map[string]*agents.Agent
	byType map[int]*agents.Agent
	record bool
}

// New validates type exclusivity at registration time: two agents claiming
// the same particle type are a configuration error, not something detected
// at dispatch time.
func New(agentMap map[string]*agents.Agent, recordTrajectory bool) (*ForceFunction, error) {
	if len(agentMap) == 0 {
		return nil, fmt.Errorf("force function requires at least one agent")
	}
	byType := make(map[int]*agents.Agent, len(agentMap))
	for key, agent := range agentMap {
		if agent == nil {
			return nil, fmt.Errorf("agent %q is nil", key)
		}
		if _, ok := byType[agent.ParticleType()]; ok {
			return nil, fmt.Errorf("duplicate agent for particle type %d", agent.ParticleType())
		}
		byType[agent.ParticleType()] = agent
	}
	return &ForceFunction{
		agents: agentMap,
		byType: byType,
		record: recordTrajectory,
	}, nil
}

// Agents returns the registered agents keyed by their registration label.
func (f *ForceFunction) Agents() map[string]*agents.Agent {
	return f.agents
}

// SetRecord switches trajectory recording on or off.
func (f *ForceFunction) SetRecord(record bool) {
	f.record = record
}

// Killed reports whether any agent recorded a kill signal this episode.
func (f *ForceFunction) Killed() bool {
	for _, agent := range f.agents {
		if agent.Trajectory().Killed() {
			return true
		}
	}
	return false
}

var _ types.ForceSolver = (*ForceFunction)(nil)

// ComputeActions partitions colloids by type, delegates each group to its
// agent (group order preserved) and scatters the results back by original
// index. Colloids with no registered agent get the neutral action. The
// output order is therefore independent of grouping and of agent
// iteration order.
func (f *ForceFunction) ComputeActions(colloids []types.Colloid) ([]types.Action, error) {
	result := make([]types.Action, len(colloids))
	for i := range result {
		result[i] = types.NeutralAction()
	}

	groups := make(map[int][]int)
	for i, c := range colloids {
		if _, ok := f.byType[c.Type]; !ok {
			continue
		}
		groups[c.Type] = append(groups[c.Type], i)
	}

	for particleType, positions := range groups {
		agent := f.byType[particleType]
		batch := make([]types.Colloid, len(positions))
		for j, pos := range positions {
			batch[j] = colloids[pos]
		}
		actions, err := agent.ComputeActions(batch, f.record)
		if err != nil {
			return nil, err
		}
		for j, pos := range positions {
			result[pos] = actions[j]
		}
	}
	return result, nil
}
