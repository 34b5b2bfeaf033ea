package agents

import (
	"fmt"

	"github.com/swarmlab/swarmtrain/types"
)

// Config binds one particle type to its policy, task, observable and
// action vocabulary.
type Config struct {
	ParticleType int
	Policy       types.Policy
	Task         types.Task
	Observable   types.Observable
	Actions      *types.ActionSpace
}

// Agent computes actions for batches of colloids of a single type and owns
// the trajectory recorded for them.
type Agent struct {
	particleType int
	policy       types.Policy
	task         types.Task
	observable   types.Observable
	actions      *types.ActionSpace
	trajectory   *types.Trajectory
}

func New(cfg Config) (*Agent, error) {
	if cfg.Policy == nil {
		return nil, fmt.Errorf("agent for type %d: policy is required", cfg.ParticleType)
	}
	if cfg.Task == nil {
		return nil, fmt.Errorf("agent for type %d: task is required", cfg.ParticleType)
	}
	if cfg.Observable == nil {
		return nil, fmt.Errorf("agent for type %d: observable is required", cfg.ParticleType)
	}
	if cfg.Actions == nil || cfg.Actions.Len() == 0 {
		return nil, fmt.Errorf("agent for type %d: action space is empty", cfg.ParticleType)
	}
	return &Agent{
		particleType: cfg.ParticleType,
		policy:       cfg.Policy,
		task:         cfg.Task,
		observable:   cfg.Observable,
		actions:      cfg.Actions,
		trajectory:   types.NewTrajectory(),
	}, nil
}

func (a *Agent) ParticleType() int {
	return a.particleType
}

func (a *Agent) Policy() types.Policy {
	return a.policy
}

func (a *Agent) Trajectory() *types.Trajectory {
	return a.trajectory
}

// Initialize re-binds the observable and task to a fresh colloid set after
// an engine reset.
func (a *Agent) Initialize(colloids []types.Colloid) {
	a.observable.Initialize(colloids)
	a.task.Initialize(colloids)
}

// ResetTrajectory clears the episode buffer.
func (a *Agent) ResetTrajectory() {
	a.trajectory.Reset()
}

// ComputeActions maps a batch of same-type colloids to concrete actions,
// preserving batch order. With record set, the step is appended to the
// trajectory together with the task reward and kill signal. The kill flag
// is an OR over the batch.
func (a *Agent) ComputeActions(batch []types.Colloid, record bool) ([]types.Action, error) {
	if len(batch) == 0 {
		return nil, nil
	}

	features := a.observable.Compute(batch)
	indices, logProbs, err := a.policy.ComputeAction(features)
	if err != nil {
		return nil, fmt.Errorf("agent for type %d: %w", a.particleType, err)
	}
	if len(indices) != len(batch) {
		return nil, fmt.Errorf("agent for type %d: policy returned %d actions for %d colloids", a.particleType, len(indices), len(batch))
	}

	actions := make([]types.Action, len(batch))
	for i, idx := range indices {
		action, err := a.actions.Get(idx)
		if err != nil {
			return nil, fmt.Errorf("agent for type %d: %w", a.particleType, err)
		}
		actions[i] = action
	}

	if record {
		rewards, killed := a.task.Call(batch)
		reward := 0.0
		for _, r := range rewards {
			reward += r
		}
		if len(rewards) > 0 {
			reward /= float64(len(rewards))
		}
		a.trajectory.Append(types.TrajectoryRecord{
			Features: features,
			Indices:  indices,
			LogProbs: logProbs,
			Reward:   reward,
			Killed:   killed,
		})
	}
	return actions, nil
}
