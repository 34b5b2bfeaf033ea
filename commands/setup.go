package commands

import (
	"github.com/swarmlab/swarmtrain/agents"
	"github.com/swarmlab/swarmtrain/dispatch"
	"github.com/swarmlab/swarmtrain/engine"
	"github.com/swarmlab/swarmtrain/observables"
	"github.com/swarmlab/swarmtrain/policies"
	"github.com/swarmlab/swarmtrain/tasks"
	"github.com/swarmlab/swarmtrain/types"
)

const boxLength = 1000.0

// scaleFunction is the decay profile of the concentration field.
func scaleFunction(distance float64) float64 {
	return 1 - distance/boxLength
}

// defaultActionSpace is the standard four-action vocabulary for an active
// colloid: translate along the director, rotate either way, or do nothing.
func defaultActionSpace() (*types.ActionSpace, error) {
	space := types.NewActionSpace()
	entries := []struct {
		name   string
		action types.Action
	}{
		{"RotateClockwise", types.Action{Torque: types.Vec3{0, 0, 10.0}}},
		{"Translate", types.Action{Force: 10.0}},
		{"RotateCounterClockwise", types.Action{Torque: types.Vec3{0, 0, -10.0}}},
		{"DoNothing", types.Action{}},
	}
	for _, e := range entries {
		if err := space.Add(e.name, e.action); err != nil {
			return nil, err
		}
	}
	return space, nil
}

// buildForceFunction wires one gradient-sensing agent for particle type 0.
func buildForceFunction(seed uint64) (*dispatch.ForceFunction, error) {
	source := types.Vec3{boxLength / 2, boxLength / 2, 0}

	space, err := defaultActionSpace()
	if err != nil {
		return nil, err
	}
	policy, err := policies.NewSoftmaxPolicy(policies.SoftmaxConfig{
		InputDim:     1,
		ActionDim:    space.Len(),
		LearningRate: 0.001,
		Strategy:     policies.NewCategoricalDistribution(seed),
		Exploration:  policies.NewRandomExploration(0.1, seed+1),
		Seed:         seed,
	})
	if err != nil {
		return nil, err
	}
	agent, err := agents.New(agents.Config{
		ParticleType: 0,
		Policy:       policy,
		Task: &tasks.GradientSensing{
			Source:      source,
			Decay:       scaleFunction,
			RewardScale: 10,
		},
		Observable: &observables.ConcentrationField{
			Source:      source,
			Decay:       scaleFunction,
			ScaleFactor: 10,
		},
		Actions: space,
	})
	if err != nil {
		return nil, err
	}
	return dispatch.New(map[string]*agents.Agent{"0": agent}, true)
}

func engineFactory(n int) types.EnvironmentFactory {
	return engine.Factory(engine.Params{
		BoxLength:      types.Vec3{boxLength, boxLength, 0},
		TimeStep:       0.5,
		Drag:           1.0,
		NoiseAmplitude: 0.5,
		Colloids:       map[int]int{0: n},
	})
}
