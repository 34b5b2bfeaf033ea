package engine

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/swarmlab/swarmtrain/types"
)

// Params configures the overdamped Brownian swarm engine.
type Params struct {
	BoxLength      types.Vec3
	TimeStep       float64
	Drag           float64
	NoiseAmplitude float64
	// Colloid counts per particle type, placed uniformly in the box.
	Colloids map[int]int
}

// BrownianEngine is the in-process simulation engine: active particles in a
// periodic box, driven along their director by the dispatched force and
// jostled by thermal noise. It implements types.Environment.
type BrownianEngine struct {
	params    Params
	colloids  []types.Colloid
	rng       *rand.Rand
	finalized bool
}

var _ types.Environment = (*BrownianEngine)(nil)

func New(params Params, seed uint64) (*BrownianEngine, error) {
	if params.TimeStep <= 0 {
		return nil, fmt.Errorf("time step must be > 0")
	}
	if params.Drag <= 0 {
		return nil, fmt.Errorf("drag must be > 0")
	}
	if len(params.Colloids) == 0 {
		return nil, fmt.Errorf("engine requires at least one colloid")
	}

	rng := rand.New(rand.NewSource(seed))
	e := &BrownianEngine{
		params: params,
		rng:    rng,
	}

	id := 0
	for particleType, count := range params.Colloids {
		for i := 0; i < count; i++ {
			e.colloids = append(e.colloids, types.Colloid{
				ID: id,
				Pos: types.Vec3{
					rng.Float64() * params.BoxLength[0],
					rng.Float64() * params.BoxLength[1],
					0,
				},
				Director: types.Vec3{1, 0, 0}.RotateZ(rng.Float64() * 6.283185307179586),
				Type:     particleType,
			})
			id++
		}
	}
	return e, nil
}

// Factory returns an EnvironmentFactory over these parameters. Every call
// builds an independent engine, colloid placement is derived from the seed.
func Factory(params Params) types.EnvironmentFactory {
	return func(seed uint64) (types.Environment, error) {
		return New(params, seed)
	}
}

func (e *BrownianEngine) Colloids() []types.Colloid {
	return e.colloids
}

// Integrate advances the swarm, asking the solver for one action per
// colloid on every step. Solver errors abort the integration and
// propagate unchanged.
func (e *BrownianEngine) Integrate(steps int, solver types.ForceSolver) error {
	if e.finalized {
		return fmt.Errorf("integrate called on finalized engine")
	}
	for s := 0; s < steps; s++ {
		actions, err := solver.ComputeActions(e.colloids)
		if err != nil {
			return err
		}
		if len(actions) != len(e.colloids) {
			return fmt.Errorf("solver returned %d actions for %d colloids", len(actions), len(e.colloids))
		}
		dt := e.params.TimeStep
		for i := range e.colloids {
			c := &e.colloids[i]
			action := actions[i]

			c.Director = c.Director.RotateZ(action.Torque[2] * dt / e.params.Drag).Unit()
			drift := c.Director.Scale(action.Force / e.params.Drag)
			noise := types.Vec3{
				e.rng.NormFloat64() * e.params.NoiseAmplitude,
				e.rng.NormFloat64() * e.params.NoiseAmplitude,
				0,
			}
			c.Velocity = drift.Add(noise)
			c.Pos = e.wrap(c.Pos.Add(c.Velocity.Scale(dt)))
		}
	}
	return nil
}

func (e *BrownianEngine) wrap(p types.Vec3) types.Vec3 {
	for d := 0; d < 3; d++ {
		box := e.params.BoxLength[d]
		if box <= 0 {
			continue
		}
		for p[d] < 0 {
			p[d] += box
		}
		for p[d] >= box {
			p[d] -= box
		}
	}
	return p
}

func (e *BrownianEngine) Finalize() error {
	e.finalized = true
	return nil
}
