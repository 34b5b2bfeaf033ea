package types

// ForceSolver is what the engine calls once per internal integration step
// to obtain the action of every colloid. The returned slice has the same
// length and order as the input.
type ForceSolver interface {
	ComputeActions(colloids []Colloid) ([]Action, error)
}

// Environment is the external simulation engine driven by a trainer.
type Environment interface {
	// Integrate advances the simulation by the given number of steps,
	// calling the solver once per step with the current colloid list.
	Integrate(steps int, solver ForceSolver) error
	// Colloids returns the current particle list.
	Colloids() []Colloid
	Finalize() error
}

// EnvironmentFactory builds a fresh, independent engine. Each training run
// and each population evaluation job owns its own instance.
type EnvironmentFactory func(seed uint64) (Environment, error)

// Observable turns a batch of colloids into per-colloid feature vectors.
type Observable interface {
	Initialize(colloids []Colloid)
	Compute(colloids []Colloid) [][]float64
}

// Task produces per-colloid rewards and the batch kill signal. Killed is
// true when any colloid in the batch hit the terminal condition.
type Task interface {
	Initialize(colloids []Colloid)
	Call(colloids []Colloid) (rewards []float64, killed bool)
}

// Gradients is a flat per-parameter gradient.
type Gradients []float64

// Policy maps feature batches to action indices and log probabilities.
type Policy interface {
	// ComputeAction returns, per feature row, the sampled vocabulary index
	// and the log probability of that choice.
	ComputeAction(features [][]float64) (indices []int, logProbs []float64, err error)
	// UpdateModel applies a gradient in place and advances the epoch count.
	UpdateModel(grads Gradients) error
	Parameters() ([]float64, error)
	SetParameters(params []float64) error
}

// DifferentiablePolicy additionally exposes the score function needed by
// gradient based losses.
type DifferentiablePolicy interface {
	Policy
	// GradLogProb is the gradient of log pi(action|features) with respect
	// to the policy parameters.
	GradLogProb(features []float64, action int) (Gradients, error)
}

// Loss condenses an agent trajectory into a parameter gradient.
type Loss interface {
	ComputeGradient(policy Policy, trajectory *Trajectory) (Gradients, error)
}

// DecayFunction scales a quantity with distance, e.g. a concentration
// field around a source.
type DecayFunction func(distance float64) float64
