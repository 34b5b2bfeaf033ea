package trainers

import (
	"fmt"

	"github.com/swarmlab/swarmtrain/dispatch"
	"github.com/swarmlab/swarmtrain/monitor"
	"github.com/swarmlab/swarmtrain/types"
)

// EpisodicConfig configures a single training run.
type EpisodicConfig struct {
	Episodes       int
	EpisodeLength  int
	ResetFrequency int

	GetEngine types.EnvironmentFactory
	Force     *dispatch.ForceFunction
	Loss      types.Loss

	Seed uint64

	// advisory surfaces
	LoadBar bool
	Status  *monitor.Status
}

// EpisodicTrainer drives one training run: engine lifecycle, episode
// integration, kill detection, reward aggregation and policy updates. It
// is strictly single threaded, the engine's Integrate call is the only
// blocking point.
type EpisodicTrainer struct {
	cfg    EpisodicConfig
	engine types.Environment
}

func NewEpisodicTrainer(cfg EpisodicConfig) (*EpisodicTrainer, error) {
	if cfg.Episodes <= 0 {
		return nil, fmt.Errorf("episodes must be > 0")
	}
	if cfg.EpisodeLength <= 0 {
		return nil, fmt.Errorf("episode length must be > 0")
	}
	if cfg.ResetFrequency <= 0 {
		cfg.ResetFrequency = 1
	}
	if cfg.GetEngine == nil {
		return nil, fmt.Errorf("environment factory is required")
	}
	if cfg.Force == nil {
		return nil, fmt.Errorf("force function is required")
	}
	if cfg.Loss == nil {
		return nil, fmt.Errorf("loss is required")
	}
	return &EpisodicTrainer{cfg: cfg}, nil
}

// Run executes the configured number of episodes and returns the reward
// history in episode order, seeded with 0.0 so its length is Episodes+1.
// A kill reported by any agent's task is not an error: it only forces the
// engine to be rebuilt before the next episode. Errors escaping the
// engine's Integrate are not caught here, they terminate the run with the
// partial history.
func (t *EpisodicTrainer) Run() ([]float64, error) {
	rewards := []float64{0.0}
	killed := false

	progress := newProgressLine(t.cfg.LoadBar)
	defer progress.stop()

	for episode := 0; episode < t.cfg.Episodes; episode++ {
		// INITIALIZING: rebuild a contaminated or stale engine and re-bind
		// every agent to the fresh colloid set.
		if episode%t.cfg.ResetFrequency == 0 || killed {
			if t.engine != nil {
				if err := t.engine.Finalize(); err != nil {
					return rewards, err
				}
			}
			engine, err := t.cfg.GetEngine(t.cfg.Seed + uint64(episode))
			if err != nil {
				return rewards, fmt.Errorf("building engine for episode %d: %w", episode, err)
			}
			t.engine = engine
			for _, agent := range t.cfg.Force.Agents() {
				agent.Initialize(t.engine.Colloids())
			}
		}
		for _, agent := range t.cfg.Force.Agents() {
			agent.ResetTrajectory()
		}

		// RUNNING_EPISODE
		if err := t.engine.Integrate(t.cfg.EpisodeLength, t.cfg.Force); err != nil {
			return rewards, err
		}

		// AGGREGATING
		killed = t.cfg.Force.Killed()
		currentReward := t.aggregateReward()

		// UPDATING
		for _, agent := range t.cfg.Force.Agents() {
			grads, err := t.cfg.Loss.ComputeGradient(agent.Policy(), agent.Trajectory())
			if err != nil {
				return rewards, fmt.Errorf("computing gradient for type %d: %w", agent.ParticleType(), err)
			}
			if err := agent.Policy().UpdateModel(grads); err != nil {
				return rewards, fmt.Errorf("updating policy for type %d: %w", agent.ParticleType(), err)
			}
		}

		rewards = append(rewards, currentReward)
		running := trailingMean(rewards, 10)
		progress.update(episode+1, t.cfg.Episodes, currentReward, running)
		if t.cfg.Status != nil {
			t.cfg.Status.UpdateEpisode(episode+1, t.cfg.Episodes, currentReward, running)
		}

	}
	if err := t.engine.Finalize(); err != nil {
		return rewards, err
	}
	return rewards, nil
}

// aggregateReward is the mean over agents of each agent's mean per-step
// reward.
func (t *EpisodicTrainer) aggregateReward() float64 {
	agents := t.cfg.Force.Agents()
	if len(agents) == 0 {
		return 0
	}
	sum := 0.0
	for _, agent := range agents {
		sum += agent.Trajectory().MeanReward()
	}
	return sum / float64(len(agents))
}

func trailingMean(values []float64, window int) float64 {
	if len(values) == 0 {
		return 0
	}
	start := len(values) - window
	if start < 0 {
		start = 0
	}
	sum := 0.0
	for _, v := range values[start:] {
		sum += v
	}
	return sum / float64(len(values)-start)
}
