package genetic

import (
	"context"
	"fmt"
	"math"
	"path"
	"sort"
	"sync"

	"github.com/gosuri/uilive"
	"golang.org/x/exp/rand"

	"github.com/swarmlab/swarmtrain/agents"
	"github.com/swarmlab/swarmtrain/dispatch"
	"github.com/swarmlab/swarmtrain/monitor"
	"github.com/swarmlab/swarmtrain/trainers"
	"github.com/swarmlab/swarmtrain/types"
	"github.com/swarmlab/swarmtrain/util"
)

// ForceBuilder constructs a fresh force function with its own agents and
// policies. Every evaluation job gets an independent one, so jobs share no
// mutable state.
type ForceBuilder func(seed uint64) (*dispatch.ForceFunction, error)

// Config for the population trainer.
type Config struct {
	PopulationSize  int
	NumberOfParents int
	Generations     int
	ParallelJobs    int

	Episodes       int
	EpisodeLength  int
	ResetFrequency int

	Seed          uint64
	MutationScale float64
	Elitism       bool

	GetEngine  types.EnvironmentFactory
	BuildForce ForceBuilder
	Loss       types.Loss

	OutputDir string
	LoadBar   bool
	Status    *monitor.Status
}

// Result of a population run: the fittest individual seen in any
// generation and the best fitness per generation, in order.
type Result struct {
	Best         Individual
	FitnessTrace []float64
}

// Trainer evolves a population of policy parameter sets by running one
// episodic training per individual, selecting parents by fitness and
// recombining them into the next generation.
type Trainer struct {
	cfg Config
	rng *rand.Rand
}

func NewTrainer(cfg Config) (*Trainer, error) {
	if cfg.PopulationSize <= 0 {
		return nil, fmt.Errorf("population size must be > 0")
	}
	if cfg.NumberOfParents <= 0 || cfg.NumberOfParents > cfg.PopulationSize {
		return nil, fmt.Errorf("number of parents must be in [1, population size]")
	}
	if cfg.Generations <= 0 {
		return nil, fmt.Errorf("generations must be > 0")
	}
	if cfg.ParallelJobs <= 0 {
		cfg.ParallelJobs = 1
	}
	if cfg.MutationScale == 0 {
		cfg.MutationScale = 0.02
	}
	if cfg.BuildForce == nil {
		return nil, fmt.Errorf("force builder is required")
	}
	if cfg.GetEngine == nil {
		return nil, fmt.Errorf("environment factory is required")
	}
	if cfg.Loss == nil {
		return nil, fmt.Errorf("loss is required")
	}
	return &Trainer{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

type generationRecord struct {
	Generation  int       `json:"generation"`
	BestFitness float64   `json:"best_fitness"`
	MeanFitness float64   `json:"mean_fitness"`
	Failed      int       `json:"failed"`
	Fitnesses   []float64 `json:"fitnesses"`
}

// Run evolves the population and returns the best individual found across
// all generations together with the per-generation fitness trace. A
// crashed evaluation job is recorded as a failed individual and the
// generation proceeds; the run only fails when fewer than NumberOfParents
// evaluations succeed.
func (t *Trainer) Run(ctx context.Context) (*Result, error) {
	population, err := t.seedPopulation()
	if err != nil {
		return nil, err
	}

	var writer *uilive.Writer
	if t.cfg.LoadBar {
		writer = uilive.New()
		writer.Start()
		defer writer.Stop()
	}

	best := Individual{Fitness: math.Inf(-1)}
	trace := make([]float64, 0, t.cfg.Generations)

	for gen := 0; gen < t.cfg.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		t.evaluate(ctx, population, gen)

		record := summarize(population, gen)
		trace = append(trace, record.BestFitness)
		if t.cfg.OutputDir != "" {
			util.AppendJSONL(path.Join(t.cfg.OutputDir, "generations.jsonl"), record)
		}

		for _, in := range population {
			if in.Evaluated && in.Err == nil && in.Fitness > best.Fitness {
				best = in.clone()
				best.Evaluated = true
			}
		}

		if writer != nil {
			fmt.Fprintf(writer, "Generation: %d/%d Best fitness: %.4f Mean fitness: %.4f\n",
				gen+1, t.cfg.Generations, record.BestFitness, record.MeanFitness)
		}
		if t.cfg.Status != nil {
			t.cfg.Status.UpdateGeneration(gen+1, t.cfg.Generations, best.Fitness)
		}

		parents, err := selectParents(population, t.cfg.NumberOfParents)
		if err != nil {
			return nil, fmt.Errorf("generation %d: %w", gen, err)
		}
		if gen < t.cfg.Generations-1 {
			population = nextGeneration(t.rng, parents, t.cfg.PopulationSize, gen, t.cfg.MutationScale, t.cfg.Elitism)
		}
	}

	return &Result{Best: best, FitnessTrace: trace}, nil
}

// seedPopulation derives the parameter layout from a freshly built force
// function and perturbs it per individual.
func (t *Trainer) seedPopulation() ([]Individual, error) {
	force, err := t.cfg.BuildForce(t.cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("seeding population: %w", err)
	}
	template, err := flattenParams(force)
	if err != nil {
		return nil, fmt.Errorf("seeding population: %w", err)
	}

	population := make([]Individual, t.cfg.PopulationSize)
	for i := range population {
		params := make([]float64, len(template))
		copy(params, template)
		if i > 0 {
			for j := range params {
				params[j] += t.rng.NormFloat64() * t.cfg.MutationScale
			}
		}
		population[i] = newIndividual(params, fmt.Sprintf("g0-i%d", i))
	}
	return population, nil
}

// evaluate scores every individual, running up to ParallelJobs episodic
// trainings concurrently. Each job owns its engine, agents and trajectory
// stores. Panics and errors are captured at the job boundary and recorded
// on the individual.
func (t *Trainer) evaluate(ctx context.Context, population []Individual, generation int) {
	type job struct {
		idx int
	}
	type result struct {
		idx     int
		fitness float64
		err     error
	}

	jobs := make(chan job)
	results := make(chan result, len(population))

	workerCount := t.cfg.ParallelJobs
	if workerCount > len(population) {
		workerCount = len(population)
	}

	var wg sync.WaitGroup
	wg.Add(workerCount)
	for w := 0; w < workerCount; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				if err := ctx.Err(); err != nil {
					results <- result{idx: j.idx, err: err}
					continue
				}
				fitness, err := t.evaluateIndividual(generation, j.idx, population[j.idx])
				results <- result{idx: j.idx, fitness: fitness, err: err}
			}
		}()
	}

	go func() {
		for i := range population {
			jobs <- job{idx: i}
		}
		close(jobs)
	}()

	wg.Wait()
	close(results)

	for r := range results {
		population[r.idx].Evaluated = true
		if r.err != nil {
			population[r.idx].Err = r.err
			population[r.idx].Fitness = math.Inf(-1)
			continue
		}
		population[r.idx].Fitness = r.fitness
	}
}

// evaluateIndividual runs one full episodic training with the individual's
// parameters. The recover converts a crashing engine into a failed
// evaluation instead of taking down its sibling jobs.
func (t *Trainer) evaluateIndividual(generation, index int, in Individual) (fitness float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("evaluation panicked: %v", r)
		}
	}()

	seed := deriveSeed(t.cfg.Seed, generation, index)
	force, err := t.cfg.BuildForce(seed)
	if err != nil {
		return 0, err
	}
	if err := applyParams(force, in.Params); err != nil {
		return 0, err
	}

	trainer, err := trainers.NewEpisodicTrainer(trainers.EpisodicConfig{
		Episodes:       t.cfg.Episodes,
		EpisodeLength:  t.cfg.EpisodeLength,
		ResetFrequency: t.cfg.ResetFrequency,
		GetEngine:      t.cfg.GetEngine,
		Force:          force,
		Loss:           t.cfg.Loss,
		Seed:           seed,
	})
	if err != nil {
		return 0, err
	}
	rewards, err := trainer.Run()
	if err != nil {
		return 0, err
	}
	return meanReward(rewards), nil
}

// meanReward summarizes a reward history, skipping the 0.0 seed entry.
func meanReward(rewards []float64) float64 {
	if len(rewards) <= 1 {
		return 0
	}
	sum := 0.0
	for _, r := range rewards[1:] {
		sum += r
	}
	return sum / float64(len(rewards)-1)
}

func summarize(population []Individual, generation int) generationRecord {
	record := generationRecord{
		Generation:  generation,
		BestFitness: math.Inf(-1),
		Fitnesses:   make([]float64, 0, len(population)),
	}
	sum := 0.0
	counted := 0
	for _, in := range population {
		if in.Err != nil {
			record.Failed++
			continue
		}
		record.Fitnesses = append(record.Fitnesses, in.Fitness)
		sum += in.Fitness
		counted++
		if in.Fitness > record.BestFitness {
			record.BestFitness = in.Fitness
		}
	}
	if counted > 0 {
		record.MeanFitness = sum / float64(counted)
	}
	return record
}

// flattenParams concatenates the policy parameters of every agent in
// ascending particle type order.
func flattenParams(force *dispatch.ForceFunction) ([]float64, error) {
	out := make([]float64, 0)
	for _, agent := range agentsByType(force) {
		params, err := agent.Policy().Parameters()
		if err != nil {
			return nil, err
		}
		out = append(out, params...)
	}
	return out, nil
}

// applyParams splits a flat parameter vector back onto the agents'
// policies, in the same order flattenParams produced it.
func applyParams(force *dispatch.ForceFunction, params []float64) error {
	offset := 0
	for _, agent := range agentsByType(force) {
		current, err := agent.Policy().Parameters()
		if err != nil {
			return err
		}
		end := offset + len(current)
		if end > len(params) {
			return fmt.Errorf("parameter vector too short: have %d, need at least %d", len(params), end)
		}
		if err := agent.Policy().SetParameters(params[offset:end]); err != nil {
			return err
		}
		offset = end
	}
	if offset != len(params) {
		return fmt.Errorf("parameter vector too long: have %d, used %d", len(params), offset)
	}
	return nil
}

func agentsByType(force *dispatch.ForceFunction) []*agents.Agent {
	out := make([]*agents.Agent, 0, len(force.Agents()))
	for _, agent := range force.Agents() {
		out = append(out, agent)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ParticleType() < out[j].ParticleType()
	})
	return out
}
