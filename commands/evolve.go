package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swarmlab/swarmtrain/analysis"
	"github.com/swarmlab/swarmtrain/genetic"
	"github.com/swarmlab/swarmtrain/losses"
	"github.com/swarmlab/swarmtrain/monitor"
)

func EvolveCommand() *cobra.Command {
	var (
		populationSize int
		parents        int
		generations    int
		parallelJobs   int
		mutationScale  float64
		elitism        bool
	)
	command := &cobra.Command{
		Use:   "evolve",
		Short: "Evolve a population of training runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			var status *monitor.Status
			if monitorAddr != "" {
				status = monitor.NewStatus()
				ctx, cancel := context.WithCancel(cmd.Context())
				defer cancel()
				monitor.NewServer(monitorAddr, status).Start(ctx)
			}

			trainer, err := genetic.NewTrainer(genetic.Config{
				PopulationSize:  populationSize,
				NumberOfParents: parents,
				Generations:     generations,
				ParallelJobs:    parallelJobs,
				Episodes:        episodes,
				EpisodeLength:   episodeLength,
				ResetFrequency:  resetFrequency,
				Seed:            seed,
				MutationScale:   mutationScale,
				Elitism:         elitism,
				GetEngine:       engineFactory(colloids),
				BuildForce:      buildForceFunction,
				Loss:            losses.NewPolicyGradientLoss(0.99),
				OutputDir:       saveDir,
				LoadBar:         true,
				Status:          status,
			})
			if err != nil {
				return err
			}

			result, err := trainer.Run(cmd.Context())
			if err != nil {
				return err
			}

			if err := analysis.PlotFitnessTrace(saveDir, "evolve", result.FitnessTrace); err != nil {
				fmt.Println(err)
			}
			fmt.Printf("Best individual %s with fitness %.4f\n", result.Best.Lineage, result.Best.Fitness)
			return nil
		},
	}
	command.Flags().IntVar(&populationSize, "population", 4, "Population size")
	command.Flags().IntVar(&parents, "parents", 3, "Number of parents kept per generation")
	command.Flags().IntVarP(&generations, "generations", "g", 3, "Number of generations")
	command.Flags().IntVarP(&parallelJobs, "jobs", "j", 1, "Parallel evaluation jobs")
	command.Flags().Float64Var(&mutationScale, "mutation", 0.02, "Gaussian mutation scale")
	command.Flags().BoolVar(&elitism, "elitism", true, "Carry parents forward unmodified")
	return command
}
