package commands

import "github.com/spf13/cobra"

var (
	episodes       int
	episodeLength  int
	resetFrequency int
	saveDir        string
	seed           uint64
	monitorAddr    string
	colloids       int
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "swarmtrain",
		Short: "Train control policies on a simulated colloid swarm",
	}
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", 100, "Number of episodes per training run")
	rootCommand.PersistentFlags().IntVar(&episodeLength, "episode-length", 20, "Integration steps per episode")
	rootCommand.PersistentFlags().IntVar(&resetFrequency, "reset-frequency", 1, "Episodes between engine resets")
	rootCommand.PersistentFlags().StringVarP(&saveDir, "save", "s", "results", "Directory for plots and records")
	rootCommand.PersistentFlags().Uint64Var(&seed, "seed", 42, "Base random seed")
	rootCommand.PersistentFlags().StringVar(&monitorAddr, "monitor", "", "Address for the status endpoint, empty disables it")
	rootCommand.PersistentFlags().IntVar(&colloids, "colloids", 10, "Number of colloids in the swarm")
	rootCommand.AddCommand(TrainCommand())
	rootCommand.AddCommand(EvolveCommand())
	return rootCommand
}
