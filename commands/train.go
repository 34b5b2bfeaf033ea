package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swarmlab/swarmtrain/analysis"
	"github.com/swarmlab/swarmtrain/losses"
	"github.com/swarmlab/swarmtrain/monitor"
	"github.com/swarmlab/swarmtrain/trainers"
)

func TrainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "train",
		Short: "Run a single episodic training",
		RunE: func(cmd *cobra.Command, args []string) error {
			force, err := buildForceFunction(seed)
			if err != nil {
				return err
			}

			var status *monitor.Status
			if monitorAddr != "" {
				status = monitor.NewStatus()
				ctx, cancel := context.WithCancel(cmd.Context())
				defer cancel()
				monitor.NewServer(monitorAddr, status).Start(ctx)
			}

			trainer, err := trainers.NewEpisodicTrainer(trainers.EpisodicConfig{
				Episodes:       episodes,
				EpisodeLength:  episodeLength,
				ResetFrequency: resetFrequency,
				GetEngine:      engineFactory(colloids),
				Force:          force,
				Loss:           losses.NewPolicyGradientLoss(0.99),
				Seed:           seed,
				LoadBar:        true,
				Status:         status,
			})
			if err != nil {
				return err
			}

			rewards, runErr := trainer.Run()

			// keep the partial history accessible even on a failed run
			if err := analysis.RecordRewards(saveDir, "train", rewards); err != nil {
				fmt.Println(err)
			}
			if err := analysis.PlotRewardHistory(saveDir, "train", rewards); err != nil {
				fmt.Println(err)
			}
			return runErr
		},
	}
}
