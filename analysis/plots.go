package analysis

import (
	"fmt"
	"path"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/swarmlab/swarmtrain/util"
)

// PlotRewardHistory writes a line plot of the per-episode reward history.
func PlotRewardHistory(plotDir, name string, rewards []float64) error {
	if err := util.EnsureDir(plotDir); err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = "Episodic training"
	p.X.Label.Text = "Episode"
	p.Y.Label.Text = "Reward"

	points := make(plotter.XYs, len(rewards))
	for i, r := range rewards {
		points[i] = plotter.XY{X: float64(i), Y: r}
	}
	line, err := plotter.NewLine(points)
	if err != nil {
		return err
	}
	line.Color = plotutil.Color(0)
	p.Add(line)
	p.Legend.Add(name, line)
	return p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotDir, name+"_rewards.png"))
}

// PlotFitnessTrace writes a line plot of the best fitness per generation.
func PlotFitnessTrace(plotDir, name string, trace []float64) error {
	if err := util.EnsureDir(plotDir); err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = "Population training"
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Best fitness"

	points := make(plotter.XYs, len(trace))
	for i, f := range trace {
		points[i] = plotter.XY{X: float64(i), Y: f}
	}
	line, err := plotter.NewLine(points)
	if err != nil {
		return err
	}
	line.Color = plotutil.Color(1)
	p.Add(line)
	p.Legend.Add(name, line)
	return p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotDir, name+"_fitness.png"))
}

// RecordRewards appends the reward history as one JSON line.
func RecordRewards(saveDir, name string, rewards []float64) error {
	record := map[string]any{"name": name, "rewards": rewards}
	return util.AppendJSONL(path.Join(saveDir, fmt.Sprintf("%s_rewards.jsonl", name)), record)
}
