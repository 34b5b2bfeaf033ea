package trainers

import (
	"fmt"

	"github.com/gosuri/uilive"
)

// progressLine rewrites a single terminal line per episode, mirroring the
// running state of the training loop.
type progressLine struct {
	writer  *uilive.Writer
	enabled bool
}

func newProgressLine(enabled bool) *progressLine {
	p := &progressLine{enabled: enabled}
	if enabled {
		p.writer = uilive.New()
		p.writer.Start()
	}
	return p
}

func (p *progressLine) update(episode, episodes int, currentReward, runningReward float64) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.writer, "Episode: %d/%d Episode reward: %.2f Running reward: %.2f\n",
		episode, episodes, currentReward, runningReward)
}

func (p *progressLine) stop() {
	if p.enabled {
		p.writer.Stop()
	}
}
