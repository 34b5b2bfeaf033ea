package types

// TrajectoryRecord holds the bookkeeping of one simulation step for the
// batch of colloids handled by a single agent.
type TrajectoryRecord struct {
	Features [][]float64
	Indices  []int
	LogProbs []float64
	Reward   float64
	Killed   bool
}

// Trajectory is the append-only episode buffer of one agent. It is reset at
// trainer-controlled boundaries and never shared between agents.
type Trajectory struct {
	records []TrajectoryRecord
}

func NewTrajectory() *Trajectory {
	return &Trajectory{records: make([]TrajectoryRecord, 0)}
}

func (t *Trajectory) Append(record TrajectoryRecord) {
	t.records = append(t.records, record)
}

func (t *Trajectory) Len() int {
	return len(t.records)
}

func (t *Trajectory) Get(i int) (TrajectoryRecord, bool) {
	if i < 0 || i >= len(t.records) {
		return TrajectoryRecord{}, false
	}
	return t.records[i], true
}

// Reset clears the buffer for a new episode.
func (t *Trajectory) Reset() {
	t.records = t.records[:0]
}

// Killed reports whether any recorded step carried a kill signal.
func (t *Trajectory) Killed() bool {
	for _, r := range t.records {
		if r.Killed {
			return true
		}
	}
	return false
}

// MeanReward is the average per-step reward over the buffer, zero when
// nothing has been recorded.
func (t *Trajectory) MeanReward() float64 {
	if len(t.records) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range t.records {
		sum += r.Reward
	}
	return sum / float64(len(t.records))
}
