package types

import "testing"

func TestTrajectoryAppendAndReset(t *testing.T) {
	trajectory := NewTrajectory()
	for i := 0; i < 5; i++ {
		trajectory.Append(TrajectoryRecord{Reward: float64(i)})
	}
	if trajectory.Len() != 5 {
		t.Errorf("expected 5 records, got %d", trajectory.Len())
	}
	trajectory.Reset()
	if trajectory.Len() != 0 {
		t.Errorf("expected empty trajectory after reset, got %d records", trajectory.Len())
	}
}

func TestTrajectoryKilled(t *testing.T) {
	trajectory := NewTrajectory()
	trajectory.Append(TrajectoryRecord{})
	if trajectory.Killed() {
		t.Errorf("trajectory without kill flags reported killed")
	}
	trajectory.Append(TrajectoryRecord{Killed: true})
	trajectory.Append(TrajectoryRecord{})
	if !trajectory.Killed() {
		t.Errorf("trajectory with a killed record not reported killed")
	}
}

func TestTrajectoryMeanReward(t *testing.T) {
	trajectory := NewTrajectory()
	if trajectory.MeanReward() != 0 {
		t.Errorf("empty trajectory mean reward should be 0")
	}
	trajectory.Append(TrajectoryRecord{Reward: 1})
	trajectory.Append(TrajectoryRecord{Reward: 3})
	if got := trajectory.MeanReward(); got != 2 {
		t.Errorf("expected mean reward 2, got %f", got)
	}
}
