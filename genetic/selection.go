package genetic

import (
	"fmt"
	"sort"
)

// selectParents ranks the generation by fitness descending and returns the
// top count as parents. The sort is stable so equal fitness resolves by
// original population index, keeping selection deterministic. Failed
// evaluations are excluded; running out of successful evaluations is
// fatal.
func selectParents(population []Individual, count int) ([]Individual, error) {
	successful := make([]Individual, 0, len(population))
	for _, in := range population {
		if in.Evaluated && in.Err == nil {
			successful = append(successful, in)
		}
	}
	if len(successful) < count {
		return nil, fmt.Errorf("cannot select %d parents from %d successful evaluations", count, len(successful))
	}
	sort.SliceStable(successful, func(i, j int) bool {
		return successful[i].Fitness > successful[j].Fitness
	})
	parents := make([]Individual, count)
	for i := 0; i < count; i++ {
		parents[i] = successful[i].clone()
	}
	return parents, nil
}
