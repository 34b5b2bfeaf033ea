package genetic

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// nextGeneration refills the population from the parents. With elitism the
// parents are carried forward unmodified first; the remaining slots are
// blend crossovers of two random parents plus Gaussian mutation noise. The
// returned generation always has exactly populationSize individuals.
func nextGeneration(rng *rand.Rand, parents []Individual, populationSize, generation int, mutationScale float64, elitism bool) []Individual {
	next := make([]Individual, 0, populationSize)

	if elitism {
		for _, p := range parents {
			if len(next) == populationSize {
				break
			}
			elite := newIndividual(append([]float64(nil), p.Params...),
				fmt.Sprintf("g%d-elite-%s", generation+1, p.Lineage))
			next = append(next, elite)
		}
	}

	for len(next) < populationSize {
		a := parents[rng.Intn(len(parents))]
		b := parents[rng.Intn(len(parents))]
		alpha := rng.Float64()

		params := make([]float64, len(a.Params))
		for i := range params {
			params[i] = alpha*a.Params[i] + (1-alpha)*b.Params[i]
			if mutationScale > 0 {
				params[i] += rng.NormFloat64() * mutationScale
			}
		}
		next = append(next, newIndividual(params,
			fmt.Sprintf("g%d-i%d", generation+1, len(next))))
	}
	return next
}
