package model

import (
	"iter"
	"math"
	"math/bits"

	"github.com/samber/lo"
)

type combinationGeneratorImplementation struct {
	domains [][]Section
}

func (generator *combinationGeneratorImplementation) Combinations(constraints []func(prefix Schedule) bool) iter.Seq[Schedule] {
	return func(yield func(Schedule) bool) {
		if len(generator.domains) == 0 {
			return
		}
		generator.combinations(constraints, 0, make(Schedule, 0, len(generator.domains)), yield)
	}
}

func (generator *combinationGeneratorImplementation) Size() uint64 {
	if len(generator.domains) == 0 {
		return 0
	}
	return lo.Reduce(generator.domains, func(size uint64, candidates []Section, _ int) uint64 {
		high, low := bits.Mul64(size, uint64(len(candidates)))
		if high != 0 {
			return math.MaxUint64
		}
		return low
	}, 1)
}

// Returns false once the consumer stops the iteration
func (generator *combinationGeneratorImplementation) combinations(
	constraints []func(prefix Schedule) bool,
	currentDomain int,
	prefix Schedule,
	yield func(Schedule) bool) bool {

	if currentDomain >= len(generator.domains) {
		combination := make(Schedule, len(prefix))
		copy(combination, prefix)
		return yield(combination)
	}

	for _, section := range generator.domains[currentDomain] {
		prefix = append(prefix, section)
		constraintViolated := lo.SomeBy(constraints, func(constraint func(prefix Schedule) bool) bool {
			return !constraint(prefix)
		})

		if !constraintViolated && !generator.combinations(constraints, currentDomain+1, prefix, yield) {
			return false
		}
		prefix = prefix[:len(prefix)-1]
	}
	return true
}

// Builds the full cross product eagerly as a fold over the domains, starting from the single empty combination.
// Every step returns a new list of new combinations; nothing is pruned
func CrossProduct(domains [][]Section) []Schedule {
	if len(domains) == 0 {
		return []Schedule{}
	}

	return lo.Reduce(domains, func(partials []Schedule, candidates []Section, _ int) []Schedule {
		extended := make([]Schedule, 0, len(partials)*len(candidates))
		for _, partial := range partials {
			for _, candidate := range candidates {
				combination := make(Schedule, len(partial), len(partial)+1)
				copy(combination, partial)
				extended = append(extended, append(combination, candidate))
			}
		}
		return extended
	}, []Schedule{{}})
}

// Product of the candidate counts, saturated at math.MaxUint64; an empty request has no combinations
func CrossProductSize(domains [][]Section) uint64 {
	return newCombinationGenerator(domains).Size()
}
