package model

import "iter"

type combinationGenerator interface {
	// Lazily yields every combination of one section per domain, where the first domain varies the slowest.
	// Each constraint is evaluated on every prefix as soon as a section is appended to it; a prefix violating
	// any constraint is discarded together with all of its extensions. Without constraints the full cross product is yielded.
	//
	// The sequence is finite and can be ranged over again to re-enumerate from scratch. Yielded schedules are fresh slices.
	//
	// Example:
	//
	//	generator := newCombinationGenerator(domains)
	//
	//	for combination := range generator.Combinations([]func(prefix Schedule) bool{
	//				func(prefix Schedule) bool {
	//					// Only the newest section has to be checked, the rest of the prefix was accepted already
	//					return !strings.HasSuffix(prefix[len(prefix)-1].Name, "L")
	//				},
	//			}) {
	//		...
	//	}
	Combinations(constraints []func(prefix Schedule) bool) iter.Seq[Schedule]

	// Number of combinations in the unconstrained cross product
	Size() uint64
}

func newCombinationGenerator(domains [][]Section) combinationGenerator {
	return &combinationGeneratorImplementation{domains: domains}
}
