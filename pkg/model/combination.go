package model

import (
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/multierr"
)

// Set of candidates asserted by the operator to cover every age of the population exactly once.
// The coverage itself is not verified
type Combination struct {
	Name       string
	Candidates []int // Positions in the intermediate table
}

// Row of the end table
type CombinationResult struct {
	Ages             [][]int
	Groups           map[GroupKind]int // Groups formed per kind
	ActiveCandidates map[GroupKind]int // Candidates per kind contributing at least one group
	EmptyCount       int
	Score            float64
	ScoreDefined     bool // False when every referenced candidate is empty
	CoveragePercent  float64
	Feasible         bool
}

func (result CombinationResult) TotalGroups() int {
	return lo.Sum(lo.Values(result.Groups))
}

type CombinationRow struct {
	Combination Combination
	Result      CombinationResult
	Err         error
}

// Aggregator builds the end table out of the rows of an intermediate table
type Aggregator interface {
	// Aggregates the referenced candidates. ErrIndexOutOfRange fails the combination,
	// ErrDivisionUndefined comes along with a result whose score is undefined
	Aggregate(candidates []int) (CombinationResult, error)

	// Aggregates every combination; a failing combination does not stop the rest.
	// The returned error combines the errors of every failed row
	AggregateAll(combinations []Combination) ([]CombinationRow, error)
}

func NewAggregator(results []CandidateResult) Aggregator {
	return &aggregatorImplementation{results: results}
}

type aggregatorImplementation struct {
	results []CandidateResult
}

func (aggregator *aggregatorImplementation) Aggregate(candidates []int) (CombinationResult, error) {
	//** Resolve references
	referenced := make([]CandidateResult, 0, len(candidates))
	for _, index := range candidates {
		if index < 0 || index >= len(aggregator.results) {
			return CombinationResult{}, fmt.Errorf("%w: candidate %d does not exist (%d candidates)", ErrIndexOutOfRange, index, len(aggregator.results))
		}
		referenced = append(referenced, aggregator.results[index])
	}

	//** Accumulate per kind
	result := CombinationResult{
		Ages:             lo.Map(referenced, func(candidate CandidateResult, _ int) []int { return candidate.Ages() }),
		Groups:           make(map[GroupKind]int),
		ActiveCandidates: make(map[GroupKind]int),
	}
	for _, kind := range GroupKinds() {
		result.Groups[kind] = 0
		result.ActiveCandidates[kind] = 0
	}
	for _, candidate := range referenced {
		result.Groups[candidate.Spec.Kind] += candidate.GroupCount
		if candidate.Active() {
			result.ActiveCandidates[candidate.Spec.Kind]++
		}
	}

	//** Score over non-empty candidates
	contributing := lo.Reject(referenced, func(candidate CandidateResult, _ int) bool { return candidate.Empty() })
	result.EmptyCount = len(referenced) - len(contributing)
	if len(contributing) == 0 {
		return result, fmt.Errorf("%w: all %d referenced candidates are empty", ErrDivisionUndefined, len(referenced))
	}

	result.Score = lo.SumBy(contributing, func(candidate CandidateResult) float64 { return candidate.Score }) / float64(len(contributing))
	result.ScoreDefined = true

	// A contributing candidate is clean when it is feasible on its own, has groups and leaves nobody behind
	allFeasible := lo.EveryBy(contributing, func(candidate CandidateResult) bool { return candidate.Feasible })
	allClean := lo.EveryBy(contributing, func(candidate CandidateResult) bool {
		return candidate.GroupCount > 0 && candidate.RemainderCount == 0
	})

	active := lo.Sum(lo.Values(result.ActiveCandidates))
	result.CoveragePercent = lo.Ternary(allFeasible, 100*float64(active)/float64(len(contributing)), 0)
	result.Feasible = allFeasible && allClean

	return result, nil
}

func (aggregator *aggregatorImplementation) AggregateAll(combinations []Combination) ([]CombinationRow, error) {
	rows := make([]CombinationRow, 0, len(combinations))
	var errs error
	for i, combination := range combinations {
		result, err := aggregator.Aggregate(combination.Candidates)
		if err != nil {
			err = fmt.Errorf("combination %d (%v): %w", i, combination.Name, err)
			errs = multierr.Append(errs, err)
		}
		rows = append(rows, CombinationRow{
			Combination: combination,
			Result:      result,
			Err:         err,
		})
	}
	return rows, errs
}
