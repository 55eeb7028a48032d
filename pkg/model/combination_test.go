package model

import (
	"testing"

	. "github.com/onsi/gomega"
	"go.uber.org/multierr"
)

func candidate(kind GroupKind, kids, groups, remainder int, score float64, feasible bool) CandidateResult {
	return CandidateResult{
		Spec:           CandidateSpec{Kind: kind, Ages: []int{kids % AgeWindow}, Size: SizeBounds{Min: 1, Max: 1}},
		KidCount:       kids,
		GroupCount:     groups,
		RemainderCount: remainder,
		Score:          score,
		Feasible:       feasible,
	}
}

func TestAggregateExcludesEmptyCandidates(t *testing.T) {
	g := NewWithT(t)

	//** Arrange
	aggregator := NewAggregator([]CandidateResult{
		candidate(Homogeneous, 0, 0, 0, 57, false),
		candidate(Homogeneous, 12, 1, 0, 2.0, true),
		candidate(Heterogeneous, 20, 2, 0, 4.0, true),
	})

	//** Act
	result, err := aggregator.Aggregate([]int{0, 1, 2})

	//** Assert
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(result.ScoreDefined).To(BeTrue())
	g.Expect(result.Score).To(BeNumerically("~", 3.0, 1e-9))
	g.Expect(result.EmptyCount).To(Equal(1))
	g.Expect(result.Groups).To(Equal(map[GroupKind]int{Homogeneous: 1, Heterogeneous: 2, Combined: 0}))
	g.Expect(result.ActiveCandidates).To(Equal(map[GroupKind]int{Homogeneous: 1, Heterogeneous: 1, Combined: 0}))
	g.Expect(result.TotalGroups()).To(Equal(3))
	g.Expect(result.CoveragePercent).To(BeNumerically("~", 100.0, 1e-9))
	g.Expect(result.Feasible).To(BeTrue())
}

func TestAggregateInfeasibleCandidate(t *testing.T) {
	g := NewWithT(t)

	aggregator := NewAggregator([]CandidateResult{
		candidate(Homogeneous, 12, 1, 0, 1.0, true),
		candidate(Homogeneous, 13, 1, 1, 3.0, false),
	})

	result, err := aggregator.Aggregate([]int{0, 1})

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(result.Score).To(BeNumerically("~", 2.0, 1e-9))
	g.Expect(result.CoveragePercent).To(BeZero())
	g.Expect(result.Feasible).To(BeFalse())
}

func TestAggregatePartialCoverage(t *testing.T) {
	g := NewWithT(t)

	// A candidate with kids but no groups is feasible on neither side
	aggregator := NewAggregator([]CandidateResult{
		candidate(Combined, 17, 1, 0, 1.5, true),
		candidate(Combined, 5, 0, 5, 627, false),
	})

	result, err := aggregator.Aggregate([]int{0, 1, 0})

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(result.Groups[Combined]).To(Equal(2))
	g.Expect(result.ActiveCandidates[Combined]).To(Equal(2))
	g.Expect(result.Ages).To(HaveLen(3))
	g.Expect(result.CoveragePercent).To(BeZero())
	g.Expect(result.Feasible).To(BeFalse())
}

func TestAggregateDivisionUndefined(t *testing.T) {
	g := NewWithT(t)

	aggregator := NewAggregator([]CandidateResult{
		candidate(Homogeneous, 0, 0, 0, 57, false),
		candidate(Heterogeneous, 0, 0, 0, 114, false),
	})

	result, err := aggregator.Aggregate([]int{0, 1})

	g.Expect(err).To(MatchError(ErrDivisionUndefined))
	g.Expect(result.ScoreDefined).To(BeFalse())
	g.Expect(result.EmptyCount).To(Equal(2))
	g.Expect(result.Feasible).To(BeFalse())
}

func TestAggregateIndexOutOfRange(t *testing.T) {
	g := NewWithT(t)

	aggregator := NewAggregator([]CandidateResult{candidate(Homogeneous, 12, 1, 0, 1.0, true)})

	_, err := aggregator.Aggregate([]int{0, 1})
	g.Expect(err).To(MatchError(ErrIndexOutOfRange))

	_, err = aggregator.Aggregate([]int{-1})
	g.Expect(err).To(MatchError(ErrIndexOutOfRange))
}

func TestAggregateAll(t *testing.T) {
	g := NewWithT(t)

	//** Arrange
	aggregator := NewAggregator([]CandidateResult{
		candidate(Homogeneous, 0, 0, 0, 57, false),
		candidate(Homogeneous, 12, 1, 0, 2.0, true),
		candidate(Heterogeneous, 20, 2, 0, 4.0, true),
	})

	//** Act
	rows, err := aggregator.AggregateAll([]Combination{
		{Name: "first", Candidates: []int{1, 2}},
		{Name: "dangling", Candidates: []int{1, 7}},
		{Name: "empty", Candidates: []int{0}},
		{Name: "last", Candidates: []int{0, 1}},
	})

	//** Assert
	g.Expect(rows).To(HaveLen(4))
	g.Expect(rows[0].Err).NotTo(HaveOccurred())
	g.Expect(rows[0].Result.Score).To(BeNumerically("~", 3.0, 1e-9))
	g.Expect(rows[1].Err).To(MatchError(ErrIndexOutOfRange))
	g.Expect(rows[2].Err).To(MatchError(ErrDivisionUndefined))
	g.Expect(rows[3].Err).NotTo(HaveOccurred())
	g.Expect(rows[3].Result.Score).To(BeNumerically("~", 2.0, 1e-9))

	g.Expect(multierr.Errors(err)).To(HaveLen(2))
	g.Expect(err).To(MatchError(ContainSubstring("dangling")))
}

func TestAggregateDefaultScenario(t *testing.T) {
	g := NewWithT(t)

	//** Arrange
	scenario := DefaultScenario()
	results, err := NewEvaluator(scenario.Population).EvaluateAll(scenario.Candidates)
	g.Expect(err).NotTo(HaveOccurred())

	//** Act
	rows, err := NewAggregator(results).AggregateAll(scenario.Combinations)

	//** Assert
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(rows).To(HaveLen(6))

	byYear := rows[0].Result
	g.Expect(byYear.EmptyCount).To(Equal(1))
	g.Expect(byYear.Groups[Homogeneous]).To(Equal(2))
	g.Expect(byYear.Feasible).To(BeFalse())

	nurseryAndKindergarten := rows[2].Result
	g.Expect(nurseryAndKindergarten.Groups[Homogeneous]).To(Equal(7))
	g.Expect(nurseryAndKindergarten.Score).To(BeNumerically("~", (1.0/6+1.0/8)/2, 1e-9))
	g.Expect(nurseryAndKindergarten.CoveragePercent).To(BeNumerically("~", 100.0, 1e-9))
	g.Expect(nurseryAndKindergarten.Feasible).To(BeTrue())

	heterogeneous := rows[3].Result
	g.Expect(heterogeneous.Groups[Heterogeneous]).To(Equal(7))
	g.Expect(heterogeneous.Score).To(BeNumerically("~", (0.5+2.0/3)/2, 1e-9))
	g.Expect(heterogeneous.Feasible).To(BeTrue())

	combined := rows[5].Result
	g.Expect(combined.Groups[Combined]).To(Equal(7))
	g.Expect(combined.Score).To(BeNumerically("~", 3.0/7, 1e-9))
}
