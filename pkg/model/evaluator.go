package model

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Score factor of a candidate that cannot form a single group. Candidates with groups use the reciprocal of their
// group count, not the count itself, so that the score strictly decreases as groups increase; their factor is at most 1
const ZeroGroupFactor = 57

const (
	grantedFactor = 0.5
	deniedFactor  = 5.0
	neutralFactor = 1.0
)

// Evaluator builds the intermediate table: one CandidateResult per evaluated candidate, kept in evaluation order
type Evaluator interface {
	// Evaluates the candidate and appends its result; an invalid candidate appends nothing
	Evaluate(spec CandidateSpec) (CandidateResult, error)

	// Evaluates the candidates in order and stops at the first invalid one
	EvaluateAll(specs []CandidateSpec) ([]CandidateResult, error)

	// Evaluated results in evaluation order
	Results() []CandidateResult
}

func NewEvaluator(population *Population) Evaluator {
	return NewEvaluatorWithPolicies(population, DefaultExceptionPolicies())
}

func NewEvaluatorWithPolicies(population *Population, policies ExceptionPolicies) Evaluator {
	return &evaluatorImplementation{
		population: population,
		policies:   policies,
		results:    make([]CandidateResult, 0),
	}
}

type evaluatorImplementation struct {
	population *Population
	policies   ExceptionPolicies
	results    []CandidateResult
}

func (evaluator *evaluatorImplementation) Evaluate(spec CandidateSpec) (CandidateResult, error) {
	if err := spec.validate(); err != nil {
		return CandidateResult{}, err
	}

	result := evaluate(evaluator.population, evaluator.policies, spec)
	evaluator.results = append(evaluator.results, result)
	return result, nil
}

func (evaluator *evaluatorImplementation) EvaluateAll(specs []CandidateSpec) ([]CandidateResult, error) {
	for i, spec := range specs {
		if _, err := evaluator.Evaluate(spec); err != nil {
			return evaluator.Results(), fmt.Errorf("candidate %d: %w", i, err)
		}
	}
	return evaluator.Results(), nil
}

func (evaluator *evaluatorImplementation) Results() []CandidateResult {
	return slices.Clone(evaluator.results)
}

// Assumes a validated spec
func evaluate(population *Population, policies ExceptionPolicies, spec CandidateSpec) CandidateResult {
	result := CandidateResult{Spec: spec}

	//** Kids and their distribution
	ages := lo.Uniq(spec.Ages) // Ages listed twice must not count their kids twice
	result.KidCount = population.CountForAges(ages)
	for age := range AgeWindow {
		if slices.Contains(ages, age) {
			result.AgeDistribution[age] = population.CountForAges([]int{age})
		}
	}

	//** Groups
	result.GroupCount, result.RemainderCount = groupsAndRemainder(result.KidCount, spec.Size)

	//** Exception
	result.ExceptionOutcome = ExceptionNotRequested
	if spec.ExceptionRequested {
		result.ExceptionOutcome = ExceptionUnspecified
		if policy, ok := policies[spec.Kind]; ok {
			result.ExceptionOutcome = policy(spec, result.AgeDistribution, result.GroupCount)
		}
	}

	//** Evaluation
	result.Score = score(spec.Kind, result.GroupCount, result.RemainderCount, result.ExceptionOutcome)
	result.Feasible = feasible(result.GroupCount, result.RemainderCount, result.ExceptionOutcome)

	return result
}

// Fills as many max-sized groups as the min-size threshold allows and reports what is left.
// Other splits of the kids between groups are not explored
func groupsAndRemainder(kids int, size SizeBounds) (groups, remainder int) {
	groups = kids / size.Min
	if groups == 0 {
		return groups, kids % size.Max
	}

	remaining := kids - groups*size.Max
	if remaining < 0 {
		return groups, 0
	}
	return groups, remaining % size.Max
}

// Lower is better
func score(kind GroupKind, groups, remainder int, outcome ExceptionOutcome) float64 {
	groupFactor := float64(ZeroGroupFactor)
	if groups > 0 {
		groupFactor = 1 / float64(groups) // Reciprocal on purpose: more groups out of the same kids cost less
	}
	remainderFactor := float64(2*remainder + 1)

	return kind.Weight() * groupFactor * remainderFactor * exceptionFactor(outcome)
}

func exceptionFactor(outcome ExceptionOutcome) float64 {
	switch outcome {
	case ExceptionGranted:
		return grantedFactor
	case ExceptionDenied:
		return deniedFactor
	}
	return neutralFactor
}

func feasible(groups, remainder int, outcome ExceptionOutcome) bool {
	return groups > 0 && remainder == 0 && outcome != ExceptionDenied
}
