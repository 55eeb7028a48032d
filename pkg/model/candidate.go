package model

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Ages covered by the age distribution: [0, AgeWindow)
const AgeWindow = 8

type SizeBounds struct {
	Min int
	Max int
}

func (bounds SizeBounds) String() string {
	return fmt.Sprintf("[%d, %d]", bounds.Min, bounds.Max)
}

type CandidateSpec struct {
	Kind               GroupKind
	Ages               []int
	Size               SizeBounds
	ExceptionRequested bool
}

func (spec CandidateSpec) validate() error {
	if !spec.Kind.Valid() {
		return fmt.Errorf("%w: unknown group kind %v", ErrInvalidInput, spec.Kind)
	} else if len(spec.Ages) == 0 {
		return fmt.Errorf("%w: candidate has no target ages", ErrInvalidInput)
	} else if spec.Size.Min <= 0 || spec.Size.Max <= 0 {
		return fmt.Errorf("%w: size bounds %v must be positive", ErrInvalidInput, spec.Size)
	} else if spec.Size.Min > spec.Size.Max {
		return fmt.Errorf("%w: size bounds %v have min greater than max", ErrInvalidInput, spec.Size)
	}
	return nil
}

type ExceptionOutcome int

const (
	ExceptionNotRequested ExceptionOutcome = iota
	ExceptionGranted
	ExceptionDenied
	ExceptionUnspecified // Requested, but no rule of the kind's policy fires
)

func (outcome ExceptionOutcome) String() string {
	switch outcome {
	case ExceptionGranted:
		return "granted"
	case ExceptionDenied:
		return "denied"
	case ExceptionUnspecified:
		return "not specified"
	}
	return "-"
}

// Row of the intermediate table
type CandidateResult struct {
	Spec             CandidateSpec
	KidCount         int
	AgeDistribution  [AgeWindow]int
	GroupCount       int
	RemainderCount   int
	ExceptionOutcome ExceptionOutcome
	Score            float64
	Feasible         bool
}

// Target ages sorted and without duplicates, as shown in tables
func (result CandidateResult) Ages() []int {
	ages := lo.Uniq(result.Spec.Ages)
	slices.Sort(ages)
	return ages
}

func (result CandidateResult) Empty() bool {
	return result.KidCount == 0
}

// Contributes at least one actual group
func (result CandidateResult) Active() bool {
	return result.KidCount > 0 && result.GroupCount > 0
}
