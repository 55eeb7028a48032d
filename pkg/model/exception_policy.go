package model

// Decides the exception outcome of a requested exception, it must be a pure function
type ExceptionPolicy func(spec CandidateSpec, distribution [AgeWindow]int, groups int) ExceptionOutcome

type ExceptionPolicies map[GroupKind]ExceptionPolicy

func DefaultExceptionPolicies() ExceptionPolicies {
	return ExceptionPolicies{
		Homogeneous:   homogeneousException,
		Heterogeneous: heterogeneousException,
		Combined:      combinedException,
	}
}

// Placeholder: a homogeneous exception has no condition yet
func homogeneousException(_ CandidateSpec, _ [AgeWindow]int, _ int) ExceptionOutcome {
	return ExceptionGranted
}

// At most ten three-year-olds per group
func heterogeneousException(_ CandidateSpec, distribution [AgeWindow]int, groups int) ExceptionOutcome {
	if distribution[3] <= 10*groups {
		return ExceptionGranted
	}
	return ExceptionDenied
}

func combinedException(spec CandidateSpec, distribution [AgeWindow]int, _ int) ExceptionOutcome {
	young, old := 0, 0
	for age, kids := range distribution {
		if age <= 2 {
			young += kids
		} else {
			old += kids
		}
	}

	if young < 3 {
		return ExceptionDenied
	} else if young <= 7 && young+old == spec.Size.Max {
		return ExceptionGranted
	}
	// More than seven young kids, or a group that is not completely covered
	return ExceptionUnspecified
}
