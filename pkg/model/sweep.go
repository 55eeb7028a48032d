package model

// Evaluates a single target-age set against every size bounds with min in minRange, max in maxRange and min <= max.
// Results are ordered by min and then by max. The sweep uses its own evaluator, so the caller's intermediate table is untouched
func Sweep(population *Population, kind GroupKind, ages []int, minRange, maxRange SizeBounds, exception bool) ([]CandidateResult, error) {
	evaluator := NewEvaluator(population)

	specs := make([]CandidateSpec, 0)
	for minSize := minRange.Min; minSize <= minRange.Max; minSize++ {
		for maxSize := maxRange.Min; maxSize <= maxRange.Max; maxSize++ {
			if minSize > maxSize {
				continue
			}
			specs = append(specs, CandidateSpec{
				Kind:               kind,
				Ages:               ages,
				Size:               SizeBounds{Min: minSize, Max: maxSize},
				ExceptionRequested: exception,
			})
		}
	}

	return evaluator.EvaluateAll(specs)
}
