package model

import (
	"cmp"
	"slices"
)

type RankedCandidate struct {
	Position int // Position in the intermediate table
	Result   CandidateResult
}

// Orders the candidates feasible first and then by ascending score, keeping table order between ties
func RankCandidates(results []CandidateResult) []RankedCandidate {
	ranked := make([]RankedCandidate, len(results))
	for i, result := range results {
		ranked[i] = RankedCandidate{Position: i, Result: result}
	}

	slices.SortStableFunc(ranked, func(a, b RankedCandidate) int {
		if c := compareFeasibility(a.Result.Feasible, b.Result.Feasible); c != 0 {
			return c
		}
		return cmp.Compare(a.Result.Score, b.Result.Score)
	})
	return ranked
}

// Orders the rows feasible first and then by ascending score. Failed rows and rows with an undefined score go last
func RankCombinations(rows []CombinationRow) []CombinationRow {
	ranked := slices.Clone(rows)

	slices.SortStableFunc(ranked, func(a, b CombinationRow) int {
		aRankable, bRankable := a.rankable(), b.rankable()
		if aRankable != bRankable {
			return compareFeasibility(aRankable, bRankable)
		} else if !aRankable {
			return 0
		}

		if c := compareFeasibility(a.Result.Feasible, b.Result.Feasible); c != 0 {
			return c
		}
		return cmp.Compare(a.Result.Score, b.Result.Score)
	})
	return ranked
}

func (row CombinationRow) rankable() bool {
	return row.Err == nil && row.Result.ScoreDefined
}

func compareFeasibility(a, b bool) int {
	if a == b {
		return 0
	} else if a {
		return -1
	}
	return 1
}
