package report

import (
	"fmt"
	"strings"

	"github.com/limaJavier/kidsgroups/pkg/model"
	"github.com/samber/lo"
)

// Dataset is a table handed to a renderer: every column maps to its ordered values, one per row
type Dataset struct {
	Title   string
	Columns []string
	Values  map[string][]string
}

func newDataset(title string, columns ...string) Dataset {
	dataset := Dataset{
		Title:   title,
		Columns: columns,
		Values:  make(map[string][]string, len(columns)),
	}
	for _, column := range columns {
		dataset.Values[column] = make([]string, 0)
	}
	return dataset
}

func (dataset *Dataset) appendRow(values ...string) {
	if len(values) != len(dataset.Columns) {
		panic(fmt.Sprintf("dataset \"%v\" has %d columns, got %d values", dataset.Title, len(dataset.Columns), len(values)))
	}
	for i, column := range dataset.Columns {
		dataset.Values[column] = append(dataset.Values[column], values[i])
	}
}

func (dataset Dataset) Rows() int {
	if len(dataset.Columns) == 0 {
		return 0
	}
	return len(dataset.Values[dataset.Columns[0]])
}

// Values of the i-th row in column order
func (dataset Dataset) Row(i int) []string {
	return lo.Map(dataset.Columns, func(column string, _ int) string { return dataset.Values[column][i] })
}

func PopulationDataset(population *model.Population) Dataset {
	dataset := newDataset("Population", "#", "Birth year", "Kids", "Age")
	for i, entry := range population.Entries() {
		dataset.appendRow(fmt.Sprint(i), fmt.Sprint(entry.BirthYear), fmt.Sprint(entry.Count), fmt.Sprint(entry.Age))
	}
	return dataset
}

var candidateColumns = []string{"#", "Kind", "Exception", "Ages", "Size", "Kids", "Distribution", "Groups (remainder)", "Score", "Feasible"}

func CandidateDataset(results []model.CandidateResult) Dataset {
	dataset := newDataset("Candidates", candidateColumns...)
	for i, result := range results {
		dataset.appendRow(candidateRow(i, result)...)
	}
	return dataset
}

func RankedCandidateDataset(ranked []model.RankedCandidate) Dataset {
	dataset := newDataset("Ranked candidates", append([]string{"Rank"}, candidateColumns...)...)
	for rank, candidate := range ranked {
		dataset.appendRow(append([]string{fmt.Sprint(rank + 1)}, candidateRow(candidate.Position, candidate.Result)...)...)
	}
	return dataset
}

func candidateRow(position int, result model.CandidateResult) []string {
	return []string{
		fmt.Sprint(position),
		result.Spec.Kind.String(),
		result.ExceptionOutcome.String(),
		formatInts(result.Ages()),
		result.Spec.Size.String(),
		fmt.Sprint(result.KidCount),
		formatInts(result.AgeDistribution[:]),
		fmt.Sprintf("%d (%d)", result.GroupCount, result.RemainderCount),
		formatScore(result.Score),
		formatBool(result.Feasible),
	}
}

func CombinationDataset(rows []model.CombinationRow) Dataset {
	columns := []string{"Combination", "Candidates", "Ages"}
	for _, kind := range model.GroupKinds() {
		columns = append(columns, fmt.Sprintf("%v groups (in use)", kind))
	}
	columns = append(columns, "Empty", "Score", "Coverage", "Feasible")

	dataset := newDataset("Combinations", columns...)
	for _, row := range rows {
		values := []string{row.Combination.Name, formatInts(row.Combination.Candidates)}

		if row.Err != nil && !row.Result.ScoreDefined && row.Result.Groups == nil {
			// The combination could not be resolved at all
			values = append(values, "-")
			for range model.GroupKinds() {
				values = append(values, "-")
			}
			values = append(values, "-", "error: "+row.Err.Error(), "-", formatBool(false))
			dataset.appendRow(values...)
			continue
		}

		result := row.Result
		values = append(values, strings.Join(lo.Map(result.Ages, func(ages []int, _ int) string { return formatInts(ages) }), " "))
		for _, kind := range model.GroupKinds() {
			values = append(values, fmt.Sprintf("%d (%d)", result.Groups[kind], result.ActiveCandidates[kind]))
		}
		values = append(values,
			fmt.Sprint(result.EmptyCount),
			lo.Ternary(result.ScoreDefined, formatScore(result.Score), "undefined"),
			fmt.Sprintf("%.0f%%", result.CoveragePercent),
			formatBool(result.Feasible),
		)
		dataset.appendRow(values...)
	}
	return dataset
}

func formatInts(values []int) string {
	return "[" + strings.Join(lo.Map(values, func(value int, _ int) string { return fmt.Sprint(value) }), ", ") + "]"
}

func formatScore(score float64) string {
	return fmt.Sprintf("%.3f", score)
}

func formatBool(value bool) string {
	return lo.Ternary(value, "yes", "no")
}
