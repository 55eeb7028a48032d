package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/limaJavier/kidsgroups/pkg/config"
	"github.com/limaJavier/kidsgroups/pkg/model"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"k8s.io/klog/v2"
)

var scenarioExtensions = []string{".json", ".yaml", ".yml"}

type ScenarioSummary struct {
	Name                 string
	ReferenceYear        int
	Kids                 int
	Candidates           int
	FeasibleCandidates   int
	Combinations         int
	FailedCombinations   int
	BestCombination      string
	BestScore            string
	BestCombinationValid bool
}

func batchCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [scenario-directory]",
		Short: "Summarize every scenario file of a directory into a CSV table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			summaries, err := summarizeDirectory(args[0], cfg.ReferenceYear)
			if err != nil {
				return err
			}

			if cfg.Output == "" {
				return toCsv(cmd.OutOrStdout(), summaries)
			}
			file, err := os.Create(cfg.Output)
			if err != nil {
				return fmt.Errorf("cannot create CSV file: %w", err)
			}
			defer func() {
				err = multierr.Append(err, file.Close())
			}()
			return toCsv(file, summaries)
		},
	}
}

// Summarizes every scenario file of the directory; a non-zero reference year overrides the scenarios' one
func summarizeDirectory(directory string, referenceYear int) ([]ScenarioSummary, error) {
	files, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory: %w", err)
	}

	summaries := make([]ScenarioSummary, 0)
	for _, file := range files {
		if file.IsDir() || !slices.Contains(scenarioExtensions, strings.ToLower(filepath.Ext(file.Name()))) {
			continue
		}

		filename := filepath.Join(directory, file.Name())
		summary, err := summarizeScenario(filename, referenceYear)
		if err != nil {
			klog.ErrorS(err, "Scenario skipped", "file", filename)
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func summarizeScenario(filename string, referenceYear int) (ScenarioSummary, error) {
	planning, err := runSession(&config.Config{Scenario: filename, ReferenceYear: referenceYear})
	if err != nil {
		return ScenarioSummary{}, err
	}

	summary := ScenarioSummary{
		Name:               filename,
		ReferenceYear:      planning.scenario.Population.ReferenceYear(),
		Kids:               planning.scenario.Population.Total(),
		Candidates:         len(planning.results),
		FeasibleCandidates: lo.CountBy(planning.results, func(result model.CandidateResult) bool { return result.Feasible }),
		Combinations:       len(planning.combinations),
		FailedCombinations: lo.CountBy(planning.combinations, func(row model.CombinationRow) bool { return row.Err != nil }),
		BestScore:          "undefined",
	}

	ranked := model.RankCombinations(planning.combinations)
	if len(ranked) > 0 && ranked[0].Err == nil && ranked[0].Result.ScoreDefined {
		summary.BestCombination = ranked[0].Combination.Name
		summary.BestScore = fmt.Sprintf("%.3f", ranked[0].Result.Score)
		summary.BestCombinationValid = ranked[0].Result.Feasible
	}
	return summary, nil
}

func toCsv(writer io.Writer, summaries []ScenarioSummary) error {
	csvWriter := csv.NewWriter(writer)

	header := []string{"Scenario", "Reference year", "Kids", "Candidates", "Feasible candidates", "Combinations", "Failed combinations", "Best combination", "Best score", "Feasible"}
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, summary := range summaries {
		record := []string{
			summary.Name,
			fmt.Sprintf("%d", summary.ReferenceYear),
			fmt.Sprintf("%d", summary.Kids),
			fmt.Sprintf("%d", summary.Candidates),
			fmt.Sprintf("%d", summary.FeasibleCandidates),
			fmt.Sprintf("%d", summary.Combinations),
			fmt.Sprintf("%d", summary.FailedCombinations),
			summary.BestCombination,
			summary.BestScore,
			fmt.Sprintf("%v", summary.BestCombinationValid),
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
