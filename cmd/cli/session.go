package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/limaJavier/kidsgroups/pkg/config"
	"github.com/limaJavier/kidsgroups/pkg/model"
	"github.com/limaJavier/kidsgroups/pkg/report"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"k8s.io/klog/v2"
)

// Candidate results and end-table rows of one planning session
type planningSession struct {
	scenario     model.Scenario
	results      []model.CandidateResult
	combinations []model.CombinationRow
}

func loadScenario(cfg *config.Config) (model.Scenario, error) {
	rawScenario := model.DefaultRawScenario()
	if cfg.Scenario != "" {
		var err error
		if rawScenario, err = model.RawScenarioFromFile(cfg.Scenario); err != nil {
			return model.Scenario{}, err
		}
	}
	if cfg.ReferenceYear != 0 {
		rawScenario.ReferenceYear = cfg.ReferenceYear
	}

	scenario, err := model.ProcessRawScenario(rawScenario)
	if err != nil {
		return model.Scenario{}, fmt.Errorf("invalid scenario: %w", err)
	}
	klog.V(1).InfoS("Scenario loaded", "file", cfg.Scenario, "referenceYear", scenario.Population.ReferenceYear(),
		"kids", scenario.Population.Total(), "candidates", len(scenario.Candidates), "combinations", len(scenario.Combinations))
	return scenario, nil
}

// Loads the scenario, evaluates every candidate and aggregates every combination.
// Failed combinations are logged and kept as rows
func runSession(cfg *config.Config) (planningSession, error) {
	scenario, err := loadScenario(cfg)
	if err != nil {
		return planningSession{}, err
	}

	results, err := model.NewEvaluator(scenario.Population).EvaluateAll(scenario.Candidates)
	if err != nil {
		return planningSession{}, fmt.Errorf("an error occurred during candidate evaluation: %w", err)
	}
	klog.V(2).InfoS("Candidates evaluated", "candidates", len(results))

	rows, errs := model.NewAggregator(results).AggregateAll(scenario.Combinations)
	for _, err := range multierr.Errors(errs) {
		klog.ErrorS(err, "Combination could not be fully aggregated")
	}

	return planningSession{
		scenario:     scenario,
		results:      results,
		combinations: rows,
	}, nil
}

func render(cmd *cobra.Command, cfg *config.Config, in io.Reader, datasets ...report.Dataset) (err error) {
	renderer, err := report.NewRenderer(cfg.Format)
	if err != nil {
		return err
	}

	writer := cmd.OutOrStdout()
	if cfg.Output != "" {
		file, createErr := os.Create(cfg.Output)
		if createErr != nil {
			return fmt.Errorf("an error occurred while creating the output file: %w", createErr)
		}
		defer func() {
			err = multierr.Append(err, file.Close())
		}()
		writer = file
	}

	if err := renderer.Render(writer, datasets...); err != nil {
		return err
	}

	// Prompt on stderr: stdout may carry csv or json
	if cfg.Wait {
		waitForEnter(in, cmd.ErrOrStderr())
	}
	return nil
}

func waitForEnter(in io.Reader, out io.Writer) {
	fmt.Fprint(out, "Press ENTER to exit...")
	_, _ = bufio.NewReader(in).ReadString('\n')
}
