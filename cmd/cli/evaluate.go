package main

import (
	"io"

	"github.com/limaJavier/kidsgroups/pkg/config"
	"github.com/limaJavier/kidsgroups/pkg/report"
	"github.com/spf13/cobra"
)

func evaluateCmd(cfg *config.Config, in io.Reader) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate",
		Short: "Print the population, candidate and combination tables (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEvaluate(cmd, cfg, in)
		},
	}
}

func runEvaluate(cmd *cobra.Command, cfg *config.Config, in io.Reader) error {
	session, err := runSession(cfg)
	if err != nil {
		return err
	}

	return render(cmd, cfg, in,
		report.PopulationDataset(session.scenario.Population),
		report.CandidateDataset(session.results),
		report.CombinationDataset(session.combinations),
	)
}
