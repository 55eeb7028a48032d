package main

import (
	"io"

	"github.com/limaJavier/kidsgroups/pkg/config"
	"github.com/limaJavier/kidsgroups/pkg/model"
	"github.com/limaJavier/kidsgroups/pkg/report"
	"github.com/spf13/cobra"
)

func rankCmd(cfg *config.Config, in io.Reader) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Print candidates and combinations ordered feasible first and by ascending score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := runSession(cfg)
			if err != nil {
				return err
			}

			candidates := model.RankCandidates(session.results)
			if top > 0 && top < len(candidates) {
				candidates = candidates[:top]
			}
			combinations := report.CombinationDataset(model.RankCombinations(session.combinations))
			combinations.Title = "Ranked combinations"

			return render(cmd, cfg, in, report.RankedCandidateDataset(candidates), combinations)
		},
	}

	cmd.Flags().IntVar(&top, "top", 0, "Number of candidates to show; all of them when zero")
	return cmd
}
