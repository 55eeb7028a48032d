package main

import (
	"fmt"
	"io"

	"github.com/limaJavier/kidsgroups/pkg/config"
	"github.com/limaJavier/kidsgroups/pkg/model"
	"github.com/limaJavier/kidsgroups/pkg/report"
	"github.com/spf13/cobra"
)

func sweepCmd(cfg *config.Config, in io.Reader) *cobra.Command {
	var (
		kind      string
		ages      []int
		minRange  []int
		maxRange  []int
		exception bool
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate one set of target ages against a grid of size bounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			groupKind, err := model.ParseGroupKind(kind)
			if err != nil {
				return err
			} else if len(minRange) != 2 || len(maxRange) != 2 {
				return fmt.Errorf("min-range and max-range must have exactly two values: %v, %v", minRange, maxRange)
			}

			scenario, err := loadScenario(cfg)
			if err != nil {
				return err
			}

			results, err := model.Sweep(
				scenario.Population,
				groupKind,
				ages,
				model.SizeBounds{Min: minRange[0], Max: minRange[1]},
				model.SizeBounds{Min: maxRange[0], Max: maxRange[1]},
				exception,
			)
			if err != nil {
				return fmt.Errorf("an error occurred during the sweep: %w", err)
			}

			dataset := report.CandidateDataset(results)
			dataset.Title = fmt.Sprintf("Sweep of %v %v", groupKind, ages)
			return render(cmd, cfg, in, dataset)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "homogeneous", "Group kind: homogeneous, heterogeneous or combined")
	cmd.Flags().IntSliceVar(&ages, "ages", nil, "Target ages, e.g. 0,1,2")
	cmd.Flags().IntSliceVar(&minRange, "min-range", []int{5, 20}, "Lowest and highest minimum group size")
	cmd.Flags().IntSliceVar(&maxRange, "max-range", []int{5, 25}, "Lowest and highest maximum group size")
	cmd.Flags().BoolVar(&exception, "exception", false, "Request an exception for every candidate")
	if err := cmd.MarkFlagRequired("ages"); err != nil {
		panic(fmt.Sprintf("failed to mark ages flag as required: %v", err))
	}
	return cmd
}
