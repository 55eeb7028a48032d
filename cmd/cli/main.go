package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/limaJavier/kidsgroups/pkg/config"
	"github.com/limaJavier/kidsgroups/pkg/report"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rootCmd := newRootCmd(&cfg, os.Stdin, os.Stdout)

	goFlags := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(goFlags)
	klogFlags := pflag.NewFlagSet("klog", pflag.ExitOnError)
	klogFlags.AddGoFlagSet(goFlags)
	rootCmd.PersistentFlags().AddFlagSet(klogFlags)
	defer klog.Flush()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		klog.Flush()
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config, in io.Reader, out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kidsgroups",
		Short: "Distribute the kids of a population into classroom groups",
		Long: `Evaluates candidate classroom groups (kind, target ages and size bounds) against a population of kids grouped by birth year,
and aggregates combinations of candidates covering the whole population into comparable scores. Lower scores are better.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			_, err := report.NewRenderer(cfg.Format)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd, cfg, in)
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfg.Scenario, "scenario", "s", cfg.Scenario, "Path to a JSON or YAML scenario file; the built-in 2021 scenario is used when empty")
	flags.IntVar(&cfg.ReferenceYear, "reference-year", cfg.ReferenceYear, "Reference year used to derive the ages, overriding the scenario's one when not zero")
	flags.StringVarP(&cfg.Format, "format", "f", cfg.Format, fmt.Sprintf("Output format, one of %v", report.Formats))
	flags.StringVarP(&cfg.Output, "out", "o", cfg.Output, "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	flags.BoolVar(&cfg.Wait, "wait", cfg.Wait, "Wait for ENTER before exiting")

	rootCmd.AddCommand(evaluateCmd(cfg, in))
	rootCmd.AddCommand(rankCmd(cfg, in))
	rootCmd.AddCommand(sweepCmd(cfg, in))
	rootCmd.AddCommand(batchCmd(cfg))
	return rootCmd
}
