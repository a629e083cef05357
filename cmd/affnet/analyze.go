package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/affnet/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [csv files...]",
	Short: "Print person-to-group and person-to-person statistics",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntP("steps", "k", report.DefaultReachSteps, "number of k-step reach values")
	analyzeCmd.Flags().Bool("largest", false, "analyze only the largest component")
	analyzeCmd.Flags().StringP("format", "f", "text", "output format: text or yaml")
	mustBind(analyzeCmd, "reach_steps", "steps")
	mustBind(analyzeCmd, "largest", "largest")
	mustBind(analyzeCmd, "format", "format")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(args)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	net, err := loadNetwork(cfg, logger)
	if err != nil {
		return err
	}
	if cfg.Largest {
		if net, err = net.LargestComponentToNetwork(); err != nil {
			return fmt.Errorf("largest component: %w", err)
		}
		logger.Debug("restricted to largest component", zap.Int("persons", net.PersonCount()))
	}

	s, err := report.Build(net, cfg.ReachSteps)
	if err != nil {
		return err
	}
	if cfg.Format == "yaml" {
		return report.WriteYAML(cmd.OutOrStdout(), s)
	}

	return report.WriteText(cmd.OutOrStdout(), s)
}
