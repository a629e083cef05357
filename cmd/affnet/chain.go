package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var chainCmd = &cobra.Command{
	Use:   "chain FROM TO [csv files...]",
	Short: "Print a shortest person/group chain between two members",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runChain,
}

var neighborsCmd = &cobra.Command{
	Use:   "neighbors PERSON [csv files...]",
	Short: "List the persons within a number of co-membership hops",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNeighbors,
}

func init() {
	neighborsCmd.Flags().Int("hops", 1, "maximum co-membership hops")

	rootCmd.AddCommand(chainCmd, neighborsCmd)
}

func runChain(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(args[2:])
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	net, err := loadNetwork(cfg, logger)
	if err != nil {
		return err
	}
	chain, err := net.ShortestChain(args[0], args[1])
	if err != nil {
		return err
	}
	logger.Debug("chain found", zap.Int("hops", len(chain)-1))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(chain, " -> "))

	return err
}

func runNeighbors(cmd *cobra.Command, args []string) error {
	hops, err := cmd.Flags().GetInt("hops")
	if err != nil {
		return err
	}
	cfg, logger, err := setup(args[1:])
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	net, err := loadNetwork(cfg, logger)
	if err != nil {
		return err
	}
	ids, err := net.Neighborhood(args[0], hops)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), id); err != nil {
			return err
		}
	}

	return nil
}
