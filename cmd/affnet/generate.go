package main

import (
	"encoding/csv"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/affnet/builder"
	"github.com/katalvlaran/affnet/network"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a synthetic person,group edge list as CSV",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().String("kind", "random", "complete, chain, pairs or random")
	generateCmd.Flags().Int("persons", 10, "number of persons (pairs: number of groups)")
	generateCmd.Flags().Int("groups", 4, "number of groups (complete, random)")
	generateCmd.Flags().Float64("p", 0.3, "membership probability (random)")
	generateCmd.Flags().Int64("seed", 1, "RNG seed (random)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	kind, _ := f.GetString("kind")
	persons, _ := f.GetInt("persons")
	groups, _ := f.GetInt("groups")
	p, _ := f.GetFloat64("p")
	seed, _ := f.GetInt64("seed")

	var (
		edges []network.Edge
		err   error
	)
	switch kind {
	case "complete":
		edges, err = builder.CompleteBipartite(persons, groups)
	case "chain":
		edges, err = builder.Chain(persons)
	case "pairs":
		edges, err = builder.DisjointPairs(persons)
	case "random":
		edges, err = builder.RandomAffiliation(persons, groups, p, builder.WithSeed(seed))
	default:
		return fmt.Errorf("generate: unknown kind %q", kind)
	}
	if err != nil {
		return err
	}

	w := csv.NewWriter(cmd.OutOrStdout())
	for _, e := range edges {
		if err := w.Write([]string{e.Person, e.Group}); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}
