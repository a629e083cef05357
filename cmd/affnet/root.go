package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/affnet/config"
	"github.com/katalvlaran/affnet/ingest"
	"github.com/katalvlaran/affnet/network"
)

var v = config.New()

var rootCmd = &cobra.Command{
	Use:           "affnet",
	Short:         "Affiliation network analysis",
	Long:          "affnet derives the person-to-person projection of a person-to-group edge list and reports its structure.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .affnet.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
	mustBind(rootCmd, "verbose", "verbose")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".affnet")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	// A missing config file is fine; defaults apply.
	_ = v.ReadInConfig()
}

// setup loads the configuration and the logger shared by every subcommand.
func setup(args []string) (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, nil, err
	}
	if len(args) > 0 {
		cfg.Sources = args
	}
	logger, err := config.NewLogger(cfg)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("logger: %w", err)
	}

	return cfg, logger, nil
}

// loadNetwork reads every configured source into one Network.
func loadNetwork(cfg config.Config, logger *zap.Logger) (*network.Network, error) {
	if len(cfg.Sources) == 0 {
		return nil, fmt.Errorf("no sources: pass CSV files or set sources in the config: %w", ingest.ErrInvalidSource)
	}
	net, err := ingest.Network(ingest.SourcePathList(cfg.Sources), network.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	logger.Info("network loaded",
		zap.Strings("sources", cfg.Sources),
		zap.Int("persons", net.PersonCount()),
		zap.Int("groups", net.GroupCount()),
	)

	return net, nil
}

// mustBind ties a config key to a flag of cmd. A missing flag is a programming error.
func mustBind(cmd *cobra.Command, key, flag string) {
	f := cmd.PersistentFlags().Lookup(flag)
	if f == nil {
		f = cmd.Flags().Lookup(flag)
	}
	if err := v.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("bind %s to --%s: %v", key, flag, err))
	}
}
