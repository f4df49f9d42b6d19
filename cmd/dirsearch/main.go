// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the dirsearch CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/dirsearch/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built in PersistentPreRunE and synced on exit.
var logger = zap.NewNop()

// errNoEntries signals a mutt lookup that found nothing usable. It sets
// the exit status without printing an error.
var errNoEntries = errors.New("no entries found")

// rootCmd searches the directory for its single argument.
var rootCmd = &cobra.Command{
	Use:   "dirsearch [flags] QUERY",
	Short: "Search the Colorado School of Mines people directory",
	Long: `dirsearch looks people up in the Mines directory. A bare username such as
"jdoe" is first matched against the autocomplete service; every query is
also run through the directory search form. Results from both are merged
and each person is printed once.

Use --format mutt as a mutt query_command.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if viper.GetBool("verbose") {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runSearch,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./dirsearch.yaml or ~/.config/dirsearch/dirsearch.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log requests to stderr")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("dirsearch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "dirsearch"))
		}
	}

	setConfigDefaults()
	viper.SetEnvPrefix("DIRSEARCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setConfigDefaults() {
	def := types.DefaultDirSearchConfig()
	viper.SetDefault("search_url", def.SearchURL)
	viper.SetDefault("partial_url", def.PartialURL)
	viper.SetDefault("detail_prefix", def.DetailPrefix)
	viper.SetDefault("timeout", def.Timeout)
	viper.SetDefault("user_agent", "dirsearch/"+version)
	viper.SetDefault("workers", def.Workers)
}

// loadConfig reads the client configuration from viper.
func loadConfig() types.DirSearchConfig {
	return types.DirSearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: viper.GetString("user_agent"),
		},
		SearchURL:    viper.GetString("search_url"),
		PartialURL:   viper.GetString("partial_url"),
		DetailPrefix: viper.GetString("detail_prefix"),
		Workers:      viper.GetInt("workers"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errNoEntries) {
			fmt.Fprintf(os.Stderr, "dirsearch: %v\n", err)
		}
		os.Exit(1)
	}
}
