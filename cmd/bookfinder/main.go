// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bookfinder CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the bookfinder CLI.
var rootCmd = &cobra.Command{
	Use:   "bookfinder",
	Short: "Search and explore O'Reilly books",
	Long: `bookfinder searches the O'Reilly learning platform's catalog. By default
it searches only data science and AI topics; pass --topic to choose topics
explicitly or --all-topics to search the whole catalog.

Results print to the terminal or export to CSV with --output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bookfinder.yaml or ~/.config/bookfinder/config.yaml)")

	viper.SetDefault("search.limit", 10)
	viper.SetDefault("http.timeout", "30s")
	viper.SetDefault("http.user_agent", "bookfinder/"+version)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bookfinder")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bookfinder"))
		}
	}

	viper.SetEnvPrefix("BOOKFINDER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
