package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fivetwenty-io/cloudres/cmd/cloudres/commands"
	"github.com/fivetwenty-io/cloudres/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "cloudres",
	Short: "Compute API resource CLI",
	Long: `A command-line interface for browsing servers and flavors of a compute API.

Identifiers and human-readable names of every resource seen are recorded in
a completion cache that shell completion scripts can read back.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.cloudres/config.yml)")
	rootCmd.PersistentFlags().StringP("api", "a", "", "API endpoint URL")
	rootCmd.PersistentFlags().StringP("token", "t", "", "authentication token")
	rootCmd.PersistentFlags().String("output", "", "output format (table, json, yaml); json when stdout is not a terminal")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("cache-type", "", "completion cache backend (file, memory, nats, none)")
	rootCmd.PersistentFlags().String("cache-dir", "", "completion cache directory for the file backend")
	rootCmd.PersistentFlags().String("nats-url", "", "NATS server URL for the nats backend")
	rootCmd.PersistentFlags().String("nats-bucket", "", "JetStream key-value bucket for the nats backend")

	// Bind flags to viper
	for _, name := range []string{"config", "api", "token", "output", "verbose", "cache-type", "cache-dir", "nats-url", "nats-bucket"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewServersCommand())
	rootCmd.AddCommand(commands.NewFlavorsCommand())
	rootCmd.AddCommand(commands.NewCompletionCacheCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.cloudres/config.yml
		viper.AddConfigPath(filepath.Join(home, ".cloudres"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// CLOUDRES_CACHE_TYPE and friends
	viper.SetEnvPrefix("CLOUDRES")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err == nil && viper.GetBool("verbose") {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	if err != nil && cfgFile != "" {
		fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		os.Exit(constants.ExitConfigError)
	}
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
