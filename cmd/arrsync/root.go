package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath  string
	instanceKey string
	jsonOutput  bool
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "arrsync",
	Short: "Keep a local view of Radarr and Sonarr in sync",
	Long: `arrsync - client for Radarr and Sonarr

Browse, search and manage the libraries of any number of
Radarr and Sonarr instances from one configuration file.

Run 'arrsync config init' to write a starter configuration.`,
	SilenceUsage: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().StringVarP(&instanceKey, "instance", "i", "", "Instance label or id to use")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("arrsync {{.Version}}\n")
}
