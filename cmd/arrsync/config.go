package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrsync/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, required fields, and environment variable substitution without contacting any instance.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd, configInitCmd)
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
}

// configArg resolves the path argument, falling back to --config and then
// to discovery.
func configArg(args []string) (string, error) {
	switch {
	case len(args) > 0:
		return args[0], nil
	case configPath != "":
		return configPath, nil
	}
	return config.Discover()
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path, err := configArg(args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(out, configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(w io.Writer, e *config.ConfigError) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	logTo := "stderr"
	if cfg.Log.File != "" {
		logTo = cfg.Log.File
	}
	fmt.Fprintf(w, "  Log:        %s (%s)\n", cfg.Log.Level, logTo)
	fmt.Fprintf(w, "  HTTP:       timeout %s, slow %s\n", cfg.HTTP.Timeout, cfg.HTTP.SlowTimeout)
	fmt.Fprintf(w, "  Queue:      every %s\n", cfg.Queue.PollInterval)
	if cfg.Indexing.Enabled {
		fmt.Fprintf(w, "  Indexing:   after %s\n", cfg.Indexing.Delay)
	}

	fmt.Fprintf(w, "  Instances:  %d\n", len(cfg.Instances))
	for _, ic := range cfg.Instances {
		inst, err := ic.Instance()
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "    - %s (%s) %s\n", inst.Label, inst.Kind, inst.URL)
	}
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}
	force, _ := cmd.Flags().GetBool("force")

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}
	if err := config.WriteDefault(path); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Set RADARR_API_KEY and SONARR_API_KEY (or put them in a .env file next to the config)")
	fmt.Fprintln(out, "  2. Adjust the instance URLs")
	fmt.Fprintf(out, "  3. Run 'arrsync config test %s'\n", path)
	return nil
}
