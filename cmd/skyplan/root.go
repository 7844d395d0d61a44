package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/skyplan"
	"github.com/aretw0/skyplan/internal/logging"
	"github.com/aretw0/skyplan/pkg/scenario"
)

var rootCmd = &cobra.Command{
	Use:   "skyplan",
	Short: "Skyplan is a STRIPS planning core for air-cargo logistics",
	Long: `Skyplan grounds the classical air-cargo planning domain (Load, Unload,
Fly) into a finite-state transition system and solves it with generic
graph-search drivers.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("scenario", "p1", "Built-in scenario name (p1, p2, p3)")
	rootCmd.PersistentFlags().String("file", "", "YAML problem file (overrides --scenario)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// newLogger builds the command logger from the --verbose flag.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return logging.New(level)
}

// loadProblem builds the problem selected by --file or --scenario.
func loadProblem(cmd *cobra.Command, opts ...skyplan.Option) (*skyplan.Problem, string, error) {
	file, _ := cmd.Flags().GetString("file")
	if file != "" {
		p, err := scenario.Load(file, opts...)
		return p, file, err
	}
	name, _ := cmd.Flags().GetString("scenario")
	p, err := scenario.ByName(name, opts...)
	return p, name, err
}
