package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/skyplan"
	"github.com/aretw0/skyplan/pkg/heuristic"
	"github.com/aretw0/skyplan/pkg/search"
)

// solveCmd runs a search driver against a problem.
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a problem with a graph-search driver",
	Long: `Builds the selected problem, runs the chosen search algorithm with the
chosen heuristic and prints the plan found.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)

		problem, name, err := loadProblem(cmd, skyplan.WithLogger(logger))
		if err != nil {
			fmt.Printf("Error loading problem: %v\n", err)
			os.Exit(1)
		}

		algorithm, _ := cmd.Flags().GetString("algorithm")
		hName, _ := cmd.Flags().GetString("heuristic")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		jsonMode, _ := cmd.Flags().GetBool("json")

		var h heuristic.Func
		if algorithm == "astar" || algorithm == "greedy" {
			h, err = problem.Heuristic(hName)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
		}

		ctx := cmd.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		started := time.Now()
		plan, err := search.Run(ctx, algorithm, problem, h)
		if err != nil {
			fmt.Printf("Solve error: %v\n", err)
			os.Exit(1)
		}
		elapsed := time.Since(started)

		logger.Debug("plan found", "problem", name, "length", len(plan), "elapsed", elapsed)

		if jsonMode {
			steps := make([]string, len(plan))
			for i, a := range plan {
				steps[i] = a.String()
			}
			out := map[string]any{
				"problem":   name,
				"algorithm": algorithm,
				"plan":      steps,
				"length":    len(steps),
				"elapsed":   elapsed.String(),
			}
			if h != nil {
				out["heuristic"] = hName
			}
			_ = json.NewEncoder(os.Stdout).Encode(out)
			return
		}

		for i, a := range plan {
			fmt.Printf("%2d. %s\n", i+1, a)
		}
		fmt.Printf("plan length %d (%s, %s)\n", len(plan), algorithm, elapsed.Round(time.Millisecond))
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringP("algorithm", "a", "astar", "Search algorithm (bfs, ucs, astar, greedy)")
	solveCmd.Flags().String("heuristic", "goalcount", "Heuristic for informed search (constant, goalcount, levelsum)")
	solveCmd.Flags().Duration("timeout", 0, "Abort the search after this duration (0 = no limit)")
	solveCmd.Flags().Bool("json", false, "Emit the plan as JSON")
}
