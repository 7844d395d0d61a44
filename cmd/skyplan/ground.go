package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/skyplan/pkg/domain"
)

// groundCmd inspects a problem's grounded action list.
var groundCmd = &cobra.Command{
	Use:   "ground",
	Short: "Ground a problem and show the concrete action list",
	Long: `Grounds the Load, Unload and Fly schemas over the problem's cargo,
plane and airport sets and prints the resulting concrete actions with
their counts.`,
	Run: func(cmd *cobra.Command, args []string) {
		problem, name, err := loadProblem(cmd)
		if err != nil {
			fmt.Printf("Error loading problem: %v\n", err)
			os.Exit(1)
		}

		actions := problem.GroundActions()
		counts := map[string]int{}
		for _, a := range actions {
			counts[a.Name]++
		}

		full, _ := cmd.Flags().GetBool("all")
		if full {
			printActions(actions)
		}

		fmt.Printf("problem %s: %d fluents, %d ground actions (%d Load, %d Unload, %d Fly)\n",
			name, len(problem.FluentOrder()), len(actions),
			counts[domain.ActionLoad], counts[domain.ActionUnload], counts[domain.ActionFly])
	},
}

// printActions renders the list; aligned columns on a terminal, one action
// per line otherwise.
func printActions(actions []domain.GroundAction) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		for _, a := range actions {
			fmt.Println(a)
		}
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, a := range actions {
		pre := make([]string, 0, len(a.PrecondPos))
		for _, f := range a.PrecondPos {
			pre = append(pre, f.String())
		}
		fmt.Fprintf(w, "%s\tpre: %v\tadd: %v\tdel: %v\n", a, pre, a.AddEffects, a.DelEffects)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(groundCmd)
	groundCmd.Flags().Bool("all", false, "Print every ground action, not just the counts")
}
