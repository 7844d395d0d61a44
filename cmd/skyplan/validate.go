package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// validateCmd checks a problem description without solving it.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a problem description",
	Long: `Constructs the problem and reports every description error found:
fluents referencing undeclared objects, fluents asserted both positive
and negative, or goal fluents the goal test could never satisfy.`,
	Run: func(cmd *cobra.Command, args []string) {
		_, name, err := loadProblem(cmd)
		if err != nil {
			fmt.Printf("Invalid: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("problem %s is valid\n", name)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
