package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/skyplan"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of skyplan",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("skyplan version %s\n", strings.TrimSpace(skyplan.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
