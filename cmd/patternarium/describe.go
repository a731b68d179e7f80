package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/patternarium/patternarium/internal/cli"
)

var describeCmd = &cobra.Command{
	Use:   "describe <pattern>",
	Short: "Show a pattern's write-up",
	Long:  `Renders the pattern's markdown write-up: the problem it solves, its structure, and its trade-offs.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.Describe(os.Stdout, args[0], optionsFrom(cmd)); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
