package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/patternarium/patternarium/internal/cli"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the catalogue grouped by category",
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.List(os.Stdout, optionsFrom(cmd)); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
