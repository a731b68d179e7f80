package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/patternarium/patternarium"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of patternarium",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("patternarium version %s\n", strings.TrimSpace(patternarium.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
