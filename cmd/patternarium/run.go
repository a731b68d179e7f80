package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/patternarium/patternarium/internal/cli"
	"github.com/patternarium/patternarium/internal/presentation/tui"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [pattern]",
	Short: "Run a pattern demonstration",
	Long:  `Executes the named demonstration and prints its transcript. With --all, runs the whole catalogue.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := optionsFrom(cmd)
		all, _ := cmd.Flags().GetBool("all")
		banner, _ := cmd.Flags().GetBool("banner")

		if banner && !opts.Plain {
			tui.PrintBanner(os.Stdout)
		}

		var err error
		switch {
		case all:
			err = cli.RunAll(os.Stdout, opts)
		case len(args) == 1:
			err = cli.RunDemo(os.Stdout, args[0], opts)
		default:
			err = cmd.Help()
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("all", false, "Run every demonstration in the catalogue")
	runCmd.Flags().Bool("banner", false, "Print the banner before the transcript")

	// Make 'run' the default if no command is provided.
	rootCmd.Run = runCmd.Run
	rootCmd.Args = runCmd.Args
}
