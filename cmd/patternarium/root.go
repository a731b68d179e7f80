package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/patternarium/patternarium/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "patternarium",
	Short: "Patternarium is a catalogue of classic design pattern demonstrations",
	Long: `Patternarium bundles seven classic object-oriented design patterns
(Builder, Abstract Factory, Strategy, Template Method, Composite, Decorator,
Facade), each as a small runnable demonstration printing its transcript.`,
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
	rootCmd.PersistentFlags().Bool("plain", false, "Disable colors and markdown rendering")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// optionsFrom collects the persistent flags into cli.Options.
func optionsFrom(cmd *cobra.Command) cli.Options {
	plain, _ := cmd.Flags().GetBool("plain")
	verbose, _ := cmd.Flags().GetBool("verbose")
	return cli.Options{Plain: plain, Verbose: verbose}
}
