package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-overlay/overlay"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "overlayctl",
	Short: "run 2D polygon overlay operations from scene files",
	Long: `overlayctl runs the overlay engine against scene files:
	- run a Boolean overlay (union, intersect, difference, xor, ...),
	- evaluate a spatial predicate (intersects, touches, within, ...),
	- slice or clip a subject polygon by an open polyline.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		overlay.Debug = verbose
	},
}

var verbose bool

// Execute adds all child commands to RootCmd and runs it. Called once by
// main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable pipeline debug tracing")
}
