package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/cantor"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "cantor",
	Short: "Render the Cantor set and Cantor dust",
	Long: `Cantor renders the classic middle-thirds Cantor set and its 2D analogue,
Cantor dust. Geometry can be exported headlessly to PNG or SVG, or explored
in an interactive window with pan, zoom, and animated construction levels.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			cantor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
