package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/cantor"
	"github.com/gogpu/cantor/render"
	"github.com/gogpu/cantor/viewer"
)

var (
	viewMode      string
	viewDepth     int
	viewAllLevels bool
	viewWidth     float64
	viewFG        string
	viewBG        string
	viewThickness float64
	viewSpacing   float64
	viewSpeed     int
	viewLoop      bool
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Explore the geometry in an interactive window",
	Long:  "Open a window with pan, zoom, depth controls, and animated playback of the construction levels",
	Args:  cobra.NoArgs,
	RunE:  runView,
}

func init() {
	viewCmd.Flags().StringVar(&viewMode, "mode", "line", "Construction: line or dust")
	viewCmd.Flags().IntVar(&viewDepth, "depth", 6, "Recursion depth (line 0-12, dust 0-9)")
	viewCmd.Flags().BoolVar(&viewAllLevels, "all-levels", false, "Stack levels 0..depth as rows (line mode)")
	viewCmd.Flags().Float64Var(&viewWidth, "width", 1000, "Scene width in pixels")
	viewCmd.Flags().StringVar(&viewFG, "fg", render.DefaultFG, "Foreground color (hex)")
	viewCmd.Flags().StringVar(&viewBG, "bg", render.DefaultBG, "Background color (hex)")
	viewCmd.Flags().Float64Var(&viewThickness, "thickness", 4, "Stroke width / dust marker size in pixels")
	viewCmd.Flags().Float64Var(&viewSpacing, "spacing", 10, "Vertical gap around line rows in pixels")
	viewCmd.Flags().IntVar(&viewSpeed, "speed", 200, "Animation interval in milliseconds")
	viewCmd.Flags().BoolVar(&viewLoop, "loop", false, "Loop the animation")
}

func runView(cmd *cobra.Command, args []string) error {
	mode, err := cantor.ParseMode(viewMode)
	if err != nil {
		return err
	}

	return viewer.Run(viewer.Config{
		Mode:  mode,
		Depth: viewDepth,
		Params: render.Params{
			FG:        viewFG,
			BG:        viewBG,
			Thickness: viewThickness,
			Spacing:   viewSpacing,
			Width:     viewWidth,
			AllLevels: viewAllLevels,
		},
		SpeedMS: viewSpeed,
		Loop:    viewLoop,
	})
}
