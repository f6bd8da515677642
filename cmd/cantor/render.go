package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/cantor"
	"github.com/gogpu/cantor/render"
)

var (
	renderMode      string
	renderDepth     int
	renderAllLevels bool
	renderOut       string
	renderWidth     float64
	renderFG        string
	renderBG        string
	renderThickness float64
	renderSpacing   float64
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Export the geometry to a PNG or SVG file",
	Long:  "Render the Cantor construction headlessly; the output format follows the file extension (.png or .svg)",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderMode, "mode", "line", "Construction: line or dust")
	renderCmd.Flags().IntVar(&renderDepth, "depth", 6, "Recursion depth (line 0-12, dust 0-9)")
	renderCmd.Flags().BoolVar(&renderAllLevels, "all-levels", false, "Stack levels 0..depth as rows (line mode)")
	renderCmd.Flags().StringVar(&renderOut, "out", "cantor.png", "Output file (.png or .svg)")
	renderCmd.Flags().Float64Var(&renderWidth, "width", 1000, "Scene width in pixels")
	renderCmd.Flags().StringVar(&renderFG, "fg", render.DefaultFG, "Foreground color (hex)")
	renderCmd.Flags().StringVar(&renderBG, "bg", render.DefaultBG, "Background color (hex)")
	renderCmd.Flags().Float64Var(&renderThickness, "thickness", 4, "Stroke width / dust marker size in pixels")
	renderCmd.Flags().Float64Var(&renderSpacing, "spacing", 10, "Vertical gap around line rows in pixels")
}

func runRender(cmd *cobra.Command, args []string) error {
	mode, err := cantor.ParseMode(renderMode)
	if err != nil {
		return err
	}
	format, err := formatForPath(renderOut)
	if err != nil {
		return err
	}

	params := render.Params{
		FG:        renderFG,
		BG:        renderBG,
		Thickness: renderThickness,
		Spacing:   renderSpacing,
		Width:     renderWidth,
		AllLevels: renderAllLevels,
	}

	switch format {
	case "png":
		err = render.SavePNG(renderOut, mode, renderDepth, params)
	case "svg":
		err = render.SaveSVG(renderOut, mode, renderDepth, params)
	}
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s (%s mode, depth %d, %d items)\n",
		renderOut, mode, renderDepth, mode.Count(renderDepth))
	return nil
}

// formatForPath picks the export format from the file extension.
func formatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png", nil
	case ".svg":
		return "svg", nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use .png or .svg)", filepath.Ext(path))
	}
}
