// Package render draws Cantor geometry onto images.
//
// The package maps unit-space output of the cantor package onto a pixel
// scene: line-mode intervals become stroked horizontal rows (one row per
// level when all levels are shown), dust cells become small filled marker
// squares. Scenes can be rasterized to PNG through gg or written as SVG.
package render

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"os"

	"github.com/gogpu/cantor"
	"github.com/gogpu/gg"
)

// ErrParams is returned when rendering parameters are out of range.
var ErrParams = errors.New("render: invalid params")

// Params controls the appearance of a rendered scene.
type Params struct {
	// FG and BG are hex colors for the geometry and the background.
	FG string
	BG string

	// Thickness is the stroke width of line segments and the side of
	// dust marker squares, in pixels.
	Thickness float64

	// Spacing is the vertical gap around line rows, in pixels.
	Spacing float64

	// Width is the scene width in pixels; the height follows from the
	// layout (square for dust, row stack for lines).
	Width float64

	// AllLevels stacks levels 0..depth as separate rows in line mode.
	// Dust mode always shows a single level.
	AllLevels bool
}

// DefaultParams returns the application's default appearance.
func DefaultParams() Params {
	return Params{
		FG:        DefaultFG,
		BG:        DefaultBG,
		Thickness: 4,
		Spacing:   10,
		Width:     1000,
	}
}

func (p Params) validate() error {
	if p.Width < 1 {
		return fmt.Errorf("%w: width %v", ErrParams, p.Width)
	}
	if p.Thickness <= 0 {
		return fmt.Errorf("%w: thickness %v", ErrParams, p.Thickness)
	}
	if p.Spacing < 0 {
		return fmt.Errorf("%w: spacing %v", ErrParams, p.Spacing)
	}
	return nil
}

// Size returns the scene dimensions in pixels for the given mode and
// level under these params.
func Size(mode cantor.Mode, level int, p Params) (w, h float64) {
	if mode == cantor.ModeDust {
		return p.Width, p.Width
	}
	if p.AllLevels {
		rows := float64(level + 1)
		return p.Width, rows*(p.Thickness+p.Spacing) + p.Spacing
	}
	return p.Width, math.Max(p.Thickness+2*p.Spacing, 1)
}

// Image renders the scene for one mode and level and returns it.
func Image(mode cantor.Mode, level int, p Params) (image.Image, error) {
	dc, err := draw(mode, level, p)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// PNG renders the scene and writes it as PNG to w.
func PNG(w io.Writer, mode cantor.Mode, level int, p Params) error {
	dc, err := draw(mode, level, p)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG renders the scene and writes it as a PNG file.
func SavePNG(path string, mode cantor.Mode, level int, p Params) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := PNG(f, mode, level, p); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	cantor.Logger().Info("exported PNG", "path", path, "mode", mode.String(), "level", level)
	return nil
}

// draw builds the scene on a fresh drawing context.
func draw(mode cantor.Mode, level int, p Params) (*gg.Context, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	fg, err := ParseHex(p.FG)
	if err != nil {
		return nil, err
	}
	bg, err := ParseHex(p.BG)
	if err != nil {
		return nil, err
	}

	sw, sh := Size(mode, level, p)
	dc := gg.NewContext(int(math.Round(sw)), int(math.Round(sh)))
	dc.ClearWithColor(bg)
	dc.SetRGBA(fg.R, fg.G, fg.B, fg.A)

	switch mode {
	case cantor.ModeLine:
		err = drawLine(dc, level, p)
	case cantor.ModeDust:
		err = drawDust(dc, level, p)
	default:
		err = fmt.Errorf("%w: %d", cantor.ErrUnknownMode, int(mode))
	}
	if err != nil {
		return nil, err
	}
	return dc, nil
}

// drawLine strokes one row per rendered level, top to bottom.
func drawLine(dc *gg.Context, level int, p Params) error {
	var levels [][]cantor.Interval
	if p.AllLevels {
		all, err := cantor.LineLevels(level)
		if err != nil {
			return err
		}
		levels = all
	} else {
		segs, err := cantor.LineSegments(level)
		if err != nil {
			return err
		}
		levels = [][]cantor.Interval{segs}
	}

	dc.SetLineWidth(p.Thickness)
	y := p.Spacing + p.Thickness/2
	for _, segs := range levels {
		for _, s := range segs {
			dc.MoveTo(s.Start*p.Width, y)
			dc.LineTo(s.End*p.Width, y)
		}
		if err := dc.Stroke(); err != nil {
			return err
		}
		y += p.Thickness + p.Spacing
	}
	return nil
}

// drawDust fills a marker square of side Thickness centered on each
// mapped cell corner, as the scene is square and scale is Width.
func drawDust(dc *gg.Context, level int, p Params) error {
	pts, err := cantor.DustPoints(level)
	if err != nil {
		return err
	}
	size := p.Thickness
	half := size / 2
	for _, pt := range pts {
		dc.DrawRectangle(pt.X*p.Width-half, pt.Y*p.Width-half, size, size)
	}
	return dc.Fill()
}
