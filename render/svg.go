package render

import (
	"fmt"
	"io"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"
	"github.com/gogpu/cantor"
)

// SVG renders the scene for one mode and level and writes it as SVG to w.
// The output mirrors the PNG layout: stroked rows for line mode, filled
// marker squares for dust.
func SVG(w io.Writer, mode cantor.Mode, level int, p Params) error {
	if err := p.validate(); err != nil {
		return err
	}
	fg, err := NormalizeHex(p.FG)
	if err != nil {
		return err
	}
	bg, err := NormalizeHex(p.BG)
	if err != nil {
		return err
	}

	sw, sh := Size(mode, level, p)
	width, height := round(sw), round(sh)

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Title("Cantor Set")
	canvas.Desc(fmt.Sprintf("%s mode, level %d", mode, level))
	canvas.Rect(0, 0, width, height, "fill:"+bg)

	switch mode {
	case cantor.ModeLine:
		err = svgLine(canvas, level, p, fg)
	case cantor.ModeDust:
		err = svgDust(canvas, level, p, fg)
	default:
		err = fmt.Errorf("%w: %d", cantor.ErrUnknownMode, int(mode))
	}
	if err != nil {
		return err
	}

	canvas.End()
	return nil
}

// SaveSVG renders the scene and writes it as an SVG file.
func SaveSVG(path string, mode cantor.Mode, level int, p Params) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := SVG(f, mode, level, p); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	cantor.Logger().Info("exported SVG", "path", path, "mode", mode.String(), "level", level)
	return nil
}

func svgLine(canvas *svg.SVG, level int, p Params, fg string) error {
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

	style := fmt.Sprintf("stroke:%s;stroke-width:%g", fg, p.Thickness)
	y := p.Spacing + p.Thickness/2
	for _, segs := range levels {
		for _, s := range segs {
			canvas.Line(round(s.Start*p.Width), round(y), round(s.End*p.Width), round(y), style)
		}
		y += p.Thickness + p.Spacing
	}
	return nil
}

func svgDust(canvas *svg.SVG, level int, p Params, fg string) error {
	pts, err := cantor.DustPoints(level)
	if err != nil {
		return err
	}
	size := round(p.Thickness)
	if size < 1 {
		size = 1
	}
	half := p.Thickness / 2
	style := "fill:" + fg
	for _, pt := range pts {
		canvas.Rect(round(pt.X*p.Width-half), round(pt.Y*p.Width-half), size, size, style)
	}
	return nil
}

func round(v float64) int {
	return int(math.Round(v))
}
