package cantor

// DustPoints returns the surviving cells of the Cantor dust at the given
// depth as their minimum corners. At depth n there are 4^n cells of side
// CellSize(n). Order is stable: parents expand in place, corners row-major.
func DustPoints(depth int) ([]Point, error) {
	if err := checkDepth(ModeDust, depth); err != nil {
		return nil, err
	}
	pts := []Point{{X: 0, Y: 0}}
	size := 1.0
	for range depth {
		pts, size = splitCorners(pts, size)
	}
	return pts, nil
}

// DustLevels returns the construction levels 0..depth, one slice of points
// per level. Level 0 is the seed cell at the origin.
func DustLevels(depth int) ([][]Point, error) {
	if err := checkDepth(ModeDust, depth); err != nil {
		return nil, err
	}
	levels := make([][]Point, 0, depth+1)
	pts := []Point{{X: 0, Y: 0}}
	levels = append(levels, pts)
	size := 1.0
	for range depth {
		pts, size = splitCorners(pts, size)
		levels = append(levels, pts)
	}
	return levels, nil
}

// splitCorners subdivides every cell of the given side into a 3x3 grid and
// keeps the four corner sub-cells. Returns the new corners and cell side.
func splitCorners(pts []Point, size float64) ([]Point, float64) {
	sub := size / 3
	off := 2 * sub
	next := make([]Point, 0, 4*len(pts))
	for _, p := range pts {
		next = append(next,
			Point{X: p.X, Y: p.Y},
			Point{X: p.X + off, Y: p.Y},
			Point{X: p.X, Y: p.Y + off},
			Point{X: p.X + off, Y: p.Y + off},
		)
	}
	return next, sub
}
