package cantor

import (
	"errors"
	"fmt"
)

// Mode selects which Cantor construction to generate.
type Mode int

const (
	// ModeLine is the classic middle-thirds removal on the unit interval.
	ModeLine Mode = iota
	// ModeDust is the 2D analogue on the unit square: each surviving cell
	// splits into a 3x3 grid and keeps the four corner cells.
	ModeDust
)

// Depth bounds per mode. Line growth is 2^n; dust growth is 4^n, so its
// practical ceiling is lower.
const (
	MaxLineDepth = 12
	MaxDustDepth = 9
)

var (
	// ErrDepthRange is returned when a requested depth is negative or
	// exceeds the mode's maximum. Depths are rejected, never clamped.
	ErrDepthRange = errors.New("cantor: depth out of range")

	// ErrUnknownMode is returned for a Mode value or name that is neither
	// line nor dust.
	ErrUnknownMode = errors.New("cantor: unknown mode")
)

// String returns the lowercase mode name used at the CLI boundary.
func (m Mode) String() string {
	switch m {
	case ModeLine:
		return "line"
	case ModeDust:
		return "dust"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name ("line" or "dust") to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "line":
		return ModeLine, nil
	case "dust":
		return ModeDust, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// MaxDepth returns the maximum supported depth for the mode.
func (m Mode) MaxDepth() int {
	if m == ModeDust {
		return MaxDustDepth
	}
	return MaxLineDepth
}

// Count returns the number of primitives the mode produces at the given
// depth: 2^depth intervals or 4^depth points. The depth is assumed valid.
func (m Mode) Count(depth int) int {
	if m == ModeDust {
		return 1 << (2 * depth)
	}
	return 1 << depth
}

// CellSize returns (1/3)^depth, the side of a surviving dust cell and the
// length of a surviving interval at that depth.
func CellSize(depth int) float64 {
	size := 1.0
	for range depth {
		size /= 3
	}
	return size
}

func checkDepth(m Mode, depth int) error {
	if depth < 0 || depth > m.MaxDepth() {
		return fmt.Errorf("%w: %d (%s mode supports 0..%d)", ErrDepthRange, depth, m, m.MaxDepth())
	}
	return nil
}

// Set is the result of Generate: per-level geometry for one construction.
// Exactly one of Intervals (line mode) or Points (dust mode) is populated.
type Set struct {
	Mode  Mode
	Depth int

	// Intervals holds one slice per generated level in line mode.
	Intervals [][]Interval

	// Points holds one slice per generated level in dust mode.
	Points [][]Point
}

// Levels returns the number of generated levels: Depth+1 when all levels
// were requested, otherwise 1.
func (s *Set) Levels() int {
	if s.Mode == ModeDust {
		return len(s.Points)
	}
	return len(s.Intervals)
}

// Generate produces the geometry for the given mode and depth. With
// allLevels set, the result holds levels 0..depth in order (level-major);
// otherwise only the final level is present, at index 0.
func Generate(mode Mode, depth int, allLevels bool) (*Set, error) {
	set := &Set{Mode: mode, Depth: depth}
	switch mode {
	case ModeLine:
		if allLevels {
			levels, err := LineLevels(depth)
			if err != nil {
				return nil, err
			}
			set.Intervals = levels
		} else {
			segs, err := LineSegments(depth)
			if err != nil {
				return nil, err
			}
			set.Intervals = [][]Interval{segs}
		}
	case ModeDust:
		if allLevels {
			levels, err := DustLevels(depth)
			if err != nil {
				return nil, err
			}
			set.Points = levels
		} else {
			pts, err := DustPoints(depth)
			if err != nil {
				return nil, err
			}
			set.Points = [][]Point{pts}
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	Logger().Debug("generated cantor set",
		"mode", mode.String(), "depth", depth, "levels", set.Levels())
	return set, nil
}
