// Package cantor generates the geometry of the Cantor set and its 2D
// analogue, Cantor dust.
//
// # Overview
//
// The package is a pure geometry generator: given a recursion depth it
// produces the surviving primitives of the middle-thirds construction as
// plain value types in unit space. Rendering lives in the render
// subpackage, and an interactive ebiten viewer in the viewer subpackage.
//
// # Quick Start
//
//	import "github.com/gogpu/cantor"
//
//	// Surviving intervals after 6 middle-third removals (2^6 of them).
//	segs, err := cantor.LineSegments(6)
//
//	// Corner cells of the Cantor dust at depth 4 (4^4 points).
//	pts, err := cantor.DustPoints(4)
//
//	// Everything at once, one slice per level 0..depth.
//	set, err := cantor.Generate(cantor.ModeDust, 4, true)
//
// # Constructions
//
// Line mode starts from the unit interval [0,1]; each step replaces every
// surviving interval with its two outer thirds. Dust mode starts from the
// unit square; each step splits every surviving cell into a 3x3 grid and
// keeps the four corner cells. At depth n there are 2^n intervals or 4^n
// cells, all of size (1/3)^n.
//
// # Coordinates
//
// All output lives in the unit interval or unit square. A dust Point is
// the minimum corner of its surviving cell; CellSize reports the cell
// side. Consumers scale into whatever scene they draw on.
//
// # Determinism
//
// Generation is a pure function of (mode, depth): identical inputs yield
// identical output in identical order. Intervals are emitted left to
// right, dust cells in a stable parent-then-corner order.
package cantor

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
