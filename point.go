package cantor

// Point is the minimum corner of a surviving dust cell in the unit square.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// In reports whether p lies inside the square cell with minimum corner
// origin and the given side.
func (p Point) In(origin Point, side float64) bool {
	return p.X >= origin.X && p.X <= origin.X+side &&
		p.Y >= origin.Y && p.Y <= origin.Y+side
}

// Approx reports whether two points match within epsilon per coordinate.
func (p Point) Approx(q Point, epsilon float64) bool {
	return abs(p.X-q.X) <= epsilon && abs(p.Y-q.Y) <= epsilon
}
