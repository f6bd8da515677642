package cantor

// Interval is a closed range [Start, End] on the unit axis.
type Interval struct {
	Start, End float64
}

// Iv is a convenience function to create an Interval.
func Iv(start, end float64) Interval {
	return Interval{Start: start, End: end}
}

// Length returns the extent of the interval.
func (iv Interval) Length() float64 {
	return iv.End - iv.Start
}

// Mid returns the midpoint of the interval.
func (iv Interval) Mid() float64 {
	return (iv.Start + iv.End) / 2
}

// Contains reports whether other lies entirely within iv.
func (iv Interval) Contains(other Interval) bool {
	return other.Start >= iv.Start && other.End <= iv.End
}

// Approx reports whether two intervals match within epsilon at both ends.
func (iv Interval) Approx(other Interval, epsilon float64) bool {
	return abs(iv.Start-other.Start) <= epsilon && abs(iv.End-other.End) <= epsilon
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
