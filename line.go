package cantor

// LineSegments returns the surviving intervals of the Cantor set after
// depth middle-third removals, ordered left to right. At depth n there are
// 2^n intervals, each of length (1/3)^n.
func LineSegments(depth int) ([]Interval, error) {
	if err := checkDepth(ModeLine, depth); err != nil {
		return nil, err
	}
	segs := []Interval{{Start: 0, End: 1}}
	for range depth {
		segs = splitThirds(segs)
	}
	return segs, nil
}

// LineLevels returns the construction levels 0..depth, one slice of
// intervals per level. Level 0 is the seed interval [0,1].
func LineLevels(depth int) ([][]Interval, error) {
	if err := checkDepth(ModeLine, depth); err != nil {
		return nil, err
	}
	levels := make([][]Interval, 0, depth+1)
	segs := []Interval{{Start: 0, End: 1}}
	levels = append(levels, segs)
	for range depth {
		segs = splitThirds(segs)
		levels = append(levels, segs)
	}
	return levels, nil
}

// splitThirds replaces every interval with its two outer thirds.
func splitThirds(segs []Interval) []Interval {
	next := make([]Interval, 0, 2*len(segs))
	for _, s := range segs {
		third := s.Length() / 3
		next = append(next,
			Interval{Start: s.Start, End: s.Start + third},
			Interval{Start: s.End - third, End: s.End},
		)
	}
	return next
}
