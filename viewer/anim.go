package viewer

import "time"

// animator steps the displayed construction level during playback.
// One tick is one game update; the level advances every stepTicks ticks.
type animator struct {
	playing   bool
	loop      bool
	stepTicks int
	level     int
	ticks     int
	frames    int
	started   time.Time
}

// start begins playback from level 0.
func (a *animator) start() {
	a.playing = true
	a.level = 0
	a.ticks = 0
	a.frames = 0
	a.started = time.Now()
}

func (a *animator) stop() {
	a.playing = false
}

// tick advances one game tick and reports whether the displayed level
// changed. maxDepth is the final level of the playback; without loop the
// animation stops there.
func (a *animator) tick(maxDepth int) bool {
	if !a.playing {
		return false
	}
	a.ticks++
	if a.ticks < a.stepTicks {
		return false
	}
	a.ticks = 0
	if a.level >= maxDepth {
		if a.loop {
			a.level = 0
			a.frames++
			return true
		}
		a.playing = false
		return false
	}
	a.level++
	a.frames++
	return true
}

// fps reports the measured level-advance rate since playback started.
func (a *animator) fps() float64 {
	elapsed := time.Since(a.started).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(a.frames) / elapsed
}
