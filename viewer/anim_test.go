package viewer

import (
	"testing"

	"github.com/gogpu/cantor"
)

// advance runs n ticks and returns how many level changes were reported.
func advance(a *animator, maxDepth, n int) int {
	changes := 0
	for range n {
		if a.tick(maxDepth) {
			changes++
		}
	}
	return changes
}

func TestAnimator_StepsEveryInterval(t *testing.T) {
	a := &animator{stepTicks: 3}
	a.start()

	if a.level != 0 {
		t.Fatalf("start level = %d, want 0", a.level)
	}
	if changes := advance(a, 5, 2); changes != 0 {
		t.Errorf("advanced before interval elapsed: %d changes", changes)
	}
	if !a.tick(5) {
		t.Error("no advance on interval boundary")
	}
	if a.level != 1 {
		t.Errorf("level = %d, want 1", a.level)
	}
}

func TestAnimator_StopsAtMaxWithoutLoop(t *testing.T) {
	a := &animator{stepTicks: 1}
	a.start()

	advance(a, 3, 10)
	if a.playing {
		t.Error("still playing past the final level")
	}
	if a.level != 3 {
		t.Errorf("final level = %d, want 3", a.level)
	}
}

func TestAnimator_LoopWrapsToZero(t *testing.T) {
	a := &animator{stepTicks: 1, loop: true}
	a.start()

	// Levels 0..3, then wrap.
	for want := 1; want <= 3; want++ {
		if !a.tick(3) || a.level != want {
			t.Fatalf("level = %d, want %d", a.level, want)
		}
	}
	if !a.tick(3) {
		t.Fatal("no wrap at final level with loop enabled")
	}
	if a.level != 0 {
		t.Errorf("after wrap level = %d, want 0", a.level)
	}
	if !a.playing {
		t.Error("loop stopped playback")
	}
}

func TestAnimator_IdleTicksDoNothing(t *testing.T) {
	a := &animator{stepTicks: 1}
	if a.tick(5) {
		t.Error("tick advanced while not playing")
	}
	if a.level != 0 || a.playing {
		t.Errorf("idle animator mutated: %+v", a)
	}
}

func TestAnimator_FPS(t *testing.T) {
	a := &animator{stepTicks: 1}
	a.start()
	advance(a, 5, 3)
	if fps := a.fps(); fps <= 0 {
		t.Errorf("fps = %v, want > 0 after advancing", fps)
	}
}

func TestNewClampsDepth(t *testing.T) {
	g := New(Config{Mode: cantor.ModeDust, Depth: 100})
	if g.depth != cantor.MaxDustDepth {
		t.Errorf("depth = %d, want clamped to %d", g.depth, cantor.MaxDustDepth)
	}
	g = New(Config{Depth: -4})
	if g.depth != 0 {
		t.Errorf("depth = %d, want clamped to 0", g.depth)
	}
	if g.anim.stepTicks < 1 {
		t.Errorf("stepTicks = %d, want >= 1", g.anim.stepTicks)
	}
}
