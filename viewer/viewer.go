// Package viewer shows Cantor geometry in an interactive window.
//
// The window supports pan (arrow keys or mouse drag), zoom (mouse wheel,
// anchored at the cursor), depth changes (+/-), mode and all-levels
// toggles (M, A), animated playback of the construction levels (space,
// L to loop), PNG snapshots (S), view reset (R), and quit (escape).
//
// The scene is rasterized through the render package and cached; input
// handling only re-renders when the displayed geometry changes.
package viewer

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/cantor"
	"github.com/gogpu/cantor/render"
)

const (
	tps     = 60
	panStep = 20.0
)

// Config carries the initial viewer state.
type Config struct {
	Mode   cantor.Mode
	Depth  int
	Params render.Params

	// SpeedMS is the playback interval between construction levels.
	SpeedMS int

	// Loop restarts playback from level 0 after the final level.
	Loop bool
}

// Game is the ebiten application state.
type Game struct {
	mode   cantor.Mode
	depth  int
	level  int
	params render.Params

	cam  Camera
	anim animator

	scene  *ebiten.Image
	dirty  bool
	fitted bool

	screenW, screenH int

	dragging     bool
	dragX, dragY int
}

// New builds the viewer state. The initial depth is clamped into the
// mode's supported range; the generator itself still rejects anything the
// viewer would pass out of range.
func New(cfg Config) *Game {
	g := &Game{
		mode:   cfg.Mode,
		depth:  clampInt(cfg.Depth, 0, cfg.Mode.MaxDepth()),
		params: cfg.Params,
		cam:    NewCamera(),
		dirty:  true,
	}
	g.level = g.depth
	g.anim.loop = cfg.Loop
	g.anim.stepTicks = maxInt(1, cfg.SpeedMS*tps/1000)
	return g
}

// Run opens the viewer window and blocks until it closes.
func Run(cfg Config) error {
	g := New(cfg)
	ebiten.SetWindowTitle("Cantor " + cantor.Version)
	ebiten.SetWindowSize(1024, 768)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)
	return ebiten.RunGame(g)
}

// Update handles input and playback; it re-renders the cached scene when
// the displayed geometry changed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.handleView()
	g.handleGeometry()
	g.handlePlayback()

	if g.anim.tick(g.depth) {
		g.level = g.anim.level
		g.dirty = true
	}

	if g.dirty && g.screenW > 0 {
		g.rebuildScene()
	}
	return nil
}

func (g *Game) handleView() {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.cam.Pan(panStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.cam.Pan(-panStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.cam.Pan(0, panStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.cam.Pan(0, -panStep)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.dragX, g.dragY = ebiten.CursorPosition()
	}
	if g.dragging {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			g.cam.Pan(float64(x-g.dragX), float64(y-g.dragY))
			g.dragX, g.dragY = x, y
		} else {
			g.dragging = false
		}
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		cx, cy := ebiten.CursorPosition()
		g.cam.ZoomAt(math.Pow(1.1, wy), float64(cx), float64(cy))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.fitted = false
		g.dirty = true
	}
}

func (g *Game) handleGeometry() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.setDepth(g.depth + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.setDepth(g.depth - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if g.mode == cantor.ModeLine {
			g.mode = cantor.ModeDust
		} else {
			g.mode = cantor.ModeLine
		}
		g.setDepth(g.depth)
		g.fitted = false
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.params.AllLevels = !g.params.AllLevels
		g.fitted = false
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.snapshot()
	}
}

func (g *Game) handlePlayback() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.anim.playing {
			g.anim.stop()
		} else {
			g.anim.start()
			g.level = 0
			g.dirty = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.anim.loop = !g.anim.loop
	}
}

// setDepth clamps into the current mode's range and tracks the displayed
// level when playback is idle.
func (g *Game) setDepth(depth int) {
	d := clampInt(depth, 0, g.mode.MaxDepth())
	g.depth = d
	if !g.anim.playing {
		g.level = d
		g.dirty = true
	} else if g.anim.level > d {
		g.anim.level = d
	}
}

func (g *Game) rebuildScene() {
	img, err := render.Image(g.mode, g.level, g.params)
	if err != nil {
		cantor.Logger().Warn("scene render failed", "error", err)
		g.dirty = false
		return
	}
	g.scene = ebiten.NewImageFromImage(img)
	g.dirty = false
	if !g.fitted {
		sw, sh := render.Size(g.mode, g.level, g.params)
		g.cam.Fit(sw, sh, float64(g.screenW), float64(g.screenH))
		g.fitted = true
	}
}

func (g *Game) snapshot() {
	path := fmt.Sprintf("cantor-%s.png", time.Now().Format("20060102-150405"))
	if err := render.SavePNG(path, g.mode, g.level, g.params); err != nil {
		cantor.Logger().Warn("snapshot failed", "error", err)
	}
}

// Draw blits the cached scene through the camera and overlays the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.scene != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(g.cam.Zoom, g.cam.Zoom)
		op.GeoM.Translate(g.cam.X, g.cam.Y)
		screen.DrawImage(g.scene, op)
	}
	ebitenutil.DebugPrintAt(screen, g.status(), 8, 8)
	ebitenutil.DebugPrintAt(screen,
		"arrows/drag pan | wheel zoom | +/- depth | M mode | A levels | space play | L loop | S snapshot | R reset",
		8, g.screenH-20)
}

// status mirrors the original status bar: depth, item count, FPS while
// animating.
func (g *Game) status() string {
	msg := fmt.Sprintf("%s | depth %d | level %d | items %d",
		g.mode, g.depth, g.level, g.mode.Count(g.level))
	if g.anim.playing {
		msg += fmt.Sprintf(" | fps %.1f", g.anim.fps())
	}
	return msg
}

// Layout tracks the window size; the scene camera refits on demand.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenW, g.screenH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
