package viewer

import "math"

// Zoom limits keep the view usable; deep zooms beyond this degrade into
// single-pixel noise at the rendered scene resolution.
const (
	minZoom = 0.05
	maxZoom = 64.0
)

// Camera maps scene pixels to screen pixels: a pan offset plus a uniform
// zoom. X and Y are the screen position of the scene origin.
type Camera struct {
	X, Y float64
	Zoom float64
}

// NewCamera returns an identity camera.
func NewCamera() Camera {
	return Camera{Zoom: 1}
}

// Apply maps a scene coordinate to the screen.
func (c Camera) Apply(x, y float64) (float64, float64) {
	return c.X + x*c.Zoom, c.Y + y*c.Zoom
}

// Pan shifts the view by a screen-space delta.
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx
	c.Y += dy
}

// ZoomAt scales the view by factor while keeping the scene point under
// the screen position (sx, sy) fixed. The resulting zoom is clamped.
func (c *Camera) ZoomAt(factor, sx, sy float64) {
	z := clamp(c.Zoom*factor, minZoom, maxZoom)
	factor = z / c.Zoom
	c.X = sx + (c.X-sx)*factor
	c.Y = sy + (c.Y-sy)*factor
	c.Zoom = z
}

// Fit centers a scene of the given size on the screen with a small margin.
func (c *Camera) Fit(sceneW, sceneH, screenW, screenH float64) {
	if sceneW <= 0 || sceneH <= 0 || screenW <= 0 || screenH <= 0 {
		*c = NewCamera()
		return
	}
	z := math.Min(screenW/sceneW, screenH/sceneH) * 0.9
	c.Zoom = clamp(z, minZoom, maxZoom)
	c.X = (screenW - sceneW*c.Zoom) / 2
	c.Y = (screenH - sceneH*c.Zoom) / 2
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
