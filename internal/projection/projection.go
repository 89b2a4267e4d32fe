// Package projection maps world-space points onto the terminal grid with a
// pinhole camera fixed at the origin looking down the forward axis.
package projection

import (
	"math"

	"github.com/rafaelantao/tui-archery/internal/config"
	"github.com/rafaelantao/tui-archery/internal/core"
)

// Projector converts world coordinates to screen cells. The focal length is
// derived from the horizontal field of view and the screen width, so aspect
// handling is left to the caller's choice of glyphs.
type Projector struct {
	focal   float64
	centerX float64
	centerY float64
	cameraZ float64
	near    float64
	far     float64
}

// New builds a projector for the given camera and screen size.
func New(cam config.CameraConfig, screenW, screenH int) Projector {
	fov := cam.FOVDeg * math.Pi / 180
	return Projector{
		focal:   0.5 * float64(screenW) / math.Tan(fov/2),
		centerX: float64(screenW) / 2,
		centerY: float64(screenH) / 2,
		cameraZ: cam.CameraZ,
		near:    cam.NearPlane,
		far:     cam.FarPlane,
	}
}

// Project maps a world point to screen coordinates. It reports false for
// points outside the depth range or off the screen-height axis convention;
// callers still need to bounds-check X against the screen because partially
// visible shapes straddle the edges.
func (p Projector) Project(pt core.Vec3) (x, y int, ok bool) {
	if pt.Y <= p.near || pt.Y >= p.far {
		return 0, 0, false
	}
	sx := p.centerX + p.focal*pt.X/pt.Y
	sy := p.centerY - p.focal*(pt.Z-p.cameraZ)/pt.Y
	return int(math.Round(sx)), int(math.Round(sy)), true
}

// RadiusAt scales a world-space radius at the given depth to screen cells.
// Depths at or before the near plane return 0.
func (p Projector) RadiusAt(worldRadius, depth float64) int {
	if depth <= p.near {
		return 0
	}
	return int(math.Round(p.focal * worldRadius / depth))
}

// Visible reports whether a depth lies inside the render range.
func (p Projector) Visible(depth float64) bool {
	return depth > p.near && depth < p.far
}
