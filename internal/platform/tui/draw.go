package tui

import (
	"fmt"
	"strings"

	"github.com/rafaelantao/tui-archery/internal/config"
	"github.com/rafaelantao/tui-archery/internal/core"
	"github.com/rafaelantao/tui-archery/internal/game"
	"github.com/rafaelantao/tui-archery/internal/projection"
)

// palette holds the resolved scene colors so draw calls don't re-parse
// color names every frame.
type palette struct {
	rings   []core.Color
	arrow   core.Color
	ui      core.Color
	warning core.Color
	aimMark core.Color
}

func newPalette(cfg *config.ArcheryConfig) palette {
	return palette{
		rings:   cfg.RingColors(),
		arrow:   resolveColor(cfg.Colors.Arrow, core.ColorBrightWhite),
		ui:      resolveColor(cfg.Colors.UI, core.ColorWhite),
		warning: resolveColor(cfg.Colors.Warning, core.ColorBrightRed),
		aimMark: resolveColor(cfg.Colors.AimMark, core.ColorBrightGreen),
	}
}

func resolveColor(name string, fallback core.Color) core.Color {
	if name == "" {
		return fallback
	}
	c, err := config.ParseColor(name)
	if err != nil {
		return fallback
	}
	return c
}

// drawScene paints one frame: target, markers, aim, arrow, then the HUD on
// top.
func (m *GameModel) drawScene(snap game.Snapshot) {
	m.screen.Clear()
	proj := projection.New(m.cfg.Camera, m.screen.Width(), m.screen.Height())

	m.drawTarget(snap, proj)
	m.drawHitMarkers(snap, proj)
	if snap.Phase == game.PhaseAiming || snap.Phase == game.PhaseCharging {
		m.drawAimMark(snap, proj)
	}
	m.drawArrow(snap, proj)
	m.drawHUD(snap)
}

// drawTarget paints the ring disc back to front so inner rings overwrite
// outer ones.
func (m *GameModel) drawTarget(snap game.Snapshot, proj projection.Projector) {
	center := core.Vec3{
		X: m.cfg.Target.CenterX,
		Y: snap.TargetDistance,
		Z: m.cfg.Target.CenterZ,
	}
	cx, cy, ok := proj.Project(center)
	if !ok {
		return
	}

	rings := m.cfg.Target.RingCount
	for idx := rings; idx >= 1; idx-- {
		worldR := m.cfg.Target.OuterRadius * float64(idx) / float64(rings)
		rx := float64(proj.RadiusAt(worldR, snap.TargetDistance))
		// Terminal cells are about twice as tall as wide.
		m.screen.FillEllipse(cx, cy, rx, rx/2, '█', m.palette.rings[idx-1])
	}
}

// drawAimMark paints a crosshair where a gravity-free shot would land.
func (m *GameModel) drawAimMark(snap game.Snapshot, proj projection.Projector) {
	if !snap.HasAimPoint {
		return
	}
	x, y, ok := proj.Project(snap.AimPoint)
	if !ok {
		return
	}
	arm := m.cfg.Rules.AimMarkRadius
	for i := 1; i <= arm; i++ {
		m.screen.SetCell(x-i, y, '─', m.palette.aimMark)
		m.screen.SetCell(x+i, y, '─', m.palette.aimMark)
	}
	m.screen.SetCell(x, y-1, '│', m.palette.aimMark)
	m.screen.SetCell(x, y+1, '│', m.palette.aimMark)
	m.screen.SetCell(x, y, '+', m.palette.aimMark)
}

// drawArrow paints the in-flight arrow as a dot shrinking with depth.
func (m *GameModel) drawArrow(snap game.Snapshot, proj projection.Projector) {
	if !snap.HasArrow {
		return
	}
	x, y, ok := proj.Project(snap.ArrowPos)
	if !ok {
		return
	}
	glyph := '●'
	if snap.ArrowPos.Y > snap.TargetDistance/2 {
		glyph = '•'
	}
	m.screen.SetCell(x, y, glyph, m.palette.arrow)
}

// drawHitMarkers paints an X on the target for every hit this round.
func (m *GameModel) drawHitMarkers(snap game.Snapshot, proj projection.Projector) {
	for _, p := range snap.HitMarkers {
		if x, y, ok := proj.Project(p); ok {
			m.screen.SetCell(x, y, '✕', m.palette.ui)
		}
	}
}

// drawHUD paints the status lines, power bar, messages and key help.
func (m *GameModel) drawHUD(snap game.Snapshot) {
	h := m.screen.Height()
	ui := m.palette.ui

	status := fmt.Sprintf("Score: %d   Arrows: %d/%d   Difficulty: %s (%.0fm)",
		snap.RoundScore, snap.ArrowsRemaining, snap.QuiverSize,
		snap.Difficulty, snap.TargetDistance)
	m.screen.DrawText(1, 0, status, ui)

	aim := fmt.Sprintf("Yaw %+6.1f   Pitch %+6.1f", snap.YawDeg, snap.PitchDeg)
	m.screen.DrawText(1, 1, aim, ui)

	if snap.Phase == game.PhaseCharging {
		bar := fmt.Sprintf("Power %s %3.0f%%", powerBar(snap.ChargeRatio, 20), snap.ChargeRatio*100)
		m.screen.DrawText(1, h-3, bar, m.palette.aimMark)
	}

	if snap.Phase == game.PhaseResolve && snap.LastResult != nil {
		color := m.palette.warning
		if snap.LastResult.Hit {
			color = core.ColorBrightGreen
		}
		m.screen.DrawTextCentered(h/2, snap.LastResult.Summary(), color)
	}

	if snap.AwaitingReload {
		m.screen.DrawTextCentered(h/2+1, "Quiver empty. Press R to start a new round.", ui)
	}

	if snap.Warning != "" {
		m.screen.DrawTextCentered(h-4, snap.Warning, m.palette.warning)
	}

	help := "A/D aim  W/S pitch  Space draw/release  R reload  1-3 difficulty  Q quit"
	m.screen.DrawTextCentered(h-1, help, core.ColorGray)
}

// powerBar renders a fixed-width charge gauge.
func powerBar(ratio float64, width int) string {
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
