package tui

import (
	"strings"
	"testing"

	"github.com/rafaelantao/tui-archery/internal/config"
	"github.com/rafaelantao/tui-archery/internal/core"
)

func TestPowerBar(t *testing.T) {
	tests := []struct {
		ratio  float64
		filled int
	}{
		{0, 0},
		{0.5, 10},
		{1, 20},
		{1.5, 20}, // over-ratio clamps to full
	}
	for _, tc := range tests {
		bar := powerBar(tc.ratio, 20)
		if got := strings.Count(bar, "█"); got != tc.filled {
			t.Errorf("powerBar(%v) filled %d cells, expected %d", tc.ratio, got, tc.filled)
		}
		if len([]rune(bar)) != 22 {
			t.Errorf("powerBar(%v) width = %d runes, expected 22", tc.ratio, len([]rune(bar)))
		}
	}
}

func TestDrawSceneSmoke(t *testing.T) {
	cfg := config.DefaultConfig()
	rt := core.DefaultRuntimeConfig()
	m := NewGameModel(cfg, nil, rt, config.DifficultyEasy)

	m.drawScene(m.session.Snapshot())

	// The target disc should be painted somewhere near the screen center.
	found := false
	for y := 4; y < 20 && !found; y++ {
		if strings.ContainsRune(m.screen.Row(y), '█') {
			found = true
		}
	}
	if !found {
		t.Error("scene should contain the target disc")
	}

	// The HUD status line is at the top.
	if !strings.Contains(m.screen.Row(0), "Score:") {
		t.Errorf("HUD line missing, row 0 = %q", m.screen.Row(0))
	}
	if !strings.Contains(m.screen.Row(1), "Yaw") {
		t.Errorf("aim line missing, row 1 = %q", m.screen.Row(1))
	}
}

func TestPaletteFallsBackOnUnknownNames(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Colors.Arrow = ""
	cfg.Colors.UI = "not-a-color"

	p := newPalette(&cfg)
	if p.arrow != core.ColorBrightWhite {
		t.Errorf("empty arrow color = %v, expected bright white fallback", p.arrow)
	}
	if p.ui != core.ColorWhite {
		t.Errorf("unknown ui color = %v, expected white fallback", p.ui)
	}
}
