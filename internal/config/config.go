// Package config provides YAML-based configuration loading, validation and
// difficulty management for the archery range.
package config

import (
	"fmt"

	"github.com/rafaelantao/tui-archery/internal/core"
)

// ArcheryConfig contains every tunable game rule. It is immutable for the
// life of a session; only the active difficulty tier changes at runtime.
type ArcheryConfig struct {
	Display    DisplayConfig    `yaml:"display"`
	Camera     CameraConfig     `yaml:"camera"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Aim        AimConfig        `yaml:"aim"`
	Target     TargetConfig     `yaml:"target"`
	Rules      RulesConfig      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Colors     ColorsConfig     `yaml:"colors"`
}

// DisplayConfig defines fallback screen dimensions and the tick rate.
// Width/Height are only used when the terminal size cannot be detected.
type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// CameraConfig defines the pinhole projection parameters. Distances are in
// world units along the forward (depth) axis.
type CameraConfig struct {
	FOVDeg    float64 `yaml:"fov_deg"`
	CameraZ   float64 `yaml:"camera_z"`
	NearPlane float64 `yaml:"near_plane"`
	FarPlane  float64 `yaml:"far_plane"`
}

// PhysicsConfig defines projectile and draw parameters.
type PhysicsConfig struct {
	Gravity             float64 `yaml:"gravity"`
	MaxArrowSpeed       float64 `yaml:"max_arrow_speed"`
	MaxDrawSeconds      float64 `yaml:"max_draw_seconds"`
	PowerExponent       float64 `yaml:"power_exponent"`
	ArrowTimeoutSeconds float64 `yaml:"arrow_timeout_seconds"`
}

// AimConfig defines angular speeds and inclusive bounds for both aim axes,
// in degrees and degrees per second.
type AimConfig struct {
	YawSpeedDegS    float64 `yaml:"yaw_speed_deg_s"`
	YawMinDeg       float64 `yaml:"yaw_min_deg"`
	YawMaxDeg       float64 `yaml:"yaw_max_deg"`
	PitchSpeedDegS  float64 `yaml:"pitch_speed_deg_s"`
	PitchMinDeg     float64 `yaml:"pitch_min_deg"`
	PitchMaxDeg     float64 `yaml:"pitch_max_deg"`
	InitialYawDeg   float64 `yaml:"initial_yaw_deg"`
	InitialPitchDeg float64 `yaml:"initial_pitch_deg"`
}

// TargetConfig defines the ringed target painted on the hit plane.
type TargetConfig struct {
	OuterRadius float64 `yaml:"outer_radius"`
	RingCount   int     `yaml:"ring_count"`
	CenterX     float64 `yaml:"center_x"`
	CenterZ     float64 `yaml:"center_z"`
}

// RulesConfig defines round bookkeeping parameters.
type RulesConfig struct {
	ResolveSeconds float64 `yaml:"resolve_seconds"`
	QuiverSize     int     `yaml:"quiver_size"`
	AimMarkRadius  int     `yaml:"aim_mark_radius"`
}

// DifficultyConfig maps named tiers to target distances and names the tier
// a session starts on.
type DifficultyConfig struct {
	Default   Difficulty             `yaml:"default"`
	Distances map[Difficulty]float64 `yaml:"distances"`
}

// ColorsConfig names the colors used by the renderer. Ring colors are
// listed innermost first; if there are fewer colors than rings the last
// one is reused for the remaining rings.
type ColorsConfig struct {
	Rings   []string `yaml:"rings"`
	Arrow   string   `yaml:"arrow"`
	UI      string   `yaml:"ui"`
	Warning string   `yaml:"warning"`
	AimMark string   `yaml:"aim_mark"`
}

// Difficulty is a named target-distance tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty converts a user-supplied string into a known tier.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("config: unsupported difficulty %q (want easy, normal or hard)", s)
}

// colorNames maps YAML color names to screen colors.
var colorNames = map[string]core.Color{
	"default":        core.ColorDefault,
	"red":            core.ColorRed,
	"green":          core.ColorGreen,
	"yellow":         core.ColorYellow,
	"blue":           core.ColorBlue,
	"magenta":        core.ColorMagenta,
	"cyan":           core.ColorCyan,
	"white":          core.ColorWhite,
	"bright_red":     core.ColorBrightRed,
	"bright_green":   core.ColorBrightGreen,
	"bright_yellow":  core.ColorBrightYellow,
	"bright_blue":    core.ColorBrightBlue,
	"bright_magenta": core.ColorBrightMagenta,
	"bright_cyan":    core.ColorBrightCyan,
	"bright_white":   core.ColorBrightWhite,
	"orange":         core.ColorOrange,
	"gray":           core.ColorGray,
}

// ParseColor resolves a color name from the config file.
func ParseColor(name string) (core.Color, error) {
	c, ok := colorNames[name]
	if !ok {
		return core.ColorDefault, fmt.Errorf("config: unknown color %q", name)
	}
	return c, nil
}

// TargetDistance returns the distance for the given tier. The config must
// have been validated, so the lookup cannot miss for known tiers.
func (c *ArcheryConfig) TargetDistance(d Difficulty) float64 {
	return c.Difficulty.Distances[d]
}

// RingColors resolves the configured ring palette, padding with the last
// color so the slice always covers every ring.
func (c *ArcheryConfig) RingColors() []core.Color {
	colors := make([]core.Color, 0, c.Target.RingCount)
	for _, name := range c.Colors.Rings {
		col, err := ParseColor(name)
		if err != nil {
			col = core.ColorDefault
		}
		colors = append(colors, col)
	}
	if len(colors) == 0 {
		colors = append(colors, core.ColorDefault)
	}
	for len(colors) < c.Target.RingCount {
		colors = append(colors, colors[len(colors)-1])
	}
	return colors
}

// Validate checks every structural invariant. Any failure is fatal at
// startup: the session must not run on a partially valid config.
func (c *ArcheryConfig) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("config: display dimensions must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Display.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", c.Display.FPS)
	}
	if c.Camera.FOVDeg <= 0 || c.Camera.FOVDeg >= 180 {
		return fmt.Errorf("config: fov_deg must be in (0, 180), got %v", c.Camera.FOVDeg)
	}
	if c.Camera.NearPlane <= 0 {
		return fmt.Errorf("config: near_plane must be positive, got %v", c.Camera.NearPlane)
	}
	if c.Camera.NearPlane >= c.Camera.FarPlane {
		return fmt.Errorf("config: near_plane (%v) must be less than far_plane (%v)", c.Camera.NearPlane, c.Camera.FarPlane)
	}
	if c.Physics.Gravity < 0 {
		return fmt.Errorf("config: gravity must be non-negative, got %v", c.Physics.Gravity)
	}
	if c.Physics.MaxArrowSpeed < 0 {
		return fmt.Errorf("config: max_arrow_speed must be non-negative, got %v", c.Physics.MaxArrowSpeed)
	}
	if c.Physics.MaxDrawSeconds <= 0 {
		return fmt.Errorf("config: max_draw_seconds must be positive, got %v", c.Physics.MaxDrawSeconds)
	}
	if c.Physics.PowerExponent <= 0 {
		return fmt.Errorf("config: power_exponent must be positive, got %v", c.Physics.PowerExponent)
	}
	if c.Physics.ArrowTimeoutSeconds <= 0 {
		return fmt.Errorf("config: arrow_timeout_seconds must be positive, got %v", c.Physics.ArrowTimeoutSeconds)
	}
	if c.Aim.YawSpeedDegS < 0 || c.Aim.PitchSpeedDegS < 0 {
		return fmt.Errorf("config: aim speeds must be non-negative")
	}
	if c.Aim.YawMinDeg > c.Aim.YawMaxDeg {
		return fmt.Errorf("config: yaw bounds inverted: min %v > max %v", c.Aim.YawMinDeg, c.Aim.YawMaxDeg)
	}
	if c.Aim.PitchMinDeg > c.Aim.PitchMaxDeg {
		return fmt.Errorf("config: pitch bounds inverted: min %v > max %v", c.Aim.PitchMinDeg, c.Aim.PitchMaxDeg)
	}
	if c.Target.OuterRadius < 0 {
		return fmt.Errorf("config: target outer_radius must be non-negative, got %v", c.Target.OuterRadius)
	}
	if c.Target.RingCount < 1 {
		return fmt.Errorf("config: target ring_count must be at least 1, got %d", c.Target.RingCount)
	}
	if c.Rules.ResolveSeconds < 0 {
		return fmt.Errorf("config: resolve_seconds must be non-negative, got %v", c.Rules.ResolveSeconds)
	}
	if c.Rules.QuiverSize < 1 {
		return fmt.Errorf("config: quiver_size must be at least 1, got %d", c.Rules.QuiverSize)
	}
	if len(c.Difficulty.Distances) == 0 {
		return fmt.Errorf("config: difficulty distances must not be empty")
	}
	if _, err := ParseDifficulty(string(c.Difficulty.Default)); err != nil {
		return err
	}
	if _, ok := c.Difficulty.Distances[c.Difficulty.Default]; !ok {
		return fmt.Errorf("config: default difficulty %q missing from distances", c.Difficulty.Default)
	}
	for tier, dist := range c.Difficulty.Distances {
		if _, err := ParseDifficulty(string(tier)); err != nil {
			return err
		}
		if dist <= 0 {
			return fmt.Errorf("config: distance for %q must be positive, got %v", tier, dist)
		}
		if dist >= c.Camera.FarPlane {
			return fmt.Errorf("config: distance for %q (%v) must be inside the far plane (%v)", tier, dist, c.Camera.FarPlane)
		}
	}
	for _, name := range c.Colors.Rings {
		if _, err := ParseColor(name); err != nil {
			return err
		}
	}
	for _, name := range []string{c.Colors.Arrow, c.Colors.UI, c.Colors.Warning, c.Colors.AimMark} {
		if name == "" {
			continue
		}
		if _, err := ParseColor(name); err != nil {
			return err
		}
	}
	return nil
}
