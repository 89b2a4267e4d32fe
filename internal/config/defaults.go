package config

import (
	_ "embed"
)

//go:embed defaults/archery.yaml
var defaultArcheryYAML []byte

// DefaultConfig returns the built-in archery configuration, used when no
// config file can be found and the embedded YAML fails to parse.
func DefaultConfig() ArcheryConfig {
	return ArcheryConfig{
		Display: DisplayConfig{
			Width:  100,
			Height: 30,
			FPS:    60,
		},
		Camera: CameraConfig{
			FOVDeg:    60,
			CameraZ:   1.5,
			NearPlane: 0.5,
			FarPlane:  60,
		},
		Physics: PhysicsConfig{
			Gravity:             9.8,
			MaxArrowSpeed:       40,
			MaxDrawSeconds:      1.5,
			PowerExponent:       1.6,
			ArrowTimeoutSeconds: 6,
		},
		Aim: AimConfig{
			YawSpeedDegS:    45,
			YawMinDeg:       -60,
			YawMaxDeg:       60,
			PitchSpeedDegS:  30,
			PitchMinDeg:     -10,
			PitchMaxDeg:     45,
			InitialYawDeg:   0,
			InitialPitchDeg: 10,
		},
		Target: TargetConfig{
			OuterRadius: 1.2,
			RingCount:   5,
			CenterX:     0,
			CenterZ:     1.5,
		},
		Rules: RulesConfig{
			ResolveSeconds: 2,
			QuiverSize:     5,
			AimMarkRadius:  2,
		},
		Difficulty: DifficultyConfig{
			Default: DifficultyNormal,
			Distances: map[Difficulty]float64{
				DifficultyEasy:   10,
				DifficultyNormal: 18,
				DifficultyHard:   28,
			},
		},
		Colors: ColorsConfig{
			Rings:   []string{"bright_yellow", "bright_red", "bright_blue", "white", "gray"},
			Arrow:   "bright_green",
			UI:      "white",
			Warning: "orange",
			AimMark: "bright_cyan",
		},
	}
}
