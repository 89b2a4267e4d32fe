// Package bows defines the selectable bow profiles shown in the start menu.
package bows

// Profile describes one bow. Damage and FireRate are display stats for the
// menu; the simulation itself is governed by the physics configuration.
type Profile struct {
	Key         string
	Label       string
	Description string
	Damage      int
	FireRate    float64
}

var profiles = []Profile{
	{
		Key:         "base",
		Label:       "Base Bow",
		Description: "A dependable training bow.",
		Damage:      10,
		FireRate:    1.0,
	},
	{
		Key:         "intermediate",
		Label:       "Intermediate Bow",
		Description: "Stiffer limbs, faster follow-up shots.",
		Damage:      15,
		FireRate:    1.25,
	},
	{
		Key:         "advanced",
		Label:       "Advanced Bow",
		Description: "Competition grade. Unforgiving but fast.",
		Damage:      22,
		FireRate:    1.5,
	},
}

// List returns all profiles in menu order.
func List() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}

// Get returns the profile for a key, falling back to the base bow for
// unknown keys.
func Get(key string) Profile {
	for _, p := range profiles {
		if p.Key == key {
			return p
		}
	}
	return profiles[0]
}

// Next returns the profile after key in menu order, wrapping around.
func Next(key string) Profile {
	for i, p := range profiles {
		if p.Key == key {
			return profiles[(i+1)%len(profiles)]
		}
	}
	return profiles[0]
}

// Prev returns the profile before key in menu order, wrapping around.
func Prev(key string) Profile {
	for i, p := range profiles {
		if p.Key == key {
			return profiles[(i-1+len(profiles))%len(profiles)]
		}
	}
	return profiles[0]
}
