package model

import "math"

// Level curve limits. MaxPerLevel keeps level × per-level values inside int32.
const (
	MaxLevel    = 1000
	MaxPerLevel = math.MaxInt32 / MaxLevel
)

// Progression holds the level curve shared by all entities.
type Progression struct {
	HealthPerLevel     int32 `yaml:"health_per_level"`
	RestPerLevel       int32 `yaml:"rest_per_level"`
	XPPerLevel         int32 `yaml:"xp_per_level"`
	StatPointsPerLevel int32 `yaml:"stat_points_per_level"`
}

// DefaultProgression: 100 HP per level, rest heals level×20, 100 XP per level,
// 3 stat points per level.
func DefaultProgression() Progression {
	return Progression{
		HealthPerLevel:     100,
		RestPerLevel:       20,
		XPPerLevel:         100,
		StatPointsPerLevel: 3,
	}
}

// withDefaults replaces non-positive fields with default values and caps
// every field at MaxPerLevel.
func (p Progression) withDefaults() Progression {
	def := DefaultProgression()
	if p.HealthPerLevel <= 0 {
		p.HealthPerLevel = def.HealthPerLevel
	}
	if p.RestPerLevel <= 0 {
		p.RestPerLevel = def.RestPerLevel
	}
	if p.XPPerLevel <= 0 {
		p.XPPerLevel = def.XPPerLevel
	}
	if p.StatPointsPerLevel < 0 {
		p.StatPointsPerLevel = def.StatPointsPerLevel
	}
	p.HealthPerLevel = min(p.HealthPerLevel, MaxPerLevel)
	p.RestPerLevel = min(p.RestPerLevel, MaxPerLevel)
	p.XPPerLevel = min(p.XPPerLevel, MaxPerLevel)
	p.StatPointsPerLevel = min(p.StatPointsPerLevel, MaxPerLevel)
	return p
}
