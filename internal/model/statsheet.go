package model

import "sync"

// Stat identifies an allocatable attribute.
type Stat uint8

const (
	StatStrength Stat = iota
	StatAgility
	StatIntelligence
)

// String returns the stat display name.
func (s Stat) String() string {
	switch s {
	case StatStrength:
		return "Strength"
	case StatAgility:
		return "Agility"
	case StatIntelligence:
		return "Intelligence"
	default:
		return "Unknown"
	}
}

// Starting values of a fresh StatSheet.
const (
	BaseStatValue  = 10
	BaseStatPoints = 5
)

// StatValues is a read-only copy of a StatSheet.
type StatValues struct {
	Strength     int32
	Agility      int32
	Intelligence int32
	Points       int32
}

// StatResult is the outcome of Increase/Reward.
type StatResult struct {
	Stat      Stat
	Points    int32
	Value     int32 // new value of Stat (Increase only)
	Available int32 // unspent points after the call
	OK        bool
	Reason    Reason
}

// StatSheet хранит распределяемые характеристики персонажа.
// Values move only by spending available points.
type StatSheet struct {
	mu     sync.RWMutex
	values [3]int32
	points int32
}

// NewStatSheet returns a sheet with every stat at BaseStatValue and
// BaseStatPoints unspent.
func NewStatSheet() *StatSheet {
	return &StatSheet{
		values: [3]int32{BaseStatValue, BaseStatValue, BaseStatValue},
		points: BaseStatPoints,
	}
}

// Snapshot returns the current values.
func (s *StatSheet) Snapshot() StatValues {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StatValues{
		Strength:     s.values[StatStrength],
		Agility:      s.values[StatAgility],
		Intelligence: s.values[StatIntelligence],
		Points:       s.points,
	}
}

// Increase moves points from the unspent pool into stat.
func (s *StatSheet) Increase(stat Stat, points int32) StatResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := StatResult{Stat: stat, Points: points, Available: s.points}
	switch {
	case int(stat) >= len(s.values):
		res.Reason = ReasonUnknownStat
		return res
	case points <= 0:
		res.Reason = ReasonInvalidAmount
		res.Value = s.values[stat]
		return res
	case points > s.points:
		res.Reason = ReasonInsufficient
		res.Value = s.values[stat]
		return res
	}

	s.values[stat] += points
	s.points -= points
	res.Value = s.values[stat]
	res.Available = s.points
	res.OK = true
	return res
}

// Reward grants unspent points (level-up bonus).
func (s *StatSheet) Reward(points int32) StatResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := StatResult{Points: points, Available: s.points}
	if points <= 0 {
		res.Reason = ReasonInvalidAmount
		return res
	}
	s.points += points
	res.Available = s.points
	res.OK = true
	return res
}
