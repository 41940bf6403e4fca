package skill

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/udisondev/jxsim/internal/model"
)

// Kind selects how a skill's power is applied.
type Kind uint8

const (
	KindMelee Kind = iota
	KindRanged
	KindHealing
	KindBuff
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindMelee:
		return "Melee"
	case KindRanged:
		return "Ranged"
	case KindHealing:
		return "Healing"
	case KindBuff:
		return "Buff"
	default:
		return "Unknown"
	}
}

// ParseKind resolves a case-insensitive kind name.
func ParseKind(name string) (Kind, error) {
	for k := KindMelee; k <= KindBuff; k++ {
		if strings.EqualFold(k.String(), strings.TrimSpace(name)) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown skill kind %q", model.ErrInvalidArgument, name)
}

// State constants of the cooldown machine.
const (
	StateReady    byte = 0
	StateCooldown byte = 1
)

// UseResult is the outcome of Use/Cast.
type UseResult struct {
	Skill    string
	User     string
	Kind     Kind
	Power    int32
	Cooldown int32 // turns set on success, turns remaining on rejection
	Hit      *model.DamageResult
	Heal     *model.HealResult
	OK       bool
	Reason   model.Reason
}

// TurnResult is the outcome of AdvanceTurn.
type TurnResult struct {
	Skill     string
	Remaining int32
	Ready     bool
	Refreshed bool // this turn finished the cooldown
}

// Status is a snapshot of a skill (get_status).
type Status struct {
	Name      string
	Kind      Kind
	Power     int32
	State     byte
	Remaining int32
}

// Skill is an ability with a cooldown counted in turns.
// READY -> Use -> ON_COOLDOWN(cooldownTurns) -> AdvanceTurn × n -> READY.
// A skill with zero cooldown turns never leaves READY.
//
// Thread-safe via mutex.
type Skill struct {
	name          string
	kind          Kind
	power         int32
	cooldownTurns int32

	mu      sync.Mutex
	current int32
}

// New creates a ready skill.
func New(name string, kind Kind, power, cooldownTurns int32) (*Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: skill name is empty", model.ErrInvalidArgument)
	}
	if kind > KindBuff {
		return nil, fmt.Errorf("%w: skill %q has unknown kind %d", model.ErrInvalidArgument, name, kind)
	}
	if power < 0 {
		return nil, fmt.Errorf("%w: skill %q power %d is negative", model.ErrInvalidArgument, name, power)
	}
	if cooldownTurns < 0 {
		return nil, fmt.Errorf("%w: skill %q cooldown %d is negative", model.ErrInvalidArgument, name, cooldownTurns)
	}
	return &Skill{name: name, kind: kind, power: power, cooldownTurns: cooldownTurns}, nil
}

// Name returns the skill name.
func (s *Skill) Name() string { return s.name }

// Kind returns the skill kind.
func (s *Skill) Kind() Kind { return s.kind }

// Power returns damage (melee/ranged), healing (healing) or bonus (buff).
func (s *Skill) Power() int32 { return s.power }

// CooldownTurns returns the fixed cooldown length.
func (s *Skill) CooldownTurns() int32 { return s.cooldownTurns }

// Ready reports whether the skill can be used now.
func (s *Skill) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current == 0
}

// Use triggers the skill for user and starts the cooldown. On cooldown the
// call is rejected and nothing changes.
func (s *Skill) Use(user string) UseResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := UseResult{Skill: s.name, User: user, Kind: s.kind, Power: s.power}
	if s.current > 0 {
		res.Cooldown = s.current
		res.Reason = model.ReasonCooldown
		return res
	}

	s.current = s.cooldownTurns
	res.Cooldown = s.cooldownTurns
	res.OK = true
	return res
}

// Cast uses the skill and applies its power: melee/ranged damage the target,
// healing restores the target or the user when target is nil.
// Buffs only start the cooldown.
func (s *Skill) Cast(user, target *model.Entity) UseResult {
	if user == nil {
		return UseResult{Skill: s.name, Kind: s.kind, Power: s.power, Reason: model.ReasonNoTarget}
	}
	if !user.IsAlive() {
		return UseResult{Skill: s.name, User: user.Name(), Kind: s.kind, Power: s.power, Reason: model.ReasonDefeated}
	}

	res := s.Use(user.Name())
	if !res.OK {
		return res
	}

	switch s.kind {
	case KindMelee, KindRanged:
		if target != nil {
			hit, err := target.TakeDamage(s.power)
			if err == nil {
				res.Hit = &hit
			}
		}
	case KindHealing:
		if target == nil {
			target = user
		}
		heal, err := target.Heal(s.power)
		if err == nil {
			res.Heal = &heal
		}
	}
	slog.Debug("skill cast", "skill", s.name, "user", user.Name(), "kind", s.kind)
	return res
}

// AdvanceTurn counts one turn off the cooldown.
func (s *Skill) AdvanceTurn() TurnResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := TurnResult{Skill: s.name}
	if s.current > 0 {
		s.current--
		res.Refreshed = s.current == 0
	}
	res.Remaining = s.current
	res.Ready = s.current == 0
	return res
}

// Status returns a snapshot.
func (s *Skill) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{Name: s.name, Kind: s.kind, Power: s.power, Remaining: s.current, State: StateReady}
	if s.current > 0 {
		st.State = StateCooldown
	}
	return st
}
