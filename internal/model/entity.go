package model

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// EntityConfig описывает параметры создания сущности.
// Level 0 means level 1; a zero Progression means DefaultProgression.
type EntityConfig struct {
	Name        string
	Level       int32
	Spec        Specialization
	Progression Progression
}

// EntityStats is a point-in-time copy of an entity (get_stats).
type EntityStats struct {
	ID         uuid.UUID
	Name       string
	Sect       Sect
	Level      int32
	Health     int32
	MaxHealth  int32
	Experience int32
	Alive      bool
	Guard      int32
	Evading    bool
	Stunned    bool
	Attributes []Attribute
	Stats      StatValues
}

// DamageResult is the outcome of TakeDamage.
type DamageResult struct {
	Target    string
	Requested int32
	Absorbed  int32 // soaked by an active guard
	Dealt     int32
	Evaded    bool
	Health    int32
	MaxHealth int32
	Defeated  bool // health is 0 after the call
	Finished  bool // this call performed the alive -> defeated transition
}

// HealResult is the outcome of Heal/Rest. Restored may be less than
// Requested because health is clamped to MaxHealth.
type HealResult struct {
	Target    string
	Requested int32
	Restored  int32
	Health    int32
	MaxHealth int32
	OK        bool
	Reason    Reason
}

// LevelUpResult is the outcome of a single level gain.
type LevelUpResult struct {
	Name       string
	Level      int32
	MaxHealth  int32
	StatPoints int32 // unspent stat points after the reward
	OK         bool
	Reason     Reason
}

// ExperienceResult is the outcome of GainExperience.
type ExperienceResult struct {
	Name       string
	Gained     int32
	Experience int32 // experience after any level-ups
	Level      int32
	LevelUps   []LevelUpResult
}

// Entity is a base actor (hero or enemy) with level, health and experience.
// Invariant: 0 <= health <= maxHealth, maxHealth = level × HealthPerLevel.
//
// Thread-safe: all state is guarded by mu.
type Entity struct {
	id    uuid.UUID
	name  string
	spec  Specialization
	prog  Progression
	sheet *StatSheet

	mu         sync.RWMutex
	level      int32
	health     int32
	maxHealth  int32
	experience int32
	guard      int32 // damage absorbed before health (Iron Body)
	evading    bool  // next hit is dodged (Cloud Step)
	stunned    bool  // next action is lost (Shield Bash)
}

// NewEntity создаёт сущность с полным здоровьем и нулевым опытом.
// Returns an error wrapping ErrInvalidArgument for an empty name, a level
// outside [1, MaxLevel], a nil specialization or a specialization already owned by another
// entity.
func NewEntity(cfg EntityConfig) (*Entity, error) {
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: entity name is empty", ErrInvalidArgument)
	}
	level := cfg.Level
	if level == 0 {
		level = 1
	}
	if level < 1 {
		return nil, fmt.Errorf("%w: level %d for %q must be >= 1", ErrInvalidArgument, level, name)
	}
	if cfg.Spec == nil {
		return nil, fmt.Errorf("%w: %q has no specialization", ErrInvalidArgument, name)
	}

	prog := cfg.Progression.withDefaults()
	if level > MaxLevel {
		return nil, fmt.Errorf("%w: level %d for %q is out of range", ErrInvalidArgument, level, name)
	}
	if !cfg.Spec.bind() {
		return nil, fmt.Errorf("%w: %s specialization already belongs to another entity", ErrInvalidArgument, cfg.Spec.Sect())
	}

	maxHealth := level * prog.HealthPerLevel
	return &Entity{
		id:        uuid.New(),
		name:      name,
		spec:      cfg.Spec,
		prog:      prog,
		sheet:     NewStatSheet(),
		level:     level,
		health:    maxHealth,
		maxHealth: maxHealth,
	}, nil
}

// ID возвращает уникальный идентификатор (имена могут совпадать).
func (e *Entity) ID() uuid.UUID {
	return e.id
}

// Name returns the entity name.
func (e *Entity) Name() string {
	return e.name
}

// Spec returns the specialization fixed at creation.
func (e *Entity) Spec() Specialization {
	return e.spec
}

// Sect returns the specialization tag.
func (e *Entity) Sect() Sect {
	return e.spec.Sect()
}

// StatSheet returns the entity's allocatable stats.
func (e *Entity) StatSheet() *StatSheet {
	return e.sheet
}

// Level возвращает текущий уровень.
func (e *Entity) Level() int32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.level
}

// Health возвращает текущее здоровье.
func (e *Entity) Health() int32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.health
}

// MaxHealth возвращает максимальное здоровье.
func (e *Entity) MaxHealth() int32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.maxHealth
}

// Experience returns experience accumulated toward the next level.
func (e *Entity) Experience() int32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.experience
}

// IsAlive reports health > 0.
func (e *Entity) IsAlive() bool {
	return e.Health() > 0
}

// Stats returns a snapshot of the entity.
func (e *Entity) Stats() EntityStats {
	e.mu.RLock()
	st := EntityStats{
		ID:         e.id,
		Name:       e.name,
		Sect:       e.spec.Sect(),
		Level:      e.level,
		Health:     e.health,
		MaxHealth:  e.maxHealth,
		Experience: e.experience,
		Alive:      e.health > 0,
		Guard:      e.guard,
		Evading:    e.evading,
		Stunned:    e.stunned,
	}
	e.mu.RUnlock()

	st.Attributes = e.spec.Attributes()
	st.Stats = e.sheet.Snapshot()
	return st
}

// TakeDamage reduces health by amount, never below 0.
// An active evade cancels the hit, an active guard absorbs damage first.
// Damage to an already defeated entity leaves health at 0.
func (e *Entity) TakeDamage(amount int32) (DamageResult, error) {
	if amount < 0 {
		return DamageResult{}, fmt.Errorf("%w: damage %d is negative", ErrInvalidArgument, amount)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	res := DamageResult{Target: e.name, Requested: amount, MaxHealth: e.maxHealth}
	if e.health == 0 {
		res.Defeated = true
		return res, nil
	}

	if e.evading && amount > 0 {
		e.evading = false
		res.Evaded = true
		res.Health = e.health
		return res, nil
	}

	absorbed := min(e.guard, amount)
	e.guard -= absorbed
	dealt := amount - absorbed

	e.health = max(e.health-dealt, 0)
	res.Absorbed = absorbed
	res.Dealt = dealt
	res.Health = e.health

	if e.health == 0 {
		res.Defeated = true
		res.Finished = true
		e.guard = 0
		e.evading = false
		e.stunned = false
		slog.Debug("entity defeated", "name", e.name, "id", e.id, "damage", dealt)
	}
	return res, nil
}

// Heal restores health clamped to max. Defeated entities cannot be healed.
func (e *Entity) Heal(amount int32) (HealResult, error) {
	if amount < 0 {
		return HealResult{}, fmt.Errorf("%w: heal %d is negative", ErrInvalidArgument, amount)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.healLocked(amount), nil
}

// Rest heals level × RestPerLevel.
func (e *Entity) Rest() HealResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	amount := min(int64(e.level)*int64(e.prog.RestPerLevel), math.MaxInt32)
	return e.healLocked(int32(amount))
}

func (e *Entity) healLocked(amount int32) HealResult {
	res := HealResult{Target: e.name, Requested: amount, Health: e.health, MaxHealth: e.maxHealth}
	if e.health == 0 {
		res.Reason = ReasonDefeated
		return res
	}

	healed := int32(min(int64(e.health)+int64(amount), int64(e.maxHealth)))
	res.Restored = healed - e.health
	e.health = healed
	res.Health = healed
	res.OK = true
	return res
}

// GainExperience accumulates xp. Every full XPPerLevel triggers a level up;
// the remainder carries toward the next level. At MaxLevel experience keeps
// accumulating (capped at MaxInt32) without further level ups.
func (e *Entity) GainExperience(xp int32) (ExperienceResult, error) {
	if xp < 0 {
		return ExperienceResult{}, fmt.Errorf("%w: experience %d is negative", ErrInvalidArgument, xp)
	}

	e.mu.Lock()
	res := ExperienceResult{Name: e.name, Gained: xp}

	total := int64(e.experience) + int64(xp)
	var ups []LevelUpResult
	for total >= int64(e.prog.XPPerLevel) && e.level < MaxLevel {
		total -= int64(e.prog.XPPerLevel)
		ups = append(ups, e.levelUpLocked())
	}
	e.experience = int32(min(total, math.MaxInt32))
	res.Experience = e.experience
	res.Level = e.level
	e.mu.Unlock()

	for i := range ups {
		ups[i].StatPoints = e.sheet.Reward(e.prog.StatPointsPerLevel).Available
	}
	res.LevelUps = ups
	return res, nil
}

// LevelUp повышает уровень на 1: пересчитывает maxHealth, восстанавливает
// здоровье и сбрасывает опыт в 0. At MaxLevel nothing changes and the result
// carries ReasonMaxLevel.
func (e *Entity) LevelUp() LevelUpResult {
	e.mu.Lock()
	if e.level >= MaxLevel {
		res := LevelUpResult{Name: e.name, Level: e.level, MaxHealth: e.maxHealth, Reason: ReasonMaxLevel}
		e.mu.Unlock()
		res.StatPoints = e.sheet.Snapshot().Points
		return res
	}
	res := e.levelUpLocked()
	e.experience = 0
	e.mu.Unlock()

	res.StatPoints = e.sheet.Reward(e.prog.StatPointsPerLevel).Available
	return res
}

func (e *Entity) levelUpLocked() LevelUpResult {
	e.level++
	e.maxHealth = e.level * e.prog.HealthPerLevel
	e.health = e.maxHealth
	slog.Debug("entity leveled up", "name", e.name, "level", e.level)
	return LevelUpResult{Name: e.name, Level: e.level, MaxHealth: e.maxHealth, OK: true}
}

// Attack dispatches the specialization's basic attack against target.
// A nil target only describes the damage.
func (e *Entity) Attack(target *Entity) ActionResult {
	if res, ok := e.begin(ActionAttack); !ok {
		return res
	}
	res := e.spec.attack(e, target)
	res.Actor = e.name
	res.Kind = ActionAttack
	return res
}

// Special dispatches the specialization's signature ability.
func (e *Entity) Special(targets ...*Entity) ActionResult {
	if res, ok := e.begin(ActionSpecial); !ok {
		return res
	}
	res := e.spec.special(e, targets)
	res.Actor = e.name
	res.Kind = ActionSpecial
	return res
}

// Loot returns what a defeated enemy drops. Heroes are not lootable.
func (e *Entity) Loot() LootResult {
	l, ok := e.spec.(looter)
	if !ok {
		return LootResult{Source: e.name, Reason: ReasonNotLootable}
	}
	res := l.loot()
	res.Source = e.name
	res.OK = true
	return res
}

// begin checks that the entity may act. A stunned entity loses this action.
func (e *Entity) begin(kind ActionKind) (ActionResult, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	res := ActionResult{Actor: e.name, Kind: kind}
	if e.health == 0 {
		res.Reason = ReasonDefeated
		return res, false
	}
	if e.stunned {
		e.stunned = false
		res.Reason = ReasonStunned
		return res, false
	}
	return res, true
}

func (e *Entity) setGuard(amount int32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.guard = amount
}

func (e *Entity) setEvading() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.evading = true
}

// stun returns false when the target is already defeated.
func (e *Entity) stun() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.health == 0 {
		return false
	}
	e.stunned = true
	return true
}
