package model

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Sect is the specialization tag (martial sect, hero class or enemy kind).
type Sect uint8

const (
	SectShaolin Sect = iota + 1
	SectWudang
	SectEmei
	SectWarrior
	SectMage
	SectArcher
	SectGoblin
	SectDragon
	SectNecromancer
	SectTroll
	SectBoss
)

var sectNames = map[Sect]string{
	SectShaolin:     "Shaolin",
	SectWudang:      "Wudang",
	SectEmei:        "Emei",
	SectWarrior:     "Warrior",
	SectMage:        "Mage",
	SectArcher:      "Archer",
	SectGoblin:      "Goblin",
	SectDragon:      "Dragon",
	SectNecromancer: "Necromancer",
	SectTroll:       "Troll",
	SectBoss:        "Boss",
}

// String returns the display name.
func (s Sect) String() string {
	if name, ok := sectNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsEnemy reports whether the sect is one of the monster kinds.
func (s Sect) IsEnemy() bool {
	return s >= SectGoblin
}

// ParseSect resolves a case-insensitive sect name.
func ParseSect(name string) (Sect, error) {
	for s, n := range sectNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown sect %q", ErrInvalidArgument, name)
}

// Attribute is a named variant-specific value (inner_strength, chi, ...).
type Attribute struct {
	Name  string
	Value int32
}

// Specialization is an entity variant with its own attributes and actions.
// The set of variants is closed: only this package can implement it.
// An instance belongs to exactly one Entity.
type Specialization interface {
	Sect() Sect
	Attributes() []Attribute

	attack(self, target *Entity) ActionResult
	special(self *Entity, targets []*Entity) ActionResult
	bind() bool
}

// looter is implemented by variants that drop loot.
type looter interface {
	loot() LootResult
}

// specBase tracks ownership of a specialization.
type specBase struct {
	bound atomic.Bool
}

func (b *specBase) bind() bool {
	return b.bound.CompareAndSwap(false, true)
}

// ActionKind distinguishes the two dispatched actions.
type ActionKind uint8

const (
	ActionAttack ActionKind = iota
	ActionSpecial
)

// String returns the action kind name.
func (k ActionKind) String() string {
	if k == ActionSpecial {
		return "special"
	}
	return "attack"
}

// Technique identifies what an action did so a presenter can describe it.
type Technique uint8

const (
	TechniqueNone Technique = iota
	TechniqueDragonStrike
	TechniqueIronBody
	TechniqueTaiChiSword
	TechniqueCloudStep
	TechniquePalmStrike
	TechniqueHealingLight
	TechniqueSwordSwing
	TechniqueShieldBash
	TechniqueFireball
	TechniqueMeteorStorm
	TechniqueArrowShot
	TechniqueMultiShot
	TechniqueClaw
	TechniquePoisonDagger
	TechniqueFireBreath
	TechniqueSummonUndead
	TechniqueRegenerate
	TechniqueBossAbility
)

var techniqueNames = map[Technique]string{
	TechniqueDragonStrike: "Dragon Strike",
	TechniqueIronBody:     "Iron Body",
	TechniqueTaiChiSword:  "Tai Chi Sword",
	TechniqueCloudStep:    "Cloud Step",
	TechniquePalmStrike:   "Palm Strike",
	TechniqueHealingLight: "Healing Light",
	TechniqueSwordSwing:   "Sword Swing",
	TechniqueShieldBash:   "Shield Bash",
	TechniqueFireball:     "Fireball",
	TechniqueMeteorStorm:  "Meteor Storm",
	TechniqueArrowShot:    "Arrow Shot",
	TechniqueMultiShot:    "Multi-Shot",
	TechniqueClaw:         "Claw",
	TechniquePoisonDagger: "Poison Dagger",
	TechniqueFireBreath:   "Fire Breath",
	TechniqueSummonUndead: "Summon Undead",
	TechniqueRegenerate:   "Regenerate",
	TechniqueBossAbility:  "Boss Ability",
}

// String returns the technique display name.
func (t Technique) String() string {
	if name, ok := techniqueNames[t]; ok {
		return name
	}
	return "None"
}

// ActionResult is the outcome of Entity.Attack/Special.
type ActionResult struct {
	Actor     string
	Kind      ActionKind
	Technique Technique
	Name      string // display name, bosses carry their own ability name
	Damage    int32  // damage per target
	Hits      []DamageResult
	Heal      *HealResult
	Guard     int32
	Summoned  int32
	Cost      *PoolResult // resource spent or refused
	OK        bool
	Reason    Reason
}

// LootResult is what an enemy drops.
type LootResult struct {
	Source string
	Gold   int32
	Item   Item
	OK     bool
	Reason Reason
}

func newAction(t Technique) ActionResult {
	return ActionResult{Technique: t, Name: t.String()}
}

// strikeAll applies damage to every non-nil target. damage is never negative.
func strikeAll(damage int32, targets ...*Entity) []DamageResult {
	var hits []DamageResult
	for _, t := range targets {
		if t == nil {
			continue
		}
		hit, err := t.TakeDamage(damage)
		if err != nil {
			continue
		}
		hits = append(hits, hit)
	}
	return hits
}

// spend charges a resource pool and fills the cost fields of res.
func spend(res *ActionResult, pool *Pool, amount int32) bool {
	cost := pool.Spend(amount)
	res.Cost = &cost
	if !cost.OK {
		res.Reason = cost.Reason
		return false
	}
	return true
}
