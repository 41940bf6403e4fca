package model

import "fmt"

// Loot and summon constants.
const (
	MonsterLootGold = 10
	BossLootGold    = 500
	SummonedMinions = 3
)

// Monster is a regular enemy. Kind selects the special ability.
type Monster struct {
	specBase
	kind   Sect
	damage int32
}

// NewMonster creates a monster of one of the enemy kinds
// (Goblin, Dragon, Necromancer, Troll).
func NewMonster(kind Sect, damage int32) (*Monster, error) {
	switch kind {
	case SectGoblin, SectDragon, SectNecromancer, SectTroll:
	default:
		return nil, fmt.Errorf("%w: %s is not a monster kind", ErrInvalidArgument, kind)
	}
	if damage < 0 {
		return nil, fmt.Errorf("%w: monster damage %d is negative", ErrInvalidArgument, damage)
	}
	return &Monster{kind: kind, damage: damage}, nil
}

func (m *Monster) Sect() Sect { return m.kind }

// Damage returns the base hit of the monster.
func (m *Monster) Damage() int32 { return m.damage }

func (m *Monster) Attributes() []Attribute {
	return []Attribute{{Name: "damage", Value: m.damage}}
}

func (m *Monster) attack(_ *Entity, target *Entity) ActionResult {
	res := newAction(TechniqueClaw)
	res.Damage = m.damage
	res.Hits = strikeAll(res.Damage, target)
	res.OK = true
	return res
}

func (m *Monster) special(self *Entity, targets []*Entity) ActionResult {
	var res ActionResult
	switch m.kind {
	case SectGoblin:
		res = newAction(TechniquePoisonDagger)
		res.Damage = m.damage + self.Level()*5
		res.Hits = strikeAll(res.Damage, first(targets))
	case SectDragon:
		res = newAction(TechniqueFireBreath)
		res.Damage = m.damage * 2
		res.Hits = strikeAll(res.Damage, targets...)
	case SectNecromancer:
		res = newAction(TechniqueSummonUndead)
		res.Summoned = SummonedMinions
	case SectTroll:
		res = newAction(TechniqueRegenerate)
		heal := self.Rest()
		res.Heal = &heal
	}
	res.OK = true
	return res
}

func (m *Monster) loot() LootResult {
	return LootResult{Gold: MonsterLootGold}
}

// Boss описывает врага с именной способностью: атака ×2, способность ×3.
type Boss struct {
	specBase
	damage  int32
	ability string
	drop    Item
}

// NewBoss creates a boss. drop may be nil; it is handed out by Loot.
func NewBoss(damage int32, ability string, drop Item) (*Boss, error) {
	if damage < 0 {
		return nil, fmt.Errorf("%w: boss damage %d is negative", ErrInvalidArgument, damage)
	}
	if ability == "" {
		return nil, fmt.Errorf("%w: boss ability name is empty", ErrInvalidArgument)
	}
	return &Boss{damage: damage, ability: ability, drop: drop}, nil
}

func (b *Boss) Sect() Sect { return SectBoss }

// Ability returns the boss's signature ability name.
func (b *Boss) Ability() string { return b.ability }

func (b *Boss) Attributes() []Attribute {
	return []Attribute{{Name: "damage", Value: b.damage}}
}

func (b *Boss) attack(_ *Entity, target *Entity) ActionResult {
	res := newAction(TechniqueBossAbility)
	res.Name = b.ability
	res.Damage = b.damage * 2
	res.Hits = strikeAll(res.Damage, target)
	res.OK = true
	return res
}

func (b *Boss) special(_ *Entity, targets []*Entity) ActionResult {
	res := newAction(TechniqueBossAbility)
	res.Name = b.ability
	res.Damage = b.damage * 3
	res.Hits = strikeAll(res.Damage, targets...)
	res.OK = true
	return res
}

func (b *Boss) loot() LootResult {
	return LootResult{Gold: BossLootGold, Item: b.drop}
}

func first(targets []*Entity) *Entity {
	if len(targets) == 0 {
		return nil
	}
	return targets[0]
}
