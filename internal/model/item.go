package model

import (
	"fmt"
	"strings"
	"sync"
)

// Rarity уровень редкости предмета.
type Rarity uint8

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

var rarityNames = [...]string{"Common", "Uncommon", "Rare", "Epic", "Legendary"}

// String returns the rarity display name.
func (r Rarity) String() string {
	if int(r) < len(rarityNames) {
		return rarityNames[r]
	}
	return "Unknown"
}

// ParseRarity resolves a case-insensitive rarity name.
func ParseRarity(name string) (Rarity, error) {
	for i, n := range rarityNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Rarity(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown rarity %q", ErrInvalidArgument, name)
}

// ItemEffect describes what using an item did.
type ItemEffect uint8

const (
	EffectNone ItemEffect = iota
	EffectStrike
	EffectHeal
	EffectRestore
	EffectTeleport
)

// ItemResult is the outcome of Item.Use.
type ItemResult struct {
	Item       string
	Effect     ItemEffect
	Amount     int32 // damage, healing or restoration power
	Durability int32 // weapons only, after the use
	Hit        *DamageResult
	Heal       *HealResult
	Restore    *PoolResult
	Detail     string // teleport destination
	OK         bool
	Reason     Reason
}

// Item is anything that can sit in an Inventory.
// user is the entity using the item, target is optional.
type Item interface {
	Name() string
	Value() int32
	Rarity() Rarity
	Use(user, target *Entity) ItemResult
}

// consumable items disappear from an Inventory after a successful use.
type consumable interface {
	consumable() bool
}

// ItemInfo is a read-only description of an item (get_info).
type ItemInfo struct {
	Name   string
	Value  int32
	Rarity Rarity
}

// InfoOf returns the shared description of any item.
func InfoOf(it Item) ItemInfo {
	return ItemInfo{Name: it.Name(), Value: it.Value(), Rarity: it.Rarity()}
}

type itemBase struct {
	name   string
	value  int32
	rarity Rarity
}

func (b itemBase) Name() string   { return b.name }
func (b itemBase) Value() int32   { return b.value }
func (b itemBase) Rarity() Rarity { return b.rarity }

func newItemBase(name string, value int32, rarity Rarity) (itemBase, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return itemBase{}, fmt.Errorf("%w: item name is empty", ErrInvalidArgument)
	}
	if value < 0 {
		return itemBase{}, fmt.Errorf("%w: item %q value %d is negative", ErrInvalidArgument, name, value)
	}
	return itemBase{name: name, value: value, rarity: rarity}, nil
}

// Valuable is a plain treasure: it can be carried and sold, using it does nothing.
type Valuable struct {
	itemBase
}

// NewValuable creates a treasure item.
func NewValuable(name string, value int32, rarity Rarity) (*Valuable, error) {
	b, err := newItemBase(name, value, rarity)
	if err != nil {
		return nil, err
	}
	return &Valuable{itemBase: b}, nil
}

func (v *Valuable) Use(_, _ *Entity) ItemResult {
	return ItemResult{Item: v.name, Reason: ReasonInvalidItem}
}

// Weapon durability rules.
const (
	MaxDurability  = 100
	DurabilityWear = 10
)

// WeaponConfig holds weapon parameters. Use DefaultWeaponConfig for durability 100.
type WeaponConfig struct {
	Name       string
	Type       string
	Damage     int32
	Value      int32
	Rarity     Rarity
	Durability int32
}

// DefaultWeaponConfig returns a common weapon at full durability.
func DefaultWeaponConfig() WeaponConfig {
	return WeaponConfig{Rarity: RarityCommon, Durability: MaxDurability}
}

// Weapon has durability in percent [0, 100].
type Weapon struct {
	itemBase
	kind   string
	damage int32

	mu         sync.Mutex
	durability int32
}

// NewWeapon validates cfg and creates a weapon.
func NewWeapon(cfg WeaponConfig) (*Weapon, error) {
	b, err := newItemBase(cfg.Name, cfg.Value, cfg.Rarity)
	if err != nil {
		return nil, err
	}
	if cfg.Damage < 0 {
		return nil, fmt.Errorf("%w: weapon %q damage %d is negative", ErrInvalidArgument, cfg.Name, cfg.Damage)
	}
	if cfg.Durability < 0 || cfg.Durability > MaxDurability {
		return nil, fmt.Errorf("%w: weapon %q durability %d outside [0, %d]", ErrInvalidArgument, cfg.Name, cfg.Durability, MaxDurability)
	}
	return &Weapon{itemBase: b, kind: cfg.Type, damage: cfg.Damage, durability: cfg.Durability}, nil
}

// Type returns the weapon type ("Sword", "Magic Staff").
func (w *Weapon) Type() string { return w.kind }

// Damage returns the weapon damage.
func (w *Weapon) Damage() int32 { return w.damage }

// Durability returns the durability percentage.
func (w *Weapon) Durability() int32 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.durability
}

// Use wears the weapon by DurabilityWear and hits target when given.
// A broken weapon (durability 0) refuses.
func (w *Weapon) Use(_, target *Entity) ItemResult {
	w.mu.Lock()
	res := ItemResult{Item: w.name, Effect: EffectStrike, Amount: w.damage, Durability: w.durability}
	if w.durability == 0 {
		w.mu.Unlock()
		res.Reason = ReasonBroken
		return res
	}
	w.durability = max(w.durability-DurabilityWear, 0)
	res.Durability = w.durability
	w.mu.Unlock()

	if hits := strikeAll(w.damage, target); len(hits) > 0 {
		res.Hit = &hits[0]
	}
	res.OK = true
	return res
}

// Repair restores durability to MaxDurability.
func (w *Weapon) Repair() ItemResult {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.durability = MaxDurability
	return ItemResult{Item: w.name, Durability: w.durability, OK: true}
}

// Potion heals its user by healingPower.
type Potion struct {
	itemBase
	healingPower int32
}

// NewPotion creates a healing potion.
func NewPotion(name string, value int32, rarity Rarity, healingPower int32) (*Potion, error) {
	b, err := newItemBase(name, value, rarity)
	if err != nil {
		return nil, err
	}
	if healingPower < 0 {
		return nil, fmt.Errorf("%w: potion %q healing power %d is negative", ErrInvalidArgument, name, healingPower)
	}
	return &Potion{itemBase: b, healingPower: healingPower}, nil
}

// NewHealthPotion returns the standard 100 HP potion.
func NewHealthPotion() *Potion {
	return &Potion{itemBase: itemBase{name: "Health Potion", value: 25}, healingPower: 100}
}

// HealingPower returns how much the potion heals.
func (p *Potion) HealingPower() int32 { return p.healingPower }

func (p *Potion) consumable() bool { return true }

func (p *Potion) Use(user, _ *Entity) ItemResult {
	res := ItemResult{Item: p.name, Effect: EffectHeal, Amount: p.healingPower}
	if user == nil {
		res.Reason = ReasonNoTarget
		return res
	}
	heal, _ := user.Heal(p.healingPower)
	res.Heal = &heal
	res.OK = heal.OK
	res.Reason = heal.Reason
	return res
}

// manaCaster is implemented by specializations with a chi/mana pool.
type manaCaster interface {
	manaPool() *Pool
}

// ManaPotion refills the user's chi or mana.
type ManaPotion struct {
	itemBase
	restore int32
}

// NewManaPotion returns the standard 50 mana potion.
func NewManaPotion() *ManaPotion {
	return &ManaPotion{itemBase: itemBase{name: "Mana Potion", value: 25}, restore: 50}
}

func (p *ManaPotion) consumable() bool { return true }

func (p *ManaPotion) Use(user, _ *Entity) ItemResult {
	res := ItemResult{Item: p.name, Effect: EffectRestore, Amount: p.restore}
	if user == nil {
		res.Reason = ReasonNoTarget
		return res
	}
	caster, ok := user.Spec().(manaCaster)
	if !ok {
		res.Reason = ReasonInvalidItem
		return res
	}
	restore := caster.manaPool().Refill(p.restore)
	res.Restore = &restore
	res.OK = restore.OK
	res.Reason = restore.Reason
	return res
}

// FireScroll casts a fireball at the target.
type FireScroll struct {
	itemBase
	damage int32
}

// NewFireScroll returns the standard 200 damage scroll.
func NewFireScroll() *FireScroll {
	return &FireScroll{itemBase: itemBase{name: "Scroll of Fireball", value: 75, rarity: RarityUncommon}, damage: 200}
}

func (s *FireScroll) consumable() bool { return true }

func (s *FireScroll) Use(_, target *Entity) ItemResult {
	res := ItemResult{Item: s.name, Effect: EffectStrike, Amount: s.damage}
	if hits := strikeAll(s.damage, target); len(hits) > 0 {
		res.Hit = &hits[0]
	}
	res.OK = true
	return res
}

// TeleportScroll moves the user to a destination.
type TeleportScroll struct {
	itemBase
	destination string
}

// NewTeleportScroll returns a scroll leading to town.
func NewTeleportScroll() *TeleportScroll {
	return &TeleportScroll{itemBase: itemBase{name: "Teleport Scroll", value: 40}, destination: "town"}
}

func (s *TeleportScroll) consumable() bool { return true }

func (s *TeleportScroll) Use(_, _ *Entity) ItemResult {
	return ItemResult{Item: s.name, Effect: EffectTeleport, Detail: s.destination, OK: true}
}
