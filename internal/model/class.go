package model

// Hero class defaults and costs.
const (
	DefaultWarriorPower = 25
	DefaultMagePower    = 35
	DefaultArcherPower  = 20
	DefaultMana         = 100
	MaxMana             = 100
	MeteorStormCost     = 50
	DefaultArrows       = 30
	MultiShotTargets    = 3
)

// Warrior is a melee class that stuns with its shield.
type Warrior struct {
	specBase
	attackPower int32
}

// NewWarrior creates a Warrior specialization.
func NewWarrior(attackPower int32) *Warrior {
	return &Warrior{attackPower: max(attackPower, 0)}
}

func (w *Warrior) Sect() Sect { return SectWarrior }

func (w *Warrior) Attributes() []Attribute {
	return []Attribute{{Name: "attack_power", Value: w.attackPower}}
}

// Sword Swing: level×15 + attack_power.
func (w *Warrior) attack(self, target *Entity) ActionResult {
	res := newAction(TechniqueSwordSwing)
	res.Damage = self.Level()*15 + w.attackPower
	res.Hits = strikeAll(res.Damage, target)
	res.OK = true
	return res
}

// Shield Bash: the first target loses its next action.
func (w *Warrior) special(_ *Entity, targets []*Entity) ActionResult {
	res := newAction(TechniqueShieldBash)
	if len(targets) == 0 || targets[0] == nil {
		res.Reason = ReasonNoTarget
		return res
	}
	if !targets[0].stun() {
		res.Reason = ReasonDefeated
		return res
	}
	res.OK = true
	return res
}

// Mage: магические атаки, Meteor Storm расходует ману.
type Mage struct {
	specBase
	attackPower int32
	mana        *Pool
}

// NewMage creates a Mage specialization with mana capped at max(mana, MaxMana).
func NewMage(attackPower, mana int32) *Mage {
	return &Mage{
		attackPower: max(attackPower, 0),
		mana:        NewPool("mana", mana, max(mana, MaxMana)),
	}
}

func (m *Mage) Sect() Sect { return SectMage }

// Mana returns the current mana balance.
func (m *Mage) Mana() int32 { return m.mana.Balance() }

func (m *Mage) Attributes() []Attribute {
	return []Attribute{
		{Name: "attack_power", Value: m.attackPower},
		{Name: "mana", Value: m.mana.Balance()},
	}
}

func (m *Mage) manaPool() *Pool { return m.mana }

// Fireball: level×20 + attack_power.
func (m *Mage) attack(self, target *Entity) ActionResult {
	res := newAction(TechniqueFireball)
	res.Damage = self.Level()*20 + m.attackPower
	res.Hits = strikeAll(res.Damage, target)
	res.OK = true
	return res
}

// Meteor Storm: MeteorStormCost mana, level×30 to every target.
func (m *Mage) special(self *Entity, targets []*Entity) ActionResult {
	res := newAction(TechniqueMeteorStorm)
	if !spend(&res, m.mana, MeteorStormCost) {
		return res
	}
	res.Damage = self.Level() * 30
	res.Hits = strikeAll(res.Damage, targets...)
	res.OK = true
	return res
}

// Archer is a ranged class; every shot spends an arrow.
type Archer struct {
	specBase
	attackPower int32
	arrows      *Pool
}

// NewArcher creates an Archer with a quiver holding arrows.
func NewArcher(attackPower, arrows int32) *Archer {
	return &Archer{
		attackPower: max(attackPower, 0),
		arrows:      NewPool("arrows", arrows, max(arrows, 1)),
	}
}

func (a *Archer) Sect() Sect { return SectArcher }

// Arrows returns the arrows left in the quiver.
func (a *Archer) Arrows() int32 { return a.arrows.Balance() }

// Restock refills the quiver by up to n arrows.
func (a *Archer) Restock(n int32) PoolResult { return a.arrows.Refill(n) }

func (a *Archer) Attributes() []Attribute {
	return []Attribute{
		{Name: "attack_power", Value: a.attackPower},
		{Name: "arrows", Value: a.arrows.Balance()},
	}
}

// Arrow Shot: one arrow, level×12 + attack_power.
func (a *Archer) attack(self, target *Entity) ActionResult {
	res := newAction(TechniqueArrowShot)
	if !spend(&res, a.arrows, 1) {
		return res
	}
	res.Damage = self.Level()*12 + a.attackPower
	res.Hits = strikeAll(res.Damage, target)
	res.OK = true
	return res
}

// Multi-Shot: one arrow per target, at most MultiShotTargets targets;
// an untargeted volley still looses MultiShotTargets arrows.
func (a *Archer) special(self *Entity, targets []*Entity) ActionResult {
	res := newAction(TechniqueMultiShot)

	var aimed []*Entity
	for _, t := range targets {
		if t != nil && len(aimed) < MultiShotTargets {
			aimed = append(aimed, t)
		}
	}
	arrows := int32(len(aimed))
	if arrows == 0 {
		arrows = MultiShotTargets
	}
	if !spend(&res, a.arrows, arrows) {
		return res
	}

	res.Damage = self.Level()*12 + a.attackPower
	res.Hits = strikeAll(res.Damage, aimed...)
	res.OK = true
	return res
}
