package model

// Martial sect defaults and costs.
const (
	DefaultInnerStrength = 50
	DefaultSwordMastery  = 60
	DefaultChi           = 100
	MaxChi               = 100
	HealingLightCost     = 30
	ChiRestoreAmount     = 50
)

// Shaolin: мощные ближние техники на inner_strength.
type Shaolin struct {
	specBase
	innerStrength int32
}

// NewShaolin creates a Shaolin specialization. Negative strength becomes 0.
func NewShaolin(innerStrength int32) *Shaolin {
	return &Shaolin{innerStrength: max(innerStrength, 0)}
}

func (s *Shaolin) Sect() Sect { return SectShaolin }

// InnerStrength returns the Shaolin bonus attribute.
func (s *Shaolin) InnerStrength() int32 { return s.innerStrength }

func (s *Shaolin) Attributes() []Attribute {
	return []Attribute{{Name: "inner_strength", Value: s.innerStrength}}
}

// Dragon Strike: level×15 + inner_strength.
func (s *Shaolin) attack(self, target *Entity) ActionResult {
	res := newAction(TechniqueDragonStrike)
	res.Damage = self.Level()*15 + s.innerStrength
	res.Hits = strikeAll(res.Damage, target)
	res.OK = true
	return res
}

// Iron Body: a guard equal to inner_strength soaks incoming damage.
func (s *Shaolin) special(self *Entity, _ []*Entity) ActionResult {
	res := newAction(TechniqueIronBody)
	res.Guard = s.innerStrength
	self.setGuard(res.Guard)
	res.OK = true
	return res
}

// Wudang fights with sword mastery and evasion.
type Wudang struct {
	specBase
	swordMastery int32
}

// NewWudang creates a Wudang specialization.
func NewWudang(swordMastery int32) *Wudang {
	return &Wudang{swordMastery: max(swordMastery, 0)}
}

func (w *Wudang) Sect() Sect { return SectWudang }

// SwordMastery returns the Wudang bonus attribute.
func (w *Wudang) SwordMastery() int32 { return w.swordMastery }

func (w *Wudang) Attributes() []Attribute {
	return []Attribute{{Name: "sword_mastery", Value: w.swordMastery}}
}

// Tai Chi Sword: level×12 + sword_mastery.
func (w *Wudang) attack(self, target *Entity) ActionResult {
	res := newAction(TechniqueTaiChiSword)
	res.Damage = self.Level()*12 + w.swordMastery
	res.Hits = strikeAll(res.Damage, target)
	res.OK = true
	return res
}

// Cloud Step: the next incoming hit is dodged.
func (w *Wudang) special(self *Entity, _ []*Entity) ActionResult {
	res := newAction(TechniqueCloudStep)
	self.setEvading()
	res.OK = true
	return res
}

// Emei лечит союзников и расходует chi.
type Emei struct {
	specBase
	chi *Pool
}

// NewEmei creates an Emei specialization with chi capped at max(chi, MaxChi).
func NewEmei(chi int32) *Emei {
	return &Emei{chi: NewPool("chi", chi, max(chi, MaxChi))}
}

func (e *Emei) Sect() Sect { return SectEmei }

// Chi returns the current chi balance.
func (e *Emei) Chi() int32 { return e.chi.Balance() }

// RestoreChi refills ChiRestoreAmount chi, clamped to capacity.
func (e *Emei) RestoreChi() PoolResult { return e.chi.Refill(ChiRestoreAmount) }

func (e *Emei) Attributes() []Attribute {
	return []Attribute{{Name: "chi", Value: e.chi.Balance()}}
}

func (e *Emei) manaPool() *Pool { return e.chi }

// Palm Strike: level×10.
func (e *Emei) attack(self, target *Entity) ActionResult {
	res := newAction(TechniquePalmStrike)
	res.Damage = self.Level() * 10
	res.Hits = strikeAll(res.Damage, target)
	res.OK = true
	return res
}

// Healing Light: costs HealingLightCost chi and heals level×20 on the first
// target, or on self when no target is given.
func (e *Emei) special(self *Entity, targets []*Entity) ActionResult {
	res := newAction(TechniqueHealingLight)

	target := self
	if len(targets) > 0 && targets[0] != nil {
		target = targets[0]
	}
	if !target.IsAlive() {
		res.Reason = ReasonDefeated
		return res
	}
	if !spend(&res, e.chi, HealingLightCost) {
		return res
	}

	heal, _ := target.Heal(self.Level() * 20)
	res.Heal = &heal
	res.OK = true
	return res
}
