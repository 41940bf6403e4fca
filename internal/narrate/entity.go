package narrate

import (
	"strings"

	"github.com/udisondev/jxsim/internal/model"
)

// Stats renders get_stats.
func (n *Narrator) Stats(s model.EntityStats) string {
	line := n.f("%s (%s) - Level %d | HP: %d/%d | XP: %d", s.Name, s.Sect, s.Level, s.Health, s.MaxHealth, s.Experience)
	for _, a := range s.Attributes {
		line += n.f(" | %s: %d", a.Name, a.Value)
	}
	if !s.Alive {
		line += " | defeated"
	}
	return line
}

// Damage renders a TakeDamage outcome.
func (n *Narrator) Damage(d model.DamageResult) string {
	switch {
	case d.Evaded:
		return n.f("%s gracefully evades the attack!", d.Target)
	case d.Finished:
		return n.f("%s takes %d damage and is defeated!", d.Target, d.Dealt)
	case d.Defeated:
		return n.f("%s is already defeated.", d.Target)
	}
	line := n.f("%s takes %d damage! HP: %d/%d", d.Target, d.Dealt, d.Health, d.MaxHealth)
	if d.Absorbed > 0 {
		line += n.f(" (%d absorbed)", d.Absorbed)
	}
	return line
}

// Heal renders a Heal/Rest outcome.
func (n *Narrator) Heal(h model.HealResult) string {
	if !h.OK {
		return n.f("%s cannot be healed: %s.", h.Target, Reason(h.Reason))
	}
	return n.f("%s restores %d HP! HP: %d/%d", h.Target, h.Restored, h.Health, h.MaxHealth)
}

// LevelUp renders a single level gain.
func (n *Narrator) LevelUp(l model.LevelUpResult) string {
	if !l.OK {
		return n.f("%s cannot level up: %s (level %d).", l.Name, Reason(l.Reason), l.Level)
	}
	return n.f("%s reached level %d! Max HP: %d", l.Name, l.Level, l.MaxHealth)
}

// Experience renders GainExperience with every level-up it caused.
func (n *Narrator) Experience(x model.ExperienceResult) []string {
	lines := []string{n.f("%s gained %d experience!", x.Name, x.Gained)}
	for _, l := range x.LevelUps {
		lines = append(lines, n.LevelUp(l))
	}
	return lines
}

// techniquePhrases hold "<actor> <phrase>" templates; %d is the damage.
var techniquePhrases = map[model.Technique]string{
	model.TechniqueDragonStrike: "unleashes Dragon Strike for %d damage!",
	model.TechniqueTaiChiSword:  "performs Tai Chi Sword for %d damage!",
	model.TechniquePalmStrike:   "strikes with Emei Palm for %d damage!",
	model.TechniqueSwordSwing:   "swings a mighty sword for %d damage!",
	model.TechniqueFireball:     "casts a devastating fireball for %d damage!",
	model.TechniqueMeteorStorm:  "calls down a Meteor Storm for %d damage to each foe!",
	model.TechniqueArrowShot:    "shoots a precise arrow for %d damage!",
	model.TechniqueMultiShot:    "fires a volley of arrows for %d damage each!",
	model.TechniqueClaw:         "attacks for %d damage!",
	model.TechniquePoisonDagger: "throws a poison dagger for %d damage!",
	model.TechniqueFireBreath:   "breathes devastating fire for %d damage!",
	model.TechniqueBossAbility:  "unleashes %s for %d damage!",
}

// Action renders Attack/Special: the headline first, then every hit.
func (n *Narrator) Action(a model.ActionResult) []string {
	if !a.OK {
		return []string{n.rejectedAction(a)}
	}

	var head string
	switch a.Technique {
	case model.TechniqueIronBody:
		head = n.f("%s activates Iron Body, absorbing the next %d damage!", a.Actor, a.Guard)
	case model.TechniqueCloudStep:
		head = n.f("%s uses Cloud Step and will evade the next attack!", a.Actor)
	case model.TechniqueShieldBash:
		head = n.f("%s bashes with a shield, stunning the enemy!", a.Actor)
	case model.TechniqueSummonUndead:
		head = n.f("%s summons %d undead minions!", a.Actor, a.Summoned)
	case model.TechniqueRegenerate:
		head = n.f("%s regenerates health rapidly!", a.Actor)
	case model.TechniqueHealingLight:
		head = n.f("%s casts Healing Light!", a.Actor)
	case model.TechniqueBossAbility:
		head = a.Actor + " " + n.f(techniquePhrases[a.Technique], a.Name, a.Damage)
	default:
		phrase, ok := techniquePhrases[a.Technique]
		if !ok {
			phrase = a.Name + " deals %d damage!"
		}
		head = a.Actor + " " + n.f(phrase, a.Damage)
	}

	lines := []string{head}
	if a.Cost != nil {
		lines = append(lines, n.f("  %s left: %d/%d", a.Cost.Pool, a.Cost.Balance, a.Cost.Capacity))
	}
	for _, h := range a.Hits {
		lines = append(lines, "  "+n.Damage(h))
	}
	if a.Heal != nil {
		lines = append(lines, "  "+n.Heal(*a.Heal))
	}
	return lines
}

func (n *Narrator) rejectedAction(a model.ActionResult) string {
	what := a.Name
	if what == "" {
		what = strings.ToLower(a.Kind.String())
	}
	if a.Cost != nil && !a.Cost.OK {
		return n.f("%s cannot use %s: not enough %s (%d/%d).", a.Actor, what, a.Cost.Pool, a.Cost.Balance, a.Cost.Capacity)
	}
	return n.f("%s cannot use %s: %s.", a.Actor, what, Reason(a.Reason))
}

// Loot renders what an enemy dropped.
func (n *Narrator) Loot(l model.LootResult) string {
	if !l.OK {
		return n.f("%s %s.", l.Source, Reason(l.Reason))
	}
	if l.Item != nil {
		return n.f("%s dropped %d gold and %s (%s)!", l.Source, l.Gold, l.Item.Name(), l.Item.Rarity())
	}
	return n.f("%s dropped %d gold", l.Source, l.Gold)
}
