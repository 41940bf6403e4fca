package narrate

import (
	"github.com/udisondev/jxsim/internal/game/quest"
	"github.com/udisondev/jxsim/internal/game/skill"
	"github.com/udisondev/jxsim/internal/game/town"
)

var kindPhrases = map[skill.Kind]string{
	skill.KindMelee:   "%s uses %s: a close-range strike with %d power!",
	skill.KindRanged:  "%s uses %s: a ranged attack with %d power!",
	skill.KindHealing: "%s uses %s: restores %d health!",
	skill.KindBuff:    "%s uses %s: empowered by %d!",
}

// SkillUse renders Skill.Use/Cast.
func (n *Narrator) SkillUse(r skill.UseResult) []string {
	if !r.OK {
		if r.Cooldown > 0 {
			return []string{n.f("%s is on cooldown! %d turns remaining", r.Skill, r.Cooldown)}
		}
		return []string{n.f("%s cannot use %s: %s.", r.User, r.Skill, Reason(r.Reason))}
	}

	lines := []string{n.f(kindPhrases[r.Kind], r.User, r.Skill, r.Power)}
	if r.Hit != nil {
		lines = append(lines, "  "+n.Damage(*r.Hit))
	}
	if r.Heal != nil {
		lines = append(lines, "  "+n.Heal(*r.Heal))
	}
	if r.Cooldown > 0 {
		lines = append(lines, n.f("  Cooldown: %d turns", r.Cooldown))
	}
	return lines
}

// Turn renders AdvanceTurn.
func (n *Narrator) Turn(r skill.TurnResult) string {
	switch {
	case r.Refreshed:
		return n.f("%s is ready to use!", r.Skill)
	case r.Ready:
		return n.f("%s is ready.", r.Skill)
	}
	return n.f("%s cooldown: %d turns remaining", r.Skill, r.Remaining)
}

// SkillStatus renders get_status of a skill.
func (n *Narrator) SkillStatus(s skill.Status) string {
	if s.State == skill.StateReady {
		return n.f("%s (%s, %d power): Ready", s.Name, s.Kind, s.Power)
	}
	return n.f("%s (%s, %d power): %d turns", s.Name, s.Kind, s.Power, s.Remaining)
}

// QuestStatus renders get_status of a quest.
func (n *Narrator) QuestStatus(s quest.Status) string {
	state := "In Progress"
	if s.State == quest.StateCompleted {
		state = "Completed"
	}
	return n.f("Quest: %s [%s] - %d%% - %s (Reward: %d gold)", s.Title, s.Difficulty, s.Progress, state, s.Reward)
}

// Progress renders UpdateProgress.
func (n *Narrator) Progress(r quest.ProgressResult) string {
	switch {
	case r.RewardDue:
		return n.f("Quest '%s' completed! Earned %d gold", r.Title, r.Reward)
	case !r.OK:
		return n.f("Quest '%s': %s.", r.Title, Reason(r.Reason))
	}
	return n.f("Quest progress: %d%%", r.Progress)
}

// Advance renders a Log.Advance including the payout.
func (n *Narrator) Advance(a quest.Advance) []string {
	lines := []string{n.Progress(a.ProgressResult)}
	if a.Payout != nil {
		lines = append(lines, "  "+n.Pool(*a.Payout))
	}
	return lines
}

// Greeting renders NPC.Interact.
func (n *Narrator) Greeting(g town.Greeting) string {
	switch g.Role {
	case town.RoleMerchant:
		return n.f("%s: 'Welcome! Browse my wares and make a purchase!' (%d for sale)", g.NPC, g.Offers)
	case town.RoleQuestGiver:
		if g.Offers == 0 {
			return n.f("%s: 'I have no more tasks for you, friend.'", g.NPC)
		}
		return n.f("%s: 'I have a quest for you, brave adventurer!'", g.NPC)
	case town.RoleGuard:
		if g.Hostile {
			return n.f("%s: 'You shall not pass, %s!'", g.NPC, g.Visitor)
		}
		return n.f("%s: 'Halt! State your business in this city.'", g.NPC)
	case town.RoleInnkeeper:
		return n.f("%s: 'Rest here for %d gold and restore your health.'", g.NPC, g.Price)
	}
	return n.f("%s nods.", g.NPC)
}

// Purchase renders Merchant.Sell.
func (n *Narrator) Purchase(p town.Purchase) string {
	if !p.OK {
		return n.f("%s cannot sell %s: %s. Gold: %d", p.Merchant, p.Item, Reason(p.Reason), p.Balance)
	}
	return n.f("Bought %s from %s for %d gold. Gold left: %d", p.Item, p.Merchant, p.Price, p.Balance)
}

// Assignment renders QuestGiver.Assign.
func (n *Narrator) Assignment(a town.Assignment) string {
	if !a.OK {
		return n.f("%s has no quest to give: %s.", a.Giver, Reason(a.Reason))
	}
	return n.f("%s gives the quest '%s' (%s, reward %d gold)", a.Giver, a.Quest.Title, a.Quest.Difficulty, a.Quest.Reward)
}

// Lodging renders Innkeeper.Lodge.
func (n *Narrator) Lodging(l town.Lodging) string {
	if !l.OK {
		return n.f("%s cannot lodge %s: %s.", l.Innkeeper, l.Guest, Reason(l.Reason))
	}
	return n.f("%s rests at %s's inn for %d gold. HP: %d/%d", l.Guest, l.Innkeeper, l.Price, l.Heal.Health, l.Heal.MaxHealth)
}
