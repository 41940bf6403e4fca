package narrate

import (
	"github.com/udisondev/jxsim/internal/model"
)

// Pool renders a gold/chi/mana/arrow pool mutation.
func (n *Narrator) Pool(r model.PoolResult) string {
	if !r.OK {
		return n.f("Cannot %s %d %s: %s. Balance: %d", r.Op, r.Amount, r.Pool, Reason(r.Reason), r.Balance)
	}
	switch r.Op {
	case model.PoolEarn:
		return n.f("Earned %d %s. Total: %d", r.Amount, r.Pool, r.Balance)
	case model.PoolSpend:
		return n.f("Spent %d %s. Remaining: %d", r.Amount, r.Pool, r.Balance)
	default:
		return n.f("Restored %d %s. Now: %d/%d", r.Amount, r.Pool, r.Balance, r.Capacity)
	}
}

// Bag renders AddItem/RemoveItem.
func (n *Narrator) Bag(b model.BagResult, added bool) string {
	if !b.OK {
		return n.f("%s: %s (%d/%d).", b.Item, Reason(b.Reason), b.Count, b.Capacity)
	}
	if added {
		return n.f("Added %s to inventory (%d/%d)", b.Item, b.Count, b.Capacity)
	}
	return n.f("Removed %s from inventory (%d/%d)", b.Item, b.Count, b.Capacity)
}

// Sale renders Inventory.Sell.
func (n *Narrator) Sale(s model.SaleResult) string {
	if !s.OK {
		return n.f("Cannot sell %s: %s.", s.Item, Reason(s.Reason))
	}
	return n.f("Sold %s for %d gold. Total: %d", s.Item, s.Gold, s.Balance)
}

// Inventory renders get_inventory_status.
func (n *Narrator) Inventory(s model.InventoryStatus) string {
	return n.f("%s - Gold: %d | Items: %d/%d", s.Owner, s.Gold, s.Count, s.Capacity)
}

// StatSheet renders the allocatable stats of name.
func (n *Narrator) StatSheet(name string, v model.StatValues) string {
	return n.f("%s - STR: %d | AGI: %d | INT: %d | Points: %d", name, v.Strength, v.Agility, v.Intelligence, v.Points)
}

// Stat renders Increase/Reward.
func (n *Narrator) Stat(r model.StatResult, reward bool) string {
	switch {
	case !r.OK && r.Reason == model.ReasonInsufficient:
		return n.f("Not enough stat points! Available: %d", r.Available)
	case !r.OK:
		return n.f("Cannot raise %s: %s.", r.Stat, Reason(r.Reason))
	case reward:
		return n.f("Level up! Gained %d stat points (available: %d)", r.Points, r.Available)
	}
	return n.f("%s increased to %d (points left: %d)", r.Stat, r.Value, r.Available)
}

// ItemInfo renders get_info of any item.
func (n *Narrator) ItemInfo(i model.ItemInfo) string {
	return n.f("%s [%s] - Value: %d gold", i.Name, i.Rarity, i.Value)
}

// Item renders Item.Use.
func (n *Narrator) Item(r model.ItemResult) []string {
	if !r.OK {
		if r.Reason == model.ReasonBroken {
			return []string{n.f("%s is broken! Needs repair.", r.Item)}
		}
		return []string{n.f("Cannot use %s: %s.", r.Item, Reason(r.Reason))}
	}

	var lines []string
	switch r.Effect {
	case model.EffectStrike:
		lines = append(lines, n.f("%s strikes for %d damage!", r.Item, r.Amount))
	case model.EffectHeal:
		lines = append(lines, n.f("Drank %s! Restored %d HP", r.Item, r.Heal.Restored))
	case model.EffectRestore:
		lines = append(lines, n.f("Drank %s! Restored %d %s", r.Item, r.Restore.Amount, r.Restore.Pool))
	case model.EffectTeleport:
		lines = append(lines, n.f("Read %s! Teleported to %s", r.Item, r.Detail))
	default:
		lines = append(lines, n.f("Used %s.", r.Item))
	}
	if r.Durability > 0 {
		lines = append(lines, n.f("  Durability: %d%%", r.Durability))
	}
	if r.Hit != nil {
		lines = append(lines, "  "+n.Damage(*r.Hit))
	}
	return lines
}

// Repair renders Weapon.Repair.
func (n *Narrator) Repair(r model.ItemResult) string {
	return n.f("%s repaired to %d%% durability", r.Item, r.Durability)
}
