package model

// Reason объясняет, почему операция была отклонена (soft failure).
// ReasonNone означает успех.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonInvalidAmount
	ReasonInsufficient // not enough gold/chi/mana/arrows
	ReasonCapacity     // would exceed pool ceiling or bag capacity
	ReasonFull         // pool already at capacity
	ReasonDefeated
	ReasonStunned
	ReasonNotFound
	ReasonNoTarget
	ReasonBroken
	ReasonUnknownStat
	ReasonInvalidItem
	ReasonNotLootable
	ReasonCooldown
	ReasonCompleted
	ReasonMaxLevel
)

// String returns a short machine-friendly reason name.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonInvalidAmount:
		return "invalid_amount"
	case ReasonInsufficient:
		return "insufficient"
	case ReasonCapacity:
		return "capacity"
	case ReasonFull:
		return "full"
	case ReasonDefeated:
		return "defeated"
	case ReasonStunned:
		return "stunned"
	case ReasonNotFound:
		return "not_found"
	case ReasonNoTarget:
		return "no_target"
	case ReasonBroken:
		return "broken"
	case ReasonUnknownStat:
		return "unknown_stat"
	case ReasonInvalidItem:
		return "invalid_item"
	case ReasonNotLootable:
		return "not_lootable"
	case ReasonCooldown:
		return "cooldown"
	case ReasonCompleted:
		return "completed"
	case ReasonMaxLevel:
		return "max_level"
	default:
		return "unknown"
	}
}
