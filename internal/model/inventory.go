package model

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Inventory defaults.
const (
	DefaultStartingGold = 100
	DefaultCapacity     = 20
)

// BagResult is the outcome of AddItem/RemoveItem.
type BagResult struct {
	Item     string
	Count    int
	Capacity int
	OK       bool
	Reason   Reason
}

// SaleResult is the outcome of Sell.
type SaleResult struct {
	Item    string
	Gold    int32
	Balance int32
	OK      bool
	Reason  Reason
}

// InventoryStatus is a snapshot of an Inventory.
type InventoryStatus struct {
	Owner    string
	Gold     int32
	Count    int
	Capacity int
}

// Inventory holds a player's gold and a capacity-bounded list of items.
// Gold is reachable only through EarnGold/SpendGold/Sell.
type Inventory struct {
	owner    string
	gold     *Pool
	capacity int

	mu    sync.RWMutex
	items []Item
}

// NewInventory создаёт инвентарь. DefaultStartingGold and DefaultCapacity
// are the usual arguments.
func NewInventory(owner string, startingGold int32, capacity int) (*Inventory, error) {
	if startingGold < 0 {
		return nil, fmt.Errorf("%w: starting gold %d is negative", ErrInvalidArgument, startingGold)
	}
	if capacity < 1 {
		return nil, fmt.Errorf("%w: capacity %d must be >= 1", ErrInvalidArgument, capacity)
	}
	return &Inventory{
		owner:    owner,
		gold:     NewPool("gold", startingGold, 0),
		capacity: capacity,
		items:    make([]Item, 0, capacity),
	}, nil
}

// Owner returns the owning player name.
func (inv *Inventory) Owner() string {
	return inv.owner
}

// Gold returns the gold balance.
func (inv *Inventory) Gold() int32 {
	return inv.gold.Balance()
}

// EarnGold adds gold; amount must be positive.
func (inv *Inventory) EarnGold(amount int32) PoolResult {
	return inv.gold.Earn(amount)
}

// Earn lets an Inventory act as a quest reward wallet.
func (inv *Inventory) Earn(amount int32) PoolResult {
	return inv.gold.Earn(amount)
}

// SpendGold deducts gold; rejected when amount is not positive or exceeds the balance.
func (inv *Inventory) SpendGold(amount int32) PoolResult {
	return inv.gold.Spend(amount)
}

// Capacity returns the item limit.
func (inv *Inventory) Capacity() int {
	return inv.capacity
}

// Count returns the number of carried items.
func (inv *Inventory) Count() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.items)
}

// AddItem appends item unless the bag is full.
func (inv *Inventory) AddItem(item Item) BagResult {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	res := BagResult{Count: len(inv.items), Capacity: inv.capacity}
	if item == nil {
		res.Reason = ReasonInvalidItem
		return res
	}
	res.Item = item.Name()
	if len(inv.items) >= inv.capacity {
		res.Reason = ReasonCapacity
		return res
	}

	inv.items = append(inv.items, item)
	res.Count = len(inv.items)
	res.OK = true
	return res
}

// RemoveItem removes the first item with the given name (case-insensitive).
func (inv *Inventory) RemoveItem(name string) BagResult {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	_, _, res := inv.takeLocked(name)
	return res
}

// Find returns the first item with the given name.
func (inv *Inventory) Find(name string) (Item, bool) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	if i := inv.indexLocked(name); i >= 0 {
		return inv.items[i], true
	}
	return nil, false
}

// Items returns a copy of the carried items.
func (inv *Inventory) Items() []Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return slices.Clone(inv.items)
}

// Sell removes the named item and credits its value in gold.
func (inv *Inventory) Sell(name string) SaleResult {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	item, at, bag := inv.takeLocked(name)
	res := SaleResult{Item: bag.Item, Balance: inv.gold.Balance()}
	if !bag.OK {
		res.Reason = bag.Reason
		return res
	}

	if item.Value() > 0 {
		earned := inv.gold.Earn(item.Value())
		if !earned.OK {
			inv.items = slices.Insert(inv.items, at, item)
			res.Reason = earned.Reason
			return res
		}
		res.Gold = earned.Amount
		res.Balance = earned.Balance
	}
	res.OK = true
	return res
}

// UseItem uses the named item; consumables are removed after a successful use.
// The bag stays locked for the whole use, so a consumable is applied once.
func (inv *Inventory) UseItem(name string, user, target *Entity) ItemResult {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	i := inv.indexLocked(name)
	if i < 0 {
		return ItemResult{Item: name, Reason: ReasonNotFound}
	}

	item := inv.items[i]
	res := item.Use(user, target)
	if c, ok := item.(consumable); ok && c.consumable() && res.OK {
		inv.items = slices.Delete(inv.items, i, i+1)
	}
	return res
}

// Status returns a snapshot (get_inventory_status).
func (inv *Inventory) Status() InventoryStatus {
	inv.mu.RLock()
	count := len(inv.items)
	inv.mu.RUnlock()

	return InventoryStatus{
		Owner:    inv.owner,
		Gold:     inv.gold.Balance(),
		Count:    count,
		Capacity: inv.capacity,
	}
}

func (inv *Inventory) indexLocked(name string) int {
	name = strings.TrimSpace(name)
	return slices.IndexFunc(inv.items, func(it Item) bool {
		return strings.EqualFold(it.Name(), name)
	})
}

// takeLocked removes the named item and returns it with its former index.
func (inv *Inventory) takeLocked(name string) (Item, int, BagResult) {
	res := BagResult{Item: name, Capacity: inv.capacity}
	i := inv.indexLocked(name)
	if i < 0 {
		res.Count = len(inv.items)
		res.Reason = ReasonNotFound
		return nil, -1, res
	}

	item := inv.items[i]
	inv.items = slices.Delete(inv.items, i, i+1)
	res.Item = item.Name()
	res.Count = len(inv.items)
	res.OK = true
	return item, i, res
}
