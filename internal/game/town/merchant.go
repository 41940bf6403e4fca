package town

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/udisondev/jxsim/internal/model"
)

// Purchase is the outcome of Merchant.Sell.
type Purchase struct {
	Merchant string
	Item     string
	Price    int32
	Balance  int32 // buyer gold after the call
	OK       bool
	Reason   model.Reason
}

// Merchant sells wares priced at their item value.
type Merchant struct {
	npcBase

	mu    sync.Mutex
	wares []model.Item
}

// NewMerchant creates a merchant with the given stock.
func NewMerchant(name string, wares ...model.Item) (*Merchant, error) {
	base, err := newNPCBase(name)
	if err != nil {
		return nil, err
	}
	m := &Merchant{npcBase: base}
	for _, it := range wares {
		if it == nil {
			return nil, fmt.Errorf("%w: merchant %q has a nil ware", model.ErrInvalidArgument, name)
		}
		m.wares = append(m.wares, it)
	}
	return m, nil
}

func (m *Merchant) Role() Role { return RoleMerchant }

func (m *Merchant) Interact(visitor *model.Entity) Greeting {
	g := greet(m, visitor)
	g.Offers = m.Stock()
	return g
}

// Stock returns the number of wares left.
func (m *Merchant) Stock() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.wares)
}

// Wares returns item infos for the current stock.
func (m *Merchant) Wares() []model.ItemInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.ItemInfo, 0, len(m.wares))
	for _, it := range m.wares {
		out = append(out, model.InfoOf(it))
	}
	return out
}

// Sell charges the buyer and moves the named ware into their bag.
// A full bag refunds the gold and keeps the ware in stock.
func (m *Merchant) Sell(buyer *model.Inventory, name string) Purchase {
	res := Purchase{Merchant: m.name, Item: name}
	if buyer == nil {
		res.Reason = model.ReasonNoTarget
		return res
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	res.Balance = buyer.Gold()
	i := m.indexLocked(name)
	if i < 0 {
		res.Reason = model.ReasonNotFound
		return res
	}
	ware := m.wares[i]
	res.Item = ware.Name()
	res.Price = ware.Value()

	if res.Price > 0 {
		paid := buyer.SpendGold(res.Price)
		if !paid.OK {
			res.Reason = paid.Reason
			return res
		}
		res.Balance = paid.Balance
	}

	if bag := buyer.AddItem(ware); !bag.OK {
		if res.Price > 0 {
			res.Balance = buyer.EarnGold(res.Price).Balance
		}
		res.Reason = bag.Reason
		return res
	}

	m.wares = append(m.wares[:i], m.wares[i+1:]...)
	res.OK = true
	slog.Debug("ware sold", "merchant", m.name, "item", res.Item, "price", res.Price, "buyer", buyer.Owner())
	return res
}

func (m *Merchant) indexLocked(name string) int {
	name = strings.TrimSpace(name)
	for i, it := range m.wares {
		if strings.EqualFold(it.Name(), name) {
			return i
		}
	}
	return -1
}
