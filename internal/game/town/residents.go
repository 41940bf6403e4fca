package town

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/udisondev/jxsim/internal/game/quest"
	"github.com/udisondev/jxsim/internal/model"
)

// DefaultLodgingPrice is what an innkeeper charges for a night.
const DefaultLodgingPrice = 50

// QuestOffer describes a quest a giver can hand out.
type QuestOffer struct {
	Title      string
	Difficulty quest.Difficulty
	Reward     int32
}

// Assignment is the outcome of QuestGiver.Assign.
type Assignment struct {
	Giver  string
	Quest  quest.Status
	OK     bool
	Reason model.Reason
}

// QuestGiver hands out offers one at a time, in order.
type QuestGiver struct {
	npcBase

	mu     sync.Mutex
	offers []QuestOffer
}

// NewQuestGiver validates every offer up front.
func NewQuestGiver(name string, offers ...QuestOffer) (*QuestGiver, error) {
	base, err := newNPCBase(name)
	if err != nil {
		return nil, err
	}
	for _, o := range offers {
		if _, err := quest.New(o.Title, o.Difficulty, o.Reward); err != nil {
			return nil, fmt.Errorf("quest giver %q: %w", name, err)
		}
	}
	return &QuestGiver{npcBase: base, offers: offers}, nil
}

func (g *QuestGiver) Role() Role { return RoleQuestGiver }

func (g *QuestGiver) Interact(visitor *model.Entity) Greeting {
	gr := greet(g, visitor)
	g.mu.Lock()
	gr.Offers = len(g.offers)
	g.mu.Unlock()
	return gr
}

// Assign moves the next offer not yet in the log into it.
func (g *QuestGiver) Assign(log *quest.Log) Assignment {
	res := Assignment{Giver: g.name}
	if log == nil {
		res.Reason = model.ReasonNoTarget
		return res
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for len(g.offers) > 0 {
		o := g.offers[0]
		g.offers = g.offers[1:]
		if _, taken := log.Get(o.Title); taken {
			continue
		}
		q, err := quest.New(o.Title, o.Difficulty, o.Reward)
		if err != nil {
			continue
		}
		if err := log.Accept(q); err != nil {
			continue
		}
		res.Quest = q.Status()
		res.OK = true
		slog.Debug("quest assigned", "giver", g.name, "title", q.Title())
		return res
	}
	res.Reason = model.ReasonNotFound
	return res
}

// Guard watches the gate. Enemies are turned away.
type Guard struct {
	npcBase
}

// NewGuard creates a guard.
func NewGuard(name string) (*Guard, error) {
	base, err := newNPCBase(name)
	if err != nil {
		return nil, err
	}
	return &Guard{npcBase: base}, nil
}

func (g *Guard) Role() Role { return RoleGuard }

func (g *Guard) Interact(visitor *model.Entity) Greeting {
	gr := greet(g, visitor)
	gr.Hostile = visitor != nil && visitor.Sect().IsEnemy()
	return gr
}

// Lodging is the outcome of Innkeeper.Lodge.
type Lodging struct {
	Innkeeper string
	Guest     string
	Price     int32
	Balance   int32
	Heal      model.HealResult
	OK        bool
	Reason    model.Reason
}

// Innkeeper restores a guest to full health for a fixed price.
type Innkeeper struct {
	npcBase
	price int32
}

// NewInnkeeper creates an innkeeper; price 0 means DefaultLodgingPrice.
func NewInnkeeper(name string, price int32) (*Innkeeper, error) {
	base, err := newNPCBase(name)
	if err != nil {
		return nil, err
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: lodging price %d is negative", model.ErrInvalidArgument, price)
	}
	if price == 0 {
		price = DefaultLodgingPrice
	}
	return &Innkeeper{npcBase: base, price: price}, nil
}

func (k *Innkeeper) Role() Role { return RoleInnkeeper }

// Price returns the lodging price.
func (k *Innkeeper) Price() int32 { return k.price }

func (k *Innkeeper) Interact(visitor *model.Entity) Greeting {
	g := greet(k, visitor)
	g.Price = k.price
	return g
}

// Lodge charges the price from purse and heals guest to full.
// Defeated guests and guests already at full health are not charged.
func (k *Innkeeper) Lodge(guest *model.Entity, purse *model.Inventory) Lodging {
	res := Lodging{Innkeeper: k.name, Price: k.price}
	if guest == nil || purse == nil {
		res.Reason = model.ReasonNoTarget
		return res
	}
	res.Guest = guest.Name()
	res.Balance = purse.Gold()

	switch {
	case !guest.IsAlive():
		res.Reason = model.ReasonDefeated
		return res
	case guest.Health() == guest.MaxHealth():
		res.Reason = model.ReasonFull
		return res
	}

	paid := purse.SpendGold(k.price)
	res.Balance = paid.Balance
	if !paid.OK {
		res.Reason = paid.Reason
		return res
	}

	heal, err := guest.Heal(guest.MaxHealth())
	if err != nil || !heal.OK {
		res.Balance = purse.EarnGold(k.price).Balance
		res.Heal = heal
		res.Reason = heal.Reason
		return res
	}
	res.Heal = heal
	res.OK = true
	return res
}
