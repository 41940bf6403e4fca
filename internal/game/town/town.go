// Package town содержит NPC города: торговца, выдающего задания, стражника
// и трактирщика. Each variant answers Interact in its own way; text is left
// to the narrate package.
package town

import (
	"fmt"
	"strings"
	"sync"

	"github.com/udisondev/jxsim/internal/model"
)

// Role identifies an NPC variant.
type Role uint8

const (
	RoleMerchant Role = iota
	RoleQuestGiver
	RoleGuard
	RoleInnkeeper
)

var roleNames = [...]string{"Merchant", "Quest Giver", "Guard", "Innkeeper"}

// String returns the role name.
func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "Unknown"
}

// Greeting is the outcome of NPC.Interact.
type Greeting struct {
	NPC     string
	Role    Role
	Visitor string
	Price   int32 // innkeeper lodging price
	Offers  int   // wares on sale or quests still available
	Hostile bool  // guard refuses entry to enemies
}

// NPC is a town resident the hero can talk to.
type NPC interface {
	Name() string
	Role() Role
	Interact(visitor *model.Entity) Greeting
}

type npcBase struct {
	name string
}

func (b npcBase) Name() string { return b.name }

func newNPCBase(name string) (npcBase, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return npcBase{}, fmt.Errorf("%w: npc name is empty", model.ErrInvalidArgument)
	}
	return npcBase{name: name}, nil
}

func greet(n NPC, visitor *model.Entity) Greeting {
	g := Greeting{NPC: n.Name(), Role: n.Role()}
	if visitor != nil {
		g.Visitor = visitor.Name()
	}
	return g
}

// Town holds NPCs in walking order.
type Town struct {
	name string

	mu   sync.RWMutex
	npcs []NPC
}

// New creates an empty town.
func New(name string) *Town {
	return &Town{name: name}
}

// Name returns the town name.
func (t *Town) Name() string { return t.name }

// Add places residents in the town. Nil entries are ignored.
func (t *Town) Add(npcs ...NPC) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, n := range npcs {
		if n != nil {
			t.npcs = append(t.npcs, n)
		}
	}
}

// Find returns the resident with the given name (case-insensitive).
func (t *Town) Find(name string) (NPC, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	name = strings.TrimSpace(name)
	for _, n := range t.npcs {
		if strings.EqualFold(n.Name(), name) {
			return n, true
		}
	}
	return nil, false
}

// Walk talks to every resident in order.
func (t *Town) Walk(visitor *model.Entity) []Greeting {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Greeting, 0, len(t.npcs))
	for _, n := range t.npcs {
		out = append(out, n.Interact(visitor))
	}
	return out
}
