package skill

import (
	"fmt"
	"strings"
	"sync"

	"github.com/udisondev/jxsim/internal/model"
)

// Book holds the skills a character has learned, in learning order.
type Book struct {
	mu     sync.RWMutex
	skills []*Skill
}

// NewBook creates an empty skill book.
func NewBook() *Book {
	return &Book{}
}

// Learn adds s. Names are unique within a book (case-insensitive).
func (b *Book) Learn(s *Skill) error {
	if s == nil {
		return fmt.Errorf("%w: skill is nil", model.ErrInvalidArgument)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.findLocked(s.Name()) != nil {
		return fmt.Errorf("%w: skill %q already learned", model.ErrInvalidArgument, s.Name())
	}
	b.skills = append(b.skills, s)
	return nil
}

// Get returns the named skill.
func (b *Book) Get(name string) (*Skill, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	s := b.findLocked(name)
	return s, s != nil
}

// Len returns the number of learned skills.
func (b *Book) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.skills)
}

// Cast casts the named skill.
func (b *Book) Cast(name string, user, target *model.Entity) UseResult {
	s, ok := b.Get(name)
	if !ok {
		return UseResult{Skill: name, Reason: model.ReasonNotFound}
	}
	return s.Cast(user, target)
}

// AdvanceTurn advances every skill by one turn.
func (b *Book) AdvanceTurn() []TurnResult {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]TurnResult, 0, len(b.skills))
	for _, s := range b.skills {
		out = append(out, s.AdvanceTurn())
	}
	return out
}

// Statuses returns snapshots in learning order.
func (b *Book) Statuses() []Status {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Status, 0, len(b.skills))
	for _, s := range b.skills {
		out = append(out, s.Status())
	}
	return out
}

func (b *Book) findLocked(name string) *Skill {
	name = strings.TrimSpace(name)
	for _, s := range b.skills {
		if strings.EqualFold(s.Name(), name) {
			return s
		}
	}
	return nil
}
