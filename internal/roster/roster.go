// Package roster собирает героев и врагов из конфигурации.
package roster

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/jxsim/internal/config"
	"github.com/udisondev/jxsim/internal/model"
)

// Member describes a hero to recruit by sect name.
type Member struct {
	Name  string `yaml:"name"`
	Sect  string `yaml:"sect"`
	Level int32  `yaml:"level"`
}

// Roster builds entities with the configured sect attributes and level curve.
// Every call returns a fresh specialization; one is never shared between entities.
type Roster struct {
	sects config.Sects
	prog  model.Progression
	bag   config.Inventory
}

// New creates a roster from cfg.
func New(cfg config.Config) *Roster {
	return &Roster{sects: cfg.Sects, prog: cfg.Progression, bag: cfg.Inventory}
}

// Spec creates the specialization of a hero sect or class.
func (r *Roster) Spec(sect model.Sect) (model.Specialization, error) {
	s := r.sects
	switch sect {
	case model.SectShaolin:
		return model.NewShaolin(s.InnerStrength), nil
	case model.SectWudang:
		return model.NewWudang(s.SwordMastery), nil
	case model.SectEmei:
		return model.NewEmei(s.Chi), nil
	case model.SectWarrior:
		return model.NewWarrior(s.WarriorPower), nil
	case model.SectMage:
		return model.NewMage(s.MagePower, s.Mana), nil
	case model.SectArcher:
		return model.NewArcher(s.ArcherPower, s.Arrows), nil
	default:
		return nil, fmt.Errorf("%w: %s is not a hero sect", model.ErrInvalidArgument, sect)
	}
}

// Hero creates a hero of the given sect.
func (r *Roster) Hero(name string, sect model.Sect, level int32) (*model.Entity, error) {
	spec, err := r.Spec(sect)
	if err != nil {
		return nil, fmt.Errorf("hero %q: %w", name, err)
	}
	return r.entity(name, level, spec)
}

// Enemy creates a regular monster (Goblin, Dragon, Necromancer, Troll).
func (r *Roster) Enemy(name string, kind model.Sect, level, damage int32) (*model.Entity, error) {
	spec, err := model.NewMonster(kind, damage)
	if err != nil {
		return nil, fmt.Errorf("enemy %q: %w", name, err)
	}
	return r.entity(name, level, spec)
}

// Boss creates a boss carrying drop as its loot.
func (r *Roster) Boss(name string, level, damage int32, ability string, drop model.Item) (*model.Entity, error) {
	spec, err := model.NewBoss(damage, ability, drop)
	if err != nil {
		return nil, fmt.Errorf("boss %q: %w", name, err)
	}
	return r.entity(name, level, spec)
}

// Recruit creates a party from members, resolving sect names.
func (r *Roster) Recruit(members ...Member) ([]*model.Entity, error) {
	party := make([]*model.Entity, 0, len(members))
	for _, m := range members {
		sect, err := model.ParseSect(m.Sect)
		if err != nil {
			return nil, fmt.Errorf("recruit %q: %w", m.Name, err)
		}
		hero, err := r.Hero(m.Name, sect, m.Level)
		if err != nil {
			return nil, err
		}
		party = append(party, hero)
	}
	return party, nil
}

// Inventory creates a bag for owner with the configured starting gold.
func (r *Roster) Inventory(owner string) (*model.Inventory, error) {
	return model.NewInventory(owner, r.bag.StartingGold, r.bag.Capacity)
}

func (r *Roster) entity(name string, level int32, spec model.Specialization) (*model.Entity, error) {
	e, err := model.NewEntity(model.EntityConfig{Name: name, Level: level, Spec: spec, Progression: r.prog})
	if err != nil {
		return nil, err
	}
	slog.Debug("entity created", "name", e.Name(), "sect", e.Sect(), "level", e.Level(), "id", e.ID())
	return e, nil
}
