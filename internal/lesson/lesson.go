// Package lesson содержит сценарии обучающих уроков. Each lesson builds its
// own entities, so lessons can run concurrently.
package lesson

import (
	"fmt"
	"strings"

	"github.com/udisondev/jxsim/internal/model"
	"github.com/udisondev/jxsim/internal/narrate"
	"github.com/udisondev/jxsim/internal/roster"
)

// ErrUnknownLesson is returned by Select for names not in All.
var ErrUnknownLesson = fmt.Errorf("%w: unknown lesson", model.ErrInvalidArgument)

// Env is what a lesson needs to build and describe its scene.
type Env struct {
	Roster   *roster.Roster
	Narrator *narrate.Narrator
}

// Lesson is a named scripted scenario.
type Lesson struct {
	Name  string
	Title string
	run   func(s *script, r *roster.Roster)
}

// Run plays the lesson and returns the narrated lines.
func (l Lesson) Run(env Env) ([]string, error) {
	if env.Roster == nil || env.Narrator == nil {
		return nil, fmt.Errorf("%w: lesson %q needs a roster and a narrator", model.ErrInvalidArgument, l.Name)
	}
	s := &script{n: env.Narrator}
	l.run(s, env.Roster)
	if s.err != nil {
		return nil, fmt.Errorf("lesson %s: %w", l.Name, s.err)
	}
	return s.lines, nil
}

// All returns every lesson in teaching order.
func All() []Lesson {
	return []Lesson{
		{Name: "classes", Title: "Classes and objects", run: classes},
		{Name: "inheritance", Title: "Inheritance", run: inheritance},
		{Name: "encapsulation", Title: "Encapsulation", run: encapsulation},
		{Name: "polymorphism", Title: "Polymorphism", run: polymorphism},
		{Name: "homework", Title: "JX character system homework", run: homework},
	}
}

// Lookup finds a lesson by case-insensitive name.
func Lookup(name string) (Lesson, bool) {
	name = strings.TrimSpace(name)
	for _, l := range All() {
		if strings.EqualFold(l.Name, name) {
			return l, true
		}
	}
	return Lesson{}, false
}

// Select resolves names in order. An unknown name fails the whole selection.
func Select(names []string) ([]Lesson, error) {
	out := make([]Lesson, 0, len(names))
	for _, name := range names {
		l, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownLesson, name)
		}
		out = append(out, l)
	}
	return out, nil
}

// script collects narrated lines. The first error stops further output and
// is reported by Lesson.Run.
type script struct {
	n     *narrate.Narrator
	lines []string
	err   error
}

func (s *script) say(lines ...string) {
	if s.err == nil {
		s.lines = append(s.lines, lines...)
	}
}

func (s *script) banner(title string) {
	s.say(s.n.Banner(title)...)
}

func (s *script) blank() { s.say("") }

func (s *script) fail(err error) bool {
	if err != nil && s.err == nil {
		s.err = err
	}
	return s.err != nil
}

func (s *script) hero(r *roster.Roster, name string, sect model.Sect, level int32) *model.Entity {
	if s.err != nil {
		return nil
	}
	e, err := r.Hero(name, sect, level)
	s.fail(err)
	return e
}

func (s *script) enemy(r *roster.Roster, name string, kind model.Sect, level, damage int32) *model.Entity {
	if s.err != nil {
		return nil
	}
	e, err := r.Enemy(name, kind, level, damage)
	s.fail(err)
	return e
}

func (s *script) damage(e *model.Entity, amount int32) {
	if s.err != nil {
		return
	}
	hit, err := e.TakeDamage(amount)
	if s.fail(err) {
		return
	}
	s.say(s.n.Damage(hit))
}

func (s *script) experience(e *model.Entity, xp int32) {
	if s.err != nil {
		return
	}
	res, err := e.GainExperience(xp)
	if s.fail(err) {
		return
	}
	s.say(s.n.Experience(res)...)
}
