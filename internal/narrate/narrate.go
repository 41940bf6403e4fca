// Package narrate превращает структурированные результаты в строки для вывода.
// Numbers are formatted for the configured language.
package narrate

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/udisondev/jxsim/internal/model"
)

// Narrator renders results. Safe for concurrent use.
type Narrator struct {
	p *message.Printer
}

// New creates a narrator for a BCP 47 language tag ("en", "ru", ...).
func New(lang string) (*Narrator, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("%w: language %q: %v", model.ErrInvalidArgument, lang, err)
	}
	return &Narrator{p: message.NewPrinter(tag)}, nil
}

// Banner renders a section title framed by rules.
func (n *Narrator) Banner(title string) []string {
	rule := strings.Repeat("=", 60)
	return []string{rule, strings.ToUpper(title), rule}
}

func (n *Narrator) f(format string, args ...any) string {
	return n.p.Sprintf(format, args...)
}

var reasonPhrases = map[model.Reason]string{
	model.ReasonInvalidAmount: "the amount must be positive",
	model.ReasonInsufficient:  "not enough",
	model.ReasonCapacity:      "no room left",
	model.ReasonFull:          "already full",
	model.ReasonDefeated:      "already defeated",
	model.ReasonStunned:       "stunned and loses the turn",
	model.ReasonNotFound:      "not found",
	model.ReasonNoTarget:      "needs a target",
	model.ReasonBroken:        "broken and needs repair",
	model.ReasonUnknownStat:   "no such stat",
	model.ReasonInvalidItem:   "cannot be used that way",
	model.ReasonNotLootable:   "has nothing to drop",
	model.ReasonCooldown:      "still on cooldown",
	model.ReasonCompleted:     "already completed",
	model.ReasonMaxLevel:      "already at the maximum level",
}

// Reason returns a human phrase for a rejection reason.
func Reason(r model.Reason) string {
	if s, ok := reasonPhrases[r]; ok {
		return s
	}
	return r.String()
}
