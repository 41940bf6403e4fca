package quest

import (
	"fmt"
	"strings"
	"sync"

	"github.com/udisondev/jxsim/internal/model"
)

// Wallet receives quest rewards. *model.Inventory satisfies it.
type Wallet interface {
	Earn(amount int32) model.PoolResult
}

// Advance is the outcome of Log.Advance: the progress update and, when the
// quest just completed with a positive reward, the payout.
type Advance struct {
	ProgressResult
	Payout *model.PoolResult
}

// Log is a player's quest journal. Награда зачисляется в Wallet ровно один раз.
// Thread-safe for concurrent access.
type Log struct {
	wallet Wallet

	mu     sync.RWMutex
	quests []*Quest
}

// NewLog creates a journal paying rewards into wallet (may be nil).
func NewLog(wallet Wallet) *Log {
	return &Log{wallet: wallet}
}

// Accept adds q. Titles are unique within a log (case-insensitive).
func (l *Log) Accept(q *Quest) error {
	if q == nil {
		return fmt.Errorf("%w: quest is nil", model.ErrInvalidArgument)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.findLocked(q.Title()) != nil {
		return fmt.Errorf("%w: quest %q already accepted", model.ErrInvalidArgument, q.Title())
	}
	l.quests = append(l.quests, q)
	return nil
}

// Get returns the quest with the given title.
func (l *Log) Get(title string) (*Quest, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	q := l.findLocked(title)
	return q, q != nil
}

// Advance updates the named quest and pays the reward on completion.
func (l *Log) Advance(title string, amount int32) Advance {
	q, ok := l.Get(title)
	if !ok {
		return Advance{ProgressResult: ProgressResult{Title: title, Amount: amount, Reason: model.ReasonNotFound}}
	}

	adv := Advance{ProgressResult: q.UpdateProgress(amount)}
	if adv.RewardDue && adv.Reward > 0 && l.wallet != nil {
		payout := l.wallet.Earn(adv.Reward)
		adv.Payout = &payout
	}
	return adv
}

// Statuses returns snapshots in acceptance order.
func (l *Log) Statuses() []Status {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Status, 0, len(l.quests))
	for _, q := range l.quests {
		out = append(out, q.Status())
	}
	return out
}

// Active returns the number of quests still in progress.
func (l *Log) Active() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := 0
	for _, q := range l.quests {
		if !q.IsCompleted() {
			n++
		}
	}
	return n
}

func (l *Log) findLocked(title string) *Quest {
	title = strings.TrimSpace(title)
	for _, q := range l.quests {
		if strings.EqualFold(q.Title(), title) {
			return q
		}
	}
	return nil
}
