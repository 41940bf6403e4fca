package quest

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/udisondev/jxsim/internal/model"
)

// State constants. StateCompleted is terminal.
const (
	StateInProgress byte = 0
	StateCompleted  byte = 1
)

// MaxProgress is the completion threshold; progress is clamped to it.
const MaxProgress = 100

// Difficulty сложность задания.
type Difficulty uint8

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
	DifficultyLegendary
)

var difficultyNames = [...]string{"Easy", "Normal", "Hard", "Legendary"}

// String returns the difficulty name.
func (d Difficulty) String() string {
	if int(d) < len(difficultyNames) {
		return difficultyNames[d]
	}
	return "Unknown"
}

// ParseDifficulty resolves a case-insensitive difficulty name.
func ParseDifficulty(name string) (Difficulty, error) {
	for i, n := range difficultyNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Difficulty(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown difficulty %q", model.ErrInvalidArgument, name)
}

// ProgressResult is the outcome of UpdateProgress.
// RewardDue is true only on the call that completed the quest.
type ProgressResult struct {
	Title     string
	Amount    int32
	Progress  int32
	Completed bool
	RewardDue bool
	Reward    int32
	OK        bool
	Reason    model.Reason
}

// Status is a snapshot of a quest (get_status).
type Status struct {
	Title      string
	Difficulty Difficulty
	Reward     int32
	Progress   int32
	State      byte
}

// Quest tracks progress toward completion.
// IN_PROGRESS(progress) -> COMPLETED once progress reaches MaxProgress.
// Thread-safe via mutex.
type Quest struct {
	title      string
	difficulty Difficulty
	reward     int32

	mu       sync.RWMutex
	progress int32
	state    byte
}

// New creates an in-progress quest with zero progress.
func New(title string, difficulty Difficulty, reward int32) (*Quest, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: quest title is empty", model.ErrInvalidArgument)
	}
	if reward < 0 {
		return nil, fmt.Errorf("%w: quest %q reward %d is negative", model.ErrInvalidArgument, title, reward)
	}
	if int(difficulty) >= len(difficultyNames) {
		return nil, fmt.Errorf("%w: quest %q has unknown difficulty %d", model.ErrInvalidArgument, title, difficulty)
	}
	return &Quest{title: title, difficulty: difficulty, reward: reward, state: StateInProgress}, nil
}

// Title returns the quest title.
func (q *Quest) Title() string { return q.title }

// Difficulty returns the quest difficulty.
func (q *Quest) Difficulty() Difficulty { return q.difficulty }

// Reward returns the gold reward.
func (q *Quest) Reward() int32 { return q.reward }

// Progress returns the progress percentage.
func (q *Quest) Progress() int32 {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.progress
}

// IsCompleted reports whether the quest reached its terminal state.
func (q *Quest) IsCompleted() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.state == StateCompleted
}

// UpdateProgress adds amount. Reaching MaxProgress completes the quest
// (progress clamped to MaxProgress). Completed quests reject further updates,
// non-positive amounts are rejected.
func (q *Quest) UpdateProgress(amount int32) ProgressResult {
	q.mu.Lock()
	defer q.mu.Unlock()

	res := ProgressResult{Title: q.title, Amount: amount, Progress: q.progress, Reward: q.reward}
	if q.state == StateCompleted {
		res.Completed = true
		res.Reason = model.ReasonCompleted
		return res
	}
	if amount <= 0 {
		res.Reason = model.ReasonInvalidAmount
		return res
	}

	progress := int64(q.progress) + int64(amount)
	if progress >= MaxProgress {
		q.progress = MaxProgress
		q.state = StateCompleted
		res.Completed = true
		res.RewardDue = true
		slog.Info("quest completed", "title", q.title, "reward", q.reward)
	} else {
		q.progress = int32(progress)
	}
	res.Progress = q.progress
	res.OK = true
	return res
}

// Status returns a snapshot.
func (q *Quest) Status() Status {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return Status{
		Title:      q.title,
		Difficulty: q.difficulty,
		Reward:     q.reward,
		Progress:   q.progress,
		State:      q.state,
	}
}
