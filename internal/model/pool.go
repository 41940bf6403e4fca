package model

import (
	"log/slog"
	"math"
	"sync"
)

// PoolOp identifies a mutation attempted on a Pool.
type PoolOp uint8

const (
	PoolEarn PoolOp = iota
	PoolSpend
	PoolRefill
)

// String returns the operation name.
func (op PoolOp) String() string {
	switch op {
	case PoolEarn:
		return "earn"
	case PoolSpend:
		return "spend"
	case PoolRefill:
		return "refill"
	default:
		return "unknown"
	}
}

// PoolResult is the outcome of a Pool mutation. Balance is the balance after
// the call (unchanged when OK is false).
type PoolResult struct {
	Pool     string
	Op       PoolOp
	Amount   int32 // amount actually moved (Refill may move less than requested)
	Balance  int32
	Capacity int32
	OK       bool
	Reason   Reason
}

// Pool is a guarded non-negative counter (gold, chi, mana, arrows).
// Изменяется только через Earn/Spend/Refill, каждая проверка и мутация
// выполняются под одной блокировкой.
//
// Capacity 0 means the pool has no ceiling.
type Pool struct {
	name     string
	capacity int32

	mu      sync.Mutex
	balance int32
}

// NewPool создаёт пул. Начальный баланс ограничивается диапазоном [0, capacity].
func NewPool(name string, balance, capacity int32) *Pool {
	if capacity < 0 {
		capacity = 0
	}
	if balance < 0 {
		balance = 0
	}
	if capacity > 0 && balance > capacity {
		balance = capacity
	}
	return &Pool{name: name, balance: balance, capacity: capacity}
}

// Name returns the pool label ("gold", "chi", ...).
func (p *Pool) Name() string {
	return p.name
}

// Balance returns the current balance.
func (p *Pool) Balance() int32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.balance
}

// Capacity returns the ceiling (0 = unbounded).
func (p *Pool) Capacity() int32 {
	return p.capacity
}

// Earn adds amount. Non-positive amounts and amounts that would cross the
// ceiling are rejected without touching the balance.
func (p *Pool) Earn(amount int32) PoolResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	res := p.result(PoolEarn, amount)
	switch {
	case amount <= 0:
		return p.reject(res, ReasonInvalidAmount)
	case amount > p.headroom():
		return p.reject(res, ReasonCapacity)
	}

	p.balance += amount
	res.Balance = p.balance
	res.OK = true
	return res
}

// Spend deducts amount. Rejected when amount <= 0 or amount > balance.
func (p *Pool) Spend(amount int32) PoolResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	res := p.result(PoolSpend, amount)
	switch {
	case amount <= 0:
		return p.reject(res, ReasonInvalidAmount)
	case amount > p.balance:
		return p.reject(res, ReasonInsufficient)
	}

	p.balance -= amount
	res.Balance = p.balance
	res.OK = true
	return res
}

// Refill tops the pool up by at most amount, stopping at the ceiling.
// Unlike Earn it clamps instead of rejecting; a pool that is already full
// (or has no ceiling and a non-positive request) is rejected.
func (p *Pool) Refill(amount int32) PoolResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	res := p.result(PoolRefill, amount)
	if amount <= 0 {
		return p.reject(res, ReasonInvalidAmount)
	}
	room := p.headroom()
	if room == 0 {
		return p.reject(res, ReasonFull)
	}

	moved := min(amount, room)
	p.balance += moved
	res.Amount = moved
	res.Balance = p.balance
	res.OK = true
	return res
}

// headroom returns how much can still be added. Caller holds p.mu.
func (p *Pool) headroom() int32 {
	if p.capacity == 0 {
		return math.MaxInt32 - p.balance
	}
	return p.capacity - p.balance
}

func (p *Pool) result(op PoolOp, amount int32) PoolResult {
	return PoolResult{
		Pool:     p.name,
		Op:       op,
		Amount:   amount,
		Balance:  p.balance,
		Capacity: p.capacity,
	}
}

func (p *Pool) reject(res PoolResult, reason Reason) PoolResult {
	res.Reason = reason
	slog.Debug("pool operation rejected",
		"pool", p.name,
		"op", res.Op,
		"amount", res.Amount,
		"balance", p.balance,
		"reason", reason)
	return res
}
