// Package engine implements the hashed-timelock escrow state machine: single-claim
// escrows, partial-fill orders and the cross-chain request registry.
//
// Every public operation runs as one atomic step under the engine mutex. All
// validation happens before any mutation, so a failed call leaves every table
// unchanged. Payouts are dispatched to the Ledger after the state change has
// been committed; the returned Payout reports the transfer outcome.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/htlc-escrow/internal/metrics"
	"github.com/chainsafe/htlc-escrow/pkg/events"
	"github.com/chainsafe/htlc-escrow/pkg/htlc"
)

const defaultPayoutTimeout = 2 * time.Minute

// Ledger moves value on the home ledger. Transfer may block until settlement.
//
//go:generate mockery --name Ledger --output mocks --outpkg mocks --filename mock_ledger.go --with-expecter
type Ledger interface {
	Transfer(ctx context.Context, to string, amount htlc.Amount) error
}

// Locker is implemented by ledgers that move the sender's value into the
// engine vault when an escrow, fill or request is created. Lock must fail
// without side effects when from cannot cover amount. Unlock reverses a Lock
// whose operation was not committed.
type Locker interface {
	Lock(ctx context.Context, from string, amount htlc.Amount) error
	Unlock(ctx context.Context, from string, amount htlc.Amount) error
}

// Persister durably records a changeset. It is called before the in-memory
// tables change; an error aborts the operation.
//
//go:generate mockery --name Persister --output mocks --outpkg mocks --filename mock_persister.go --with-expecter
type Persister interface {
	Persist(ctx context.Context, cs *Changeset) error
}

// Engine owns all escrow, order, fill, request and resolver tables.
type Engine struct {
	mu sync.Mutex

	owner           string
	ledger          Ledger
	persister       Persister
	emitter         events.Emitter
	logger          *zap.Logger
	nowFn           func() time.Time
	maxAmount       *htlc.Amount
	requireResolver bool
	payoutTimeout   time.Duration

	escrows   *table[htlc.Escrow]
	orders    *table[htlc.Order]
	fills     *table[htlc.Fill]
	requests  *table[htlc.CrossChainRequest]
	resolvers map[string]bool
	guard     *guard
	paused    bool
	seq       uint64

	payouts  sync.WaitGroup
	inFlight atomic.Int64
}

// Option configures an Engine.
type Option func(*Engine) error

// WithEmitter sets the in-process event sink. Defaults to events.NoopEmitter.
func WithEmitter(emitter events.Emitter) Option {
	return func(e *Engine) error {
		if emitter != nil {
			e.emitter = emitter
		}
		return nil
	}
}

// WithPersister makes every committed changeset durable before it is applied.
func WithPersister(p Persister) Option {
	return func(e *Engine) error {
		e.persister = p
		return nil
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) error {
		if logger != nil {
			e.logger = logger
		}
		return nil
	}
}

// WithClock overrides the source of current ledger time.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) error {
		if now != nil {
			e.nowFn = now
		}
		return nil
	}
}

// WithMaxAmount caps the value of any single escrow, order or request.
func WithMaxAmount(max htlc.Amount) Option {
	return func(e *Engine) error {
		if max.IsZero() {
			return nil
		}
		e.maxAmount = &max
		return nil
	}
}

// WithResolverGatedCompletion restricts cross-chain request completion to the
// owner and authorized resolvers.
func WithResolverGatedCompletion(enabled bool) Option {
	return func(e *Engine) error {
		e.requireResolver = enabled
		return nil
	}
}

// WithPayoutTimeout bounds each Ledger.Transfer call.
func WithPayoutTimeout(d time.Duration) Option {
	return func(e *Engine) error {
		if d > 0 {
			e.payoutTimeout = d
		}
		return nil
	}
}

// WithSnapshot restores previously persisted state.
func WithSnapshot(s *Snapshot) Option {
	return func(e *Engine) error {
		if s == nil {
			return nil
		}
		return e.restore(s)
	}
}

// New constructs an engine with an immutable owner and empty tables.
func New(owner string, ledger Ledger, opts ...Option) (*Engine, error) {
	if owner == "" {
		return nil, fmt.Errorf("%w: owner is required", htlc.ErrInvalidAccount)
	}
	if ledger == nil {
		return nil, errors.New("ledger is required")
	}
	e := &Engine{
		owner:         owner,
		ledger:        ledger,
		emitter:       events.NoopEmitter{},
		logger:        zap.NewNop(),
		nowFn:         time.Now,
		payoutTimeout: defaultPayoutTimeout,
		escrows:       newTable[htlc.Escrow](),
		orders:        newTable[htlc.Order](),
		fills:         newTable[htlc.Fill](),
		requests:      newTable[htlc.CrossChainRequest](),
		resolvers:     make(map[string]bool),
		guard:         newGuard(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Now returns current ledger time as seen by the engine.
func (e *Engine) Now() time.Time { return e.nowFn() }

// Drain blocks until every dispatched payout has settled or ctx is done.
func (e *Engine) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		e.payouts.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// peekSeq is the insertion position the next new row will take. The counter
// only advances when a changeset is applied.
func (e *Engine) peekSeq() uint64 { return e.seq + 1 }

func (e *Engine) checkAmount(amount htlc.Amount) error {
	if amount.IsZero() {
		return fmt.Errorf("%w: must be greater than zero", htlc.ErrInvalidAmount)
	}
	if e.maxAmount != nil && amount.Cmp(*e.maxAmount) > 0 {
		return fmt.Errorf("%w: %s exceeds maximum %s", htlc.ErrInvalidAmount, amount, e.maxAmount)
	}
	return nil
}

func (e *Engine) checkDeadline(now, deadline time.Time) error {
	if !deadline.After(now) {
		return fmt.Errorf("%w: deadline %s is not in the future", htlc.ErrExpired, deadline.UTC().Format(time.RFC3339))
	}
	return nil
}

func (e *Engine) checkNotPaused() error {
	if e.paused {
		return htlc.ErrPaused
	}
	return nil
}

func (e *Engine) isOwnerOrResolver(account string) bool {
	return account != "" && (account == e.owner || e.resolvers[account])
}

// restore loads a snapshot into empty tables, keeping the persisted insertion order.
func (e *Engine) restore(s *Snapshot) error {
	escrows := append([]htlc.Escrow(nil), s.Escrows...)
	sort.SliceStable(escrows, func(i, j int) bool { return escrows[i].Seq < escrows[j].Seq })
	for _, row := range escrows {
		if e.escrows.has(row.ID) {
			return fmt.Errorf("snapshot: duplicate escrow %s", row.ID)
		}
		e.escrows.put(row.ID, row.Clone())
		e.bumpSeq(row.Seq)
	}

	orders := append([]htlc.Order(nil), s.Orders...)
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].Seq < orders[j].Seq })
	for _, row := range orders {
		if e.orders.has(row.ID) {
			return fmt.Errorf("snapshot: duplicate order %s", row.ID)
		}
		e.orders.put(row.ID, row)
		e.bumpSeq(row.Seq)
	}

	fills := append([]htlc.Fill(nil), s.Fills...)
	sort.SliceStable(fills, func(i, j int) bool { return fills[i].Seq < fills[j].Seq })
	for _, row := range fills {
		if e.fills.has(row.ID) {
			return fmt.Errorf("snapshot: duplicate fill %s", row.ID)
		}
		if !e.orders.has(row.ParentID) {
			return fmt.Errorf("snapshot: fill %s references unknown order %s", row.ID, row.ParentID)
		}
		e.fills.put(row.ID, row.Clone())
		e.bumpSeq(row.Seq)
	}

	requests := append([]htlc.CrossChainRequest(nil), s.Requests...)
	sort.SliceStable(requests, func(i, j int) bool { return requests[i].Seq < requests[j].Seq })
	for _, row := range requests {
		if e.requests.has(row.ID) {
			return fmt.Errorf("snapshot: duplicate request %s", row.ID)
		}
		e.requests.put(row.ID, row)
		e.bumpSeq(row.Seq)
	}

	for _, account := range s.Resolvers {
		e.resolvers[account] = true
	}
	e.paused = s.Paused
	if s.LastSeq > e.seq {
		e.seq = s.LastSeq
	}
	return nil
}

func (e *Engine) bumpSeq(seq uint64) {
	if seq > e.seq {
		e.seq = seq
	}
}

// Snapshot is the persisted form of engine state.
type Snapshot struct {
	Escrows   []htlc.Escrow
	Orders    []htlc.Order
	Fills     []htlc.Fill
	Requests  []htlc.CrossChainRequest
	Resolvers []string
	Paused    bool
	// LastSeq is the highest insertion position ever handed out, including deleted requests.
	LastSeq uint64
}

func observeEvent(env events.Envelope) {
	metrics.EventsEmitted.WithLabelValues(env.Type).Inc()
}
