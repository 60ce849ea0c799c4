package engine_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/chainsafe/htlc-escrow/pkg/events"
	"github.com/chainsafe/htlc-escrow/pkg/htlc"
	"github.com/chainsafe/htlc-escrow/pkg/htlc/engine"
)

const (
	owner = "owner"
	alice = "alice"
	bob   = "bob"
	carol = "carol"
	dave  = "dave"

	foreignRecipient = "0x52908400098527886E0F7030069857D2E4169EE7"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type transfer struct {
	to     string
	amount htlc.Amount
}

// fakeLedger records transfers and fails them with err when set.
type fakeLedger struct {
	mu        sync.Mutex
	transfers []transfer
	err       error
}

func (l *fakeLedger) Transfer(_ context.Context, to string, amount htlc.Amount) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.transfers = append(l.transfers, transfer{to: to, amount: amount})
	return l.err
}

func (l *fakeLedger) Transfers() []transfer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]transfer(nil), l.transfers...)
}

// lockingLedger also implements engine.Locker over a fixed balance sheet.
type lockingLedger struct {
	fakeLedger
	balances map[string]uint64
	locks    []transfer
	unlocks  []transfer
}

var errShort = errors.New("balance too low")

func (l *lockingLedger) Lock(_ context.Context, from string, amount htlc.Amount) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	v := amount.Big().Uint64()
	if l.balances[from] < v {
		return errShort
	}
	l.balances[from] -= v
	l.locks = append(l.locks, transfer{to: from, amount: amount})
	return nil
}

func (l *lockingLedger) Unlock(_ context.Context, from string, amount htlc.Amount) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[from] += amount.Big().Uint64()
	l.unlocks = append(l.unlocks, transfer{to: from, amount: amount})
	return nil
}

type harness struct {
	eng      *engine.Engine
	ledger   *fakeLedger
	clock    *fakeClock
	recorder *events.Recorder
}

func newHarness(t *testing.T, opts ...engine.Option) *harness {
	t.Helper()

	h := &harness{
		ledger:   &fakeLedger{},
		clock:    &fakeClock{now: t0},
		recorder: events.NewRecorder(0),
	}
	base := []engine.Option{engine.WithClock(h.clock.Now), engine.WithEmitter(h.recorder)}
	eng, err := engine.New(owner, h.ledger, append(base, opts...)...)
	if err != nil {
		t.Fatalf("engine.New() failed: %v", err)
	}
	h.eng = eng
	t.Cleanup(func() { drain(t, eng) })
	return h
}

func drain(t *testing.T, eng *engine.Engine) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := eng.Drain(ctx); err != nil {
		t.Fatalf("Drain() failed: %v", err)
	}
}

func wait(t *testing.T, p *engine.Payout) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := p.Wait(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("payout %s did not settle", p.SubjectID)
	}
	return err
}

func amount(v uint64) htlc.Amount { return htlc.NewAmount(v) }

func secretFor(name string) ([]byte, htlc.Commitment) {
	s := []byte("preimage-" + name)
	return s, htlc.HashSecret(s)
}

func expectKind(t *testing.T, err error, want error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v, got nil", want)
	}
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func (h *harness) createEscrow(t *testing.T, value uint64, ttl time.Duration, commitment htlc.Commitment) htlc.Escrow {
	t.Helper()
	esc, err := h.eng.CreateEscrow(context.Background(), engine.CreateEscrowParams{
		Sender:     alice,
		Receiver:   bob,
		Amount:     amount(value),
		Commitment: commitment,
		Deadline:   h.clock.Now().Add(ttl),
	})
	if err != nil {
		t.Fatalf("CreateEscrow() failed: %v", err)
	}
	return esc
}

func (h *harness) createOrder(t *testing.T, total uint64, ttl time.Duration) htlc.Order {
	t.Helper()
	order, err := h.eng.CreateOrder(context.Background(), engine.CreateOrderParams{
		Sender:                alice,
		Receiver:              bob,
		TotalAmount:           amount(total),
		Deadline:              h.clock.Now().Add(ttl),
		ForeignTokenReference: "0xToken",
	})
	if err != nil {
		t.Fatalf("CreateOrder() failed: %v", err)
	}
	return order
}

func (h *harness) createFill(t *testing.T, orderID, sender string, value uint64, commitment htlc.Commitment) htlc.Fill {
	t.Helper()
	fill, err := h.eng.CreateFill(context.Background(), engine.CreateFillParams{
		OrderID:    orderID,
		Sender:     sender,
		Commitment: commitment,
		FillAmount: amount(value),
		Attached:   amount(value),
	})
	if err != nil {
		t.Fatalf("CreateFill(%d) failed: %v", value, err)
	}
	return fill
}

// assertTransfers matches transfers in any order: payouts settle on their own
// goroutines.
func assertTransfers(t *testing.T, l *fakeLedger, want ...transfer) {
	t.Helper()
	got := l.Transfers()
	if len(got) != len(want) {
		t.Fatalf("expected %d transfers, got %d: %+v", len(want), len(got), got)
	}
	used := make([]bool, len(got))
	for _, w := range want {
		found := false
		for i, g := range got {
			if !used[i] && g.to == w.to && g.amount.Equal(w.amount) {
				used[i], found = true, true
				break
			}
		}
		if !found {
			t.Fatalf("missing transfer of %s to %s in %+v", w.amount, w.to, got)
		}
	}
}

func assertConservation(t *testing.T, o htlc.Order) {
	t.Helper()
	sum, err := o.FilledAmount.Add(o.RemainingAmount)
	if err != nil {
		t.Fatalf("filled + remaining overflowed: %v", err)
	}
	if !sum.Equal(o.TotalAmount) {
		t.Fatalf("filled %s + remaining %s != total %s", o.FilledAmount, o.RemainingAmount, o.TotalAmount)
	}
	if o.Completed != o.RemainingAmount.IsZero() {
		t.Fatalf("completed=%v but remaining=%s", o.Completed, o.RemainingAmount)
	}
}

func assertEventTypes(t *testing.T, r *events.Recorder, want ...string) {
	t.Helper()
	got := r.Types()
	if len(got) != len(want) {
		t.Fatalf("expected events %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected events %v, got %v", want, got)
		}
	}
}
