package engine

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/htlc-escrow/internal/metrics"
	"github.com/chainsafe/htlc-escrow/pkg/htlc"
)

// PayoutKind names the operation that released value.
type PayoutKind string

const (
	PayoutEscrowClaim     PayoutKind = "escrow_claim"
	PayoutEscrowRefund    PayoutKind = "escrow_refund"
	PayoutFillComplete    PayoutKind = "fill_complete"
	PayoutFillRefund      PayoutKind = "fill_refund"
	PayoutRequestComplete PayoutKind = "request_complete"
	PayoutRequestRefund   PayoutKind = "request_refund"
)

// PayoutStatus is the settlement state of a transfer.
type PayoutStatus string

const (
	PayoutPending PayoutStatus = "pending"
	PayoutSettled PayoutStatus = "settled"
	PayoutFailed  PayoutStatus = "failed"
)

// Payout is the handle for a transfer dispatched after a committed state change.
// The state change is final whatever the transfer outcome.
type Payout struct {
	SubjectID string
	Kind      PayoutKind
	Recipient string
	Amount    htlc.Amount

	done chan struct{}
	once sync.Once
	err  error
}

func newPayout(subjectID string, kind PayoutKind, recipient string, amount htlc.Amount) *Payout {
	return &Payout{
		SubjectID: subjectID,
		Kind:      kind,
		Recipient: recipient,
		Amount:    amount,
		done:      make(chan struct{}),
	}
}

// Done is closed once the transfer has settled or failed.
func (p *Payout) Done() <-chan struct{} { return p.done }

// Wait blocks until the transfer finishes and returns its error, or ctx.Err().
func (p *Payout) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the transfer error; nil while pending or after success.
func (p *Payout) Err() error {
	select {
	case <-p.done:
		return p.err
	default:
		return nil
	}
}

func (p *Payout) Status() PayoutStatus {
	select {
	case <-p.done:
		if p.err != nil {
			return PayoutFailed
		}
		return PayoutSettled
	default:
		return PayoutPending
	}
}

func (p *Payout) finish(err error) {
	p.once.Do(func() {
		p.err = err
		close(p.done)
	})
}

// dispatch runs the transfer in the background. When guarded, the reentrancy
// flag for p.SubjectID is released after the transfer returns and before the
// payout is marked done. Called with e.mu held.
func (e *Engine) dispatch(p *Payout, guarded bool) {
	e.payouts.Add(1)
	e.inFlight.Add(1)
	metrics.PayoutsInFlight.Inc()

	go func() {
		defer e.payouts.Done()
		defer e.inFlight.Add(-1)
		defer metrics.PayoutsInFlight.Dec()

		start := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), e.payoutTimeout)
		err := e.ledger.Transfer(ctx, p.Recipient, p.Amount)
		cancel()

		if guarded {
			e.mu.Lock()
			e.guard.release(p.SubjectID)
			e.mu.Unlock()
		}

		status := PayoutSettled
		if err != nil {
			status = PayoutFailed
			e.logger.Error("Payout transfer failed",
				zap.String("subject_id", p.SubjectID),
				zap.String("kind", string(p.Kind)),
				zap.String("recipient", p.Recipient),
				zap.String("amount", p.Amount.String()),
				zap.Error(err),
			)
		} else {
			e.logger.Info("Payout settled",
				zap.String("subject_id", p.SubjectID),
				zap.String("kind", string(p.Kind)),
				zap.String("recipient", p.Recipient),
				zap.String("amount", p.Amount.String()),
				zap.Duration("duration", time.Since(start)),
			)
		}
		metrics.PayoutsTotal.WithLabelValues(string(p.Kind), string(status)).Inc()
		metrics.PayoutDuration.WithLabelValues(string(p.Kind)).Observe(time.Since(start).Seconds())

		p.finish(err)
	}()
}
