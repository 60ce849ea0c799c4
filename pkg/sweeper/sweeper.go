// Package sweeper refunds expired cross-chain requests on a schedule and
// publishes gauges describing the value still locked in the engine.
package sweeper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chainsafe/htlc-escrow/internal/metrics"
	"github.com/chainsafe/htlc-escrow/pkg/htlc"
	"github.com/chainsafe/htlc-escrow/pkg/htlc/engine"
)

const (
	kindEscrow  = "escrow"
	kindOrder   = "order"
	kindFill    = "fill"
	kindRequest = "request"

	pageSize = 500
)

// Engine is the subset of the escrow engine the sweeper drives.
type Engine interface {
	RefundExpiredRequests(ctx context.Context, caller string, limit int) ([]*engine.Payout, error)
	ListEscrows(offset, limit int) []htlc.Escrow
	ListOrders(offset, limit int) []htlc.Order
	ListAllFills(offset, limit int) []htlc.Fill
	ListRequests(offset, limit int) []htlc.CrossChainRequest
	Now() time.Time
}

// Obligation summarizes open entities of one kind.
type Obligation struct {
	Open    int
	Expired int
	Locked  decimal.Decimal
}

// Report is the result of a reconciliation pass keyed by entity kind.
type Report map[string]Obligation

// Sweeper periodically refunds expired requests and reconciles open obligations.
type Sweeper struct {
	engine    Engine
	account   string
	batchSize int
	logger    *zap.Logger

	stopCh chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

// New creates a Sweeper that acts as account. batchSize <= 0 refunds every
// expired request in a single pass.
func New(eng Engine, account string, batchSize int, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		engine:    eng,
		account:   account,
		batchSize: batchSize,
		logger:    logger,
		stopCh:    make(chan struct{}),
	}
}

// Sweep refunds one batch of expired requests and returns the dispatched payouts.
func (s *Sweeper) Sweep(ctx context.Context) ([]*engine.Payout, error) {
	payouts, err := s.engine.RefundExpiredRequests(ctx, s.account, s.batchSize)
	if err != nil {
		metrics.SweepsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to refund expired requests: %w", err)
	}
	metrics.SweepsTotal.WithLabelValues("ok").Inc()

	if len(payouts) > 0 {
		total := decimal.Zero
		for _, p := range payouts {
			total = total.Add(toDecimal(p.Amount))
		}
		s.logger.Info("Refunded expired requests",
			zap.Int("count", len(payouts)),
			zap.String("amount", total.String()))
	}
	return payouts, nil
}

// Reconcile walks the open entities and updates the obligation gauges.
// Totals are summed as decimals since several u128 amounts may overflow.
func (s *Sweeper) Reconcile() Report {
	now := s.engine.Now()
	report := Report{
		kindEscrow:  {Locked: decimal.Zero},
		kindOrder:   {Locked: decimal.Zero},
		kindFill:    {Locked: decimal.Zero},
		kindRequest: {Locked: decimal.Zero},
	}
	add := func(kind string, amount htlc.Amount, expired bool) {
		o := report[kind]
		o.Open++
		if expired {
			o.Expired++
		}
		o.Locked = o.Locked.Add(toDecimal(amount))
		report[kind] = o
	}

	for offset := 0; ; offset += pageSize {
		page := s.engine.ListEscrows(offset, pageSize)
		for _, e := range page {
			if e.State == htlc.StateOpen {
				add(kindEscrow, e.Amount, !htlc.ClaimOpen(now, e.Deadline))
			}
		}
		if len(page) < pageSize {
			break
		}
	}

	for offset := 0; ; offset += pageSize {
		page := s.engine.ListOrders(offset, pageSize)
		for _, o := range page {
			if !o.Completed {
				// Orders hold no value themselves; their open fills do.
				add(kindOrder, htlc.Amount{}, !htlc.ClaimOpen(now, o.Deadline))
			}
		}
		if len(page) < pageSize {
			break
		}
	}

	for offset := 0; ; offset += pageSize {
		page := s.engine.ListAllFills(offset, pageSize)
		for _, f := range page {
			if f.State == htlc.StateOpen {
				add(kindFill, f.FillAmount, !htlc.ClaimOpen(now, f.Deadline))
			}
		}
		if len(page) < pageSize {
			break
		}
	}

	for offset := 0; ; offset += pageSize {
		page := s.engine.ListRequests(offset, pageSize)
		for _, r := range page {
			add(kindRequest, r.Amount, htlc.RequestRefundable(now, r.Deadline))
		}
		if len(page) < pageSize {
			break
		}
	}

	for kind, o := range report {
		metrics.OpenEntities.WithLabelValues(kind).Set(float64(o.Open))
		metrics.ExpiredOpenEntities.WithLabelValues(kind).Set(float64(o.Expired))
		metrics.LockedAmount.WithLabelValues(kind).Set(o.Locked.InexactFloat64())
	}
	return report
}

// RunOnce sweeps and then reconciles.
func (s *Sweeper) RunOnce(ctx context.Context) error {
	start := time.Now()
	if _, err := s.Sweep(ctx); err != nil {
		return err
	}
	report := s.Reconcile()

	s.logger.Debug("Sweep completed",
		zap.Int("open_escrows", report[kindEscrow].Open),
		zap.Int("open_fills", report[kindFill].Open),
		zap.Int("pending_requests", report[kindRequest].Open),
		zap.Int("expired_requests", report[kindRequest].Expired),
		zap.Duration("duration", time.Since(start)))
	return nil
}

// Start runs the sweep every interval until Stop is called.
func (s *Sweeper) Start(interval time.Duration) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		s.logger.Info("Started expiry sweeper",
			zap.Duration("interval", interval),
			zap.String("account", s.account),
			zap.Int("batch_size", s.batchSize))

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), interval)
				if err := s.RunOnce(ctx); err != nil {
					metrics.ErrorsTotal.WithLabelValues("sweeper", "sweep").Inc()
					s.logger.Error("Periodic sweep failed", zap.Error(err))
				}
				cancel()
			case <-s.stopCh:
				s.logger.Info("Stopping expiry sweeper")
				return
			}
		}
	}()
}

// Stop stops the periodic sweep and waits for an in-progress run.
func (s *Sweeper) Stop() {
	s.once.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func toDecimal(a htlc.Amount) decimal.Decimal {
	return decimal.NewFromBigInt(a.Big(), 0)
}
