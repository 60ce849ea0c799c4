package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/chainsafe/htlc-escrow/pkg/events"
	"github.com/chainsafe/htlc-escrow/pkg/htlc"
)

// ResolverChange is a grant or revocation of the resolver role.
type ResolverChange struct {
	Account string
	Enabled bool
}

// Deposit is value an operation takes from an account into the vault.
type Deposit struct {
	Account string
	Amount  htlc.Amount
}

// Changeset is everything one operation writes. Rows are full images (upserts).
type Changeset struct {
	// Deposit is locked on the ledger before the rows are persisted.
	Deposit         *Deposit
	Escrows         []htlc.Escrow
	Orders          []htlc.Order
	Fills           []htlc.Fill
	Requests        []htlc.CrossChainRequest
	DeletedRequests []string
	Resolvers       []ResolverChange
	Paused          *bool
	Events          []events.Envelope
}

func (cs *Changeset) emit(ev events.Event, e *Engine) {
	cs.Events = append(cs.Events, events.NewEnvelope(ev, e.nowFn()))
}

// commit persists cs (when a persister is configured), applies it to the
// tables and then hands its events to the emitter. Caller holds e.mu.
func (e *Engine) commit(ctx context.Context, cs *Changeset) error {
	locker, locked := e.ledger.(Locker)
	locked = locked && cs.Deposit != nil
	if locked {
		if err := locker.Lock(ctx, cs.Deposit.Account, cs.Deposit.Amount); err != nil {
			return fmt.Errorf("%w: %s cannot lock %s: %w", htlc.ErrInvalidAmount,
				cs.Deposit.Account, cs.Deposit.Amount, err)
		}
	}

	if e.persister != nil {
		if err := e.persister.Persist(ctx, cs); err != nil {
			if locked {
				if uerr := locker.Unlock(ctx, cs.Deposit.Account, cs.Deposit.Amount); uerr != nil {
					e.logger.Error("Failed to release lock after persist failure",
						zap.String("account", cs.Deposit.Account),
						zap.String("amount", cs.Deposit.Amount.String()),
						zap.Error(uerr),
					)
				}
			}
			return fmt.Errorf("failed to persist changeset: %w", err)
		}
	}

	for _, row := range cs.Escrows {
		e.escrows.put(row.ID, row.Clone())
		e.bumpSeq(row.Seq)
	}
	for _, row := range cs.Orders {
		e.orders.put(row.ID, row)
		e.bumpSeq(row.Seq)
	}
	for _, row := range cs.Fills {
		e.fills.put(row.ID, row.Clone())
		e.bumpSeq(row.Seq)
	}
	for _, row := range cs.Requests {
		e.requests.put(row.ID, row)
		e.bumpSeq(row.Seq)
	}
	for _, id := range cs.DeletedRequests {
		e.requests.remove(id)
	}
	for _, rc := range cs.Resolvers {
		if rc.Enabled {
			e.resolvers[rc.Account] = true
		} else {
			delete(e.resolvers, rc.Account)
		}
	}
	if cs.Paused != nil {
		e.paused = *cs.Paused
	}

	for _, env := range cs.Events {
		e.emitter.Emit(env)
		observeEvent(env)
	}
	return nil
}
