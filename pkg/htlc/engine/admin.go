package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/chainsafe/htlc-escrow/pkg/events"
	"github.com/chainsafe/htlc-escrow/pkg/htlc"
)

// Owner returns the account fixed at construction.
func (e *Engine) Owner() string { return e.owner }

// SetAuthorizedResolver grants or revokes the resolver role. Owner only.
func (e *Engine) SetAuthorizedResolver(ctx context.Context, caller, account string, enabled bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.owner {
		return fmt.Errorf("%w: only the owner may manage resolvers", htlc.ErrUnauthorized)
	}
	if account == "" {
		return fmt.Errorf("%w: resolver account is required", htlc.ErrInvalidAccount)
	}
	if e.resolvers[account] == enabled {
		return nil
	}

	cs := &Changeset{Resolvers: []ResolverChange{{Account: account, Enabled: enabled}}}
	cs.emit(events.ResolverUpdated{Account: account, Enabled: enabled, By: caller}, e)
	return e.commit(ctx, cs)
}

func (e *Engine) IsAuthorizedResolver(account string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.resolvers[account]
}

// Resolvers lists authorized resolvers in lexical order.
func (e *Engine) Resolvers() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]string, 0, len(e.resolvers))
	for account := range e.resolvers {
		out = append(out, account)
	}
	sort.Strings(out)
	return out
}

// Pause stops new escrows, orders, fills and requests. Claims, completions and
// refunds keep working so locked value can always leave. Owner only.
func (e *Engine) Pause(ctx context.Context, caller string) error {
	return e.setPaused(ctx, caller, true)
}

// Unpause lifts a previous Pause. Owner only.
func (e *Engine) Unpause(ctx context.Context, caller string) error {
	return e.setPaused(ctx, caller, false)
}

func (e *Engine) setPaused(ctx context.Context, caller string, paused bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if caller != e.owner {
		return fmt.Errorf("%w: only the owner may toggle the pause switch", htlc.ErrUnauthorized)
	}
	if e.paused == paused {
		return nil
	}

	cs := &Changeset{Paused: &paused}
	cs.emit(events.PauseChanged{Paused: paused, By: caller}, e)
	return e.commit(ctx, cs)
}

func (e *Engine) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paused
}

// Stats counts records per table.
func (e *Engine) Stats() htlc.Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := htlc.Stats{
		Escrows:         e.escrows.len(),
		Orders:          e.orders.len(),
		Fills:           e.fills.len(),
		PendingRequests: e.requests.len(),
		InFlight:        int(e.inFlight.Load()),
		Paused:          e.paused,
	}
	e.escrows.each(func(esc htlc.Escrow) bool {
		if esc.State == htlc.StateOpen {
			s.OpenEscrows++
		}
		return true
	})
	e.orders.each(func(o htlc.Order) bool {
		if !o.Completed {
			s.OpenOrders++
		}
		return true
	})
	e.fills.each(func(f htlc.Fill) bool {
		if f.State == htlc.StateOpen {
			s.OpenFills++
		}
		return true
	})
	return s
}
