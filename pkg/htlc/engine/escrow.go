package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/chainsafe/htlc-escrow/pkg/events"
	"github.com/chainsafe/htlc-escrow/pkg/htlc"
)

// CreateEscrowParams describes a new single-claim escrow. Amount is the value
// the sender has already locked with the call.
type CreateEscrowParams struct {
	Sender           string
	Receiver         string
	Amount           htlc.Amount
	Commitment       htlc.Commitment
	Deadline         time.Time
	ForeignReference string
}

// CreateEscrow records a new open escrow and emits SwapInitiated.
func (e *Engine) CreateEscrow(ctx context.Context, p CreateEscrowParams) (htlc.Escrow, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkNotPaused(); err != nil {
		return htlc.Escrow{}, err
	}
	if p.Sender == "" || p.Receiver == "" {
		return htlc.Escrow{}, fmt.Errorf("%w: sender and receiver are required", htlc.ErrInvalidAccount)
	}
	if err := e.checkAmount(p.Amount); err != nil {
		return htlc.Escrow{}, err
	}
	now := e.nowFn()
	if err := e.checkDeadline(now, p.Deadline); err != nil {
		return htlc.Escrow{}, err
	}
	if p.Commitment.IsZero() {
		return htlc.Escrow{}, fmt.Errorf("%w: commitment is empty", htlc.ErrInvalidCommitment)
	}

	id := htlc.GenerateID(now, p.Sender, p.Receiver, p.Amount.String(), p.Commitment.String(),
		formatUnix(p.Deadline))
	if e.escrows.has(id) {
		return htlc.Escrow{}, fmt.Errorf("%w: escrow %s", htlc.ErrConflict, id)
	}

	esc := htlc.Escrow{
		ID:               id,
		Sender:           p.Sender,
		Receiver:         p.Receiver,
		Amount:           p.Amount,
		Commitment:       p.Commitment,
		Deadline:         p.Deadline,
		State:            htlc.StateOpen,
		ForeignReference: p.ForeignReference,
		CreatedAt:        now,
		Seq:              e.peekSeq(),
	}

	cs := &Changeset{
		Escrows: []htlc.Escrow{esc},
		Deposit: &Deposit{Account: esc.Sender, Amount: esc.Amount},
	}
	cs.emit(events.SwapInitiated{
		ID:               id,
		Subject:          events.SubjectEscrow,
		Sender:           esc.Sender,
		Receiver:         esc.Receiver,
		Amount:           esc.Amount,
		Commitment:       esc.Commitment.String(),
		Deadline:         esc.Deadline,
		ForeignReference: esc.ForeignReference,
	}, e)
	if err := e.commit(ctx, cs); err != nil {
		return htlc.Escrow{}, err
	}
	return esc.Clone(), nil
}

// Claim releases an open escrow to its receiver on presentation of the secret.
// A repeat claim fails with ErrAlreadyFinalized once the first payout has
// settled; while that payout is still in flight the guard answers first and the
// repeat fails with ErrConcurrentClaim instead.
func (e *Engine) Claim(ctx context.Context, id string, secret []byte, claimer string) (*Payout, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	esc, ok := e.escrows.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: escrow %s", htlc.ErrNotFound, id)
	}
	if e.guard.held(id) {
		return nil, fmt.Errorf("%w: escrow %s", htlc.ErrConcurrentClaim, id)
	}
	if esc.State != htlc.StateOpen {
		return nil, fmt.Errorf("%w: escrow %s is %s", htlc.ErrAlreadyFinalized, id, esc.State)
	}
	if !htlc.ClaimOpen(e.nowFn(), esc.Deadline) {
		return nil, fmt.Errorf("%w: escrow %s", htlc.ErrExpired, id)
	}
	if !esc.Commitment.Matches(secret) {
		return nil, fmt.Errorf("%w: escrow %s", htlc.ErrInvalidSecret, id)
	}
	if claimer != esc.Receiver {
		return nil, fmt.Errorf("%w: only the receiver may claim escrow %s", htlc.ErrUnauthorized, id)
	}

	updated := esc.Clone()
	updated.State = htlc.StateClaimed
	updated.RevealedSecret = append(htlc.Secret(nil), secret...)

	cs := &Changeset{Escrows: []htlc.Escrow{updated}}
	cs.emit(events.SwapClaimed{
		ID:      id,
		Subject: events.SubjectEscrow,
		Claimer: claimer,
		Secret:  updated.RevealedSecret,
		Amount:  esc.Amount,
	}, e)
	if err := e.commit(ctx, cs); err != nil {
		return nil, err
	}

	e.guard.acquire(id)
	p := newPayout(id, PayoutEscrowClaim, claimer, esc.Amount)
	e.dispatch(p, true)
	return p, nil
}

// Refund returns an expired open escrow to its sender.
func (e *Engine) Refund(ctx context.Context, id, refunder string) (*Payout, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	esc, ok := e.escrows.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: escrow %s", htlc.ErrNotFound, id)
	}
	if esc.State != htlc.StateOpen {
		return nil, fmt.Errorf("%w: escrow %s is %s", htlc.ErrAlreadyFinalized, id, esc.State)
	}
	if !htlc.RefundOpen(e.nowFn(), esc.Deadline) {
		return nil, fmt.Errorf("%w: escrow %s", htlc.ErrNotYetExpired, id)
	}
	if refunder != esc.Sender {
		return nil, fmt.Errorf("%w: only the sender may refund escrow %s", htlc.ErrUnauthorized, id)
	}

	updated := esc.Clone()
	updated.State = htlc.StateRefunded

	cs := &Changeset{Escrows: []htlc.Escrow{updated}}
	cs.emit(events.SwapRefunded{
		ID:       id,
		Subject:  events.SubjectEscrow,
		Refunder: refunder,
		Amount:   esc.Amount,
	}, e)
	if err := e.commit(ctx, cs); err != nil {
		return nil, err
	}

	p := newPayout(id, PayoutEscrowRefund, esc.Sender, esc.Amount)
	e.dispatch(p, false)
	return p, nil
}

// GetEscrow returns a copy of the escrow.
func (e *Engine) GetEscrow(id string) (htlc.Escrow, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	esc, ok := e.escrows.get(id)
	if !ok {
		return htlc.Escrow{}, fmt.Errorf("%w: escrow %s", htlc.ErrNotFound, id)
	}
	return esc.Clone(), nil
}

// EscrowStatus returns the escrow with its derived fields.
func (e *Engine) EscrowStatus(id string) (htlc.EscrowStatus, error) {
	esc, err := e.GetEscrow(id)
	if err != nil {
		return htlc.EscrowStatus{}, err
	}
	return htlc.NewEscrowStatus(esc, e.nowFn()), nil
}

// ListEscrowsByAccount pages through escrows where account is sender or receiver.
func (e *Engine) ListEscrowsByAccount(account string, offset, limit int) []htlc.Escrow {
	e.mu.Lock()
	defer e.mu.Unlock()

	rows := e.escrows.page(offset, limit, func(esc htlc.Escrow) bool {
		return esc.Sender == account || esc.Receiver == account
	})
	return cloneEscrows(rows)
}

// ListEscrows pages through every escrow in creation order.
func (e *Engine) ListEscrows(offset, limit int) []htlc.Escrow {
	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneEscrows(e.escrows.page(offset, limit, nil))
}

// VerifySecret is the stateless commitment check exposed to relayers.
func (e *Engine) VerifySecret(secret []byte, commitment htlc.Commitment) bool {
	return htlc.VerifySecret(secret, commitment)
}

// CheckSecret reports whether secret unlocks the escrow, fill or pending
// request with the given id. Unknown ids report false.
func (e *Engine) CheckSecret(id string, secret []byte) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if esc, ok := e.escrows.get(id); ok {
		return esc.Commitment.Matches(secret)
	}
	if fill, ok := e.fills.get(id); ok {
		return fill.Commitment.Matches(secret)
	}
	if req, ok := e.requests.get(id); ok {
		return req.Commitment.Matches(secret)
	}
	return false
}

func cloneEscrows(rows []htlc.Escrow) []htlc.Escrow {
	for i := range rows {
		rows[i] = rows[i].Clone()
	}
	return rows
}

func formatUnix(t time.Time) string {
	return fmt.Sprintf("%d", t.Unix())
}
