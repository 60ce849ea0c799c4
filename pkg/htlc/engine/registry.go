package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/chainsafe/htlc-escrow/pkg/events"
	"github.com/chainsafe/htlc-escrow/pkg/htlc"
)

// RequestParams describes an outbound swap to an Ethereum recipient.
type RequestParams struct {
	Initiator             string
	ForeignRecipient      string
	Amount                htlc.Amount
	ForeignTokenReference string
	Commitment            htlc.Commitment
	Deadline              time.Time
	AuxiliaryParams       string
}

// RequestSwap registers a pending cross-chain request and emits EthSwapRequested
// for relayers watching the engine.
func (e *Engine) RequestSwap(ctx context.Context, p RequestParams) (htlc.CrossChainRequest, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkNotPaused(); err != nil {
		return htlc.CrossChainRequest{}, err
	}
	if p.Initiator == "" {
		return htlc.CrossChainRequest{}, fmt.Errorf("%w: initiator is required", htlc.ErrInvalidAccount)
	}
	if err := htlc.ValidateForeignAddress(p.ForeignRecipient); err != nil {
		return htlc.CrossChainRequest{}, err
	}
	if err := e.checkAmount(p.Amount); err != nil {
		return htlc.CrossChainRequest{}, err
	}
	now := e.nowFn()
	if err := e.checkDeadline(now, p.Deadline); err != nil {
		return htlc.CrossChainRequest{}, err
	}
	if p.Commitment.IsZero() {
		return htlc.CrossChainRequest{}, fmt.Errorf("%w: commitment is empty", htlc.ErrInvalidCommitment)
	}

	id := htlc.GenerateID(now, p.Initiator, p.ForeignRecipient, p.Amount.String(), p.Commitment.String(),
		formatUnix(p.Deadline))
	if e.requests.has(id) {
		return htlc.CrossChainRequest{}, fmt.Errorf("%w: request %s", htlc.ErrConflict, id)
	}

	req := htlc.CrossChainRequest{
		ID:                    id,
		Initiator:             p.Initiator,
		ForeignRecipient:      p.ForeignRecipient,
		Amount:                p.Amount,
		ForeignTokenReference: p.ForeignTokenReference,
		Commitment:            p.Commitment,
		Deadline:              p.Deadline,
		AuxiliaryParams:       p.AuxiliaryParams,
		CreatedAt:             now,
		Seq:                   e.peekSeq(),
	}

	cs := &Changeset{
		Requests: []htlc.CrossChainRequest{req},
		Deposit:  &Deposit{Account: req.Initiator, Amount: req.Amount},
	}
	cs.emit(events.EthSwapRequested{
		ID:                    id,
		Initiator:             req.Initiator,
		ForeignRecipient:      req.ForeignRecipient,
		Amount:                req.Amount,
		Commitment:            req.Commitment.String(),
		Deadline:              req.Deadline,
		ForeignTokenReference: req.ForeignTokenReference,
		AuxiliaryParams:       req.AuxiliaryParams,
	}, e)
	if err := e.commit(ctx, cs); err != nil {
		return htlc.CrossChainRequest{}, err
	}
	return req, nil
}

// CompleteRequest settles a pending request to recipient once the secret is
// known, and removes it. The deadline instant itself is still completable.
// caller is only checked when resolver-gated completion is enabled.
func (e *Engine) CompleteRequest(ctx context.Context, id string, secret []byte, recipient, caller string) (*Payout, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	req, ok := e.requests.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: request %s", htlc.ErrNotFound, id)
	}
	if e.requireResolver && !e.isOwnerOrResolver(caller) {
		return nil, fmt.Errorf("%w: only resolvers may complete requests", htlc.ErrUnauthorized)
	}
	if !req.Commitment.Matches(secret) {
		return nil, fmt.Errorf("%w: request %s", htlc.ErrInvalidSecret, id)
	}
	if !htlc.RequestCompletable(e.nowFn(), req.Deadline) {
		return nil, fmt.Errorf("%w: request %s", htlc.ErrExpired, id)
	}
	if recipient == "" {
		return nil, fmt.Errorf("%w: recipient is required", htlc.ErrInvalidAccount)
	}

	cs := &Changeset{DeletedRequests: []string{id}}
	cs.emit(events.SwapClaimed{
		ID:      id,
		Subject: events.SubjectRequest,
		Claimer: recipient,
		Secret:  append(htlc.Secret(nil), secret...),
		Amount:  req.Amount,
	}, e)
	if err := e.commit(ctx, cs); err != nil {
		return nil, err
	}

	p := newPayout(id, PayoutRequestComplete, recipient, req.Amount)
	e.dispatch(p, false)
	return p, nil
}

// RefundRequest returns a request past its deadline to the initiator and removes it.
func (e *Engine) RefundRequest(ctx context.Context, id string) (*Payout, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	req, ok := e.requests.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: request %s", htlc.ErrNotFound, id)
	}
	if !htlc.RequestRefundable(e.nowFn(), req.Deadline) {
		return nil, fmt.Errorf("%w: request %s", htlc.ErrNotYetExpired, id)
	}

	cs := &Changeset{DeletedRequests: []string{id}}
	cs.emit(refundedRequestEvent(req), e)
	if err := e.commit(ctx, cs); err != nil {
		return nil, err
	}

	p := newPayout(id, PayoutRequestRefund, req.Initiator, req.Amount)
	e.dispatch(p, false)
	return p, nil
}

// RefundExpiredRequests refunds up to limit requests past their deadline in a
// single step (limit <= 0 means all). Restricted to the owner and resolvers.
func (e *Engine) RefundExpiredRequests(ctx context.Context, caller string, limit int) ([]*Payout, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.isOwnerOrResolver(caller) {
		return nil, fmt.Errorf("%w: only the owner or resolvers may sweep requests", htlc.ErrUnauthorized)
	}

	now := e.nowFn()
	var expired []htlc.CrossChainRequest
	e.requests.each(func(req htlc.CrossChainRequest) bool {
		if htlc.RequestRefundable(now, req.Deadline) {
			expired = append(expired, req)
		}
		return limit <= 0 || len(expired) < limit
	})
	if len(expired) == 0 {
		return nil, nil
	}

	cs := &Changeset{}
	for _, req := range expired {
		cs.DeletedRequests = append(cs.DeletedRequests, req.ID)
		cs.emit(refundedRequestEvent(req), e)
	}
	if err := e.commit(ctx, cs); err != nil {
		return nil, err
	}

	payouts := make([]*Payout, 0, len(expired))
	for _, req := range expired {
		p := newPayout(req.ID, PayoutRequestRefund, req.Initiator, req.Amount)
		e.dispatch(p, false)
		payouts = append(payouts, p)
	}
	return payouts, nil
}

func refundedRequestEvent(req htlc.CrossChainRequest) events.SwapRefunded {
	return events.SwapRefunded{
		ID:       req.ID,
		Subject:  events.SubjectRequest,
		Refunder: req.Initiator,
		Amount:   req.Amount,
	}
}

func (e *Engine) GetRequest(id string) (htlc.CrossChainRequest, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	req, ok := e.requests.get(id)
	if !ok {
		return htlc.CrossChainRequest{}, fmt.Errorf("%w: request %s", htlc.ErrNotFound, id)
	}
	return req, nil
}

// RequestStatus returns a pending request with its derived fields.
func (e *Engine) RequestStatus(id string) (htlc.RequestStatus, error) {
	req, err := e.GetRequest(id)
	if err != nil {
		return htlc.RequestStatus{}, err
	}
	return htlc.NewRequestStatus(req, e.nowFn()), nil
}

// ListRequestsByAccount pages through pending requests opened by account.
func (e *Engine) ListRequestsByAccount(account string, offset, limit int) []htlc.CrossChainRequest {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.requests.page(offset, limit, func(r htlc.CrossChainRequest) bool {
		return r.Initiator == account
	})
}

// ListRequests pages through every pending request.
func (e *Engine) ListRequests(offset, limit int) []htlc.CrossChainRequest {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.requests.page(offset, limit, nil)
}
