package engine

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/chainsafe/htlc-escrow/pkg/events"
	"github.com/chainsafe/htlc-escrow/pkg/htlc"
)

// CreateOrderParams describes a new partial-fill order.
type CreateOrderParams struct {
	Sender                string
	Receiver              string
	TotalAmount           htlc.Amount
	Deadline              time.Time
	ForeignTokenReference string
}

// CreateFillParams describes a fill against an open order. Attached is the
// value the fill's sender locked with the call and must equal FillAmount.
type CreateFillParams struct {
	OrderID    string
	Sender     string
	Commitment htlc.Commitment
	FillAmount htlc.Amount
	Attached   htlc.Amount
}

// CreateOrder records a new order with nothing filled.
func (e *Engine) CreateOrder(ctx context.Context, p CreateOrderParams) (htlc.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkNotPaused(); err != nil {
		return htlc.Order{}, err
	}
	if p.Sender == "" || p.Receiver == "" {
		return htlc.Order{}, fmt.Errorf("%w: sender and receiver are required", htlc.ErrInvalidAccount)
	}
	if err := e.checkAmount(p.TotalAmount); err != nil {
		return htlc.Order{}, err
	}
	now := e.nowFn()
	if err := e.checkDeadline(now, p.Deadline); err != nil {
		return htlc.Order{}, err
	}

	id := htlc.GenerateID(now, p.Sender, p.Receiver, p.TotalAmount.String(), formatUnix(p.Deadline),
		p.ForeignTokenReference)
	if e.orders.has(id) {
		return htlc.Order{}, fmt.Errorf("%w: order %s", htlc.ErrConflict, id)
	}

	order := htlc.Order{
		ID:                    id,
		Sender:                p.Sender,
		Receiver:              p.Receiver,
		TotalAmount:           p.TotalAmount,
		RemainingAmount:       p.TotalAmount,
		Deadline:              p.Deadline,
		ForeignTokenReference: p.ForeignTokenReference,
		CreatedAt:             now,
		Seq:                   e.peekSeq(),
	}

	cs := &Changeset{Orders: []htlc.Order{order}}
	cs.emit(events.SwapInitiated{
		ID:               id,
		Subject:          events.SubjectOrder,
		Sender:           order.Sender,
		Receiver:         order.Receiver,
		Amount:           order.TotalAmount,
		Deadline:         order.Deadline,
		ForeignReference: order.ForeignTokenReference,
	}, e)
	if err := e.commit(ctx, cs); err != nil {
		return htlc.Order{}, err
	}
	return order, nil
}

// CreateFill books fill_amount against the order and records a new open fill.
// The fill takes the order's receiver and deadline as they are now. Fills may be
// created after the order deadline; such fills can only be refunded.
func (e *Engine) CreateFill(ctx context.Context, p CreateFillParams) (htlc.Fill, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkNotPaused(); err != nil {
		return htlc.Fill{}, err
	}
	order, ok := e.orders.get(p.OrderID)
	if !ok {
		return htlc.Fill{}, fmt.Errorf("%w: order %s", htlc.ErrNotFound, p.OrderID)
	}
	if order.Completed {
		return htlc.Fill{}, fmt.Errorf("%w: order %s is fully filled", htlc.ErrAlreadyFinalized, order.ID)
	}
	if p.Sender == "" {
		return htlc.Fill{}, fmt.Errorf("%w: sender is required", htlc.ErrInvalidAccount)
	}
	if p.FillAmount.IsZero() {
		return htlc.Fill{}, fmt.Errorf("%w: fill amount must be greater than zero", htlc.ErrInvalidAmount)
	}
	if p.FillAmount.Cmp(order.RemainingAmount) > 0 {
		return htlc.Fill{}, fmt.Errorf("%w: fill %s exceeds remaining %s", htlc.ErrInvalidAmount,
			p.FillAmount, order.RemainingAmount)
	}
	if !p.Attached.Equal(p.FillAmount) {
		return htlc.Fill{}, fmt.Errorf("%w: attached %s, fill %s", htlc.ErrAmountMismatch, p.Attached, p.FillAmount)
	}
	if p.Commitment.IsZero() {
		return htlc.Fill{}, fmt.Errorf("%w: commitment is empty", htlc.ErrInvalidCommitment)
	}

	filled, err := order.FilledAmount.Add(p.FillAmount)
	if err != nil {
		return htlc.Fill{}, err
	}
	remaining, err := order.RemainingAmount.Sub(p.FillAmount)
	if err != nil {
		return htlc.Fill{}, err
	}

	now := e.nowFn()
	index := order.FillCount + 1
	id := htlc.GenerateID(now, order.ID, strconv.FormatUint(index, 10), p.Sender, p.FillAmount.String(),
		p.Commitment.String())
	if e.fills.has(id) {
		return htlc.Fill{}, fmt.Errorf("%w: fill %s", htlc.ErrConflict, id)
	}

	updated := order
	updated.FilledAmount = filled
	updated.RemainingAmount = remaining
	updated.FillCount = index
	updated.Completed = remaining.IsZero()

	fill := htlc.Fill{
		ID:         id,
		ParentID:   order.ID,
		Index:      index,
		Sender:     p.Sender,
		Receiver:   order.Receiver,
		FillAmount: p.FillAmount,
		Commitment: p.Commitment,
		Deadline:   order.Deadline,
		State:      htlc.StateOpen,
		CreatedAt:  now,
		Seq:        e.peekSeq(),
	}

	cs := &Changeset{
		Orders:  []htlc.Order{updated},
		Fills:   []htlc.Fill{fill},
		Deposit: &Deposit{Account: fill.Sender, Amount: fill.FillAmount},
	}
	cs.emit(events.SwapInitiated{
		ID:         id,
		Subject:    events.SubjectFill,
		ParentID:   order.ID,
		Sender:     fill.Sender,
		Receiver:   fill.Receiver,
		Amount:     fill.FillAmount,
		Commitment: fill.Commitment.String(),
		Deadline:   fill.Deadline,
	}, e)
	if err := e.commit(ctx, cs); err != nil {
		return htlc.Fill{}, err
	}
	return fill.Clone(), nil
}

// CompleteFill pays an open fill to its receiver. The parent's aggregates were
// booked when the fill was created and are left alone here. Repeats get
// ErrConcurrentClaim while the first payout is in flight and
// ErrAlreadyFinalized after it settles.
func (e *Engine) CompleteFill(ctx context.Context, fillID string, secret []byte, caller, foreignReference string) (*Payout, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	fill, ok := e.fills.get(fillID)
	if !ok {
		return nil, fmt.Errorf("%w: fill %s", htlc.ErrNotFound, fillID)
	}
	if e.guard.held(fillID) {
		return nil, fmt.Errorf("%w: fill %s", htlc.ErrConcurrentClaim, fillID)
	}
	if fill.State != htlc.StateOpen {
		return nil, fmt.Errorf("%w: fill %s is %s", htlc.ErrAlreadyFinalized, fillID, fill.State)
	}
	if caller != fill.Receiver {
		return nil, fmt.Errorf("%w: only the receiver may complete fill %s", htlc.ErrUnauthorized, fillID)
	}
	if !htlc.ClaimOpen(e.nowFn(), fill.Deadline) {
		return nil, fmt.Errorf("%w: fill %s", htlc.ErrExpired, fillID)
	}
	if !fill.Commitment.Matches(secret) {
		return nil, fmt.Errorf("%w: fill %s", htlc.ErrInvalidSecret, fillID)
	}

	order, ok := e.orders.get(fill.ParentID)
	if !ok {
		return nil, fmt.Errorf("order %s for fill %s is missing", fill.ParentID, fillID)
	}

	updated := fill.Clone()
	updated.State = htlc.StateCompleted
	updated.RevealedSecret = append(htlc.Secret(nil), secret...)
	if foreignReference != "" {
		updated.ForeignReference = foreignReference
	}

	remaining := order.RemainingAmount
	completed := order.Completed
	cs := &Changeset{Fills: []htlc.Fill{updated}}
	cs.emit(events.SwapClaimed{
		ID:        fillID,
		Subject:   events.SubjectFill,
		Claimer:   caller,
		Secret:    updated.RevealedSecret,
		Amount:    fill.FillAmount,
		Remaining: &remaining,
		Completed: &completed,
	}, e)
	if err := e.commit(ctx, cs); err != nil {
		return nil, err
	}

	e.guard.acquire(fillID)
	p := newPayout(fillID, PayoutFillComplete, fill.Receiver, fill.FillAmount)
	e.dispatch(p, true)
	return p, nil
}

// RefundFill returns an expired open fill to its sender and gives its amount
// back to the parent order, reopening the order if it had been filled.
func (e *Engine) RefundFill(ctx context.Context, fillID, refunder string) (*Payout, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	fill, ok := e.fills.get(fillID)
	if !ok {
		return nil, fmt.Errorf("%w: fill %s", htlc.ErrNotFound, fillID)
	}
	if fill.State != htlc.StateOpen {
		return nil, fmt.Errorf("%w: fill %s is %s", htlc.ErrAlreadyFinalized, fillID, fill.State)
	}
	if refunder != fill.Sender {
		return nil, fmt.Errorf("%w: only the sender may refund fill %s", htlc.ErrUnauthorized, fillID)
	}
	if !htlc.RefundOpen(e.nowFn(), fill.Deadline) {
		return nil, fmt.Errorf("%w: fill %s", htlc.ErrNotYetExpired, fillID)
	}

	order, ok := e.orders.get(fill.ParentID)
	if !ok {
		return nil, fmt.Errorf("order %s for fill %s is missing", fill.ParentID, fillID)
	}
	filled, err := order.FilledAmount.Sub(fill.FillAmount)
	if err != nil {
		return nil, fmt.Errorf("order %s bookkeeping: %w", order.ID, err)
	}
	remaining, err := order.RemainingAmount.Add(fill.FillAmount)
	if err != nil {
		return nil, fmt.Errorf("order %s bookkeeping: %w", order.ID, err)
	}

	updatedOrder := order
	updatedOrder.FilledAmount = filled
	updatedOrder.RemainingAmount = remaining
	updatedOrder.Completed = false

	updatedFill := fill.Clone()
	updatedFill.State = htlc.StateRefunded

	cs := &Changeset{Orders: []htlc.Order{updatedOrder}, Fills: []htlc.Fill{updatedFill}}
	cs.emit(events.SwapRefunded{
		ID:       fillID,
		Subject:  events.SubjectFill,
		Refunder: refunder,
		Amount:   fill.FillAmount,
	}, e)
	if err := e.commit(ctx, cs); err != nil {
		return nil, err
	}

	p := newPayout(fillID, PayoutFillRefund, fill.Sender, fill.FillAmount)
	e.dispatch(p, false)
	return p, nil
}

func (e *Engine) GetOrder(id string) (htlc.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	order, ok := e.orders.get(id)
	if !ok {
		return htlc.Order{}, fmt.Errorf("%w: order %s", htlc.ErrNotFound, id)
	}
	return order, nil
}

func (e *Engine) GetFill(id string) (htlc.Fill, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	fill, ok := e.fills.get(id)
	if !ok {
		return htlc.Fill{}, fmt.Errorf("%w: fill %s", htlc.ErrNotFound, id)
	}
	return fill.Clone(), nil
}

// FillStatus returns the fill with its derived fields.
func (e *Engine) FillStatus(id string) (htlc.FillStatus, error) {
	fill, err := e.GetFill(id)
	if err != nil {
		return htlc.FillStatus{}, err
	}
	return htlc.NewFillStatus(fill, e.nowFn()), nil
}

// Progress summarizes how much of an order has been filled.
func (e *Engine) Progress(orderID string) (htlc.OrderProgress, error) {
	order, err := e.GetOrder(orderID)
	if err != nil {
		return htlc.OrderProgress{}, err
	}
	return htlc.NewOrderProgress(order, e.nowFn()), nil
}

// ListFills returns every fill of the order in creation order.
func (e *Engine) ListFills(orderID string) ([]htlc.Fill, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.orders.has(orderID) {
		return nil, fmt.Errorf("%w: order %s", htlc.ErrNotFound, orderID)
	}
	out := make([]htlc.Fill, 0)
	e.fills.each(func(f htlc.Fill) bool {
		if f.ParentID == orderID {
			out = append(out, f.Clone())
		}
		return true
	})
	return out, nil
}

// ListOrdersByAccount pages through orders where account is sender or receiver.
func (e *Engine) ListOrdersByAccount(account string, offset, limit int) []htlc.Order {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.orders.page(offset, limit, func(o htlc.Order) bool {
		return o.Sender == account || o.Receiver == account
	})
}

// ListOrders pages through every order in creation order.
func (e *Engine) ListOrders(offset, limit int) []htlc.Order {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.orders.page(offset, limit, nil)
}

// ListAllFills pages through every fill in creation order.
func (e *Engine) ListAllFills(offset, limit int) []htlc.Fill {
	e.mu.Lock()
	defer e.mu.Unlock()

	rows := e.fills.page(offset, limit, nil)
	for i := range rows {
		rows[i] = rows[i].Clone()
	}
	return rows
}

// ListFillsByAccount pages through fills where account is sender or receiver.
func (e *Engine) ListFillsByAccount(account string, offset, limit int) []htlc.Fill {
	e.mu.Lock()
	defer e.mu.Unlock()

	rows := e.fills.page(offset, limit, func(f htlc.Fill) bool {
		return f.Sender == account || f.Receiver == account
	})
	for i := range rows {
		rows[i] = rows[i].Clone()
	}
	return rows
}
