package htlc

import "time"

// EscrowStatus is an escrow plus fields derived at query time.
type EscrowStatus struct {
	Escrow
	IsExpired  bool `json:"is_expired"`
	Claimable  bool `json:"claimable"`
	Refundable bool `json:"refundable"`
}

func NewEscrowStatus(e Escrow, now time.Time) EscrowStatus {
	open := e.State == StateOpen
	return EscrowStatus{
		Escrow:     e,
		IsExpired:  !ClaimOpen(now, e.Deadline),
		Claimable:  open && ClaimOpen(now, e.Deadline),
		Refundable: open && RefundOpen(now, e.Deadline),
	}
}

// OrderProgress summarizes an order's aggregate bookkeeping.
type OrderProgress struct {
	OrderID        string `json:"order_id"`
	Total          Amount `json:"total"`
	Filled         Amount `json:"filled"`
	Remaining      Amount `json:"remaining"`
	FillCount      uint64 `json:"fill_count"`
	Completed      bool   `json:"completed"`
	FillPercentage uint64 `json:"fill_percentage"`
	IsExpired      bool   `json:"is_expired"`
}

func NewOrderProgress(o Order, now time.Time) OrderProgress {
	return OrderProgress{
		OrderID:        o.ID,
		Total:          o.TotalAmount,
		Filled:         o.FilledAmount,
		Remaining:      o.RemainingAmount,
		FillCount:      o.FillCount,
		Completed:      o.Completed,
		FillPercentage: o.FilledAmount.Percent(o.TotalAmount),
		IsExpired:      !ClaimOpen(now, o.Deadline),
	}
}

// FillStatus is a fill plus fields derived at query time.
type FillStatus struct {
	Fill
	IsExpired bool `json:"is_expired"`
}

func NewFillStatus(f Fill, now time.Time) FillStatus {
	return FillStatus{Fill: f, IsExpired: !ClaimOpen(now, f.Deadline)}
}

// RequestStatus is a pending cross-chain request plus fields derived at query time.
type RequestStatus struct {
	CrossChainRequest
	IsExpired bool `json:"is_expired"`
}

func NewRequestStatus(r CrossChainRequest, now time.Time) RequestStatus {
	return RequestStatus{CrossChainRequest: r, IsExpired: RequestRefundable(now, r.Deadline)}
}

// Stats counts records held by the engine.
type Stats struct {
	Escrows         int  `json:"escrows"`
	OpenEscrows     int  `json:"open_escrows"`
	Orders          int  `json:"orders"`
	OpenOrders      int  `json:"open_orders"`
	Fills           int  `json:"fills"`
	OpenFills       int  `json:"open_fills"`
	PendingRequests int  `json:"pending_requests"`
	InFlight        int  `json:"in_flight_payouts"`
	Paused          bool `json:"paused"`
}
