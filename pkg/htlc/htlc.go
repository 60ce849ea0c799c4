// Package htlc holds the domain model of the hashed-timelock escrow engine:
// records, token amounts, commitments, identifiers and error kinds.
package htlc

import (
	"encoding/hex"
	"encoding/json"
	"time"
)

// State is the lifecycle state of an escrow or fill.
type State string

const (
	StateOpen      State = "open"
	StateClaimed   State = "claimed"
	StateCompleted State = "completed"
	StateRefunded  State = "refunded"
)

// Final reports whether no further transition is possible.
func (s State) Final() bool {
	return s == StateClaimed || s == StateCompleted || s == StateRefunded
}

// Secret is a revealed preimage. It is rendered as hex in JSON.
type Secret []byte

func (s Secret) String() string { return hex.EncodeToString(s) }

func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Secret) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	raw, err := hex.DecodeString(str)
	if err != nil {
		return err
	}
	*s = raw
	return nil
}

// Escrow is a full-amount, single-claim swap.
type Escrow struct {
	ID               string     `json:"id"`
	Sender           string     `json:"sender"`
	Receiver         string     `json:"receiver"`
	Amount           Amount     `json:"amount"`
	Commitment       Commitment `json:"commitment"`
	Deadline         time.Time  `json:"deadline"`
	RevealedSecret   Secret     `json:"revealed_secret,omitempty"`
	State            State      `json:"state"`
	ForeignReference string     `json:"foreign_reference,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	Seq              uint64     `json:"-"`
}

// Clone returns a deep copy.
func (e Escrow) Clone() Escrow {
	e.RevealedSecret = cloneBytes(e.RevealedSecret)
	return e
}

// Order is an aggregate that is satisfied by independent fills.
type Order struct {
	ID                    string    `json:"id"`
	Sender                string    `json:"sender"`
	Receiver              string    `json:"receiver"`
	TotalAmount           Amount    `json:"total_amount"`
	FilledAmount          Amount    `json:"filled_amount"`
	RemainingAmount       Amount    `json:"remaining_amount"`
	Deadline              time.Time `json:"deadline"`
	Completed             bool      `json:"completed"`
	FillCount             uint64    `json:"fill_count"`
	ForeignTokenReference string    `json:"foreign_token_reference,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	Seq                   uint64    `json:"-"`
}

// Fill is a partial claim against an Order with its own commitment.
type Fill struct {
	ID               string     `json:"id"`
	ParentID         string     `json:"parent_id"`
	Index            uint64     `json:"index"`
	Sender           string     `json:"sender"`
	Receiver         string     `json:"receiver"`
	FillAmount       Amount     `json:"fill_amount"`
	Commitment       Commitment `json:"commitment"`
	Deadline         time.Time  `json:"deadline"`
	State            State      `json:"state"`
	RevealedSecret   Secret     `json:"revealed_secret,omitempty"`
	ForeignReference string     `json:"foreign_reference,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	Seq              uint64     `json:"-"`
}

// Clone returns a deep copy.
func (f Fill) Clone() Fill {
	f.RevealedSecret = cloneBytes(f.RevealedSecret)
	return f
}

// CrossChainRequest is a pending outbound swap awaiting a relayer.
// Its presence in the registry is its pending state.
type CrossChainRequest struct {
	ID                    string     `json:"id"`
	Initiator             string     `json:"initiator"`
	ForeignRecipient      string     `json:"foreign_recipient"`
	Amount                Amount     `json:"amount"`
	ForeignTokenReference string     `json:"foreign_token_reference"`
	Commitment            Commitment `json:"commitment"`
	Deadline              time.Time  `json:"deadline"`
	AuxiliaryParams       string     `json:"auxiliary_params,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	Seq                   uint64     `json:"-"`
}

// ClaimOpen reports whether a claim or fill completion is allowed at now.
func ClaimOpen(now, deadline time.Time) bool { return now.Before(deadline) }

// RefundOpen reports whether an escrow or fill refund is allowed at now.
func RefundOpen(now, deadline time.Time) bool { return !now.Before(deadline) }

// RequestCompletable reports whether a cross-chain request may be completed at now.
// The registry keeps the deadline itself inside the completion window.
func RequestCompletable(now, deadline time.Time) bool { return !now.After(deadline) }

// RequestRefundable reports whether a cross-chain request may be refunded at now.
func RequestRefundable(now, deadline time.Time) bool { return now.After(deadline) }

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
