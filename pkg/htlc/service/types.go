package service

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/chainsafe/htlc-escrow/pkg/htlc"
)

// MaxTimelockSeconds bounds relative timelocks at ten years.
const MaxTimelockSeconds = 10 * 365 * 24 * 60 * 60

// Deadline is given either as an absolute time or as a timelock relative to
// the engine clock. TimelockSeconds must stay within MaxTimelockSeconds.
type Deadline struct {
	At              *time.Time `json:"deadline,omitempty" validate:"required_without=TimelockSeconds"`
	TimelockSeconds int64      `json:"timelock_seconds,omitempty" validate:"omitempty,gt=0,lte=315360000"`
}

func (d Deadline) resolve(now time.Time) time.Time {
	if d.At != nil {
		return d.At.UTC()
	}
	return now.Add(time.Duration(d.TimelockSeconds) * time.Second)
}

// CreateEscrowRequest locks Amount from the caller for Receiver.
type CreateEscrowRequest struct {
	Receiver         string `json:"receiver" validate:"required,max=255"`
	Amount           string `json:"amount" validate:"required"`
	Commitment       string `json:"commitment" validate:"required"`
	ForeignReference string `json:"foreign_reference,omitempty" validate:"max=1024"`
	Deadline
}

// SecretRequest carries a hex encoded preimage.
type SecretRequest struct {
	Secret string `json:"secret" validate:"required,max=1024"`
}

// CreateOrderRequest opens a partial-fill order from the caller to Receiver.
type CreateOrderRequest struct {
	Receiver              string `json:"receiver" validate:"required,max=255"`
	TotalAmount           string `json:"total_amount" validate:"required"`
	ForeignTokenReference string `json:"foreign_token_reference,omitempty" validate:"max=1024"`
	Deadline
}

// CreateFillRequest locks FillAmount against an order. Attached is the value
// sent with the call.
type CreateFillRequest struct {
	FillAmount string `json:"fill_amount" validate:"required"`
	Attached   string `json:"attached" validate:"required"`
	Commitment string `json:"commitment" validate:"required"`
}

type CompleteFillRequest struct {
	Secret           string `json:"secret" validate:"required,max=1024"`
	ForeignReference string `json:"foreign_reference,omitempty" validate:"max=1024"`
}

// SwapRequest registers an outbound swap to an Ethereum recipient.
type SwapRequest struct {
	ForeignRecipient      string `json:"foreign_recipient" validate:"required"`
	Amount                string `json:"amount" validate:"required"`
	ForeignTokenReference string `json:"foreign_token_reference" validate:"max=1024"`
	Commitment            string `json:"commitment" validate:"required"`
	AuxiliaryParams       string `json:"auxiliary_params,omitempty" validate:"max=4096"`
	Deadline
}

type CompleteRequestRequest struct {
	Secret    string `json:"secret" validate:"required,max=1024"`
	Recipient string `json:"recipient" validate:"required,max=255"`
}

type RefundExpiredRequest struct {
	Limit int `json:"limit" validate:"gte=0,lte=10000"`
}

type VerifySecretRequest struct {
	Secret     string `json:"secret" validate:"required,max=1024"`
	Commitment string `json:"commitment" validate:"required"`
}

type CheckSecretRequest struct {
	ID     string `json:"id" validate:"required"`
	Secret string `json:"secret" validate:"required,max=1024"`
}

type SetResolverRequest struct {
	Enabled bool `json:"enabled"`
}

// Page selects a window of a listing in insertion order.
type Page struct {
	Offset int `validate:"gte=0"`
	Limit  int `validate:"gte=0,lte=500"`
}

// PayoutResponse describes the transfer released by a claim, completion or refund.
// TransferStatus is "pending" when the ledger did not settle within the wait window.
type PayoutResponse struct {
	ID             string      `json:"id"`
	Kind           string      `json:"kind"`
	Recipient      string      `json:"recipient"`
	Amount         htlc.Amount `json:"amount"`
	TransferStatus string      `json:"transfer_status"`
	TransferError  string      `json:"transfer_error,omitempty"`
}

type BatchRefundResponse struct {
	Refunded []PayoutResponse `json:"refunded"`
}

type EscrowList struct {
	Escrows []htlc.EscrowStatus `json:"escrows"`
}

type OrderList struct {
	Orders []htlc.Order `json:"orders"`
}

type FillList struct {
	Fills []htlc.FillStatus `json:"fills"`
}

type RequestList struct {
	Requests []htlc.RequestStatus `json:"requests"`
}

type VerifyResponse struct {
	Valid bool `json:"valid"`
}

type OwnerResponse struct {
	Owner string `json:"owner"`
}

type ResolverResponse struct {
	Account    string `json:"account"`
	Authorized bool   `json:"authorized"`
}

type PauseResponse struct {
	Paused bool `json:"paused"`
}

func decodeSecret(s string) ([]byte, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: secret must be hex encoded", htlc.ErrInvalidSecret)
	}
	return raw, nil
}
