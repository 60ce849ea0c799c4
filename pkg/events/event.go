// Package events defines the append-only notifications produced by the escrow
// engine and the emitters that deliver them to relayers and operators.
package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/chainsafe/htlc-escrow/pkg/htlc"
)

const (
	TypeSwapInitiated    = "swap.initiated"
	TypeSwapClaimed      = "swap.claimed"
	TypeSwapRefunded     = "swap.refunded"
	TypeEthSwapRequested = "swap.eth_requested"
	TypeResolverUpdated  = "admin.resolver_updated"
	TypeEnginePaused     = "admin.paused"
	TypeEngineUnpaused   = "admin.unpaused"
)

// Subject kinds carried by swap events.
const (
	SubjectEscrow  = "escrow"
	SubjectOrder   = "order"
	SubjectFill    = "fill"
	SubjectRequest = "request"
)

// Event represents a structured state change emitted by the engine.
type Event interface {
	EventType() string
	// SubjectID is the identifier of the record the event is about.
	SubjectID() string
}

// Emitter delivers events to downstream subscribers. Implementations must not block.
type Emitter interface {
	Emit(Envelope)
}

// SwapInitiated is emitted when an escrow, order or fill is created.
type SwapInitiated struct {
	ID               string      `json:"id"`
	Subject          string      `json:"subject"`
	ParentID         string      `json:"parent_id,omitempty"`
	Sender           string      `json:"sender"`
	Receiver         string      `json:"receiver"`
	Amount           htlc.Amount `json:"amount"`
	Commitment       string      `json:"commitment,omitempty"`
	Deadline         time.Time   `json:"deadline"`
	ForeignReference string      `json:"foreign_reference,omitempty"`
}

func (SwapInitiated) EventType() string   { return TypeSwapInitiated }
func (e SwapInitiated) SubjectID() string { return e.ID }

// SwapClaimed is emitted when a secret unlocks an escrow, fill or request.
// Remaining and Completed describe the parent order after a fill completion.
type SwapClaimed struct {
	ID        string       `json:"id"`
	Subject   string       `json:"subject"`
	Claimer   string       `json:"claimer"`
	Secret    htlc.Secret  `json:"secret"`
	Amount    htlc.Amount  `json:"amount"`
	Remaining *htlc.Amount `json:"remaining,omitempty"`
	Completed *bool        `json:"completed,omitempty"`
}

func (SwapClaimed) EventType() string   { return TypeSwapClaimed }
func (e SwapClaimed) SubjectID() string { return e.ID }

// SwapRefunded is emitted when locked value returns to its sender.
type SwapRefunded struct {
	ID       string      `json:"id"`
	Subject  string      `json:"subject"`
	Refunder string      `json:"refunder"`
	Amount   htlc.Amount `json:"amount"`
}

func (SwapRefunded) EventType() string   { return TypeSwapRefunded }
func (e SwapRefunded) SubjectID() string { return e.ID }

// EthSwapRequested carries what a relayer needs to open the matching order on Ethereum.
type EthSwapRequested struct {
	ID                    string      `json:"id"`
	Initiator             string      `json:"initiator"`
	ForeignRecipient      string      `json:"foreign_recipient"`
	Amount                htlc.Amount `json:"amount"`
	Commitment            string      `json:"commitment"`
	Deadline              time.Time   `json:"deadline"`
	ForeignTokenReference string      `json:"foreign_token_reference"`
	AuxiliaryParams       string      `json:"auxiliary_params,omitempty"`
}

func (EthSwapRequested) EventType() string   { return TypeEthSwapRequested }
func (e EthSwapRequested) SubjectID() string { return e.ID }

// ResolverUpdated records a change to the authorized resolver set.
type ResolverUpdated struct {
	Account string `json:"account"`
	Enabled bool   `json:"enabled"`
	By      string `json:"by"`
}

func (ResolverUpdated) EventType() string   { return TypeResolverUpdated }
func (e ResolverUpdated) SubjectID() string { return e.Account }

// PauseChanged records the owner toggling the emergency pause.
type PauseChanged struct {
	Paused bool   `json:"paused"`
	By     string `json:"by"`
}

func (e PauseChanged) EventType() string {
	if e.Paused {
		return TypeEnginePaused
	}
	return TypeEngineUnpaused
}

func (e PauseChanged) SubjectID() string { return e.By }

// Envelope wraps an event with delivery metadata.
type Envelope struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	SubjectID string    `json:"subject_id"`
	EmittedAt time.Time `json:"emitted_at"`
	Payload   Event     `json:"payload"`
}

// NewEnvelope stamps ev with a fresh id.
func NewEnvelope(ev Event, at time.Time) Envelope {
	return Envelope{
		ID:        uuid.New(),
		Type:      ev.EventType(),
		SubjectID: ev.SubjectID(),
		EmittedAt: at.UTC(),
		Payload:   ev,
	}
}

// Record is an envelope as read back from an event log, with its position.
type Record struct {
	Sequence  int64           `json:"sequence"`
	ID        uuid.UUID       `json:"id"`
	Type      string          `json:"type"`
	SubjectID string          `json:"subject_id"`
	EmittedAt time.Time       `json:"emitted_at"`
	Payload   json.RawMessage `json:"payload"`
}

// ToRecord serializes env at position seq.
func ToRecord(env Envelope, seq int64) (Record, error) {
	payload, err := json.Marshal(env.Payload)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Sequence:  seq,
		ID:        env.ID,
		Type:      env.Type,
		SubjectID: env.SubjectID,
		EmittedAt: env.EmittedAt,
		Payload:   payload,
	}, nil
}
