package htlc

import (
	"errors"
	"fmt"
)

// Error kinds returned by engine operations. Every failure leaves engine state unchanged.
var (
	ErrNotFound              = errors.New("not found")
	ErrAlreadyFinalized      = errors.New("already finalized")
	ErrExpired               = errors.New("deadline passed")
	ErrNotYetExpired         = errors.New("deadline not reached")
	ErrInvalidSecret         = errors.New("secret does not match commitment")
	ErrUnauthorized          = errors.New("caller not authorized")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidCommitment     = errors.New("invalid commitment")
	ErrInvalidForeignAddress = errors.New("invalid foreign address")
	ErrConflict              = errors.New("identifier already exists")
	ErrConcurrentClaim       = errors.New("payout already in progress")
	ErrInvalidAccount        = errors.New("invalid account")
	ErrPaused                = errors.New("engine paused")

	// ErrAmountMismatch reports that the value attached to a fill differs from its amount.
	ErrAmountMismatch = fmt.Errorf("%w: attached value does not match fill amount", ErrInvalidAmount)
)

// Kind is the stable, machine-readable name of an error kind.
type Kind string

const (
	KindNone                  Kind = ""
	KindNotFound              Kind = "NotFound"
	KindAlreadyFinalized      Kind = "AlreadyFinalized"
	KindExpired               Kind = "Expired"
	KindNotYetExpired         Kind = "NotYetExpired"
	KindInvalidSecret         Kind = "InvalidSecret"
	KindUnauthorized          Kind = "Unauthorized"
	KindInvalidAmount         Kind = "InvalidAmount"
	KindInvalidCommitment     Kind = "InvalidCommitment"
	KindInvalidForeignAddress Kind = "InvalidForeignAddress"
	KindConflict              Kind = "Conflict"
	KindConcurrentClaim       Kind = "ConcurrentClaim"
	KindInvalidAccount        Kind = "InvalidAccount"
	KindPaused                Kind = "Paused"
	KindInternal              Kind = "Internal"
)

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrNotFound, KindNotFound},
	{ErrAlreadyFinalized, KindAlreadyFinalized},
	{ErrExpired, KindExpired},
	{ErrNotYetExpired, KindNotYetExpired},
	{ErrInvalidSecret, KindInvalidSecret},
	{ErrUnauthorized, KindUnauthorized},
	{ErrInvalidAmount, KindInvalidAmount},
	{ErrInvalidCommitment, KindInvalidCommitment},
	{ErrInvalidForeignAddress, KindInvalidForeignAddress},
	{ErrConflict, KindConflict},
	{ErrConcurrentClaim, KindConcurrentClaim},
	{ErrInvalidAccount, KindInvalidAccount},
	{ErrPaused, KindPaused},
}

// KindOf classifies err. Errors outside the domain set map to KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}
