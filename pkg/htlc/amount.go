package htlc

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// amountBits is the width of a token quantity on the home ledger.
const amountBits = 128

// Amount is an unsigned 128-bit token quantity.
// The zero value is a valid zero amount.
type Amount struct {
	v uint256.Int
}

// NewAmount returns an Amount holding v.
func NewAmount(v uint64) Amount {
	var a Amount
	a.v.SetUint64(v)
	return a
}

// ParseAmount parses a base-10 integer string into an Amount.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, fmt.Errorf("%w: empty amount", ErrInvalidAmount)
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q is not a base-10 integer", ErrInvalidAmount, s)
	}
	if v.BitLen() > amountBits {
		return Amount{}, fmt.Errorf("%w: %s exceeds 128 bits", ErrInvalidAmount, s)
	}
	return Amount{v: *v}, nil
}

// MustParseAmount is ParseAmount for constants and tests.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// AmountFromBig converts b, rejecting negatives and values wider than 128 bits.
func AmountFromBig(b *big.Int) (Amount, error) {
	if b == nil || b.Sign() < 0 || b.BitLen() > amountBits {
		return Amount{}, fmt.Errorf("%w: out of range", ErrInvalidAmount)
	}
	var a Amount
	a.v.SetFromBig(b)
	return a, nil
}

func (a Amount) IsZero() bool { return a.v.IsZero() }

// Cmp compares a and b and returns -1, 0 or +1.
func (a Amount) Cmp(b Amount) int { return a.v.Cmp(&b.v) }

func (a Amount) Equal(b Amount) bool { return a.v.Eq(&b.v) }

// Add returns a+b or an error when the sum does not fit in 128 bits.
func (a Amount) Add(b Amount) (Amount, error) {
	var out Amount
	out.v.Add(&a.v, &b.v)
	if out.v.BitLen() > amountBits {
		return Amount{}, fmt.Errorf("%w: %s + %s overflows", ErrInvalidAmount, a, b)
	}
	return out, nil
}

// Sub returns a-b or an error when b > a.
func (a Amount) Sub(b Amount) (Amount, error) {
	var out Amount
	if _, underflow := out.v.SubOverflow(&a.v, &b.v); underflow {
		return Amount{}, fmt.Errorf("%w: %s - %s underflows", ErrInvalidAmount, a, b)
	}
	return out, nil
}

// Percent returns floor(a*100/total), or 0 when total is zero.
func (a Amount) Percent(total Amount) uint64 {
	if total.v.IsZero() {
		return 0
	}
	var n uint256.Int
	n.Mul(&a.v, uint256.NewInt(100))
	n.Div(&n, &total.v)
	return n.Uint64()
}

// Big returns a copy of the amount as a big.Int.
func (a Amount) Big() *big.Int { return a.v.ToBig() }

// String returns the base-10 representation.
func (a Amount) String() string { return a.v.Dec() }

// MarshalJSON encodes the amount as a decimal string so that values above
// 2^53 survive JavaScript clients.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts a decimal string or a bare JSON integer.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("%w: expected decimal string", ErrInvalidAmount)
		}
		s = n.String()
	}
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
