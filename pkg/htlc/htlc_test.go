package htlc

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"testing"
	"time"
)

const maxU128 = "340282366920938463463374607431768211455"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"0", "0", false},
		{" 1000000 ", "1000000", false},
		{maxU128, maxU128, false},
		{"340282366920938463463374607431768211456", "", true},
		{"-1", "", true},
		{"1.5", "", true},
		{"", "", true},
		{"abc", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Fatalf("expected ErrInvalidAmount, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) failed: %v", tt.in, err)
			}
			if got.String() != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestAmount_Arithmetic(t *testing.T) {
	max := MustParseAmount(maxU128)

	if _, err := max.Add(NewAmount(1)); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected overflow error, got %v", err)
	}
	if _, err := NewAmount(1).Sub(NewAmount(2)); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected underflow error, got %v", err)
	}

	sum, err := NewAmount(600).Add(NewAmount(400))
	if err != nil || !sum.Equal(NewAmount(1000)) {
		t.Fatalf("expected 1000, got %s (%v)", sum, err)
	}
	diff, err := sum.Sub(NewAmount(1))
	if err != nil || diff.String() != "999" {
		t.Fatalf("expected 999, got %s (%v)", diff, err)
	}
	if NewAmount(1).Cmp(NewAmount(2)) != -1 || NewAmount(2).Cmp(NewAmount(1)) != 1 || NewAmount(3).Cmp(NewAmount(3)) != 0 {
		t.Fatal("unexpected Cmp results")
	}
	if !(Amount{}).IsZero() {
		t.Fatal("zero value must be zero")
	}
}

func TestAmount_Percent(t *testing.T) {
	tests := []struct {
		filled, total uint64
		want          uint64
	}{
		{600, 1000, 60},
		{1, 3, 33},
		{2, 3, 66},
		{1000, 1000, 100},
		{0, 1000, 0},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := NewAmount(tt.filled).Percent(NewAmount(tt.total)); got != tt.want {
			t.Errorf("Percent(%d/%d): expected %d, got %d", tt.filled, tt.total, tt.want, got)
		}
	}

	// No overflow for the largest amounts.
	max := MustParseAmount(maxU128)
	if got := max.Percent(max); got != 100 {
		t.Fatalf("expected 100 for max/max, got %d", got)
	}
}

func TestAmount_JSON(t *testing.T) {
	raw, err := json.Marshal(MustParseAmount(maxU128))
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if string(raw) != `"`+maxU128+`"` {
		t.Fatalf("expected quoted decimal, got %s", raw)
	}

	var fromString, fromNumber Amount
	if err := json.Unmarshal([]byte(`"42"`), &fromString); err != nil {
		t.Fatalf("Unmarshal(string) failed: %v", err)
	}
	if err := json.Unmarshal([]byte(`42`), &fromNumber); err != nil {
		t.Fatalf("Unmarshal(number) failed: %v", err)
	}
	if !fromString.Equal(NewAmount(42)) || !fromNumber.Equal(NewAmount(42)) {
		t.Fatalf("expected 42, got %s and %s", fromString, fromNumber)
	}

	var bad Amount
	if err := json.Unmarshal([]byte(`"-5"`), &bad); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if err := json.Unmarshal([]byte(`true`), &bad); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestAmountFromBig(t *testing.T) {
	if _, err := AmountFromBig(big.NewInt(-1)); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected error for negative, got %v", err)
	}
	tooWide := new(big.Int).Lsh(big.NewInt(1), 128)
	if _, err := AmountFromBig(tooWide); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected error for 2^128, got %v", err)
	}
	a, err := AmountFromBig(big.NewInt(12345))
	if err != nil || a.Big().Int64() != 12345 {
		t.Fatalf("expected 12345, got %s (%v)", a, err)
	}
}

func TestCommitment_MatchesExactSecretOnly(t *testing.T) {
	secret := []byte("correct horse battery staple")
	c := HashSecret(secret)

	want := sha256.Sum256(secret)
	if c.String() != hex.EncodeToString(want[:]) {
		t.Fatalf("commitment is not SHA-256 of the secret")
	}
	if !c.Matches(secret) || !VerifySecret(secret, c) {
		t.Fatal("expected secret to match")
	}
	for _, s := range [][]byte{secret[:len(secret)-1], append(append([]byte(nil), secret...), 0), nil, []byte("")} {
		if c.Matches(s) {
			t.Fatalf("unexpected match for %q", s)
		}
	}
}

func TestParseCommitment(t *testing.T) {
	c := HashSecret([]byte("s"))
	lower := c.String()

	for _, in := range []string{lower, "0x" + lower, strings.ToUpper(lower)} {
		got, err := ParseCommitment(in)
		if err != nil || got != c {
			t.Fatalf("ParseCommitment(%q) = %s, %v", in, got, err)
		}
	}

	for _, in := range []string{"", lower[:62], lower + "00", "zz" + lower[2:]} {
		if _, err := ParseCommitment(in); !errors.Is(err, ErrInvalidCommitment) {
			t.Fatalf("ParseCommitment(%q): expected ErrInvalidCommitment, got %v", in, err)
		}
	}

	if _, err := CommitmentFromBytes(make([]byte, 31)); !errors.Is(err, ErrInvalidCommitment) {
		t.Fatalf("expected ErrInvalidCommitment for 31 bytes, got %v", err)
	}

	raw, _ := json.Marshal(c)
	var decoded Commitment
	if err := json.Unmarshal(raw, &decoded); err != nil || decoded != c {
		t.Fatalf("commitment JSON did not survive: %s (%v)", raw, err)
	}
}

func TestGenerateID(t *testing.T) {
	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	a := GenerateID(at, "alice", "bob", "100")
	b := GenerateID(at, "alice", "bob", "100")
	if a != b {
		t.Fatal("same fields at the same instant must collide")
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(a))
	}
	if a == GenerateID(at.Add(time.Nanosecond), "alice", "bob", "100") {
		t.Fatal("different instants must produce different ids")
	}
	if GenerateID(at, "ab", "c") == GenerateID(at, "a", "bc") {
		t.Fatal("field boundaries must be part of the id")
	}

	if GenerateID(at, "a-b", "c") == GenerateID(at, "a", "b-c") {
		t.Fatal("dashes inside account ids must not move field boundaries")
	}
	if GenerateID(at, "a:1", "b") == GenerateID(at, "a", "1:b") {
		t.Fatal("length prefixes must not be forgeable from field content")
	}

	nanos := strconv.FormatInt(at.UnixNano(), 10)
	sum := sha256.Sum256([]byte(fmt.Sprintf("5:alice3:bob3:100%d:%s", len(nanos), nanos)))
	if a != hex.EncodeToString(sum[:]) {
		t.Fatalf("unexpected id derivation: %s", a)
	}
}

func TestValidateForeignAddress(t *testing.T) {
	valid := "0x52908400098527886E0F7030069857D2E4169EE7"
	if err := ValidateForeignAddress(valid); err != nil {
		t.Fatalf("expected valid address, got %v", err)
	}
	if err := ValidateForeignAddress("0x52908400098527886e0f7030069857d2e4169ee7"); err != nil {
		t.Fatalf("expected lower-case address to be valid, got %v", err)
	}
	for _, in := range []string{"", valid[2:], "0x1234", valid + "00", "0xZZ908400098527886E0F7030069857D2E4169EE7"} {
		if err := ValidateForeignAddress(in); !errors.Is(err, ErrInvalidForeignAddress) {
			t.Fatalf("ValidateForeignAddress(%q): expected ErrInvalidForeignAddress, got %v", in, err)
		}
	}
	if got := NormalizeForeignAddress("0x52908400098527886e0f7030069857d2e4169ee7"); got != valid {
		t.Fatalf("expected checksummed %s, got %s", valid, got)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want Kind
	}{
		{nil, KindNone},
		{fmt.Errorf("escrow x: %w", ErrNotFound), KindNotFound},
		{fmt.Errorf("wrapped: %w", ErrAmountMismatch), KindInvalidAmount},
		{ErrConcurrentClaim, KindConcurrentClaim},
		{ErrPaused, KindPaused},
		{errors.New("boom"), KindInternal},
	}
	for _, tt := range tests {
		if got := KindOf(tt.err); got != tt.want {
			t.Errorf("KindOf(%v): expected %s, got %s", tt.err, tt.want, got)
		}
	}
}

func TestStatus_DerivedFields(t *testing.T) {
	deadline := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	esc := Escrow{State: StateOpen, Deadline: deadline}

	before := NewEscrowStatus(esc, deadline.Add(-time.Second))
	if before.IsExpired || !before.Claimable || before.Refundable {
		t.Fatalf("unexpected status before deadline: %+v", before)
	}
	at := NewEscrowStatus(esc, deadline)
	if !at.IsExpired || at.Claimable || !at.Refundable {
		t.Fatalf("unexpected status at deadline: %+v", at)
	}
	esc.State = StateClaimed
	if s := NewEscrowStatus(esc, deadline); s.Refundable {
		t.Fatal("claimed escrow must not be refundable")
	}

	req := CrossChainRequest{Deadline: deadline}
	if NewRequestStatus(req, deadline).IsExpired {
		t.Fatal("request is still completable at its deadline")
	}
	if !NewRequestStatus(req, deadline.Add(time.Nanosecond)).IsExpired {
		t.Fatal("request must be expired after its deadline")
	}

	order := Order{TotalAmount: NewAmount(1000), FilledAmount: NewAmount(600), RemainingAmount: NewAmount(400), Deadline: deadline}
	p := NewOrderProgress(order, deadline.Add(-time.Second))
	if p.FillPercentage != 60 || p.IsExpired {
		t.Fatalf("unexpected progress: %+v", p)
	}
}

func TestSecret_JSON(t *testing.T) {
	raw, err := json.Marshal(Secret("hi"))
	if err != nil || string(raw) != `"6869"` {
		t.Fatalf("expected hex secret, got %s (%v)", raw, err)
	}
	var s Secret
	if err := json.Unmarshal(raw, &s); err != nil || string(s) != "hi" {
		t.Fatalf("unexpected decoded secret %q (%v)", s, err)
	}
}
