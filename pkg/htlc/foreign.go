package htlc

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const (
	foreignAddressPrefix = "0x"
	foreignAddressLength = 2 + 2*common.AddressLength
)

// ValidateForeignAddress checks that addr is an Ethereum account address:
// a 0x prefix followed by 40 hex characters. Checksum casing is not enforced.
func ValidateForeignAddress(addr string) error {
	if !strings.HasPrefix(addr, foreignAddressPrefix) {
		return fmt.Errorf("%w: missing %s prefix", ErrInvalidForeignAddress, foreignAddressPrefix)
	}
	if len(addr) != foreignAddressLength {
		return fmt.Errorf("%w: expected %d characters, got %d", ErrInvalidForeignAddress, foreignAddressLength, len(addr))
	}
	if !common.IsHexAddress(addr) {
		return fmt.Errorf("%w: not hex encoded", ErrInvalidForeignAddress)
	}
	return nil
}

// NormalizeForeignAddress returns the EIP-55 checksummed form of a valid address.
func NormalizeForeignAddress(addr string) string {
	return common.HexToAddress(addr).Hex()
}
