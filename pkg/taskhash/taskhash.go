// Package taskhash derives the content-addressed identifier shared by the
// backend and the user's wallet. Both sides must produce the same bytes for
// the same task, so the normalization and encoding here mirror the
// client-side derivation exactly.
package taskhash

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// taskArgs is the ABI tuple (string, address, uint256) the hash is computed
// over. Standard encoding, not packed, so field boundaries are unambiguous.
var taskArgs abi.Arguments

func init() {
	stringType, _ := abi.NewType("string", "", nil)
	addressType, _ := abi.NewType("address", "", nil)
	uint256Type, _ := abi.NewType("uint256", "", nil)
	taskArgs = abi.Arguments{
		{Type: stringType},
		{Type: addressType},
		{Type: uint256Type},
	}
}

// Derive computes the task hash from the title, the owner's wallet address
// and the server-issued creation timestamp (unix milliseconds). The title is
// trimmed and lowercased and the address lowercased before encoding, so
// cosmetic differences between client and server input cannot change the
// identity of the task.
func Derive(title, ownerAddress string, timestamp int64) (string, error) {
	normalizedAddress := strings.ToLower(strings.TrimSpace(ownerAddress))
	if !common.IsHexAddress(normalizedAddress) {
		return "", fmt.Errorf("invalid ethereum address: %q", ownerAddress)
	}

	normalizedTitle := strings.ToLower(strings.TrimSpace(title))

	encoded, err := taskArgs.Pack(
		normalizedTitle,
		common.HexToAddress(normalizedAddress),
		new(big.Int).SetInt64(timestamp),
	)
	if err != nil {
		return "", fmt.Errorf("failed to encode task fields: %w", err)
	}

	return crypto.Keccak256Hash(encoded).Hex(), nil
}
