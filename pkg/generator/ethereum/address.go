package ethereum

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ErrInvalidKey is returned for candidates that are not valid secp256k1 scalars (zero or >= N).
var ErrInvalidKey = errors.New("invalid private key")

// DeriveAddress derives the Ethereum address of a private key.
// Address = last 20 bytes of Keccak256(X || Y), where X || Y is the
// uncompressed public key without its 0x04 prefix.
func DeriveAddress(key PrivateKey) (common.Address, error) {
	privateKey, err := crypto.ToECDSA(key[:])
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	pub := crypto.FromECDSAPub(&privateKey.PublicKey)
	hash := crypto.Keccak256(pub[1:])

	return common.BytesToAddress(hash[len(hash)-common.AddressLength:]), nil
}
