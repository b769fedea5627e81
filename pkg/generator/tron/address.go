package tron

import (
	"crypto/sha256"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mr-tron/base58"
)

// MainnetPrefix is the address prefix for Tron mainnet (0x41)
const MainnetPrefix = 0x41

// FromEthereum renders an Ethereum address as the Tron address of the same key.
// Both chains hash the public key the same way; Tron adds the 0x41 prefix
// and encodes with Base58Check, so every Tron address starts with 'T'.
func FromEthereum(addr common.Address) string {
	data := make([]byte, 1+common.AddressLength)
	data[0] = MainnetPrefix
	copy(data[1:], addr[:])

	return Base58CheckEncode(data)
}

// Base58CheckEncode encodes data with a 4-byte double-SHA256 checksum in Base58.
func Base58CheckEncode(data []byte) string {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])

	full := make([]byte, 0, len(data)+4)
	full = append(full, data...)
	full = append(full, second[:4]...)

	return base58.Encode(full)
}
