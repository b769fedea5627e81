package ethereum

import (
	"errors"
	"fmt"
	"hash"

	"github.com/Amr-9/ZeroHunter/pkg/generator"
	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"
)

const (
	KeyLength       = generator.KeyLength
	IterationLength = 16 // big-endian width of a hash iteration
)

var (
	ErrDerivation        = errors.New("key derivation failed")
	ErrIterationOverflow = errors.New("iteration exceeds 128 bits")
)

// PrivateKey is a candidate secp256k1 private key.
type PrivateKey = generator.PrivateKey

// EncodeIteration returns the 16-byte big-endian encoding of it.
func EncodeIteration(it *uint256.Int) ([IterationLength]byte, error) {
	var out [IterationLength]byte
	if it.BitLen() > IterationLength*8 {
		return out, fmt.Errorf("%w: %s", ErrIterationOverflow, it.Dec())
	}
	full := it.Bytes32()
	copy(out[:], full[KeyLength-IterationLength:])
	return out, nil
}

// KeyDeriver hashes a fixed seed with successive iterations.
// It reuses one SHA3-256 state and is not safe for concurrent use;
// give each lane its own.
type KeyDeriver struct {
	seed   []byte
	hasher hash.Hash
	sum    []byte
}

// NewKeyDeriver creates a deriver for the given seed. The seed is copied.
func NewKeyDeriver(seed []byte) *KeyDeriver {
	return &KeyDeriver{
		seed:   append([]byte(nil), seed...),
		hasher: sha3.New256(),
		sum:    make([]byte, 0, KeyLength),
	}
}

// Derive returns SHA3-256(seed || bigEndian128(it)).
func (d *KeyDeriver) Derive(it *uint256.Int) (PrivateKey, error) {
	enc, err := EncodeIteration(it)
	if err != nil {
		return PrivateKey{}, err
	}

	d.hasher.Reset()
	d.hasher.Write(d.seed)
	d.hasher.Write(enc[:])
	d.sum = d.hasher.Sum(d.sum[:0])

	return keyFromDigest(d.sum)
}

// DeriveKey is the one-shot form of KeyDeriver.Derive.
func DeriveKey(seed []byte, it *uint256.Int) (PrivateKey, error) {
	return NewKeyDeriver(seed).Derive(it)
}

func keyFromDigest(sum []byte) (PrivateKey, error) {
	var key PrivateKey
	if len(sum) != KeyLength {
		return key, fmt.Errorf("%w: digest is %d bytes, want %d", ErrDerivation, len(sum), KeyLength)
	}
	copy(key[:], sum)
	return key, nil
}
