package ethereum

import (
	"encoding/hex"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const curveOrderHex = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"

func keyFromHex(t *testing.T, s string) PrivateKey {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	require.Len(t, b, KeyLength)
	var k PrivateKey
	copy(k[:], b)
	return k
}

func TestDeriveAddress_KeyOne(t *testing.T) {
	var key PrivateKey
	key[KeyLength-1] = 1

	addr, err := DeriveAddress(key)
	require.NoError(t, err)
	assert.Equal(t, "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf", addr.Hex())
}

func TestDeriveAddress_KnownVectors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"xyz/43", "d2ca6d6185987e8620b52b0115d00292c700c2f2130b0014312bccc0aaf7bb07", "0xdb78e0eacddda2c5aa58a50b5d915f5a4c7e3e30"},
		{"xyz/44", "04f54ecd7aa45321c09320bfd7fbcbcc2e77bd88a8af17cba03a5f8d816b21c3", "0x4fc6db4aff056876aad659a74b05d5be4e33b40e"},
		{"xyz/670", "79209b6f7c1f7325f7033b03b3ed221cae92a55f7a8110290cd287799dccc161", "0x00eadbef4879608fa2f4c1e3bd6a93360c1e619a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := DeriveAddress(keyFromHex(t, tt.key))
			require.NoError(t, err)
			assert.Equal(t, common.HexToAddress(tt.want), addr)
		})
	}
}

func TestDeriveAddress_InvalidScalars(t *testing.T) {
	order := keyFromHex(t, curveOrderHex)

	var aboveOrder PrivateKey
	for i := range aboveOrder {
		aboveOrder[i] = 0xff
	}

	tests := []struct {
		name string
		key  PrivateKey
	}{
		{"zero", PrivateKey{}},
		{"curve order", order},
		{"all ones", aboveOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveAddress(tt.key)
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestDeriveAddress_LargestScalar(t *testing.T) {
	key := keyFromHex(t, curveOrderHex)
	key[KeyLength-1]-- // N - 1

	_, err := DeriveAddress(key)
	assert.NoError(t, err)
}

func TestDeriveAddress_Deterministic(t *testing.T) {
	key, err := DeriveKey([]byte("determinism"), uint256.NewInt(7))
	require.NoError(t, err)

	a, err := DeriveAddress(key)
	require.NoError(t, err)
	b, err := DeriveAddress(key)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDeriveCandidate(t *testing.T) {
	c, err := DeriveCandidate([]byte("xyz"), uint256.NewInt(670))
	require.NoError(t, err)

	assert.Equal(t, uint64(670), c.Iteration.Uint64())
	assert.Equal(t, "79209b6f7c1f7325f7033b03b3ed221cae92a55f7a8110290cd287799dccc161", c.PrivateKey.Hex())
	assert.Equal(t, common.HexToAddress("0x00eadbef4879608fa2f4c1e3bd6a93360c1e619a"), c.Address)
	assert.Equal(t, 1, c.Score)
}

func TestDeriveCandidate_Overflow(t *testing.T) {
	it := new(uint256.Int).Lsh(uint256.NewInt(1), 128)
	_, err := DeriveCandidate([]byte("xyz"), it)
	assert.ErrorIs(t, err, ErrIterationOverflow)
}
