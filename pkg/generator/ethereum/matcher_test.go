package ethereum

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		addr common.Address
		want int
	}{
		{"two leading zeros", common.Address{0x00, 0x00, 0x3a, 0x4f, 0x11}, 2},
		{"all zero", common.Address{}, 20},
		{"no leading zero", common.Address{0x01}, 0},
		{"stops at first non-zero", common.Address{0x00, 0x7f, 0x00, 0x00, 0x00}, 1},
		{"only last byte set", common.Address{19: 0x01}, 19},
		{"key one address", common.HexToAddress("0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.addr))
			assert.Equal(t, tt.want, Score(tt.addr), "score must be deterministic")
		})
	}
}

func TestLeadingZeroBytes(t *testing.T) {
	assert.Equal(t, 0, LeadingZeroBytes(nil))
	assert.Equal(t, 3, LeadingZeroBytes([]byte{0, 0, 0}))
	assert.Equal(t, 1, LeadingZeroBytes([]byte{0, 9, 0}))
}

func TestMatcher(t *testing.T) {
	addr := common.Address{0x00, 0x00, 0x3a}

	tests := []struct {
		threshold int
		want      bool
	}{
		{0, true},
		{1, true},
		{2, true},
		{3, false},
		{20, false},
	}

	for _, tt := range tests {
		m := NewMatcher(tt.threshold)
		score, ok := m.Match(addr)
		assert.Equal(t, 2, score)
		assert.Equal(t, tt.want, ok, "threshold %d", tt.threshold)
		assert.Equal(t, tt.threshold, m.Threshold())
	}

	_, ok := NewMatcher(20).Match(common.Address{})
	assert.True(t, ok)
}

func TestMatcher_AcceptsCandidateScore(t *testing.T) {
	m := NewMatcher(1)
	for _, n := range []uint64{43, 44, 670} {
		c, err := DeriveCandidate([]byte("xyz"), uint256.NewInt(n))
		require.NoError(t, err)

		score, ok := m.Match(c.Address)
		assert.Equal(t, c.Score, score, "iteration %d", n)
		assert.Equal(t, ok, m.Accepts(c.Score), "iteration %d", n)
	}

	assert.False(t, m.Accepts(0))
	assert.True(t, m.Accepts(1))
	assert.True(t, NewMatcher(0).Accepts(0))
}
