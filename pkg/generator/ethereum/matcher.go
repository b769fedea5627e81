package ethereum

import (
	"github.com/ethereum/go-ethereum/common"
)

// LeadingZeroBytes counts the zero bytes at the front of b, stopping at the first non-zero byte.
func LeadingZeroBytes(b []byte) int {
	n := 0
	for _, v := range b {
		if v != 0 {
			break
		}
		n++
	}
	return n
}

// Score returns the vanity score of an address: its number of leading zero bytes (0-20).
func Score(addr common.Address) int {
	return LeadingZeroBytes(addr[:])
}

// Matcher checks addresses against a leading-zero-byte threshold.
type Matcher struct {
	threshold int
}

// NewMatcher creates a Matcher. A threshold of 0 matches every address.
func NewMatcher(threshold int) *Matcher {
	return &Matcher{threshold: threshold}
}

// Threshold returns the configured threshold.
func (m *Matcher) Threshold() int {
	return m.threshold
}

// Accepts reports whether an already computed score meets the threshold.
func (m *Matcher) Accepts(score int) bool {
	return score >= m.threshold
}

// Match scores addr and reports whether it meets the threshold.
func (m *Matcher) Match(addr common.Address) (int, bool) {
	score := Score(addr)
	return score, m.Accepts(score)
}
