package ethereum

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Candidate is one fully derived point of the search sequence.
type Candidate struct {
	Iteration  uint256.Int
	PrivateKey PrivateKey
	Address    common.Address
	Score      int
}

// Candidate derives key, address and score for one iteration.
// An error means the iteration must be skipped; it wraps ErrDerivation,
// ErrIterationOverflow or ErrInvalidKey.
func (d *KeyDeriver) Candidate(it *uint256.Int) (Candidate, error) {
	key, err := d.Derive(it)
	if err != nil {
		return Candidate{}, err
	}

	addr, err := DeriveAddress(key)
	if err != nil {
		return Candidate{}, err
	}

	return Candidate{
		Iteration:  *it,
		PrivateKey: key,
		Address:    addr,
		Score:      Score(addr),
	}, nil
}

// DeriveCandidate is the one-shot form of KeyDeriver.Candidate.
func DeriveCandidate(seed []byte, it *uint256.Int) (Candidate, error) {
	return NewKeyDeriver(seed).Candidate(it)
}
