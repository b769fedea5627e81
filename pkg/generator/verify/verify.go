// Package verify re-derives search results through a second, independent
// secp256k1/Keccak implementation so a reported key can be audited.
package verify

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/Amr-9/ZeroHunter/pkg/generator"
	"github.com/Amr-9/ZeroHunter/pkg/generator/ethereum"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"
)

var ErrMismatch = errors.New("verification mismatch")

// IndependentAddress derives the address of key with btcec and the legacy
// Keccak-256 from x/crypto instead of go-ethereum.
func IndependentAddress(key ethereum.PrivateKey) (common.Address, error) {
	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(key[:]); overflow || scalar.IsZero() {
		return common.Address{}, fmt.Errorf("%w: scalar out of range", ethereum.ErrInvalidKey)
	}

	_, pub := btcec.PrivKeyFromBytes(key[:])
	uncompressed := pub.SerializeUncompressed()

	h := sha3.NewLegacyKeccak256()
	h.Write(uncompressed[1:])
	sum := h.Sum(nil)

	return common.BytesToAddress(sum[12:]), nil
}

// Iteration re-derives the candidate at (seed, iteration) with both
// backends and returns it once they agree.
func Iteration(seed string, iteration *uint256.Int) (ethereum.Candidate, error) {
	c, err := ethereum.DeriveCandidate([]byte(seed), iteration)
	if err != nil {
		return c, err
	}

	independent, err := IndependentAddress(c.PrivateKey)
	if err != nil {
		return c, err
	}
	if independent != c.Address {
		return c, fmt.Errorf("%w: go-ethereum derived %s, btcec derived %s", ErrMismatch, c.Address.Hex(), independent.Hex())
	}
	return c, nil
}

// Result checks that res is reproducible from its seed and iteration and
// that its address meets threshold.
func Result(res *generator.Result, threshold int) error {
	c, err := Iteration(res.Seed, &res.Iteration)
	if err != nil {
		return err
	}

	if c.PrivateKey != res.PrivateKey {
		return fmt.Errorf("%w: private key %s, re-derived %s", ErrMismatch, res.PrivateKey.Hex(), c.PrivateKey.Hex())
	}
	if c.Address != res.Address {
		return fmt.Errorf("%w: address %s, re-derived %s", ErrMismatch, res.Address.Hex(), c.Address.Hex())
	}
	if c.Score != res.Score {
		return fmt.Errorf("%w: score %d, re-derived %d", ErrMismatch, res.Score, c.Score)
	}
	if c.Score < threshold {
		return fmt.Errorf("%w: score %d below threshold %d", ErrMismatch, c.Score, threshold)
	}
	return nil
}

// VectorResult holds the outcome of one known-answer check.
type VectorResult struct {
	TestName           string
	PrivateKey         string
	Expected           string
	PrimaryAddress     string
	IndependentAddress string
	Match              bool
	ErrorMessage       string
}

type vector struct {
	name string
	key  string
	addr string
}

var vectors = []vector{
	{"Private key 1", "0000000000000000000000000000000000000000000000000000000000000001", "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf"},
	{"Seed xyz, iteration 43", "d2ca6d6185987e8620b52b0115d00292c700c2f2130b0014312bccc0aaf7bb07", "0xdb78e0eacddda2c5aa58a50b5d915f5a4c7e3e30"},
	{"Seed xyz, iteration 670", "79209b6f7c1f7325f7033b03b3ed221cae92a55f7a8110290cd287799dccc161", "0x00eadbef4879608fa2f4c1e3bd6a93360c1e619a"},
	{"Largest scalar (N-1)", "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140", ""},
}

// Vectors runs the built-in known-answer tests against both backends.
// A vector without an expected address only checks that the backends agree.
func Vectors() (bool, []VectorResult) {
	passed := true
	results := make([]VectorResult, 0, len(vectors))

	for _, v := range vectors {
		r := runVector(v)
		if !r.Match {
			passed = false
		}
		results = append(results, r)
	}
	return passed, results
}

func runVector(v vector) VectorResult {
	r := VectorResult{TestName: v.name, PrivateKey: v.key, Expected: v.addr}

	raw, err := hex.DecodeString(v.key)
	if err != nil || len(raw) != ethereum.KeyLength {
		r.ErrorMessage = "malformed test key"
		return r
	}
	var key ethereum.PrivateKey
	copy(key[:], raw)

	primary, err := ethereum.DeriveAddress(key)
	if err != nil {
		r.ErrorMessage = err.Error()
		return r
	}
	independent, err := IndependentAddress(key)
	if err != nil {
		r.ErrorMessage = err.Error()
		return r
	}

	r.PrimaryAddress = primary.Hex()
	r.IndependentAddress = independent.Hex()
	r.Match = primary == independent
	if v.addr != "" {
		r.Match = r.Match && primary == common.HexToAddress(v.addr)
	}
	return r
}
