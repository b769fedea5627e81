// Package generator defines the contract for leading-zero vanity address search.
// A search walks a deterministic sequence of candidate keys derived from an
// entropy seed and a 128-bit counter, so any result it reports can be
// reproduced later from (seed, iteration) alone.
package generator

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// MaxThreshold is the largest meaningful threshold: every byte of a 20-byte address is zero.
const MaxThreshold = common.AddressLength

var (
	ErrInvalidThreshold     = errors.New("threshold out of range")
	ErrInvalidLanes         = errors.New("lane count must be positive")
	ErrInvalidBaseIteration = errors.New("base iteration exceeds 128 bits")

	// ErrNoResult is returned when every lane stopped without a qualifying candidate.
	ErrNoResult = errors.New("no valid key found")
)

// Config holds the configuration for a vanity search.
type Config struct {
	Seed          string      // Entropy seed, hashed as raw bytes
	Threshold     int         // Minimum number of leading zero bytes (0-20)
	Lanes         int         // Number of parallel search lanes
	BaseIteration uint256.Int // Counter value each lane starts from (exclusive)

	// Stride offsets lane i's start by i*Stride. Zero means every lane walks
	// the same sequence, which makes the reported iteration independent of
	// the lane count.
	Stride uint64
}

// DefaultConfig returns the configuration the tool ships with.
func DefaultConfig() *Config {
	return &Config{
		Seed:          "xyz",
		Threshold:     1,
		Lanes:         8,
		BaseIteration: *uint256.NewInt(42),
	}
}

// Validate reports the first configuration problem, if any.
func (c *Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > MaxThreshold {
		return fmt.Errorf("%w: %d (want 0-%d)", ErrInvalidThreshold, c.Threshold, MaxThreshold)
	}
	if c.Lanes <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLanes, c.Lanes)
	}
	if c.BaseIteration.BitLen() > 128 {
		return fmt.Errorf("%w: %s", ErrInvalidBaseIteration, c.BaseIteration.Dec())
	}
	return nil
}

// Result contains a qualifying address together with everything needed to re-derive it.
type Result struct {
	Address    common.Address // Ethereum address
	PrivateKey PrivateKey     // Raw secp256k1 scalar
	Seed       string         // Entropy seed the key was derived from
	Iteration  uint256.Int    // Counter value the key was derived from
	Score      int            // Leading zero bytes in Address
	Lane       int            // Lane that reported the result
}

// KeyLength is the size of a secp256k1 private key.
const KeyLength = 32

// PrivateKey is a raw secp256k1 scalar.
type PrivateKey [KeyLength]byte

// Hex returns the key as 64 lowercase hex characters.
func (k PrivateKey) Hex() string {
	return hex.EncodeToString(k[:])
}

// Stats holds real-time performance statistics.
type Stats struct {
	Attempts    uint64  // Candidates derived and scored
	Skipped     uint64  // Iterations dropped because derivation failed
	HashRate    float64 // Candidates per second
	ElapsedSecs float64 // Time elapsed since start
}

// Generator defines the contract for search backends.
type Generator interface {
	// Start begins the search with the given configuration.
	// The returned channel receives at most one result and is closed once
	// every lane has stopped. The search can be cancelled via the context.
	Start(ctx context.Context, config *Config) (<-chan Result, error)

	// Stats returns the current performance statistics.
	// This method is safe to call concurrently from any goroutine.
	Stats() Stats

	// Name returns the implementation name.
	Name() string
}
