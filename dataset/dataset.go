// Package dataset generates the pseudo-random input arrays for the kernel.
package dataset

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// DefaultSize is the number of elements generated when no size is given.
const DefaultSize = 32768

// Generate returns size values drawn uniformly from [0, 255] using a source
// seeded with seed. The same size and seed always produce the same values.
func Generate(size int, seed int64) []int32 {
	rng := rand.New(rand.NewSource(seed))
	data := make([]int32, size)
	for i := range data {
		data[i] = int32(rng.Intn(256))
	}
	return data
}

// NewSeed draws a fresh seed from the operating system's random source.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("failed to generate seed: %w", err)
	}
	// Non-negative, so it can be passed back in through --seed as printed.
	return int64(binary.LittleEndian.Uint64(b[:]) >> 1), nil
}
