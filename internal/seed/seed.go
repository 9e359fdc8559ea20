// Package seed turns user supplied seed text into the 64-bit value that
// drives every random choice of a reading.
package seed

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// FromString hashes seed text to a 64-bit seed.
func FromString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Default returns the seed text used when none is given: the Unix time in seconds.
func Default(now time.Time) string {
	return strconv.FormatInt(now.Unix(), 10)
}

// NewRand returns a generator whose stream depends only on seed.
// PCG is a fixed algorithm, so the stream is stable across runs and platforms.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
