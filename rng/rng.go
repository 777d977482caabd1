// Package rng builds the random sources used by walks and estimators.
//
// Every walk or estimator call owns its own *rand.Rand; nothing in this
// module reads the global math/rand state. Fresh draws its seed from the
// operating system so two calls never share a stream by accident; Seeded
// gives a reproducible stream for tests and replayable runs.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync/atomic"
	"time"
)

// fallback disambiguates time-based seeds taken in the same nanosecond.
var fallback atomic.Int64

// Fresh returns a generator seeded from OS entropy. If the entropy source
// fails, it falls back to the wall clock mixed with a process-wide counter.
func Fresh() *rand.Rand {
	return rand.New(rand.NewSource(freshSeed()))
}

// Seeded returns a deterministic generator for seed.
func Seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func freshSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err == nil {
		return int64(binary.LittleEndian.Uint64(b[:]))
	}
	return time.Now().UnixNano() ^ fallback.Add(0x9E3779B97F4A7C15>>1)
}
