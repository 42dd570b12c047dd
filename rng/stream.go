// Package rng provides the deterministic pseudo-random substrate and
// the layered random-variate streams built on top of it. The generator
// is a Wichmann-Hill-style combined multiplicative congruential
// generator with three 16-bit seeds; its exact integer sequence given
// the default seeds (1, 10000, 3000) is the module's portability
// contract and must never change.
package rng

import "sync"

// defaultSeed1, defaultSeed2, defaultSeed3 are the legacy default seed
// triple. Every Stream constructed without explicit seeds starts here.
const (
	defaultSeed1 uint32 = 1
	defaultSeed2 uint32 = 10000
	defaultSeed3 uint32 = 3000
)

var cacheMu sync.Mutex
var cacheSeed1, cacheSeed2, cacheSeed3 uint32 = defaultSeed1, defaultSeed2, defaultSeed3

// ResetCache restores the process-wide default seed cache to (1,
// 10000, 3000). Streams constructed afterward without an explicit
// seed triple will read this cache at construction time.
func ResetCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cacheSeed1, cacheSeed2, cacheSeed3 = defaultSeed1, defaultSeed2, defaultSeed3
}

func readCache() (uint32, uint32, uint32) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	return cacheSeed1, cacheSeed2, cacheSeed3
}

// DefaultSeeds returns the legacy default seed triple (1, 10000, 3000).
func DefaultSeeds() (uint16, uint16, uint16) {
	return uint16(defaultSeed1), uint16(defaultSeed2), uint16(defaultSeed3)
}

// Stream is a single independent PRNG state: three 16-bit seeds kept in
// 32-bit-or-wider fields so the combining arithmetic in Next cannot
// silently narrow across platforms, per the portability contract.
type Stream struct {
	s1, s2, s3 uint32
}

// StreamOption configures a Stream at construction.
type StreamOption func(*Stream)

// WithSeeds sets the stream's initial seed triple explicitly,
// bypassing the process-wide default cache.
func WithSeeds(s1, s2, s3 uint16) StreamOption {
	return func(s *Stream) {
		s.s1, s.s2, s.s3 = uint32(s1), uint32(s2), uint32(s3)
	}
}

// NewStream constructs a Stream. Absent an explicit WithSeeds option,
// the stream copies the current process-wide default seed cache.
func NewStream(opts ...StreamOption) *Stream {
	s1, s2, s3 := readCache()
	s := &Stream{s1: s1, s2: s2, s3: s3}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset restores the stream to the process-wide default seed cache as
// it stood at the time of the call.
func (s *Stream) Reset() {
	s.s1, s.s2, s.s3 = readCache()
}

// Seeds returns the stream's current seed triple.
func (s *Stream) Seeds() (uint16, uint16, uint16) {
	return uint16(s.s1), uint16(s.s2), uint16(s.s3)
}

// Next advances the three congruential generators and returns their
// combined fractional sum in [0, 1). The update and combine steps use
// explicit 32-bit-or-wider arithmetic so the sequence is
// bit-reproducible regardless of native int width.
func (s *Stream) Next() float64 {
	s.s1 = (171 * s.s1) % 30269
	s.s2 = (172 * s.s2) % 30307
	s.s3 = (170 * s.s3) % 30323

	sum := float64(s.s1)/30269.0 + float64(s.s2)/30307.0 + float64(s.s3)/30323.0
	return sum - float64(int64(sum))
}
