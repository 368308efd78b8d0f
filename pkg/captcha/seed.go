// seed.go — Deterministic bounded-integer stream derived from a seed.
// The stream is a SHA3-256 chain: the seed is hashed once to form a 32-byte
// state, 4-byte little-endian words are consumed in order, and the state is
// re-hashed whenever it runs out. Same seed, same draws, always.
package captcha

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// seedStream yields bounded pseudo-random integers from a seed buffer.
// It is owned by exactly one generation call and must not be shared.
type seedStream struct {
	state  [32]byte
	cursor int
}

// newSeedStream derives the initial state by hashing the raw seed.
func newSeedStream(seed []byte) *seedStream {
	return &seedStream{state: sha3.Sum256(seed)}
}

// next returns a value in [0, n). The cursor always sits on a 4-byte
// boundary; once all 8 words of the state are consumed the state is
// replaced by its own hash and the cursor resets. The modulo bias is
// accepted — the stream needs reproducibility, not uniformity.
func (s *seedStream) next(n uint32) uint32 {
	if n == 0 {
		panic(fmt.Sprintf("captcha: seedStream.next called with zero bucket (cursor=%d)", s.cursor))
	}
	raw := binary.LittleEndian.Uint32(s.state[s.cursor : s.cursor+4])
	s.cursor += 4
	if s.cursor >= len(s.state) {
		s.state = sha3.Sum256(s.state[:])
		s.cursor = 0
	}
	return raw % n
}

// between returns a value in [min, max), or min when the range is empty.
// An empty range consumes no draw.
func (s *seedStream) between(min, max int) int {
	if min >= max {
		return min
	}
	return min + int(s.next(uint32(max-min)))
}
