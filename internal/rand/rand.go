// Package rand generates the short random suffixes used for block
// identifiers. Uniformity matters more than throughput here: ids must stay
// collision-free across a whole page tree, so characters are drawn through
// IntN rather than a cheaper modulo-biased mapping.
package rand

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789" // reduced base64

var charsetLen = len(charset)

var defaultSource = newSource()

func newSource() *source {
	seed := make([]byte, 16)

	if _, err := cryptorand.Read(seed); err != nil {
		panic("unreachable")
	}

	return &source{
		//nolint:gosec // ids are not security material
		rng: rand.New(rand.NewPCG(
			binary.LittleEndian.Uint64(seed[:8]),
			binary.LittleEndian.Uint64(seed[8:]),
		)),
	}
}

type source struct {
	mut sync.Mutex
	rng *rand.Rand
}

func (s *source) str(length int) string {
	buf := make([]byte, length)

	s.mut.Lock()
	for i := range buf {
		buf[i] = charset[s.rng.IntN(charsetLen)]
	}
	s.mut.Unlock()

	return string(buf)
}

// String returns a random string of the given length drawn from the
// base62 charset.
func String(length int) string {
	return defaultSource.str(length)
}
