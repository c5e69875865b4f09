package util

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	mrand "math/rand/v2"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// NewRand returns a PCG source seeded from phrase, or from the CSPRNG when phrase is blank.
// The same phrase always yields the same sequence, so board layouts can be replayed.
func NewRand(phrase string) (*mrand.Rand, error) {
	var seed [16]byte
	if p := strings.TrimSpace(phrase); p != "" {
		sum := blake2b.Sum256([]byte(p))
		copy(seed[:], sum[:16])
	} else if _, err := io.ReadFull(rand.Reader, seed[:]); err != nil {
		return nil, err
	}
	hi := binary.BigEndian.Uint64(seed[:8])
	lo := binary.BigEndian.Uint64(seed[8:])
	return mrand.New(mrand.NewPCG(hi, lo)), nil
}
