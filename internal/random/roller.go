// Package random provides the OS-entropy-backed die roller.
//
// Entropy is read from crypto/rand exactly once, at construction, to seed a
// pseudo-random source. Seed acquisition is the only operation that can
// fail; rolling never does.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed draws a high-entropy seed from the operating system.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Roller produces uniform die values from a seeded pseudo-random source.
// A Roller is stateful: successive Roll calls advance the source, so
// repeated simulations of the same spec yield independent outcomes.
type Roller struct {
	rng *rand.Rand
}

// NewRoller acquires an OS seed and returns a roller backed by it. The
// returned error is the program's fatal-startup case: no entropy, no rolls.
func NewRoller() (*Roller, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewRollerFromSeed(seed), nil
}

// NewRollerFromSeed returns a roller with a fixed seed. Given the same seed,
// a roller produces the same sequence of values for the same sequence of
// Roll calls.
func NewRollerFromSeed(seed int64) *Roller {
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns a uniform value in [1, sides]. A zero-sided die has no
// faces; Roll reports 0 for it instead of panicking.
func (r *Roller) Roll(sides uint) uint {
	if sides == 0 {
		return 0
	}
	return uint(r.rng.Intn(int(sides))) + 1
}
