// Package symbol describes the two-symbol alphabet of the input stream.
//
// The two symbols must differ in exactly one bit. Every byte is classified by
// that bit alone, so bytes outside the alphabet are silently treated as whichever
// symbol they share the bit with.
package symbol

import (
	"fmt"
	"math/bits"

	"github.com/teacats/aoc2015/shared"
)

// lowBits has the lowest bit of every byte of a word set.
const lowBits = 0x0101010101010101

type Alphabet struct {
	Up   byte
	Down byte
}

var DefaultAlphabet = Alphabet{Up: '(', Down: ')'}

func (a Alphabet) Validate() error {
	if a.Up == a.Down {
		return fmt.Errorf("%w: `up` and `down` are both %q", shared.ErrInvalidAlphabet, a.Up)
	}
	if !shared.IsPowerOfTwo(uint64(a.Up ^ a.Down)) {
		return fmt.Errorf("%w: %q and %q must differ in exactly one bit", shared.ErrInvalidAlphabet, a.Up, a.Down)
	}
	return nil
}

// Bit returns the index of the bit distinguishing the two symbols.
func (a Alphabet) Bit() uint {
	return uint(bits.TrailingZeros8(a.Up ^ a.Down))
}

// Mask returns a word mask selecting the distinguishing bit in every byte.
func (a Alphabet) Mask() uint64 {
	return lowBits << a.Bit()
}

func (a Alphabet) IsDown(b byte) bool {
	bit := a.Up ^ a.Down
	return b&bit == a.Down&bit
}

// Displacement returns +1 for an up symbol and -1 for a down symbol.
func (a Alphabet) Displacement(b byte) int {
	if a.IsDown(b) {
		return -1
	}
	return 1
}

// Inverted reports whether the down symbol has the distinguishing bit cleared.
// Word-level counting counts set bits, so an inverted alphabet counts ups instead.
func (a Alphabet) Inverted() bool {
	return a.Down&(a.Up^a.Down) == 0
}
