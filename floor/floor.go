// Package floor computes the final floor reached by following the whole input.
//
// The input is folded a word at a time: every byte starts out counted as up,
// and each word then takes away two per down symbol it holds. Bytes past the
// last full word are classified one by one unless WithWordAlignedParity is given.
package floor

import (
	"encoding/binary"
	"time"

	"go.uber.org/zap"

	"github.com/teacats/aoc2015/shared"
	"github.com/teacats/aoc2015/symbol"
)

type WordStat struct {
	Index int
	Word  uint64
	Downs int
}

// Count returns the number of up symbols minus the number of down symbols in data.
func Count(data []byte, opts ...OptionFunc) (int, error) {
	options := &option{
		alphabet: symbol.DefaultAlphabet,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return 0, err
		}
	}
	if err := options.validate(); err != nil {
		return 0, err
	}
	logger := options.logger
	defer shared.TimeTrack(logger, time.Now(), "floor")

	acc := len(data)
	mask := options.alphabet.Mask()
	shift := options.alphabet.Bit()
	inverted := options.alphabet.Inverted()

	numWords := len(data) / shared.WordSize
	for i := numWords - 1; i >= 0; i-- {
		acc -= downs(word(data, i), mask, shift, inverted) << 1
	}

	tail := data[numWords*shared.WordSize:]
	if len(tail) > 0 {
		if options.wordAligned {
			logger.Debug("trailing bytes counted as up", zap.Int("bytes", len(tail)))
		} else {
			for _, b := range tail {
				if options.alphabet.IsDown(b) {
					acc -= 2
				}
			}
		}
	}

	logger.Debug("floor counted",
		zap.Int("bytes", len(data)),
		zap.Int("words", numWords),
		zap.Int("floor", acc),
	)
	return acc, nil
}

// Words returns the down count of every full word of data, in input order.
func Words(data []byte, alphabet symbol.Alphabet) []WordStat {
	mask := alphabet.Mask()
	shift := alphabet.Bit()
	inverted := alphabet.Inverted()

	stats := make([]WordStat, 0, len(data)/shared.WordSize)
	for i := 0; i < len(data)/shared.WordSize; i++ {
		w := word(data, i)
		stats = append(stats, WordStat{
			Index: i,
			Word:  w,
			Downs: downs(w, mask, shift, inverted),
		})
	}
	return stats
}

func word(data []byte, i int) uint64 {
	return binary.LittleEndian.Uint64(data[i*shared.WordSize:])
}

func downs(w, mask uint64, shift uint, inverted bool) int {
	n := foldCount((w & mask) >> shift)
	if inverted {
		return shared.WordSize - n
	}
	return n
}

// foldCount counts the bytes of x whose lowest bit is set. Only the lowest
// bit of each byte may be set.
func foldCount(x uint64) int {
	x += x >> 32
	x += x >> 16
	x += x >> 8
	return int(x & 15)
}
