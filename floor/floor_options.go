package floor

import (
	"go.uber.org/zap"

	"github.com/teacats/aoc2015/symbol"
)

type option struct {
	alphabet symbol.Alphabet
	// Leave the bytes after the last full word counted as up.
	wordAligned bool
	logger      *zap.Logger
}

func (o *option) validate() error {
	return o.alphabet.Validate()
}

type OptionFunc func(*option) error

func WithAlphabet(alphabet symbol.Alphabet) OptionFunc {
	return func(o *option) error {
		if err := alphabet.Validate(); err != nil {
			return err
		}
		o.alphabet = alphabet
		return nil
	}
}

// WithWordAlignedParity makes Count scan full words only. The bytes of a
// trailing partial word keep their initial count as up, which is what the
// word-at-a-time tool this counter replaces reported.
func WithWordAlignedParity() OptionFunc {
	return func(o *option) error {
		o.wordAligned = true
		return nil
	}
}

func WithLogger(logger *zap.Logger) OptionFunc {
	return func(o *option) error {
		o.logger = logger
		return nil
	}
}
