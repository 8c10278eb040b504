package basement

import (
	"go.uber.org/zap"

	"github.com/teacats/aoc2015/symbol"
)

type option struct {
	alphabet symbol.Alphabet
	logger   *zap.Logger
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

func WithLogger(logger *zap.Logger) OptionFunc {
	return func(o *option) error {
		o.logger = logger
		return nil
	}
}
