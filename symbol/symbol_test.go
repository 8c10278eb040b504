package symbol_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teacats/aoc2015/shared"
	"github.com/teacats/aoc2015/symbol"
)

func TestDefaultAlphabet(t *testing.T) {
	req := require.New(t)
	a := symbol.DefaultAlphabet

	req.NoError(a.Validate())
	req.Equal(uint(0), a.Bit())
	req.Equal(uint64(0x0101010101010101), a.Mask())
	req.False(a.Inverted())

	req.True(a.IsDown(')'))
	req.False(a.IsDown('('))
	req.Equal(1, a.Displacement('('))
	req.Equal(-1, a.Displacement(')'))
}

func TestAlphabet_Validate(t *testing.T) {
	tests := []struct {
		name     string
		alphabet symbol.Alphabet
		valid    bool
	}{
		{"default", symbol.DefaultAlphabet, true},
		{"swapped", symbol.Alphabet{Up: ')', Down: '('}, true},
		{"u and d", symbol.Alphabet{Up: 'U', Down: 'u'}, true},
		{"equal", symbol.Alphabet{Up: 'x', Down: 'x'}, false},
		{"two bits apart", symbol.Alphabet{Up: '(', Down: '+'}, false},
		{"up and down arrows", symbol.Alphabet{Up: '^', Down: 'v'}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.alphabet.Validate()
			if tc.valid {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, shared.ErrInvalidAlphabet)
		})
	}
}

func TestAlphabet_HigherBit(t *testing.T) {
	req := require.New(t)
	a := symbol.Alphabet{Up: 'u', Down: 'U'}

	req.NoError(a.Validate())
	req.Equal(uint(5), a.Bit())
	req.Equal(uint64(0x2020202020202020), a.Mask())
	req.True(a.Inverted())
	req.True(a.IsDown('U'))
	req.False(a.IsDown('u'))
}
