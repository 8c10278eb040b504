package shared

import "math"

const (
	// WordSize is the number of bytes folded together by the floor counter.
	WordSize = 8

	// DefaultCapacity is the size of the single chunk read from the input (1024 words).
	DefaultCapacity = 1 << 13

	// MaxCapacity bounds the chunk size so that the read buffer can always be allocated.
	MaxCapacity = math.MaxInt32 &^ (WordSize - 1)

	// DefaultInputPath is the input file read when no path is configured.
	DefaultInputPath = "nya"

	// NeverReachedMessage is printed when the input never goes below floor 0.
	NeverReachedMessage = "Basement never reached"
)
