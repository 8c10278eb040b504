package basement

import (
	"time"

	"go.uber.org/zap"

	"github.com/teacats/aoc2015/shared"
	"github.com/teacats/aoc2015/symbol"
)

type Step struct {
	Position int
	Symbol   byte
	Floor    int
}

// Find returns the 1-based position of the first symbol that takes the floor
// below zero. Returns shared.ErrBasementNeverReached if no symbol does.
func Find(data []byte, opts ...OptionFunc) (int, error) {
	options := &option{
		alphabet: symbol.DefaultAlphabet,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return 0, err
		}
	}
	logger := options.logger
	defer shared.TimeTrack(logger, time.Now(), "basement")

	var stepsTaken, downStepsTaken int
	for stepsTaken < len(data) {
		if options.alphabet.IsDown(data[stepsTaken]) {
			downStepsTaken++
		}
		stepsTaken++
		if downStepsTaken<<1 > stepsTaken {
			logger.Debug("basement reached", zap.Int("position", stepsTaken))
			return stepsTaken, nil
		}
	}

	logger.Debug("input exhausted",
		zap.Int("steps", stepsTaken),
		zap.Int("downSteps", downStepsTaken),
	)
	return 0, shared.ErrBasementNeverReached
}

// Trace returns the floor after every step, up to and including the step that
// enters the basement.
func Trace(data []byte, alphabet symbol.Alphabet) []Step {
	steps := make([]Step, 0)
	floor := 0
	for i, b := range data {
		floor += alphabet.Displacement(b)
		steps = append(steps, Step{Position: i + 1, Symbol: b, Floor: floor})
		if floor < 0 {
			break
		}
	}
	return steps
}
