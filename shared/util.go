package shared

import (
	"time"

	"go.uber.org/zap"
)

func IsPowerOfTwo(x uint64) bool {
	return x != 0 && (x&(x-1)) == 0
}

// IsWordAligned reports whether n is a whole number of words.
func IsWordAligned(n uint64) bool {
	return n%WordSize == 0
}

// TimeTrack logs the time elapsed since start. Intended to be deferred:
//
//	defer shared.TimeTrack(logger, time.Now(), "load")
func TimeTrack(logger *zap.Logger, start time.Time, name string) {
	elapsed := time.Since(start)
	logger.Debug("phase completed",
		zap.String("phase", name),
		zap.Float64("ms", float64(elapsed.Microseconds())/1000.0),
	)
}
