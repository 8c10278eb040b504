// Package input reads the puzzle input as a single fixed-capacity chunk.
package input

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"go.uber.org/zap"
	"golang.org/x/exp/mmap"

	"github.com/teacats/aoc2015/shared"
)

type Source struct {
	Path     string
	Capacity uint64
	// Read through a memory mapping instead of a read(2) into a buffer.
	Mmap   bool
	Logger *zap.Logger
}

// Read returns at most s.Capacity bytes from the start of s.Path.
func (s Source) Read() ([]byte, error) {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	defer shared.TimeTrack(logger, time.Now(), "load")

	var (
		data []byte
		size int64
		err  error
	)
	if s.Mmap {
		data, size, err = Map(s.Path, s.Capacity)
	} else {
		data, size, err = Load(s.Path, s.Capacity)
	}
	if err != nil {
		return nil, err
	}

	if uint64(size) > s.Capacity {
		logger.Warn("input exceeds capacity, ignoring the rest",
			zap.String("path", s.Path),
			zap.String("size", bytefmt.ByteSize(uint64(size))),
			zap.String("capacity", bytefmt.ByteSize(s.Capacity)),
		)
	}
	logger.Debug("input loaded",
		zap.String("path", s.Path),
		zap.String("read", bytefmt.ByteSize(uint64(len(data)))),
		zap.Bool("mmap", s.Mmap),
	)
	return data, nil
}

// Load reads up to capacity bytes of the named file. It also returns the full
// size of the file.
func Load(name string, capacity uint64) ([]byte, int64, error) {
	file, err := os.OpenFile(name, os.O_RDONLY, 0)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", shared.ErrInputUnavailable, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", shared.ErrInputUnavailable, err)
	}

	limit := int64(math.MaxInt64)
	if capacity < math.MaxInt64 {
		limit = int64(capacity)
	}
	data, err := io.ReadAll(io.LimitReader(file, limit))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to read %v: %v", shared.ErrInputUnavailable, name, err)
	}

	return data, info.Size(), nil
}

// Map is like Load, but reads the file through a read-only memory mapping.
func Map(name string, capacity uint64) ([]byte, int64, error) {
	r, err := mmap.Open(name)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", shared.ErrInputUnavailable, err)
	}
	defer r.Close()

	size := int64(r.Len())
	if size == 0 {
		return []byte{}, 0, nil
	}
	buf := make([]byte, min(uint64(size), capacity))
	n, err := r.ReadAt(buf, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, 0, fmt.Errorf("%w: failed to read %v: %v", shared.ErrInputUnavailable, name, err)
	}

	return buf[:n], size, nil
}
