package shared

import (
	"errors"
	"fmt"
)

var (
	ErrInputUnavailable     = errors.New("input unavailable")
	ErrBasementNeverReached = errors.New("basement never reached")
	ErrInvalidAlphabet      = errors.New("invalid alphabet")
)

type CapacityError struct {
	Param  string
	Value  string
	Reason string
}

func (err CapacityError) Error() string {
	return fmt.Sprintf("`%v` invalid capacity; given: %v, %v", err.Param, err.Value, err.Reason)
}
