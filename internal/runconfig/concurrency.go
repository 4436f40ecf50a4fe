package runconfig

import (
	"errors"
	"fmt"
	"math"
)

// ErrZeroConcurrency is returned when a concurrency of 0 is requested.
var ErrZeroConcurrency = errors.New("concurrency must be at least 1")

// ConcurrencyLevel is the maximum number of block fetches the coordinator keeps in flight.
// It stores n-1, so the zero value is a concurrency of 1 and 0 cannot be represented.
type ConcurrencyLevel struct {
	minusOne uint16
}

// NewConcurrencyLevel creates a ConcurrencyLevel of n. It rejects 0.
func NewConcurrencyLevel(n uint16) (ConcurrencyLevel, error) {
	if n == 0 {
		return ConcurrencyLevel{}, ErrZeroConcurrency
	}
	return ConcurrencyLevel{minusOne: n - 1}, nil
}

// MaxConcurrencyLevel returns the largest representable level.
func MaxConcurrencyLevel() ConcurrencyLevel {
	return ConcurrencyLevel{minusOne: math.MaxUint16 - 1}
}

// Value returns the concurrency as an int, always >= 1.
func (c ConcurrencyLevel) Value() int {
	return int(c.minusOne) + 1
}

// Sequential reports whether blocks are fetched one at a time.
func (c ConcurrencyLevel) Sequential() bool {
	return c.minusOne == 0
}

func (c ConcurrencyLevel) String() string {
	return fmt.Sprintf("%d", c.Value())
}

// MarshalText renders the level as its decimal value.
func (c ConcurrencyLevel) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
