package life

import (
	"errors"
	"fmt"
)

// Default block size bounds, in pixels.
const (
	DefaultMinBlock     = 2
	DefaultMaxBlock     = 16
	DefaultDefaultBlock = 16
)

var (
	// ErrInvalidBlockSize is returned for a block size that is not a positive power of two.
	ErrInvalidBlockSize = errors.New("block size must be a positive power of two")

	// ErrInvalidBlockRange is returned when min <= default <= max does not hold.
	ErrInvalidBlockRange = errors.New("block sizes must satisfy min <= default <= max")
)

// Config holds the zoom bounds of a controller. It is fixed at construction.
type Config struct {
	MinBlock     int
	MaxBlock     int
	DefaultBlock int
}

// DefaultConfig returns the default bounds: 2 to 16, starting at 16.
func DefaultConfig() Config {
	return Config{
		MinBlock:     DefaultMinBlock,
		MaxBlock:     DefaultMaxBlock,
		DefaultBlock: DefaultDefaultBlock,
	}
}

// Validate checks that all block sizes are powers of two and correctly ordered.
func (c Config) Validate() error {
	for _, b := range []struct {
		name string
		size int
	}{
		{"min_block", c.MinBlock},
		{"max_block", c.MaxBlock},
		{"default_block", c.DefaultBlock},
	} {
		if !isPowerOfTwo(b.size) {
			return fmt.Errorf("life: %s=%d: %w", b.name, b.size, ErrInvalidBlockSize)
		}
	}
	if c.MinBlock > c.DefaultBlock || c.DefaultBlock > c.MaxBlock {
		return fmt.Errorf("life: %d/%d/%d: %w", c.MinBlock, c.DefaultBlock, c.MaxBlock, ErrInvalidBlockRange)
	}
	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
