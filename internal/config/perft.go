package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxPerftDepth bounds the search so a typo cannot run for hours.
const MaxPerftDepth = 8

// PerftConfig holds settings for move path enumeration.
type PerftConfig struct {
	// Depth in plies. Zero disables perft and plays moves instead.
	Depth int

	// Divide reports the node count below each root move.
	Divide bool

	// Workers is the number of goroutines sharing the root moves. One runs
	// the count sequentially.
	Workers int

	// HashEntries bounds the table of node counts for repeated positions.
	// Zero runs without a table.
	HashEntries int
}

// NewPerftConfig creates a PerftConfig with default values.
// Perft is disabled by default.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{Workers: 1}
}

// Enabled returns true if a perft run was requested.
func (p *PerftConfig) Enabled() bool {
	return p.Depth > 0
}

// Cached returns true if repeated positions should be looked up in a table.
func (p *PerftConfig) Cached() bool {
	return p.HashEntries > 0
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d out of range 0-%d: %w",
			p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w",
			p.Workers, errors.ErrInvalidConfig)
	}
	if p.HashEntries < 0 {
		return fmt.Errorf("hash entries (%d) must not be negative: %w",
			p.HashEntries, errors.ErrInvalidConfig)
	}
	return nil
}
