// Package config provides configuration for the chess-rules command.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Verbosity levels.
const (
	Quiet      = 0 // errors only
	Summary    = 1 // game endings
	Commentary = 2 // every move, including rejected ones
)

// Config holds all program configuration.
type Config struct {
	Verbosity int

	// StartFEN is the starting position. Empty means the standard position.
	StartFEN string

	// Side that resigns, runs out of time or agrees a draw once the moves
	// have been played. Empty means none.
	Resign  string
	Timeout string
	Draw    bool

	Output *OutputConfig
	Perft  *PerftConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Output:     NewOutputConfig(),
		Perft:      NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer the game or perft report goes to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the writer log records go to.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// LogLevel maps the verbosity to the minimum level that is logged.
func (c *Config) LogLevel() slog.Level {
	switch {
	case c.Verbosity <= Quiet:
		return slog.LevelError
	case c.Verbosity == Summary:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// Validate checks the configuration, including the starting position.
func (c *Config) Validate() error {
	if c.Verbosity < Quiet || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d out of range %d-%d: %w",
			c.Verbosity, Quiet, Commentary, errors.ErrInvalidConfig)
	}
	if c.StartFEN != "" {
		if _, err := engine.ParseFEN(c.StartFEN); err != nil {
			return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	for _, side := range []string{c.Resign, c.Timeout} {
		switch side {
		case "", "w", "b", "white", "black":
		default:
			return fmt.Errorf("unknown side %q: %w", side, errors.ErrInvalidConfig)
		}
	}
	if c.Resign != "" && c.Timeout != "" || c.Draw && (c.Resign != "" || c.Timeout != "") {
		return fmt.Errorf("only one of resign, timeout and draw may be given: %w", errors.ErrInvalidConfig)
	}
	if c.Perft != nil {
		if err := c.Perft.Validate(); err != nil {
			return err
		}
	}
	return nil
}
