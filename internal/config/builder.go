package config

import "io"

// ConfigBuilder assembles a Config step by step, starting from the
// defaults of NewConfig.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder returns a builder holding the default configuration.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{cfg: NewConfig()}
}

// Build returns the configuration. It is not validated.
func (b *ConfigBuilder) Build() *Config { return b.cfg }

// WithStartFEN plays games from fen instead of the standard position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithLineLength wraps move text at n characters. Zero disables wrapping.
func (b *ConfigBuilder) WithLineLength(n uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = n
	return b
}

// WithJSONOutput switches the report format to JSON.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithSections picks the optional parts of a game report.
func (b *ConfigBuilder) WithSections(legalMoves, positions, analysis bool) *ConfigBuilder {
	o := b.cfg.Output
	o.ShowLegalMoves, o.ShowPositions, o.ShowAnalysis = legalMoves, positions, analysis
	return b
}

// WithEnding ends every game after its moves: resign or timeout name a side,
// draw agrees a draw.
func (b *ConfigBuilder) WithEnding(resign, timeout string, draw bool) *ConfigBuilder {
	b.cfg.Resign, b.cfg.Timeout, b.cfg.Draw = resign, timeout, draw
	return b
}

// WithPerft counts nodes to depth instead of replaying games.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Perft.Depth, b.cfg.Perft.Divide = depth, divide
	return b
}

// WithPerftResources sets the worker count and the size of the shared
// position table, zero entries meaning no table.
func (b *ConfigBuilder) WithPerftResources(workers, hashEntries int) *ConfigBuilder {
	b.cfg.Perft.Workers, b.cfg.Perft.HashEntries = workers, hashEntries
	return b
}

// WithStreams sets where reports and log records are written.
func (b *ConfigBuilder) WithStreams(out, log io.Writer) *ConfigBuilder {
	b.cfg.OutputFile, b.cfg.LogFile = out, log
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
