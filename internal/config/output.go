package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// MaxLineLength is the maximum line length for the move list
	MaxLineLength uint

	// ShowLegalMoves lists the legal moves of the final position
	ShowLegalMoves bool

	// ShowPositions lists the repetition table
	ShowPositions bool

	// ShowAnalysis adds the replay statistics of each game
	ShowAnalysis bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength:  80,
		ShowLegalMoves: true,
	}
}
