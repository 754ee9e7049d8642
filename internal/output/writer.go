package output

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// Writer is the interface for writing games and perft reports to output.
// Different implementations handle different output formats (text, JSON).
type Writer interface {
	// WriteGame writes a single game to the output.
	WriteGame(rec *Record) error

	// WritePerft writes a perft report to the output.
	WritePerft(rep *PerftReport) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by the configuration.
func NewWriter(w io.Writer, cfg *config.Config) Writer {
	if cfg.Output.JSONFormat {
		return NewJSONWriterSingle(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes games and reports as plain text.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes a game as text.
func (tw *TextWriter) WriteGame(rec *Record) error {
	OutputGame(rec, tw.cfg, tw.w)
	return nil
}

// WritePerft writes a perft report as text.
func (tw *TextWriter) WritePerft(rep *PerftReport) error {
	OutputPerft(rep, tw.w)
	return nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes games and reports in JSON format.
// It buffers them and writes a single object on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	out    JSONOutput
	single bool // If true, write each item immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches output and writes it on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:   w,
		cfg: cfg,
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each item immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(rec *Record) error {
	jg := GameToJSON(rec, jw.cfg.Output)
	if jw.single {
		return encodeJSON(jw.w, jg)
	}
	jw.out.Games = append(jw.out.Games, jg)
	return nil
}

// WritePerft buffers a perft report (or writes immediately in single mode).
func (jw *JSONWriter) WritePerft(rep *PerftReport) error {
	jp := PerftToJSON(rep)
	if jw.single {
		return encodeJSON(jw.w, jp)
	}
	jw.out.Perft = append(jw.out.Perft, jp)
	return nil
}

// Flush writes everything buffered as one JSON object.
func (jw *JSONWriter) Flush() error {
	if jw.single || (len(jw.out.Games) == 0 && len(jw.out.Perft) == 0) {
		return nil
	}

	err := encodeJSON(jw.w, &jw.out)

	// Clear buffer after writing
	jw.out = JSONOutput{}

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
