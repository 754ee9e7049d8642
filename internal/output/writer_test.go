package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/parser"
	"github.com/lgbarn/chess-rules-go/internal/processing"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func playedRecord(t *testing.T, fen, moves string) *Record {
	t.Helper()
	g := testutil.MustNewGame(t, fen)
	testutil.MustPlay(t, g, moves)
	return &Record{StartFEN: fen, Game: g}
}

// TestMoveText verifies move numbering from different starting positions
func TestMoveText(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves string
		want  string
	}{
		{"no moves", "", "", "*"},
		{"from start", "", "e2e4 e7e5 g1f3", "1. e4 e5 2. Nf3 *"},
		{"mate", "", "f2f3 e7e5 g2g4 d8h4", "1. f3 e5 2. g4 Qh4# 0-1"},
		{"black to move", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "e7e5 g1f3", "1... e5 2. Nf3 *"},
		{"late move number", "4k3/8/8/8/8/8/8/R3K3 w - - 0 40", "a1a7 e8d8", "40. Ra7 Kd8 *"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := playedRecord(t, tt.fen, tt.moves)
			testutil.AssertEqual(t, MoveText(rec), tt.want)
		})
	}
}

// TestOutputWriter_Wrap verifies lines are broken before the limit
func TestOutputWriter_Wrap(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 10)
	for _, s := range []string{"1.", "e4", "e5", "2.", "Nf3", "Nc6"} {
		ow.Write(s)
	}
	ow.NewLine()

	testutil.AssertEqual(t, buf.String(), "1. e4 e5\n2. Nf3 Nc6\n")
}

// TestOutputWriter_WriteNoSpace verifies tokens can be joined
func TestOutputWriter_WriteNoSpace(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 0)
	ow.Write("Check:")
	ow.WriteNoSpace("e8")
	ow.NewLine()

	testutil.AssertEqual(t, buf.String(), "Check:e8\n")
}

// TestTextWriter_WriteGame verifies the text layout of a game
func TestTextWriter_WriteGame(t *testing.T) {
	rec := playedRecord(t, "", "e2e4 e7e5 f1c4 b8c6 d1h5 g8f6 h5f7")

	var buf bytes.Buffer
	cfg := config.NewConfig()
	cfg.SetOutput(&buf)

	writer := NewTextWriter(&buf, cfg)
	if err := writer.WriteGame(rec); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}

	want := `[Result "1-0"]

1. e4 e5 2. Bc4 Nc6 3. Qh5 Nf6 4. Qxf7# 1-0

Status: White won by checkmate.
FEN: r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4
Check: e8
Legal moves (0):
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("WriteGame() mismatch (-want +got):\n%s", diff)
	}
}

// TestTextWriter_CustomStart verifies SetUp and FEN tags and the repetition table
func TestTextWriter_CustomStart(t *testing.T) {
	fen := "4k3/8/8/8/8/8/8/R3K3 w - - 0 1"
	rec := playedRecord(t, fen, "a1a2")

	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithLineLength(40).WithSections(true, true, false).Build()

	if err := NewTextWriter(&buf, cfg).WriteGame(rec); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}

	out := buf.String()
	testutil.AssertTrue(t, strings.HasPrefix(out, "[SetUp \"1\"]\n[FEN \""+fen+"\"]\n[Result \"*\"]\n"))
	testutil.AssertContains(t, out, "\n1. Ra2 *\n")
	testutil.AssertContains(t, out, "Legal moves (5): Kf8 Kd8 Ke7 Kf7 Kd7\n")
	testutil.AssertContains(t, out, "Positions:\n  1 4k3/8/8/8/8/8/8/R3K3\n  1 4k3/8/8/8/8/8/R7/4K3\n")
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 40 && !strings.HasPrefix(line, "[FEN") && !strings.HasPrefix(line, "FEN:") && !strings.HasPrefix(line, "  ") {
			t.Errorf("line longer than 40: %q", line)
		}
	}
}

// TestTextWriter_TagsAndAnalysis verifies input tags and the analysis block
func TestTextWriter_TagsAndAnalysis(t *testing.T) {
	rec := playedRecord(t, "", "e2e4 d7d5 e4d5")
	rec.Tags = []parser.Tag{{Name: "Event", Value: `say "hi"`}, {Name: "Result", Value: "0-1"}, {Name: "White", Value: "A"}}
	rec.Analysis = &processing.GameAnalysis{Plies: 3, Captures: 1, MostRepeated: 1}

	var buf bytes.Buffer
	cfg := config.NewConfig()
	cfg.Output.ShowLegalMoves = false
	cfg.Output.ShowAnalysis = true
	if err := NewTextWriter(&buf, cfg).WriteGame(rec); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}

	out := buf.String()
	testutil.AssertTrue(t, strings.HasPrefix(out, "[Event \"say \\\"hi\\\"\"]\n[White \"A\"]\n[Result \"*\"]\n"), out)
	testutil.AssertContains(t, out, "Analysis: 3 plies, 1 captures, 0 checks, 0 castles, 0 en passant, 0 promotions (0 under)\n")
	testutil.AssertContains(t, out, "Longest quiet run: 0 half-moves\nMost repeated position: 1\n")
}

// TestTextWriter_WritePerft verifies the divide layout
func TestTextWriter_WritePerft(t *testing.T) {
	rep := &PerftReport{
		FEN:   engine.InitialFEN,
		Depth: 2,
		Nodes: 40,
		Divide: []engine.DivideEntry{
			{Move: "b1c3", Nodes: 20},
			{Move: "g1f3", Nodes: 20},
		},
	}

	var buf bytes.Buffer
	if err := NewTextWriter(&buf, config.NewConfig()).WritePerft(rep); err != nil {
		t.Fatalf("WritePerft failed: %v", err)
	}

	want := "b1c3: 20\ng1f3: 20\n\nDepth: 2\nNodes searched: 40\n"
	testutil.AssertEqual(t, buf.String(), want)

	buf.Reset()
	rep.Divide = nil
	rep.Elapsed = 1500 * time.Millisecond
	OutputPerft(rep, &buf)
	testutil.AssertEqual(t, buf.String(), "Depth: 2\nNodes searched: 40\nTime: 1.5s\n")
}

// TestJSONWriter_Single verifies a game is written immediately
func TestJSONWriter_Single(t *testing.T) {
	rec := playedRecord(t, "", "e2e4 f7f6 d1h5")

	var buf bytes.Buffer
	writer := NewJSONWriterSingle(&buf, config.NewConfig())
	if err := writer.WriteGame(rec); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}

	var got JSONGame
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}

	testutil.AssertEqual(t, got.Result, "*")
	testutil.AssertEqual(t, got.ToMove, "Black")
	testutil.AssertTrue(t, got.InCheck)
	testutil.AssertEqual(t, got.PlyCount, 3)
	testutil.AssertEqual(t, got.KeySquares, game.KeySquares{LastMove: []string{"d1", "h5"}, CheckSquare: "e8"})
	testutil.AssertEqual(t, got.Moves[2], JSONMove{MoveNumber: 2, Color: "white", SAN: "Qh5+", UCI: "d1h5", From: "d1", To: "h5"})
	testutil.AssertEqual(t, got.LegalMoves, []string{"g6"})
	testutil.AssertEqual(t, got.InitialFEN, "")
	testutil.AssertTrue(t, got.Analysis == nil)
	testutil.AssertTrue(t, got.Tags == nil)
}

// TestGameToJSON_Options verifies optional sections follow the output config
func TestGameToJSON_Options(t *testing.T) {
	rec := playedRecord(t, "", "g1f3 g8f6 f3g1 f6g8")
	rec.Tags = []parser.Tag{{Name: "Event", Value: "x"}, {Name: "FEN", Value: engine.InitialFEN}}
	rec.Analysis = &processing.GameAnalysis{Plies: 4, LongestQuietRun: 4, MostRepeated: 2}

	out := config.NewOutputConfig()
	out.ShowLegalMoves = false
	out.ShowPositions = true
	out.ShowAnalysis = true

	jg := GameToJSON(rec, out)
	testutil.AssertTrue(t, jg.LegalMoves == nil)
	testutil.AssertEqual(t, jg.Tags, map[string]string{"Event": "x"})
	testutil.AssertEqual(t, jg.Analysis, rec.Analysis)
	most := 0
	for _, p := range jg.Positions {
		most = max(most, p.Count)
	}
	testutil.AssertEqual(t, most, 2)
}

// TestJSONWriter_Batch verifies games and reports are collected until Flush
func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf, config.NewConfig())

	if err := writer.WriteGame(playedRecord(t, "", "e2e4")); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	if err := writer.WritePerft(&PerftReport{FEN: engine.InitialFEN, Depth: 1, Nodes: 20}); err != nil {
		t.Fatalf("WritePerft failed: %v", err)
	}
	testutil.AssertEqual(t, buf.Len(), 0, "nothing should be written before Flush")

	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var got JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	testutil.AssertEqual(t, len(got.Games), 1)
	testutil.AssertEqual(t, got.Perft, []*JSONPerft{{FEN: engine.InitialFEN, Depth: 1, Nodes: 20}})

	// A second flush has nothing left to write.
	buf.Reset()
	testutil.AssertNoError(t, writer.Flush())
	testutil.AssertEqual(t, buf.Len(), 0)
}

// TestNewWriter verifies the writer follows the configured format
func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.NewConfig()
	if _, ok := NewWriter(&buf, cfg).(*TextWriter); !ok {
		t.Error("default writer should be a TextWriter")
	}

	cfg.Output.JSONFormat = true
	if _, ok := NewWriter(&buf, cfg).(*JSONWriter); !ok {
		t.Error("JSON config should give a JSONWriter")
	}
}

// TestWriter_Interface verifies that writers implement the interface
func TestWriter_Interface(t *testing.T) {
	cfg := config.NewConfig()
	var buf bytes.Buffer

	var _ Writer = NewTextWriter(&buf, cfg)
	var _ Writer = NewJSONWriter(&buf, cfg)
}
