package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	InitialFEN string               `json:"initialFEN,omitempty"`
	FEN        string               `json:"fen"`
	ToMove     string               `json:"toMove"`
	Result     string               `json:"result"`
	Status     string               `json:"status"`
	StatusText string               `json:"statusText"`
	InCheck    bool                 `json:"inCheck"`
	PlyCount   int                  `json:"plyCount"`
	Moves      []JSONMove           `json:"moves"`
	KeySquares game.KeySquares      `json:"keySquares"`
	LegalMoves []string             `json:"legalMoves,omitempty"`
	Positions  []game.PositionCount `json:"positions,omitempty"`

	Tags     map[string]string        `json:"tags,omitempty"`
	Analysis *processing.GameAnalysis `json:"analysis,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
}

// JSONPerft represents a perft report in JSON format.
type JSONPerft struct {
	FEN       string       `json:"fen"`
	Depth     int          `json:"depth"`
	Nodes     uint64       `json:"nodes"`
	Divide    []JSONDivide `json:"divide,omitempty"`
	ElapsedMS int64        `json:"elapsedMs,omitempty"`
}

// JSONDivide is the node count below one root move.
type JSONDivide struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// JSONOutput holds multiple games and perft reports for array output.
type JSONOutput struct {
	Games []*JSONGame  `json:"games,omitempty"`
	Perft []*JSONPerft `json:"perft,omitempty"`
}

// GameToJSON converts a game record to JSON format. Legal moves, the
// repetition table and the analysis are included when the output
// configuration asks for them.
func GameToJSON(rec *Record, out *config.OutputConfig) *JSONGame {
	g := rec.Game
	jg := &JSONGame{
		FEN:        g.FEN(),
		ToMove:     g.ToMove().String(),
		Result:     g.Result(),
		Status:     g.Status().String(),
		StatusText: g.StatusText(),
		InCheck:    g.InCheck(),
		KeySquares: g.KeySquares(),
	}
	if rec.customStart() {
		jg.InitialFEN = rec.StartFEN
	}

	jg.Moves = convertHistory(rec)
	jg.PlyCount = len(jg.Moves)

	if out.ShowLegalMoves {
		for _, m := range g.LegalMoves() {
			jg.LegalMoves = append(jg.LegalMoves, m.Notation)
		}
	}
	if out.ShowPositions {
		jg.Positions = g.Positions()
	}
	if out.ShowAnalysis {
		jg.Analysis = rec.Analysis
	}
	if tags := rec.inputTags(); len(tags) > 0 {
		jg.Tags = make(map[string]string, len(tags))
		for _, t := range tags {
			jg.Tags[t.Name] = t.Value
		}
	}
	return jg
}

// convertHistory numbers the moves of a game from its starting position.
func convertHistory(rec *Record) []JSONMove {
	start := rec.startPosition()
	moveNum := start.FullMoves
	colour := start.ToMove

	history := rec.Game.History()
	moves := make([]JSONMove, 0, len(history))
	for _, h := range history {
		moves = append(moves, JSONMove{
			MoveNumber: moveNum,
			Color:      colourName(colour),
			SAN:        h.Notation,
			UCI:        h.From + h.To,
			From:       h.From,
			To:         h.To,
		})
		if colour == chess.Black {
			moveNum++
		}
		colour = colour.Opposite()
	}
	return moves
}

func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// PerftToJSON converts a perft report to JSON format.
func PerftToJSON(rep *PerftReport) *JSONPerft {
	jp := &JSONPerft{
		FEN:       rep.FEN,
		Depth:     rep.Depth,
		Nodes:     rep.Nodes,
		ElapsedMS: rep.Elapsed.Milliseconds(),
	}
	for _, e := range rep.Divide {
		jp.Divide = append(jp.Divide, JSONDivide{Move: e.Move, Nodes: e.Nodes})
	}
	return jp
}

// encodeJSON writes v as indented JSON.
func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
