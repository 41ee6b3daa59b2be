package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/game"
	"github.com/lgbarn/pgn-replay-go/internal/parser"
)

// JSONGame represents a compiled game in JSON format.
type JSONGame struct {
	Tags       map[string]string  `json:"tags"`
	InitialFEN string             `json:"initialFEN"`
	Prelude    *parser.Annotation `json:"prelude,omitempty"`
	Moves      []JSONMove         `json:"moves,omitempty"`
	Result     string             `json:"result"`
	PlyCount   int                `json:"plyCount"`
	Cursor     int                `json:"cursor"`
	FEN        string             `json:"fen"`
}

// JSONMove represents one half-move and its transition in JSON format.
type JSONMove struct {
	Ply        int                `json:"ply"`
	Color      string             `json:"color"`
	SAN        string             `json:"san"`
	Formatted  string             `json:"formatted"`
	Annotation *parser.Annotation `json:"annotation,omitempty"`
	Forward    []string           `json:"forward"`
	Backward   []string           `json:"backward"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// SessionToJSON converts a session to JSON form. FEN is the position at
// the session's cursor.
func SessionToJSON(s *game.Session) *JSONGame {
	jg := &JSONGame{
		Tags:       s.Headers(),
		InitialFEN: s.StartFEN(),
		Result:     gameResult(s),
		PlyCount:   s.Len(),
		Cursor:     s.Cursor(),
		FEN:        s.CurrentFEN(),
	}

	annotations := s.Annotations()
	if a, ok := annotations[0]; ok && !a.IsZero() {
		jg.Prelude = &a
	}

	colour := s.Setup().ToMove
	for i, t := range s.Transitions() {
		ply := i + 1
		san, _ := s.MoveAt(ply)
		formatted, _ := s.FormattedMoveAt(ply)
		jm := JSONMove{
			Ply:       ply,
			Color:     colorName(colour),
			SAN:       san,
			Formatted: formatted,
			Forward:   t.WireForward(),
			Backward:  t.WireBackward(),
		}
		if a, ok := annotations[ply]; ok && !a.IsZero() {
			jm.Annotation = &a
		}
		jg.Moves = append(jg.Moves, jm)
		colour = colour.Opposite()
	}
	return jg
}

func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// OutputSessionJSON writes a single session as indented JSON.
func OutputSessionJSON(s *game.Session, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(SessionToJSON(s))
}
