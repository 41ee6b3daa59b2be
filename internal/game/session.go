// Package game compiles a game's movetext into a reversible transition log
// and navigates the resulting positions.
package game

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/engine"
	"github.com/lgbarn/pgn-replay-go/internal/errors"
	"github.com/lgbarn/pgn-replay-go/internal/parser"
)

// Session is one compiled game and its navigation cursor.
//
// All state is owned by the session. A Session is not safe for concurrent
// use; callers sharing one must serialize access.
type Session struct {
	startFEN string
	setup    engine.Setup
	headers  chess.Headers

	initial *chess.Board
	board   *chess.Board
	log     *chess.TransitionLog

	moves       []string
	annotations map[int]parser.Annotation

	structured bool
	cursor     int
	flipped    bool
	logger     *zap.SugaredLogger
}

// New decodes layout, compiles movetext against it and returns a session
// positioned at the start.
//
// An empty layout falls back to the movetext's FEN tag, then to the
// WithDefaultLayout value, then to the standard starting position. Empty
// movetext yields a session with no moves. Any decode, tokenize or
// resolution error aborts the whole game.
func New(layout, movetext string, opts ...Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	mt := &parser.Movetext{Headers: chess.NewHeaders()}
	if strings.TrimSpace(movetext) != "" {
		var err error
		mt, err = parser.Tokenize(movetext, parser.WithJSONAnnotations(o.structured))
		if err != nil {
			return nil, err
		}
	}

	fen := strings.TrimSpace(layout)
	switch {
	case fen != "":
	case mt.SetupFEN != "":
		fen = mt.SetupFEN
	case o.defaultLayout != "":
		fen = o.defaultLayout
	default:
		fen = engine.InitialFEN
	}
	initial, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}

	s := &Session{
		startFEN:    fen,
		setup:       engine.ParseSetup(fen),
		headers:     mt.Headers,
		initial:     initial,
		log:         chess.NewTransitionLog(),
		annotations: make(map[int]parser.Annotation),
		structured:  o.structured,
		flipped:     o.flipped,
		logger:      o.logger,
	}
	if err := s.compile(mt); err != nil {
		return nil, err
	}
	s.board = initial.Copy()

	s.logger.Debugw("compiled game",
		"white", s.headers.Get(chess.WhiteTag),
		"black", s.headers.Get(chess.BlackTag),
		"halfmoves", s.log.Len(),
		"annotations", len(s.annotations))
	return s, nil
}

// compile resolves every move token on a scratch copy of the initial board,
// sealing one transition per half-move.
func (s *Session) compile(mt *parser.Movetext) error {
	board := s.initial.Copy()
	colour := s.setup.ToMove

	for _, tok := range mt.Tokens {
		if tok.Type == parser.AnnotationToken {
			ply := s.log.Len()
			s.annotations[ply] = s.annotations[ply].Merge(mt.Annotations[tok.Annotation])
			continue
		}

		ply := s.log.Len() + 1
		move, err := parser.DecodeMove(tok.Text)
		if err == nil {
			err = engine.ApplyMove(board, move, colour)
		}
		if err != nil {
			return &errors.GameError{Err: err, PlyNum: ply, MoveText: tok.Text}
		}

		ops := board.Commit()
		s.logger.Debugw("resolved move", "ply", ply, "move", tok.Text, "ops", len(ops))
		s.log.Append(ops)
		s.moves = append(s.moves, tok.Text)
		colour = colour.Opposite()
	}
	return nil
}

// Cursor returns the current half-move index; 0 is the starting position.
func (s *Session) Cursor() int {
	return s.cursor
}

// Len returns the number of half-moves in the game.
func (s *Session) Len() int {
	return s.log.Len()
}

// Board returns a copy of the position at the cursor.
func (s *Session) Board() *chess.Board {
	return s.board.Copy()
}

// InitialBoard returns a copy of the starting position.
func (s *Session) InitialBoard() *chess.Board {
	return s.initial.Copy()
}

// StartFEN returns the layout or FEN the session was built from.
func (s *Session) StartFEN() string {
	return s.startFEN
}

// Setup returns the side to move and move number of the starting position.
func (s *Session) Setup() engine.Setup {
	return s.setup
}

// CurrentFEN renders the position at the cursor.
func (s *Session) CurrentFEN() string {
	offset := s.cursor
	if s.setup.ToMove == chess.Black {
		offset++
	}
	setup := engine.Setup{ToMove: chess.White, MoveNumber: s.setup.MoveNumber + offset/2}
	if offset%2 == 1 {
		setup.ToMove = chess.Black
	}
	return engine.BoardToFEN(s.board, setup)
}

// Headers returns a copy of the seven roster tags.
func (s *Session) Headers() chess.Headers {
	return s.headers.Copy()
}

// Header returns one tag value, "" if missing.
func (s *Session) Header(key string) string {
	return s.headers.Get(key)
}

// Moves returns the SAN tokens, one per half-move.
func (s *Session) Moves() []string {
	out := make([]string, len(s.moves))
	copy(out, s.moves)
	return out
}

// MoveAt returns the SAN token of the n-th half-move (1-based).
func (s *Session) MoveAt(n int) (string, bool) {
	if n < 1 || n > len(s.moves) {
		return "", false
	}
	return s.moves[n-1], true
}

// FormattedMoveAt returns the n-th half-move with its move number, e.g.
// "3. e4" or "3... Nf6".
func (s *Session) FormattedMoveAt(n int) (string, bool) {
	move, ok := s.MoveAt(n)
	if !ok {
		return "", false
	}
	offset := n - 1
	if s.setup.ToMove == chess.Black {
		offset++
	}
	number := s.setup.MoveNumber + offset/2
	if offset%2 == 1 {
		return fmt.Sprintf("%d... %s", number, move), true
	}
	return fmt.Sprintf("%d. %s", number, move), true
}

// Transitions returns the recorded transitions in half-move order.
func (s *Session) Transitions() []chess.Transition {
	return s.log.Entries()
}

// Annotations returns a deep copy of the annotations keyed by half-move index.
func (s *Session) Annotations() map[int]parser.Annotation {
	out := make(map[int]parser.Annotation, len(s.annotations))
	maps.Copy(out, s.annotations)
	for ply, a := range out {
		out[ply] = a.Clone()
	}
	return out
}

// CurrentAnnotation returns the annotation attached to the cursor's half-move.
func (s *Session) CurrentAnnotation() parser.Annotation {
	return s.annotations[s.cursor].Clone()
}

// AddAnnotation merges text into the cursor's annotation. In JSON mode the
// text is also appended as a value.
func (s *Session) AddAnnotation(text string) {
	add := parser.Annotation{Text: text}
	if s.structured {
		add.Values = []any{text}
	}
	s.annotations[s.cursor] = s.annotations[s.cursor].Merge(add)
}

// Flip toggles the viewing side.
func (s *Session) Flip() {
	s.flipped = !s.flipped
}

// Orientation returns the colour shown at the bottom of the board.
func (s *Session) Orientation() chess.Colour {
	if s.flipped {
		return chess.Black
	}
	return chess.White
}
