package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/pgn-replay-go/internal/config"
	"github.com/lgbarn/pgn-replay-go/internal/game"
)

// GameWriter is the interface for writing compiled games to output.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(s *game.Session) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. Batch writers write pending output here.
	Close() error
}

// NewGameWriter returns the writer for the configured output format.
func NewGameWriter(w io.Writer, cfg *config.Config) GameWriter {
	switch cfg.Output.Format {
	case config.JSONFormat:
		return NewJSONWriter(w)
	case config.SVGFormat:
		return NewSVGWriter(w, cfg.Output.SquareSize)
	default:
		return NewTextWriter(w, cfg)
	}
}

// TextWriter writes games as tags, diagram and move list.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteGame writes a game in text form.
func (tw *TextWriter) WriteGame(s *game.Session) error {
	OutputSession(s, tw.cfg, tw.w)
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as one JSON document on Flush or Close.
type JSONWriter struct {
	w     io.Writer
	games []*JSONGame
}

// NewJSONWriter creates a new batching JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteGame converts the game at its current cursor and buffers it.
func (jw *JSONWriter) WriteGame(s *game.Session) error {
	jw.games = append(jw.games, SessionToJSON(s))
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})

	jw.games = jw.games[:0]
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// SVGWriter writes the cursor position of each game as an SVG diagram.
type SVGWriter struct {
	w          io.Writer
	squareSize int
}

// NewSVGWriter creates a new SVG writer.
func NewSVGWriter(w io.Writer, squareSize int) *SVGWriter {
	return &SVGWriter{w: w, squareSize: squareSize}
}

// WriteGame draws the game's current position.
func (sw *SVGWriter) WriteGame(s *game.Session) error {
	return WriteSVG(sw.w, s.Board(), s.Orientation(), sw.squareSize)
}

// Flush is a no-op.
func (sw *SVGWriter) Flush() error {
	return nil
}

// Close closes the SVG writer.
func (sw *SVGWriter) Close() error {
	return nil
}
