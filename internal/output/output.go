// Package output writes compiled games as text, JSON or SVG.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/config"
	"github.com/lgbarn/pgn-replay-go/internal/game"
	"github.com/lgbarn/pgn-replay-go/internal/parser"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator or wrapping as needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputSession writes a session as headers, an optional diagram of the
// cursor position and the numbered move list.
func OutputSession(s *game.Session, cfg *config.Config, w io.Writer) {
	outputTags(s, w)
	fmt.Fprintln(w)

	if cfg.Output.ShowBoard {
		WriteDiagram(w, s.Board(), s.Orientation())
		fmt.Fprintln(w)
	}

	outputMoves(s, cfg, w)
	fmt.Fprintln(w)
}

// outputTags writes the seven roster tags, "?" for missing values.
func outputTags(s *game.Session, w io.Writer) {
	for _, tag := range chess.SevenTagRoster {
		value := s.Header(tag)
		if value == "" {
			value = "?"
		}
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(value))
	}
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// outputMoves writes the move list with move numbers, annotations and result.
func outputMoves(s *game.Session, cfg *config.Config, w io.Writer) {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))
	annotations := s.Annotations()

	if cfg.Output.KeepAnnotations {
		outputAnnotation(annotations[0], ow)
	}

	colour := s.Setup().ToMove
	for ply := 1; ply <= s.Len(); ply++ {
		text, _ := s.MoveAt(ply)
		if ply == 1 || colour == chess.White {
			text, _ = s.FormattedMoveAt(ply)
		}
		ow.Write(text)

		if cfg.Output.KeepAnnotations {
			outputAnnotation(annotations[ply], ow)
		}
		colour = colour.Opposite()
	}

	ow.Write(gameResult(s))
	ow.NewLine()
}

// outputAnnotation writes a non-empty annotation as a brace comment.
func outputAnnotation(a parser.Annotation, ow *OutputWriter) {
	if a.Text == "" {
		return
	}
	text := strings.ReplaceAll(a.Text, "}", "\\}")
	ow.Write("{" + text + "}")
}

// gameResult returns the Result tag, "*" if missing.
func gameResult(s *game.Session) string {
	if result := s.Header(chess.ResultTag); result != "" {
		return result
	}
	return "*"
}

// WriteDiagram writes an ASCII board with rank and file labels, viewed from
// the given side.
func WriteDiagram(w io.Writer, board *chess.Board, orientation chess.Colour) {
	for i := 0; i < chess.BoardSize; i++ {
		row := displayIndex(i, orientation == chess.White)
		var sb strings.Builder
		sb.WriteByte(byte(chess.RowToRank(row)))
		for j := 0; j < chess.BoardSize; j++ {
			col := displayIndex(j, orientation == chess.White)
			sb.WriteByte(' ')
			if p := board.Squares[row][col]; !p.IsEmpty() {
				sb.WriteByte(p.Symbol)
			} else {
				sb.WriteByte('.')
			}
		}
		fmt.Fprintln(w, sb.String())
	}

	var files strings.Builder
	files.WriteByte(' ')
	for j := 0; j < chess.BoardSize; j++ {
		files.WriteByte(' ')
		files.WriteByte(byte(chess.ColToFile(displayIndex(j, orientation == chess.White))))
	}
	fmt.Fprintln(w, files.String())
}

// displayIndex maps a display position to a board row or column.
func displayIndex(i int, whiteAtBottom bool) int {
	if whiteAtBottom {
		return i
	}
	return chess.BoardSize - 1 - i
}
