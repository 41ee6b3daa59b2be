package output

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
)

// Square colours of the SVG diagram.
const (
	lightSquare = "fill:#f0d9b5"
	darkSquare  = "fill:#b58863"
)

var pieceGlyphs = map[byte]string{
	'K': "♔", 'Q': "♕", 'R': "♖", 'B': "♗", 'N': "♘", 'P': "♙",
	'k': "♚", 'q': "♛", 'r': "♜", 'b': "♝", 'n': "♞", 'p': "♟",
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteSVG draws the board as an SVG diagram viewed from the given side.
// Every piece is drawn with its id as the element id, e.g. id="piece-63".
func WriteSVG(w io.Writer, board *chess.Board, orientation chess.Colour, squareSize int) error {
	if squareSize <= 0 {
		return fmt.Errorf("square size %d must be positive", squareSize)
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	edge := squareSize * chess.BoardSize
	whiteAtBottom := orientation == chess.White

	canvas.Start(edge, edge)
	canvas.Title("Board")
	canvas.Gid("squares")
	for i := 0; i < chess.BoardSize; i++ {
		row := displayIndex(i, whiteAtBottom)
		for j := 0; j < chess.BoardSize; j++ {
			col := displayIndex(j, whiteAtBottom)
			style := lightSquare
			if (row+col)%2 == 1 {
				style = darkSquare
			}
			canvas.Rect(j*squareSize, i*squareSize, squareSize, squareSize, style)
		}
	}
	canvas.Gend()

	canvas.Gid("pieces")
	fontStyle := fmt.Sprintf("text-anchor:middle;font-size:%dpx", squareSize*4/5)
	for i := 0; i < chess.BoardSize; i++ {
		row := displayIndex(i, whiteAtBottom)
		for j := 0; j < chess.BoardSize; j++ {
			col := displayIndex(j, whiteAtBottom)
			p := board.Squares[row][col]
			if p.IsEmpty() {
				continue
			}
			x := j*squareSize + squareSize/2
			y := i*squareSize + squareSize*4/5
			canvas.Text(x, y, pieceGlyphs[p.Symbol], fmt.Sprintf(`id="piece-%d"`, p.ID), `style="`+fontStyle+`"`)
		}
	}
	canvas.Gend()
	canvas.End()
	return ew.err
}
