// Package engine decodes board layouts and resolves SAN moves against a
// board, writing each move through the board's recording primitives.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// InitialLayout is the placement field of InitialFEN.
const InitialLayout = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

var fenPattern = regexp.MustCompile(
	`^\s*([rnbqkpRNBQKP1-8]+/){7}[rnbqkpRNBQKP1-8]+\s[bw-]\s(([kqKQ]{1,4})|-)\s(([a-h][1-8])|-)\s\d+\s\d+\s*$`)

// ValidateFEN reports whether fen matches the full six-field FEN grammar:
// placement, active colour, castling rights, en passant square, halfmove
// clock and fullmove number.
func ValidateFEN(fen string) bool {
	return fenPattern.MatchString(fen)
}

// DecodeLayout decodes the placement part of a layout or FEN string into a
// grid of symbols. The placement field must hold exactly eight
// slash-separated ranks; whitespace-separated FEN fields after it are ignored.
func DecodeLayout(layout string) (chess.Layout, error) {
	var grid chess.Layout

	fields := strings.Fields(layout)
	if len(fields) == 0 {
		return grid, fmt.Errorf("empty layout: %w", errors.ErrInvalidFEN)
	}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != chess.BoardSize {
		return grid, fmt.Errorf("layout has %d rank fields, need %d: %w",
			len(ranks), chess.BoardSize, errors.ErrInvalidFEN)
	}

	for row := 0; row < chess.BoardSize; row++ {
		if err := decodeRank(&grid, row, ranks[row]); err != nil {
			return grid, err
		}
	}
	return grid, nil
}

// decodeRank expands one rank field into grid row.
func decodeRank(grid *chess.Layout, row int, field string) error {
	col := 0
	for i := 0; i < len(field); i++ {
		c := field[i]
		switch {
		case c >= '1' && c <= '8':
			n := int(c - '0')
			if col+n > chess.BoardSize {
				return fmt.Errorf("rank %c overflows: %w", chess.RowToRank(row), errors.ErrInvalidFEN)
			}
			for ; n > 0; n-- {
				grid[row][col] = chess.EmptySymbol
				col++
			}
		case chess.IsPieceSymbol(c):
			if col >= chess.BoardSize {
				return fmt.Errorf("rank %c overflows: %w", chess.RowToRank(row), errors.ErrInvalidFEN)
			}
			grid[row][col] = c
			col++
		default:
			return fmt.Errorf("invalid character %q in rank %c: %w", c, chess.RowToRank(row), errors.ErrInvalidFEN)
		}
	}
	if col != chess.BoardSize {
		return fmt.Errorf("rank %c has %d squares: %w", chess.RowToRank(row), col, errors.ErrInvalidFEN)
	}
	return nil
}

// EncodeLayout converts a grid back to its slash-separated placement field.
func EncodeLayout(grid chess.Layout) string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			c := grid[row][col]
			if c == chess.EmptySymbol || c == 0 {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(c)
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// Setup holds the non-placement FEN fields that affect replay: who moves
// first and how moves are numbered.
type Setup struct {
	ToMove     chess.Colour
	MoveNumber int
}

// DefaultSetup is the setup of a game starting from move 1 with White.
func DefaultSetup() Setup {
	return Setup{ToMove: chess.White, MoveNumber: 1}
}

// ParseSetup reads the active colour and fullmove number from a FEN string.
// It is lenient: a missing or unreadable field keeps its default.
func ParseSetup(fen string) Setup {
	setup := DefaultSetup()
	parts := strings.Fields(fen)
	if len(parts) >= 2 && parts[1] == "b" {
		setup.ToMove = chess.Black
	}
	if len(parts) >= 6 {
		if n, err := strconv.Atoi(parts[5]); err == nil && n > 0 {
			setup.MoveNumber = n
		}
	}
	return setup
}

// BoardToFEN renders the board as a FEN string. Castling rights and the en
// passant square are not tracked and are written as "-".
func BoardToFEN(board *chess.Board, setup Setup) string {
	side := "w"
	if setup.ToMove == chess.Black {
		side = "b"
	}
	return fmt.Sprintf("%s %s - - 0 %d", EncodeLayout(board.Layout()), side, setup.MoveNumber)
}

// NewBoardFromFEN creates a board from a layout or FEN string.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	if strings.TrimSpace(fen) == "" {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	grid, err := DecodeLayout(fen)
	if err != nil {
		return nil, err
	}
	return chess.NewBoardFromLayout(grid), nil
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _ := NewBoardFromFEN(InitialFEN)
	return board
}
