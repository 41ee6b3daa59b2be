package engine

import (
	"fmt"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// Castling columns.
const (
	kingCol           = 4
	kingsideRookCol   = 7
	queensideRookCol  = 0
	kingsideKingDest  = 6
	kingsideRookDest  = 5
	queensideKingDest = 2
	queensideRookDest = 3
)

// applyCastle moves the king and the corresponding rook to their castled
// squares on the given colour's back row. Both moves land in one journal.
func applyCastle(board *chess.Board, colour chess.Colour, kingside bool) error {
	row := chess.BackRow(colour)
	kingSq := chess.Square{Row: row, Col: kingCol}

	rookCol, kingDest, rookDest := queensideRookCol, queensideKingDest, queensideRookDest
	if kingside {
		rookCol, kingDest, rookDest = kingsideRookCol, kingsideKingDest, kingsideRookDest
	}
	rookSq := chess.Square{Row: row, Col: rookCol}

	if !board.At(kingSq).Is(chess.King, colour) {
		return fmt.Errorf("%s king not on %s: %w", colour, kingSq, errors.ErrIllegalMove)
	}
	if !board.At(rookSq).Is(chess.Rook, colour) {
		return fmt.Errorf("%s rook not on %s: %w", colour, rookSq, errors.ErrIllegalMove)
	}

	// Every square strictly between king and rook must be empty.
	step := sign(rookCol - kingCol)
	for col := kingCol + step; col != rookCol; col += step {
		sq := chess.Square{Row: row, Col: col}
		if !board.At(sq).IsEmpty() {
			return fmt.Errorf("castling through occupied %s: %w", sq, errors.ErrIllegalMove)
		}
	}

	if err := board.Relocate(kingSq, chess.Square{Row: row, Col: kingDest}); err != nil {
		return err
	}
	return board.Relocate(rookSq, chess.Square{Row: row, Col: rookDest})
}
