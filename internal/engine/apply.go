package engine

import (
	"fmt"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// ApplyMove resolves the source of a decoded move for the given colour and
// applies it through the board's recording primitives. On success the
// board's journal holds every op of the move; on failure the error wraps
// errors.ErrIllegalMove.
func ApplyMove(board *chess.Board, move *chess.Move, colour chess.Colour) error {
	if move == nil {
		return fmt.Errorf("nil move: %w", errors.ErrIllegalMove)
	}

	switch move.Class {
	case chess.KingsideCastle:
		return applyCastle(board, colour, true)
	case chess.QueensideCastle:
		return applyCastle(board, colour, false)
	case chess.PawnMove, chess.PawnCapture:
		return applyPawnMove(board, move, colour)
	case chess.PieceMove:
		return applyPieceMove(board, move, colour)
	default:
		return fmt.Errorf("unsupported move class %s: %w", move.Class, errors.ErrIllegalMove)
	}
}
