package engine

import (
	"fmt"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// applyPieceMove applies a piece (non-pawn) move.
func applyPieceMove(board *chess.Board, move *chess.Move, colour chess.Colour) error {
	if err := checkDestination(board, move.To, colour); err != nil {
		return err
	}
	from, ok := FindPieceSource(board, move, colour)
	if !ok {
		return fmt.Errorf("no %s %s can reach %s: %w", colour, move.Piece, move.To, errors.ErrIllegalMove)
	}
	return board.Relocate(from, move.To)
}

// FindPieceSource finds the source square of a piece move.
//
// Each movement vector is walked backward from the destination; the first
// occupied square ends the vector. That square is the source if it holds a
// piece of the right type and colour that matches the disambiguators and is
// not held back by an absolute pin.
func FindPieceSource(board *chess.Board, move *chess.Move, colour chess.Colour) (chess.Square, bool) {
	m, ok := movementFor(move.Piece)
	if !ok {
		return chess.Square{}, false
	}
	for _, v := range m.vectors {
		sq, found := firstOccupied(board, move.To, v, m.limit)
		if !found {
			continue
		}
		if !board.At(sq).Is(move.Piece, colour) || !move.Matches(sq) {
			continue
		}
		if pinForbids(board, sq, move.To, colour) {
			continue
		}
		return sq, true
	}
	return chess.Square{}, false
}

// checkDestination rejects a move onto a square held by the mover's own side.
func checkDestination(board *chess.Board, to chess.Square, colour chess.Colour) error {
	if !to.OnBoard() {
		return fmt.Errorf("destination off the board: %w", errors.ErrIllegalMove)
	}
	if p := board.At(to); !p.IsEmpty() && p.Colour() == colour {
		return fmt.Errorf("%s occupied by own %s: %w", to, p.Type(), errors.ErrIllegalMove)
	}
	return nil
}
