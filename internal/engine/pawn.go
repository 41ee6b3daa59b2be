package engine

import (
	"fmt"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// applyPawnMove applies a pawn push or capture, including en passant and
// promotion.
func applyPawnMove(board *chess.Board, move *chess.Move, colour chess.Colour) error {
	if err := checkDestination(board, move.To, colour); err != nil {
		return err
	}
	if move.IsPromotion() && move.To.Row != chess.BackRow(colour.Opposite()) {
		return fmt.Errorf("promotion on %s: %w", move.To, errors.ErrIllegalMove)
	}

	var from chess.Square
	var ok bool
	if move.Class == chess.PawnCapture {
		from, ok = findPawnCaptureSource(board, move, colour)
	} else {
		from, ok = findPawnPushSource(board, move, colour)
	}
	if !ok {
		return fmt.Errorf("no %s pawn can reach %s: %w", colour, move.To, errors.ErrIllegalMove)
	}

	if move.Class == chess.PawnCapture && board.At(move.To).IsEmpty() {
		// En passant: the captured pawn stands beside the source.
		victim := chess.Square{Row: from.Row, Col: move.To.Col}
		if !board.At(victim).Is(chess.Pawn, colour.Opposite()) {
			return fmt.Errorf("nothing to capture on %s: %w", move.To, errors.ErrIllegalMove)
		}
		if err := board.Clear(victim); err != nil {
			return err
		}
	}

	if err := board.Relocate(from, move.To); err != nil {
		return err
	}

	if move.IsPromotion() {
		return promote(board, move.To, move.Promotion, colour)
	}
	return nil
}

// promote replaces the pawn on sq with a freshly identified piece.
func promote(board *chess.Board, sq chess.Square, pt chess.PieceType, colour chess.Colour) error {
	if err := board.Clear(sq); err != nil {
		return err
	}
	return board.Place(chess.Piece{ID: board.MintID(), Symbol: pt.Symbol(colour)}, sq)
}

// findPawnPushSource scans up to two squares behind the destination and
// stops at the first occupied one. Two-square pushes start from the pawn's
// starting row.
func findPawnPushSource(board *chess.Board, move *chess.Move, colour chess.Colour) (chess.Square, bool) {
	if !board.At(move.To).IsEmpty() {
		return chess.Square{}, false
	}
	back := -chess.PawnDirection(colour)
	for step := 1; step <= 2; step++ {
		sq := move.To.Offset(back*step, 0)
		if !sq.OnBoard() {
			break
		}
		p := board.At(sq)
		if p.IsEmpty() {
			continue
		}
		if p.Is(chess.Pawn, colour) && (step == 1 || sq.Row == chess.PawnStartRow(colour)) {
			return sq, true
		}
		break
	}
	return chess.Square{}, false
}

// findPawnCaptureSource locates the capturing pawn on the given file, one
// row behind the destination.
func findPawnCaptureSource(board *chess.Board, move *chess.Move, colour chess.Colour) (chess.Square, bool) {
	if !move.FromFile.IsValid() {
		return chess.Square{}, false
	}
	sq := chess.Square{
		Row: move.To.Row - chess.PawnDirection(colour),
		Col: chess.FileToCol(move.FromFile),
	}
	if abs(sq.Col-move.To.Col) != 1 || !board.At(sq).Is(chess.Pawn, colour) {
		return chess.Square{}, false
	}
	return sq, true
}
