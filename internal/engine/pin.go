package engine

import "github.com/lgbarn/pgn-replay-go/internal/chess"

// pinLines pairs each line geometry with the enemy pieces that pin along it.
var pinLines = []struct {
	vectors []vector
	pinners []chess.PieceType
}{
	{rookVectors, []chess.PieceType{chess.Rook, chess.Queen}},
	{bishopVectors, []chess.PieceType{chess.Bishop, chess.Queen}},
}

// Pin describes an absolute pin: the pinned piece stands between its own
// king and an enemy slider on the same line.
type Pin struct {
	King   chess.Square
	Pinner chess.Square
}

// Allows reports whether moving the pinned piece to dst keeps the king
// covered, i.e. dst lies on the segment from the king to the pinner,
// endpoints included.
func (p Pin) Allows(dst chess.Square) bool {
	for _, sq := range squaresBetween(p.King, p.Pinner) {
		if sq == dst {
			return true
		}
	}
	return false
}

// PinLine reports whether the piece of the given colour on sq is absolutely
// pinned. Rook lines are examined before bishop lines.
func PinLine(board *chess.Board, sq chess.Square, colour chess.Colour) (Pin, bool) {
	for _, line := range pinLines {
		for _, v := range line.vectors {
			kingSq, ok := firstOccupied(board, sq, v, chess.BoardSize)
			if !ok || !board.At(kingSq).Is(chess.King, colour) {
				continue
			}
			opposite := vector{-v.dRow, -v.dCol}
			pinnerSq, ok := firstOccupied(board, sq, opposite, chess.BoardSize)
			if !ok {
				continue
			}
			pinner := board.At(pinnerSq)
			if pinner.Colour() == colour {
				continue
			}
			for _, pt := range line.pinners {
				if pinner.Type() == pt {
					return Pin{King: kingSq, Pinner: pinnerSq}, true
				}
			}
		}
	}
	return Pin{}, false
}

// pinForbids reports whether an absolute pin keeps the piece on from from
// moving to to.
func pinForbids(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	pin, pinned := PinLine(board, from, colour)
	return pinned && !pin.Allows(to)
}

// squaresBetween returns the squares on the straight line from a to b,
// both endpoints included. It returns nil if a and b share no line.
func squaresBetween(a, b chess.Square) []chess.Square {
	dRow, dCol := b.Row-a.Row, b.Col-a.Col
	if dRow != 0 && dCol != 0 && abs(dRow) != abs(dCol) {
		return nil
	}
	step := vector{sign(dRow), sign(dCol)}
	n := abs(dRow)
	if abs(dCol) > n {
		n = abs(dCol)
	}
	squares := make([]chess.Square, 0, n+1)
	for i := 0; i <= n; i++ {
		squares = append(squares, a.Offset(step.dRow*i, step.dCol*i))
	}
	return squares
}
