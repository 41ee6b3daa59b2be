package engine

import "github.com/lgbarn/pgn-replay-go/internal/chess"

// vector is a step on the grid, in rows and columns.
type vector struct {
	dRow, dCol int
}

// Movement vectors, in scan order. Sliders walk each vector up to eight
// squares; leapers take a single step.
var (
	rookVectors = []vector{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

	bishopVectors = []vector{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	knightVectors = []vector{
		{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
		{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
	}

	royalVectors = append(append([]vector{}, rookVectors...), bishopVectors...)
)

// movement describes how a piece type travels.
type movement struct {
	vectors []vector
	limit   int
}

func movementFor(pt chess.PieceType) (movement, bool) {
	switch pt {
	case chess.Rook:
		return movement{rookVectors, chess.BoardSize}, true
	case chess.Bishop:
		return movement{bishopVectors, chess.BoardSize}, true
	case chess.Queen:
		return movement{royalVectors, chess.BoardSize}, true
	case chess.Knight:
		return movement{knightVectors, 1}, true
	case chess.King:
		return movement{royalVectors, 1}, true
	default:
		return movement{}, false
	}
}

// firstOccupied walks from start along v and returns the first occupied
// square, if any, within limit steps.
func firstOccupied(board *chess.Board, start chess.Square, v vector, limit int) (chess.Square, bool) {
	for step := 1; step <= limit; step++ {
		sq := start.Offset(v.dRow*step, v.dCol*step)
		if !sq.OnBoard() {
			return chess.Square{}, false
		}
		if !board.At(sq).IsEmpty() {
			return sq, true
		}
	}
	return chess.Square{}, false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
