package engine

import (
	"testing"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/parser"
)

var benchFENs = map[string]string{
	"Initial":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
}

func BenchmarkDecodeLayout(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				DecodeLayout(fen)
			}
		})
	}
}

func BenchmarkValidateFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				ValidateFEN(fen)
			}
		})
	}
}

func BenchmarkFindPieceSource(b *testing.B) {
	board, _ := NewBoardFromFEN(benchFENs["Complex"])
	moves := map[string]string{
		"Knight": "Nxf7",
		"Queen":  "Qxf6",
		"Bishop": "Bxa6",
		"Rook":   "Rb1",
	}
	for name, san := range moves {
		move, _ := parser.DecodeMove(san)
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				FindPieceSource(board, move, chess.White)
			}
		})
	}
}

func BenchmarkPinLine(b *testing.B) {
	board, _ := NewBoardFromFEN("4q2k/8/8/8/8/8/4R3/4K3 w - - 0 1")
	sq, _ := chess.ParseSquare("e2")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		PinLine(board, sq, chess.White)
	}
}
