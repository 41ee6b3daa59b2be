package chess

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	pgnerrors "github.com/lgbarn/pgn-replay-go/internal/errors"
)

func sq(s string) Square {
	square, ok := ParseSquare(s)
	if !ok {
		panic("bad square " + s)
	}
	return square
}

func startLayout() Layout {
	rows := []string{
		"rnbqkbnr",
		"pppppppp",
		"--------",
		"--------",
		"--------",
		"--------",
		"PPPPPPPP",
		"RNBQKBNR",
	}
	var l Layout
	for r, row := range rows {
		copy(l[r][:], row)
	}
	return l
}

func TestNewBoardFromLayout(t *testing.T) {
	b := NewBoardFromLayout(startLayout())

	if got := b.Count(); got != 32 {
		t.Fatalf("Count() = %d; want 32", got)
	}

	tests := []struct {
		square string
		want   Piece
	}{
		{"a8", Piece{ID: 1, Symbol: 'r'}},
		{"e8", Piece{ID: 5, Symbol: 'k'}},
		{"h7", Piece{ID: 16, Symbol: 'p'}},
		{"a2", Piece{ID: 49, Symbol: 'P'}},
		{"g1", Piece{ID: 63, Symbol: 'N'}},
		{"h1", Piece{ID: 64, Symbol: 'R'}},
		{"e4", Piece{}},
	}
	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			if got := b.At(sq(tt.square)); got != tt.want {
				t.Errorf("At(%s) = %v; want %v", tt.square, got, tt.want)
			}
		})
	}

	if got, ok := b.Find(63); !ok || got != sq("g1") {
		t.Errorf("Find(63) = %v, %v; want g1, true", got, ok)
	}
}

func TestPieceAccessors(t *testing.T) {
	tests := []struct {
		piece  Piece
		colour Colour
		typ    PieceType
	}{
		{Piece{ID: 1, Symbol: 'r'}, Black, Rook},
		{Piece{ID: 2, Symbol: 'N'}, White, Knight},
		{Piece{ID: 3, Symbol: 'q'}, Black, Queen},
		{Piece{ID: 4, Symbol: 'P'}, White, Pawn},
	}
	for _, tt := range tests {
		t.Run(tt.piece.String(), func(t *testing.T) {
			if got := tt.piece.Colour(); got != tt.colour {
				t.Errorf("Colour() = %v; want %v", got, tt.colour)
			}
			if got := tt.piece.Type(); got != tt.typ {
				t.Errorf("Type() = %v; want %v", got, tt.typ)
			}
			if !tt.piece.Is(tt.typ, tt.colour) {
				t.Errorf("Is(%v, %v) = false; want true", tt.typ, tt.colour)
			}
		})
	}

	if (Piece{}).Is(Pawn, White) {
		t.Error("empty piece should not match any type")
	}
}

func TestBoardPrimitives(t *testing.T) {
	t.Run("place journals add", func(t *testing.T) {
		b := NewBoard()
		p := Piece{ID: 7, Symbol: 'Q'}
		if err := b.Place(p, sq("d4")); err != nil {
			t.Fatalf("Place() error = %v", err)
		}
		want := []Op{{Kind: OpAdd, ID: 7, Symbol: 'Q', To: sq("d4")}}
		if diff := cmp.Diff(want, b.Commit()); diff != "" {
			t.Errorf("journal mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("place on occupied square fails", func(t *testing.T) {
		b := NewBoard()
		_ = b.Place(Piece{ID: 1, Symbol: 'K'}, sq("e1"))
		err := b.Place(Piece{ID: 2, Symbol: 'Q'}, sq("e1"))
		if !errors.Is(err, pgnerrors.ErrInconsistentBoard) {
			t.Errorf("Place() error = %v; want ErrInconsistentBoard", err)
		}
	})

	t.Run("relocate onto piece journals capture first", func(t *testing.T) {
		b := NewBoard()
		_ = b.Place(Piece{ID: 1, Symbol: 'R'}, sq("a1"))
		_ = b.Place(Piece{ID: 2, Symbol: 'n'}, sq("a8"))
		b.Commit()

		if err := b.Relocate(sq("a1"), sq("a8")); err != nil {
			t.Fatalf("Relocate() error = %v", err)
		}
		want := []Op{
			{Kind: OpRemove, ID: 2, Symbol: 'n', From: sq("a8")},
			{Kind: OpMove, ID: 1, Symbol: 'R', From: sq("a1"), To: sq("a8")},
		}
		if diff := cmp.Diff(want, b.Commit()); diff != "" {
			t.Errorf("journal mismatch (-want +got):\n%s", diff)
		}
		if _, ok := b.Find(2); ok {
			t.Error("captured piece still indexed")
		}
		if got := b.At(sq("a8")).ID; got != 1 {
			t.Errorf("At(a8).ID = %d; want 1", got)
		}
	})

	t.Run("relocate from empty square fails", func(t *testing.T) {
		b := NewBoard()
		err := b.Relocate(sq("a1"), sq("a2"))
		if !errors.Is(err, pgnerrors.ErrInconsistentBoard) {
			t.Errorf("Relocate() error = %v; want ErrInconsistentBoard", err)
		}
		if b.Pending() != 0 {
			t.Errorf("Pending() = %d; want 0", b.Pending())
		}
	})

	t.Run("clear empty square fails", func(t *testing.T) {
		b := NewBoard()
		if err := b.Clear(sq("c3")); !errors.Is(err, pgnerrors.ErrInconsistentBoard) {
			t.Errorf("Clear() error = %v; want ErrInconsistentBoard", err)
		}
	})
}

func TestMintID(t *testing.T) {
	b := NewBoardFromLayout(startLayout())
	first := b.MintID()
	second := b.MintID()
	if first != InitialPieceIDs+1 {
		t.Errorf("first MintID() = %d; want %d", first, InitialPieceIDs+1)
	}
	if second <= first {
		t.Errorf("MintID() not increasing: %d then %d", first, second)
	}
	if _, taken := b.Find(first); taken {
		t.Errorf("minted id %d already on board", first)
	}
}

func TestApplyReversesJournal(t *testing.T) {
	b := NewBoardFromLayout(startLayout())
	initial := b.Squares

	// Pawn e2 captures on d7 then promotes in one journal.
	if err := b.Relocate(sq("e2"), sq("d7")); err != nil {
		t.Fatalf("Relocate() error = %v", err)
	}
	pawn := b.At(sq("d7"))
	if err := b.Clear(sq("d7")); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if err := b.Place(Piece{ID: b.MintID(), Symbol: 'Q'}, sq("d7")); err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	after := b.Squares
	tr := NewTransition(b.Commit())

	if err := b.ApplyAll(tr.Backward); err != nil {
		t.Fatalf("ApplyAll(backward) error = %v", err)
	}
	if diff := cmp.Diff(initial, b.Squares); diff != "" {
		t.Errorf("backward did not restore position (-want +got):\n%s", diff)
	}

	if err := b.ApplyAll(tr.Forward); err != nil {
		t.Fatalf("ApplyAll(forward) error = %v", err)
	}
	if diff := cmp.Diff(after, b.Squares); diff != "" {
		t.Errorf("forward did not reproduce position (-want +got):\n%s", diff)
	}
	if _, ok := b.Find(pawn.ID); ok {
		t.Errorf("promoted pawn %d still on board", pawn.ID)
	}
	if b.Pending() != 0 {
		t.Errorf("Apply journaled %d ops; want 0", b.Pending())
	}
}

func TestApplyRejectsInconsistentOp(t *testing.T) {
	b := NewBoardFromLayout(startLayout())
	tests := []struct {
		name string
		op   Op
	}{
		{"add on occupied", Op{Kind: OpAdd, ID: 99, Symbol: 'Q', To: sq("e1")}},
		{"add duplicate id", Op{Kind: OpAdd, ID: 5, Symbol: 'k', To: sq("e4")}},
		{"remove unknown", Op{Kind: OpRemove, ID: 99}},
		{"move wrong id", Op{Kind: OpMove, ID: 3, From: sq("e2"), To: sq("e4")}},
		{"move onto piece", Op{Kind: OpMove, ID: 53, From: sq("e2"), To: sq("e7")}},
		{"unknown kind", Op{Kind: 'x', ID: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := b.Apply(tt.op); !errors.Is(err, pgnerrors.ErrInconsistentBoard) {
				t.Errorf("Apply(%v) error = %v; want ErrInconsistentBoard", tt.op, err)
			}
		})
	}
}

func TestCopyIsIndependent(t *testing.T) {
	b := NewBoardFromLayout(startLayout())
	c := b.Copy()
	if err := c.Relocate(sq("g1"), sq("f3")); err != nil {
		t.Fatalf("Relocate() error = %v", err)
	}
	if b.At(sq("g1")).IsEmpty() {
		t.Error("relocating on copy changed original")
	}
	if got, _ := b.Find(63); got != sq("g1") {
		t.Errorf("original Find(63) = %v; want g1", got)
	}
	if b.Pending() != 0 {
		t.Errorf("original Pending() = %d; want 0", b.Pending())
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	l := startLayout()
	if diff := cmp.Diff(l, NewBoardFromLayout(l).Layout()); diff != "" {
		t.Errorf("Layout() mismatch (-want +got):\n%s", diff)
	}
}

func TestFindKing(t *testing.T) {
	b := NewBoardFromLayout(startLayout())
	if got, ok := b.FindKing(White); !ok || got != sq("e1") {
		t.Errorf("FindKing(White) = %v, %v; want e1, true", got, ok)
	}
	if got, ok := b.FindKing(Black); !ok || got != sq("e8") {
		t.Errorf("FindKing(Black) = %v, %v; want e8, true", got, ok)
	}
	if _, ok := NewBoard().FindKing(White); ok {
		t.Error("FindKing on empty board should fail")
	}
}
