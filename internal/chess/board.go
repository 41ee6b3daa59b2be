package chess

import (
	"fmt"

	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// EmptySymbol marks an empty cell in a Layout.
const EmptySymbol = '-'

// Layout is an 8x8 grid of piece symbols, '-' for empty, row 0 = rank 8.
type Layout [BoardSize][BoardSize]byte

// Piece is a physical piece with a stable identity. The zero value is an
// empty square.
type Piece struct {
	ID     int
	Symbol byte
}

// IsEmpty returns true if p is the empty-square value.
func (p Piece) IsEmpty() bool {
	return p.ID == 0
}

// Colour returns the colour encoded by the symbol's case.
func (p Piece) Colour() Colour {
	if p.Symbol >= 'a' && p.Symbol <= 'z' {
		return Black
	}
	return White
}

// Type returns the piece type encoded by the symbol's letter.
func (p Piece) Type() PieceType {
	return PieceTypeFromLetter(p.Symbol)
}

// Is reports whether p is a piece of the given type and colour.
func (p Piece) Is(pt PieceType, colour Colour) bool {
	return !p.IsEmpty() && p.Type() == pt && p.Colour() == colour
}

// String returns a debug representation such as "N#63".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "-"
	}
	return fmt.Sprintf("%c#%d", p.Symbol, p.ID)
}

// InitialPieceID returns the id of a piece present in the starting layout,
// derived from its square: (col+1) + row*8.
func InitialPieceID(sq Square) int {
	return sq.Col + 1 + sq.Row*BoardSize
}

// Board is the live 8x8 grid of stably identified pieces.
//
// During the compile pass it is mutated only through Place, Relocate and
// Clear, each of which journals one op for the half-move being recorded.
// Commit hands the journal over to the transition log. Apply replays a
// recorded op without journaling.
type Board struct {
	Squares [BoardSize][BoardSize]Piece

	index   map[int]Square
	nextID  int
	journal []Op
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{
		index:  make(map[int]Square),
		nextID: InitialPieceIDs,
	}
}

// NewBoardFromLayout creates a board holding the layout's pieces, with ids
// derived from their starting squares.
func NewBoardFromLayout(layout Layout) *Board {
	b := NewBoard()
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			symbol := layout[row][col]
			if symbol == EmptySymbol || symbol == 0 {
				continue
			}
			sq := Square{Row: row, Col: col}
			b.set(sq, Piece{ID: InitialPieceID(sq), Symbol: symbol})
		}
	}
	return b
}

// At returns the piece on the square, or the empty value when the square is
// empty or off the board.
func (b *Board) At(sq Square) Piece {
	if !sq.OnBoard() {
		return Piece{}
	}
	return b.Squares[sq.Row][sq.Col]
}

// Find returns the square holding the piece with the given id.
func (b *Board) Find(id int) (Square, bool) {
	sq, ok := b.index[id]
	return sq, ok
}

// Count returns the number of pieces on the board.
func (b *Board) Count() int {
	return len(b.index)
}

// MintID returns a fresh piece id above every id handed out so far.
func (b *Board) MintID() int {
	b.nextID++
	return b.nextID
}

// Place puts a piece on an empty square.
func (b *Board) Place(p Piece, sq Square) error {
	if err := b.checkPlace(p, sq); err != nil {
		return err
	}
	b.set(sq, p)
	b.journal = append(b.journal, AddOp(p, sq))
	return nil
}

// Relocate moves the piece on from to to. A piece standing on to is removed
// first and journaled as a capture ahead of the move.
func (b *Board) Relocate(from, to Square) error {
	piece := b.At(from)
	if piece.IsEmpty() {
		return fmt.Errorf("relocate from empty square %s: %w", from, errors.ErrInconsistentBoard)
	}
	if !to.OnBoard() {
		return fmt.Errorf("relocate to %v: %w", to, errors.ErrInconsistentBoard)
	}
	if from == to {
		return fmt.Errorf("relocate %s onto itself: %w", from, errors.ErrInconsistentBoard)
	}
	if !b.At(to).IsEmpty() {
		if err := b.Clear(to); err != nil {
			return err
		}
	}
	b.unset(from)
	b.set(to, piece)
	b.journal = append(b.journal, MoveOp(piece, from, to))
	return nil
}

// Clear removes the piece standing on the square.
func (b *Board) Clear(sq Square) error {
	piece := b.At(sq)
	if piece.IsEmpty() {
		return fmt.Errorf("clear empty square %v: %w", sq, errors.ErrInconsistentBoard)
	}
	b.unset(sq)
	b.journal = append(b.journal, RemoveOp(piece, sq))
	return nil
}

// Commit returns the ops journaled since the previous commit and starts a
// fresh journal.
func (b *Board) Commit() []Op {
	ops := b.journal
	b.journal = nil
	return ops
}

// Pending returns the number of journaled ops not yet committed.
func (b *Board) Pending() int {
	return len(b.journal)
}

// Apply replays a recorded op without journaling it.
func (b *Board) Apply(op Op) error {
	switch op.Kind {
	case OpAdd:
		if err := b.checkPlace(Piece{ID: op.ID, Symbol: op.Symbol}, op.To); err != nil {
			return err
		}
		b.set(op.To, Piece{ID: op.ID, Symbol: op.Symbol})
		if op.ID > b.nextID {
			b.nextID = op.ID
		}
	case OpRemove:
		sq, ok := b.index[op.ID]
		if !ok {
			return fmt.Errorf("remove unknown piece %d: %w", op.ID, errors.ErrInconsistentBoard)
		}
		b.unset(sq)
	case OpMove:
		piece := b.At(op.From)
		if piece.ID != op.ID {
			return fmt.Errorf("move %s: piece %d not on %s: %w", op, op.ID, op.From, errors.ErrInconsistentBoard)
		}
		if !b.At(op.To).IsEmpty() {
			return fmt.Errorf("move %s: %s occupied: %w", op, op.To, errors.ErrInconsistentBoard)
		}
		b.unset(op.From)
		b.set(op.To, piece)
	default:
		return fmt.Errorf("unknown op kind %q: %w", op.Kind, errors.ErrInconsistentBoard)
	}
	return nil
}

// ApplyAll replays ops in order, stopping at the first failure.
func (b *Board) ApplyAll(ops []Op) error {
	for _, op := range ops {
		if err := b.Apply(op); err != nil {
			return err
		}
	}
	return nil
}

// Copy creates a deep copy of the board, journal excluded.
func (b *Board) Copy() *Board {
	newBoard := &Board{
		Squares: b.Squares,
		index:   make(map[int]Square, len(b.index)),
		nextID:  b.nextID,
	}
	for id, sq := range b.index {
		newBoard.index[id] = sq
	}
	return newBoard
}

// Layout returns the board's symbols as a Layout grid.
func (b *Board) Layout() Layout {
	var l Layout
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			l[row][col] = EmptySymbol
			if p := b.Squares[row][col]; !p.IsEmpty() {
				l[row][col] = p.Symbol
			}
		}
	}
	return l
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col].Is(King, colour) {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

func (b *Board) checkPlace(p Piece, sq Square) error {
	if !sq.OnBoard() {
		return fmt.Errorf("place %s off the board: %w", p, errors.ErrInconsistentBoard)
	}
	if p.IsEmpty() || !IsPieceSymbol(p.Symbol) {
		return fmt.Errorf("place invalid piece %s: %w", p, errors.ErrInconsistentBoard)
	}
	if !b.At(sq).IsEmpty() {
		return fmt.Errorf("place %s on occupied square %s: %w", p, sq, errors.ErrInconsistentBoard)
	}
	if _, dup := b.index[p.ID]; dup {
		return fmt.Errorf("place %s: id already on board: %w", p, errors.ErrInconsistentBoard)
	}
	return nil
}

func (b *Board) set(sq Square, p Piece) {
	b.Squares[sq.Row][sq.Col] = p
	b.index[p.ID] = sq
}

func (b *Board) unset(sq Square) {
	delete(b.index, b.Squares[sq.Row][sq.Col].ID)
	b.Squares[sq.Row][sq.Col] = Piece{}
}
