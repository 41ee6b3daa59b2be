package chess

// Move is a decoded SAN token. It carries everything the notation states
// about a move; the source square is found later against a board.
type Move struct {
	// The move text as it appeared in the movetext (e.g. "Nbd7", "exd6", "O-O").
	Text string

	// Class of move (pawn push, pawn capture, piece move, castle).
	Class MoveClass

	// The piece being moved. Pawn for both pawn classes, King for castles.
	Piece PieceType

	// Disambiguators; zero when not given.
	FromFile File
	FromRank Rank

	// Destination square. Unset for castles.
	To Square

	// Whether the notation marks a capture.
	Capture bool

	// Promoted piece type, NoPieceType if not a promotion.
	Promotion PieceType
}

// IsCastle returns true if this move is a castling move.
func (m *Move) IsCastle() bool {
	return m.Class == KingsideCastle || m.Class == QueensideCastle
}

// IsPromotion returns true if this move promotes a pawn.
func (m *Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// HasFullSource returns true if both file and rank of the source are given.
func (m *Move) HasFullSource() bool {
	return m.FromFile != 0 && m.FromRank != 0
}

// Matches reports whether sq satisfies the move's disambiguators.
func (m *Move) Matches(sq Square) bool {
	if m.FromFile != 0 && sq.File() != m.FromFile {
		return false
	}
	if m.FromRank != 0 && sq.Rank() != m.FromRank {
		return false
	}
	return true
}
