// Package chess provides core chess types: squares, pieces, the board model
// and the reversible transition log.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents a chess piece type independent of colour.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Symbol returns the layout symbol for a piece of this type and colour.
func (p PieceType) Symbol(colour Colour) byte {
	letter := p.Letter()
	if colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// PieceTypeFromLetter converts a piece letter of either case to a piece type.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPieceType
	}
}

// IsPieceSymbol returns true if c is a layout piece letter.
func IsPieceSymbol(c byte) bool {
	return PieceTypeFromLetter(c) != NoPieceType
}

// MoveClass categorizes the kinds of notated moves.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnCapture
	PieceMove
	KingsideCastle
	QueensideCastle
	UnknownMove
)

var moveClassNames = [...]string{
	PawnMove:        "PawnMove",
	PawnCapture:     "PawnCapture",
	PieceMove:       "PieceMove",
	KingsideCastle:  "KingsideCastle",
	QueensideCastle: "QueensideCastle",
	UnknownMove:     "UnknownMove",
}

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	if int(c) < len(moveClassNames) {
		return moveClassNames[c]
	}
	return "Unknown"
}

// Constants for board dimensions and piece ids.
const (
	BoardSize = 8

	// InitialPieceIDs is the size of the id range reserved for pieces
	// present in the starting layout. Promoted pieces are minted above it.
	InitialPieceIDs = BoardSize * BoardSize
)

// PawnDirection returns the row delta of a pawn advance: White moves
// towards row 0 (rank 8), Black towards row 7.
func PawnDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// PawnStartRow returns the row a pawn of the given colour starts on.
func PawnStartRow(colour Colour) int {
	if colour == White {
		return 6
	}
	return 1
}

// BackRow returns the row of the given colour's back rank.
func BackRow(colour Colour) int {
	if colour == White {
		return 7
	}
	return 0
}
