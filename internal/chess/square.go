package chess

// Rank represents a chess rank character - '1' to '8'.
type Rank byte

// File represents a chess file character - 'a' to 'h'.
type File byte

// Coordinate bases.
const (
	RankBase  = '1'
	FileBase  = 'a'
	FirstRank = Rank(RankBase)
	LastRank  = Rank(RankBase + BoardSize - 1)
	FirstFile = File(FileBase)
	LastFile  = File(FileBase + BoardSize - 1)
)

// IsValid reports whether r is a rank character.
func (r Rank) IsValid() bool {
	return r >= FirstRank && r <= LastRank
}

// IsValid reports whether f is a file character.
func (f File) IsValid() bool {
	return f >= FirstFile && f <= LastFile
}

// RankToRow converts a rank character to a zero-based row (rank 8 is row 0).
func RankToRow(rank Rank) int {
	return BoardSize - int(rank-RankBase) - 1
}

// FileToCol converts a file character to a zero-based column.
func FileToCol(file File) int {
	return int(file - FileBase)
}

// RowToRank converts a zero-based row back to a rank character.
func RowToRank(row int) Rank {
	return Rank(RankBase + BoardSize - 1 - row)
}

// ColToFile converts a zero-based column back to a file character.
func ColToFile(col int) File {
	return File(FileBase + col)
}

// Square is a position on the board addressed by zero-based row and column.
// Row 0 is rank 8, column 0 is file a.
type Square struct {
	Row int
	Col int
}

// NewSquare creates a square from a file and rank character.
func NewSquare(file File, rank Rank) Square {
	return Square{Row: RankToRow(rank), Col: FileToCol(file)}
}

// ParseSquare parses an algebraic square such as "e4".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return Square{}, false
	}
	file, rank := File(s[0]), Rank(s[1])
	if !file.IsValid() || !rank.IsValid() {
		return Square{}, false
	}
	return NewSquare(file, rank), true
}

// OnBoard reports whether the square lies within the 8x8 grid.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// File returns the file character of the square.
func (s Square) File() File {
	return ColToFile(s.Col)
}

// Rank returns the rank character of the square.
func (s Square) Rank() Rank {
	return RowToRank(s.Row)
}

// Offset returns the square displaced by the given row and column deltas.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// Index returns the zero-based square index in layout reading order.
func (s Square) Index() int {
	return s.Row*BoardSize + s.Col
}

// String returns the algebraic form of the square, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return "??"
	}
	return string([]byte{byte(s.File()), byte(s.Rank())})
}
