package chess

import "testing"

func TestParseSquare(t *testing.T) {
	tests := []struct {
		input string
		want  Square
		ok    bool
	}{
		{"a8", Square{Row: 0, Col: 0}, true},
		{"h1", Square{Row: 7, Col: 7}, true},
		{"e4", Square{Row: 4, Col: 4}, true},
		{"d5", Square{Row: 3, Col: 3}, true},
		{"i1", Square{}, false},
		{"a9", Square{}, false},
		{"a0", Square{}, false},
		{"e", Square{}, false},
		{"e44", Square{}, false},
		{"E4", Square{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseSquare(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseSquare(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSquareStringRoundTrip(t *testing.T) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			s := Square{Row: row, Col: col}
			back, ok := ParseSquare(s.String())
			if !ok || back != s {
				t.Errorf("ParseSquare(%v.String()) = %v, %v", s, back, ok)
			}
		}
	}
	if got := (Square{Row: -1, Col: 3}).String(); got != "??" {
		t.Errorf("off-board String() = %q; want ??", got)
	}
}

func TestCoordinateConversions(t *testing.T) {
	tests := []struct {
		rank Rank
		row  int
	}{
		{'8', 0},
		{'1', 7},
		{'4', 4},
	}
	for _, tt := range tests {
		if got := RankToRow(tt.rank); got != tt.row {
			t.Errorf("RankToRow(%c) = %d; want %d", tt.rank, got, tt.row)
		}
		if got := RowToRank(tt.row); got != tt.rank {
			t.Errorf("RowToRank(%d) = %c; want %c", tt.row, got, tt.rank)
		}
	}

	if got := FileToCol('c'); got != 2 {
		t.Errorf("FileToCol(c) = %d; want 2", got)
	}
	if got := ColToFile(7); got != 'h' {
		t.Errorf("ColToFile(7) = %c; want h", got)
	}
}

func TestSquareOffset(t *testing.T) {
	e4 := Square{Row: 4, Col: 4}
	if got := e4.Offset(-1, 1); got.String() != "f5" {
		t.Errorf("e4.Offset(-1, 1) = %v; want f5", got)
	}
	if (Square{Row: 0, Col: 0}).Offset(-1, 0).OnBoard() {
		t.Error("a8.Offset(-1, 0) should be off the board")
	}
	if got := e4.Index(); got != 36 {
		t.Errorf("e4.Index() = %d; want 36", got)
	}
}
