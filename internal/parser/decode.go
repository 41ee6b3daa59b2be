package parser

import (
	"fmt"
	"strings"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// isFile returns true if c is a valid file character.
func isFile(c byte) bool {
	return chess.File(c).IsValid()
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return chess.Rank(c).IsValid()
}

// pieceLetter returns the piece type of an uppercase SAN piece letter.
// Lowercase letters are not accepted: 'b' is a file.
func pieceLetter(c byte) chess.PieceType {
	switch c {
	case 'K', 'Q', 'R', 'B', 'N':
		return chess.PieceTypeFromLetter(c)
	default:
		return chess.NoPieceType
	}
}

// promotionPiece returns the piece type a pawn may promote to.
func promotionPiece(c byte) chess.PieceType {
	switch pt := chess.PieceTypeFromLetter(c); pt {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
		return pt
	default:
		return chess.NoPieceType
	}
}

// isCapture returns true if c marks a capture.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isSuffix returns true if c is a check, mate or evaluation suffix.
func isSuffix(c byte) bool {
	return c == '+' || c == '#' || c == '!' || c == '?'
}

// stripSuffixes removes check, mate and evaluation marks and a trailing
// "e.p." from a move token.
func stripSuffixes(s string) string {
	s = strings.TrimRightFunc(s, func(r rune) bool { return r < 0x80 && isSuffix(byte(r)) })
	s = strings.TrimSuffix(s, "e.p.")
	return strings.TrimRightFunc(s, func(r rune) bool { return r < 0x80 && isSuffix(byte(r)) })
}

// moveDecoder walks a move token one character at a time.
type moveDecoder struct {
	s   string
	pos int
}

func (d *moveDecoder) currentChar() byte {
	if d.pos >= len(d.s) {
		return 0
	}
	return d.s[d.pos]
}

func (d *moveDecoder) advance() {
	if d.pos < len(d.s) {
		d.pos++
	}
}

func (d *moveDecoder) done() bool {
	return d.pos >= len(d.s)
}

// DecodeMove parses a SAN token into a chess.Move. It recognizes grammar
// only; whether the move is playable is decided against a board later.
func DecodeMove(text string) (*chess.Move, error) {
	move := &chess.Move{Text: text, Class: chess.UnknownMove}
	d := &moveDecoder{s: stripSuffixes(text)}

	var ok bool
	switch c := d.currentChar(); {
	case isCastlingChar(c):
		ok = d.castle(move)
	case isFile(c):
		ok = d.pawn(move)
	case pieceLetter(c) != chess.NoPieceType:
		ok = d.piece(move)
	}

	if !ok || !d.done() {
		return nil, fmt.Errorf("cannot decode move %q: %w", text, errors.ErrIllegalMove)
	}
	return move, nil
}

// castle decodes O-O and O-O-O, with or without separators.
func (d *moveDecoder) castle(move *chess.Move) bool {
	count := 0
	for isCastlingChar(d.currentChar()) {
		count++
		d.advance()
		if d.currentChar() == '-' {
			d.advance()
		}
	}
	move.Piece = chess.King
	switch count {
	case 2:
		move.Class = chess.KingsideCastle
	case 3:
		move.Class = chess.QueensideCastle
	default:
		return false
	}
	return true
}

// pawn decodes e4, exd5, ed5, e8=Q and exd8Q.
func (d *moveDecoder) pawn(move *chess.Move) bool {
	move.Piece = chess.Pawn
	file := chess.File(d.currentChar())
	d.advance()

	switch c := d.currentChar(); {
	case isRank(c):
		move.Class = chess.PawnMove
		move.To = chess.NewSquare(file, chess.Rank(c))
		d.advance()
	case isCapture(c) || isFile(c):
		if isCapture(c) {
			d.advance()
		}
		toFile := d.currentChar()
		d.advance()
		toRank := d.currentChar()
		d.advance()
		if !isFile(toFile) || !isRank(toRank) {
			return false
		}
		move.Class = chess.PawnCapture
		move.Capture = true
		move.FromFile = file
		move.To = chess.NewSquare(chess.File(toFile), chess.Rank(toRank))
	default:
		return false
	}

	// Without '=' only an uppercase letter promotes: "exd8Q".
	hasEquals := d.currentChar() == '='
	if hasEquals {
		d.advance()
	}
	c := d.currentChar()
	pt := promotionPiece(c)
	if pt != chess.NoPieceType && (hasEquals || (c >= 'A' && c <= 'Z')) {
		move.Promotion = pt
		d.advance()
	} else if hasEquals {
		return false
	}
	return true
}

// piece decodes Nf3, Nbd7, R1e2, Qh4xe1, Ng1-f3 and the like. The last two
// coordinates are the destination; any before them disambiguate.
func (d *moveDecoder) piece(move *chess.Move) bool {
	move.Class = chess.PieceMove
	move.Piece = pieceLetter(d.currentChar())
	d.advance()

	var coords []byte
	for !d.done() {
		c := d.currentChar()
		switch {
		case isCapture(c):
			move.Capture = true
		case c == '-':
		case isFile(c) || isRank(c):
			coords = append(coords, c)
		default:
			return false
		}
		d.advance()
	}

	n := len(coords)
	if n < 2 || n > 4 || !isFile(coords[n-2]) || !isRank(coords[n-1]) {
		return false
	}
	move.To = chess.NewSquare(chess.File(coords[n-2]), chess.Rank(coords[n-1]))

	switch prefix := coords[:n-2]; len(prefix) {
	case 1:
		if isFile(prefix[0]) {
			move.FromFile = chess.File(prefix[0])
		} else {
			move.FromRank = chess.Rank(prefix[0])
		}
	case 2:
		if !isFile(prefix[0]) || !isRank(prefix[1]) {
			return false
		}
		move.FromFile = chess.File(prefix[0])
		move.FromRank = chess.Rank(prefix[1])
	}
	return true
}
