// Package parser splits movetext into header tags, annotations and SAN move
// tokens, and decodes SAN tokens into structured moves.
package parser

import (
	"github.com/lgbarn/pgn-replay-go/internal/chess"
)

// TokenType represents the type of a movetext token.
type TokenType int

const (
	MoveToken TokenType = iota
	AnnotationToken
)

var tokenTypeNames = [...]string{
	MoveToken:       "MOVE",
	AnnotationToken: "ANNOTATION",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token is one element of the cleaned token stream: a SAN move, or a
// placeholder referring to an entry of Movetext.Annotations.
type Token struct {
	Type TokenType

	// Text is the SAN token, or the placeholder for annotations.
	Text string

	// Annotation indexes Movetext.Annotations for AnnotationToken.
	Annotation int
}

// Movetext is the tokenized form of one game.
type Movetext struct {
	// Headers holds the seven roster tags; missing tags read as "".
	Headers chess.Headers

	// SetupFEN is the value of a FEN tag, if present.
	SetupFEN string

	// Tokens is the ordered main-line stream.
	Tokens []Token

	// Annotations holds every brace annotation in encounter order.
	Annotations []Annotation
}

// Moves returns the SAN tokens in order, one per half-move.
func (m *Movetext) Moves() []string {
	var moves []string
	for _, tok := range m.Tokens {
		if tok.Type == MoveToken {
			moves = append(moves, tok.Text)
		}
	}
	return moves
}
