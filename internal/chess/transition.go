package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// OpKind identifies a reversible board operation.
type OpKind byte

const (
	OpAdd    OpKind = 'a'
	OpRemove OpKind = 'r'
	OpMove   OpKind = 'm'
)

// Op is a single reversible board operation.
//
// Remove ops also carry the symbol and square of the removed piece so that
// their inverse can be constructed; the wire form only transmits the id.
type Op struct {
	Kind   OpKind
	ID     int
	Symbol byte
	From   Square
	To     Square
}

// AddOp returns an op placing a piece on a square.
func AddOp(p Piece, sq Square) Op {
	return Op{Kind: OpAdd, ID: p.ID, Symbol: p.Symbol, To: sq}
}

// RemoveOp returns an op taking a piece off a square.
func RemoveOp(p Piece, sq Square) Op {
	return Op{Kind: OpRemove, ID: p.ID, Symbol: p.Symbol, From: sq}
}

// MoveOp returns an op relocating a piece.
func MoveOp(p Piece, from, to Square) Op {
	return Op{Kind: OpMove, ID: p.ID, Symbol: p.Symbol, From: from, To: to}
}

// Inverse returns the op that undoes o.
func (o Op) Inverse() Op {
	switch o.Kind {
	case OpAdd:
		return Op{Kind: OpRemove, ID: o.ID, Symbol: o.Symbol, From: o.To}
	case OpRemove:
		return Op{Kind: OpAdd, ID: o.ID, Symbol: o.Symbol, To: o.From}
	default:
		return Op{Kind: OpMove, ID: o.ID, Symbol: o.Symbol, From: o.To, To: o.From}
	}
}

// String returns the colon-delimited wire form consumed by renderers:
// a:<id>:<symbol>:<square>, r:<id> or m:<id>:<from>:<to>.
func (o Op) String() string {
	switch o.Kind {
	case OpAdd:
		return fmt.Sprintf("a:%d:%c:%s", o.ID, o.Symbol, o.To)
	case OpRemove:
		return fmt.Sprintf("r:%d", o.ID)
	case OpMove:
		return fmt.Sprintf("m:%d:%s:%s", o.ID, o.From, o.To)
	default:
		return "?"
	}
}

// ParseOp decodes the wire form of an op. Remove ops decode without symbol
// or square, since the wire form does not carry them.
func ParseOp(s string) (Op, error) {
	fields := strings.Split(s, ":")
	if len(fields) < 2 || len(fields[0]) != 1 {
		return Op{}, fmt.Errorf("malformed op %q", s)
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return Op{}, fmt.Errorf("malformed op id in %q: %w", s, err)
	}

	op := Op{Kind: OpKind(fields[0][0]), ID: id}
	switch op.Kind {
	case OpAdd:
		if len(fields) != 4 || len(fields[2]) != 1 || !IsPieceSymbol(fields[2][0]) {
			return Op{}, fmt.Errorf("malformed add op %q", s)
		}
		sq, ok := ParseSquare(fields[3])
		if !ok {
			return Op{}, fmt.Errorf("malformed square in %q", s)
		}
		op.Symbol = fields[2][0]
		op.To = sq
	case OpRemove:
		if len(fields) != 2 {
			return Op{}, fmt.Errorf("malformed remove op %q", s)
		}
	case OpMove:
		if len(fields) != 4 {
			return Op{}, fmt.Errorf("malformed move op %q", s)
		}
		from, okFrom := ParseSquare(fields[2])
		to, okTo := ParseSquare(fields[3])
		if !okFrom || !okTo {
			return Op{}, fmt.Errorf("malformed square in %q", s)
		}
		op.From, op.To = from, to
	default:
		return Op{}, fmt.Errorf("unknown op kind %q", fields[0])
	}
	return op, nil
}

// Transition holds the ops of one half-move. Both lists are computed once
// when the half-move is committed and never modified afterwards.
type Transition struct {
	Forward  []Op
	Backward []Op
}

// NewTransition seals a half-move's forward ops. The backward list holds the
// inverses in reverse order, so applying it in order undoes Forward.
func NewTransition(forward []Op) Transition {
	fw := make([]Op, len(forward))
	copy(fw, forward)
	bw := make([]Op, len(forward))
	for i, op := range forward {
		bw[len(forward)-1-i] = op.Inverse()
	}
	return Transition{Forward: fw, Backward: bw}
}

// WireForward returns the forward ops in wire form.
func (t Transition) WireForward() []string {
	return wireOps(t.Forward)
}

// WireBackward returns the backward ops in wire form.
func (t Transition) WireBackward() []string {
	return wireOps(t.Backward)
}

func wireOps(ops []Op) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.String()
	}
	return out
}

// TransitionLog is the append-only, half-move indexed record of transitions.
// Entry i takes the position after half-move i to the one after half-move i+1.
type TransitionLog struct {
	entries []Transition
}

// NewTransitionLog creates an empty log.
func NewTransitionLog() *TransitionLog {
	return &TransitionLog{}
}

// Append seals forward into a transition and appends it.
func (l *TransitionLog) Append(forward []Op) {
	l.entries = append(l.entries, NewTransition(forward))
}

// Len returns the number of recorded half-moves.
func (l *TransitionLog) Len() int {
	return len(l.entries)
}

// At returns the transition recorded for the given zero-based half-move.
func (l *TransitionLog) At(i int) (Transition, bool) {
	if i < 0 || i >= len(l.entries) {
		return Transition{}, false
	}
	return l.entries[i], true
}

// Entries returns a copy of all recorded transitions.
func (l *TransitionLog) Entries() []Transition {
	out := make([]Transition, len(l.entries))
	copy(out, l.entries)
	return out
}
