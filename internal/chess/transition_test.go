package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOpInverse(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		want Op
	}{
		{
			name: "add",
			op:   Op{Kind: OpAdd, ID: 65, Symbol: 'Q', To: sq("e8")},
			want: Op{Kind: OpRemove, ID: 65, Symbol: 'Q', From: sq("e8")},
		},
		{
			name: "remove",
			op:   Op{Kind: OpRemove, ID: 12, Symbol: 'p', From: sq("d7")},
			want: Op{Kind: OpAdd, ID: 12, Symbol: 'p', To: sq("d7")},
		},
		{
			name: "move",
			op:   Op{Kind: OpMove, ID: 63, Symbol: 'N', From: sq("g1"), To: sq("f3")},
			want: Op{Kind: OpMove, ID: 63, Symbol: 'N', From: sq("f3"), To: sq("g1")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.op.Inverse()
			if got != tt.want {
				t.Errorf("Inverse() = %+v; want %+v", got, tt.want)
			}
			if back := got.Inverse(); back != tt.op {
				t.Errorf("Inverse().Inverse() = %+v; want %+v", back, tt.op)
			}
		})
	}
}

func TestOpWireForm(t *testing.T) {
	tests := []struct {
		op   Op
		wire string
	}{
		{Op{Kind: OpAdd, ID: 65, Symbol: 'Q', To: sq("e8")}, "a:65:Q:e8"},
		{Op{Kind: OpRemove, ID: 12}, "r:12"},
		{Op{Kind: OpMove, ID: 63, From: sq("g1"), To: sq("f3")}, "m:63:g1:f3"},
	}
	for _, tt := range tests {
		t.Run(tt.wire, func(t *testing.T) {
			if got := tt.op.String(); got != tt.wire {
				t.Errorf("String() = %q; want %q", got, tt.wire)
			}
			parsed, err := ParseOp(tt.wire)
			if err != nil {
				t.Fatalf("ParseOp(%q) error = %v", tt.wire, err)
			}
			if parsed.String() != tt.wire {
				t.Errorf("ParseOp(%q).String() = %q", tt.wire, parsed.String())
			}
		})
	}
}

func TestParseOpErrors(t *testing.T) {
	for _, input := range []string{"", "a", "x:1", "a:1:Z:e4", "a:1:Q:z9", "m:1:e2", "r:1:e4", "m:x:e2:e4", "ab:1"} {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseOp(input); err == nil {
				t.Errorf("ParseOp(%q) should fail", input)
			}
		})
	}
}

func TestNewTransitionBackwardOrder(t *testing.T) {
	forward := []Op{
		RemoveOp(Piece{ID: 12, Symbol: 'p'}, sq("d7")),
		MoveOp(Piece{ID: 53, Symbol: 'P'}, sq("e6"), sq("d7")),
	}
	tr := NewTransition(forward)

	want := []Op{forward[1].Inverse(), forward[0].Inverse()}
	if diff := cmp.Diff(want, tr.Backward); diff != "" {
		t.Errorf("Backward mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"m:53:d7:e6", "a:12:p:d7"}, tr.WireBackward()); diff != "" {
		t.Errorf("WireBackward mismatch (-want +got):\n%s", diff)
	}

	forward[0] = Op{}
	if tr.Forward[0].ID != 12 {
		t.Error("Transition shares its forward list with the caller")
	}
}

func TestTransitionLog(t *testing.T) {
	log := NewTransitionLog()
	log.Append([]Op{MoveOp(Piece{ID: 53, Symbol: 'P'}, sq("e2"), sq("e4"))})
	log.Append([]Op{MoveOp(Piece{ID: 13, Symbol: 'p'}, sq("e7"), sq("e5"))})

	if log.Len() != 2 {
		t.Fatalf("Len() = %d; want 2", log.Len())
	}
	tr, ok := log.At(1)
	if !ok || tr.WireForward()[0] != "m:13:e7:e5" {
		t.Errorf("At(1) = %v, %v; want m:13:e7:e5", tr.WireForward(), ok)
	}
	if _, ok := log.At(2); ok {
		t.Error("At(2) should be out of range")
	}
	if _, ok := log.At(-1); ok {
		t.Error("At(-1) should be out of range")
	}
	if got := len(log.Entries()); got != 2 {
		t.Errorf("len(Entries()) = %d; want 2", got)
	}
}
