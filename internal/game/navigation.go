package game

import (
	"slices"

	"github.com/lgbarn/pgn-replay-go/internal/chess"
	"github.com/lgbarn/pgn-replay-go/internal/errors"
)

// StepForward applies the next half-move and returns the ops applied.
// At the end of the game it returns nil, nil.
func (s *Session) StepForward() ([]chess.Op, error) {
	t, ok := s.log.At(s.cursor)
	if !ok {
		return nil, nil
	}
	if err := s.board.ApplyAll(t.Forward); err != nil {
		return nil, errors.Wrapf(err, "replay half-move %d", s.cursor+1)
	}
	s.cursor++
	return slices.Clone(t.Forward), nil
}

// StepBackward undoes the current half-move and returns the ops applied.
// At the start of the game it returns nil, nil.
func (s *Session) StepBackward() ([]chess.Op, error) {
	t, ok := s.log.At(s.cursor - 1)
	if !ok {
		return nil, nil
	}
	if err := s.board.ApplyAll(t.Backward); err != nil {
		return nil, errors.Wrapf(err, "undo half-move %d", s.cursor)
	}
	s.cursor--
	return slices.Clone(t.Backward), nil
}

// SeekTo moves the cursor to ply by applying whole transitions and returns
// every op applied, in order. A target outside 0..Len() or equal to the
// cursor is a no-op.
func (s *Session) SeekTo(ply int) ([]chess.Op, error) {
	if ply < 0 || ply > s.log.Len() {
		return nil, nil
	}

	var applied []chess.Op
	for s.cursor < ply {
		ops, err := s.StepForward()
		if err != nil {
			return applied, err
		}
		applied = append(applied, ops...)
	}
	for s.cursor > ply {
		ops, err := s.StepBackward()
		if err != nil {
			return applied, err
		}
		applied = append(applied, ops...)
	}
	return applied, nil
}

// Reset returns the cursor to the starting position.
func (s *Session) Reset() ([]chess.Op, error) {
	return s.SeekTo(0)
}

// End moves the cursor past the last half-move.
func (s *Session) End() ([]chess.Op, error) {
	return s.SeekTo(s.log.Len())
}
