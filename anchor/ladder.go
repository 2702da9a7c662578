package anchor

import (
	"errors"
	"fmt"
)

// Result is a successful anchor together with the window length that found it.
type Result struct {
	Offset      int
	MatchLength int
}

// Ladder tries window lengths in order until one anchors. Short windows are
// far more likely to be unique by chance, so the length that succeeded is
// always reported back to the caller.
type Ladder struct {
	Lengths []int
}

// DefaultLadder tries DefaultMatchLength, then MinMatchLength.
func DefaultLadder() Ladder {
	return Ladder{Lengths: []int{DefaultMatchLength, MinMatchLength}}
}

// NewLadder starts at matchLen and falls back to minLen when they differ.
func NewLadder(matchLen, minLen int) Ladder {
	if minLen <= 0 || minLen >= matchLen {
		return Ladder{Lengths: []int{matchLen}}
	}
	return Ladder{Lengths: []int{matchLen, minLen}}
}

func (l Ladder) Offset(seq1, seq2 []byte) (Result, error) {
	return l.try(seq1, seq2, Offset)
}

func (l Ladder) ReverseOffset(seq1, seq2 []byte) (Result, error) {
	return l.try(seq1, seq2, ReverseOffset)
}

func (l Ladder) try(seq1, seq2 []byte, find func([]byte, []byte, int) (int, error)) (Result, error) {
	if len(l.Lengths) == 0 {
		return Result{}, fmt.Errorf("%w: empty ladder", ErrMatchLength)
	}
	var errs []error
	for _, n := range l.Lengths {
		off, err := find(seq1, seq2, n)
		if err == nil {
			return Result{Offset: off, MatchLength: n}, nil
		}
		if !errors.Is(err, ErrNoAnchor) {
			return Result{}, err
		}
		errs = append(errs, err)
	}
	return Result{}, errors.Join(errs...)
}
