// Package anchor finds the positional offset between two residue sequences
// by locating a window that occurs exactly once in both of them.
//
// Biological sequences rarely repeat a 32 residue run, so a single unique
// window is enough to pin two sequences together without a full
// dynamic-programming alignment.
package anchor

import (
	"bytes"
	"errors"
	"fmt"

	common "switch_finder_go/utils"
)

const (
	DefaultMatchLength = 32 // window length tried first
	MinMatchLength     = 4  // shortest window worth trying
	Stride             = 4  // step between candidate windows in seq1
)

var (
	// ErrNoAnchor: no window of the requested length is unique in both sequences.
	ErrNoAnchor = errors.New("no unique anchor found")
	// ErrMatchLength: the requested window length is not usable.
	ErrMatchLength = errors.New("invalid match length")
)

// Offset returns the offset such that seq1[i] corresponds to seq2[i+offset].
// Candidate windows are taken from seq1 every Stride positions; the first
// window that occurs exactly once in seq1 and exactly once in seq2 decides.
func Offset(seq1, seq2 []byte, matchLen int) (int, error) {
	if matchLen < 1 {
		return 0, fmt.Errorf("%w: %d", ErrMatchLength, matchLen)
	}
	for pos := 0; pos+matchLen <= len(seq1); pos += Stride {
		window := seq1[pos : pos+matchLen]
		if !unique(seq1, window) {
			continue
		}
		at := bytes.Index(seq2, window)
		if at < 0 || bytes.LastIndex(seq2, window) != at {
			continue
		}
		return at - pos, nil
	}
	return 0, fmt.Errorf("%w (match length %d)", ErrNoAnchor, matchLen)
}

// ReverseOffset runs Offset on both sequences reversed. The result is
// measured from the tails: reversed seq1[i] corresponds to reversed
// seq2[i+offset], so a positive value means seq2 runs past seq1's end.
func ReverseOffset(seq1, seq2 []byte, matchLen int) (int, error) {
	return Offset(common.Reverse(seq1), common.Reverse(seq2), matchLen)
}

// unique reports whether window occurs exactly once in seq, counting
// overlapping occurrences.
func unique(seq, window []byte) bool {
	first := bytes.Index(seq, window)
	return first >= 0 && bytes.LastIndex(seq, window) == first
}
