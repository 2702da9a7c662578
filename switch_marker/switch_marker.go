// Package switch_marker annotates the residues of a reconciled chain where
// secondary structure disagrees with other chains over a sustained run.
package switch_marker

import (
	"errors"
	"fmt"

	"switch_finder_go/residue"
)

var (
	ErrNotReconciled   = errors.New("chains are not reconciled")
	ErrRunLength       = errors.New("run length must be at least 1")
	ErrUnknownStrategy = errors.New("unknown marking strategy")
)

// Mark annotates target wherever its structure disagrees with reference for
// at least runLength comparable positions in a row. Positions where either
// side is a gap or has no known structure are skipped: they neither extend
// nor break a run. Existing annotations are only ever upgraded.
func Mark(target, reference *residue.Chain, runLength int) error {
	if err := check(target, []*residue.Chain{reference}, runLength); err != nil {
		return err
	}
	track := make([]residue.SwitchType, target.Len())
	scan(target, reference, runLength, track)
	apply(target, track)
	return nil
}

// bothKnown reports whether two slots can be compared structurally.
func bothKnown(a, b *residue.Residue) bool {
	return a != nil && b != nil && a.Category.Known() && b.Category.Known()
}

// scan writes the pairwise candidates for target against reference into track.
func scan(target, reference *residue.Chain, runLength int, track []residue.SwitchType) {
	run := make([]int, 0, runLength)
	for i, a := range target.Slots {
		b := reference.Slots[i]
		if !bothKnown(a, b) {
			continue
		}
		if a.Category == b.Category {
			run = run[:0]
			continue
		}
		run = append(run, i)
		switch {
		case len(run) == runLength:
			for _, j := range run {
				track[j] = residue.Upgrade(track[j],
					residue.SwitchFor(target.Slots[j].Category, reference.Slots[j].Category))
			}
		case len(run) > runLength:
			track[i] = residue.Upgrade(track[i], residue.SwitchFor(a.Category, b.Category))
		}
	}
}

// compared reports, per slot, whether the dominant residue can be compared
// with at least one comparison chain that has structure.
func compared(dominant *residue.Chain, comparisons []*residue.Chain) []bool {
	mask := make([]bool, dominant.Len())
	for i, a := range dominant.Slots {
		for _, c := range comparisons {
			if !c.MissingStructure && bothKnown(a, c.Slots[i]) {
				mask[i] = true
				break
			}
		}
	}
	return mask
}

// filterRuns drops every marked run of the dominant chain shorter than
// runLength. A dropped position falls back to floor (nil means SwitchNone).
// Slots outside mask are not part of any run and do not break one, the same
// way Mark skips slots it cannot compare.
func filterRuns(track []residue.SwitchType, mask []bool, runLength int, floor []residue.SwitchType) {
	var run []int
	flush := func() {
		if len(run) > 0 && len(run) < runLength {
			for _, j := range run {
				if floor != nil {
					track[j] = floor[j]
				} else {
					track[j] = residue.SwitchNone
				}
			}
		}
		run = run[:0]
	}
	for i := range track {
		if !mask[i] {
			continue
		}
		if track[i] >= residue.SwitchUnassigned {
			run = append(run, i)
			continue
		}
		flush()
	}
	flush()
}

func apply(target *residue.Chain, track []residue.SwitchType) {
	for i, r := range target.Slots {
		if r != nil {
			r.Switch = residue.Upgrade(r.Switch, track[i])
		}
	}
}

func check(dominant *residue.Chain, others []*residue.Chain, runLength int) error {
	if runLength < 1 {
		return fmt.Errorf("%w: %d", ErrRunLength, runLength)
	}
	if dominant == nil {
		return fmt.Errorf("%w: nil dominant chain", ErrNotReconciled)
	}
	for _, c := range others {
		if c == nil {
			return fmt.Errorf("%w: nil comparison chain", ErrNotReconciled)
		}
		if c.Len() != dominant.Len() {
			return fmt.Errorf("%w: %s has %d slots, %s has %d",
				ErrNotReconciled, c.ID, c.Len(), dominant.ID, dominant.Len())
		}
	}
	return nil
}
