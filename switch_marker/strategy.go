package switch_marker

import (
	"fmt"
	"strings"

	"switch_finder_go/residue"
)

// Strategy marks switches on a dominant chain from a set of reconciled
// comparison chains. Comparison chains flagged MissingStructure take no part.
//
// The two strategies agree on freshly loaded chains. They differ when the
// dominant chain already carries marks: Sequential lets earlier marks join a
// new short run and keep it alive, Simultaneous judges the new evidence on
// its own before merging it in.
type Strategy interface {
	Name() string
	Mark(dominant *residue.Chain, comparisons []*residue.Chain, runLength int) error
}

const (
	NameSequential   = "sequential"
	NameSimultaneous = "simultaneous"
)

// StrategyByName returns the strategy registered under name.
func StrategyByName(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameSequential:
		return Sequential{}, nil
	case NameSimultaneous:
		return Simultaneous{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Sequential runs the pairwise marker with a run length of 1 against each
// comparison chain in turn, then sweeps the dominant chain and erases marked
// runs shorter than runLength. Marks present before the call are never
// erased and, on compared slots, count towards run length.
type Sequential struct{}

func (Sequential) Name() string { return NameSequential }

func (Sequential) Mark(dominant *residue.Chain, comparisons []*residue.Chain, runLength int) error {
	if err := check(dominant, comparisons, runLength); err != nil {
		return err
	}
	prior := dominant.Switches()
	for _, c := range comparisons {
		if c.MissingStructure {
			continue
		}
		if err := Mark(dominant, c, 1); err != nil {
			return err
		}
	}

	track := dominant.Switches()
	filterRuns(track, compared(dominant, comparisons), runLength, prior)
	for i, r := range dominant.Slots {
		if r != nil {
			r.Switch = track[i]
		}
	}
	return nil
}

// Simultaneous scores every position against all comparison chains at once:
// a position is a candidate if any chain disagrees there. The candidate track
// is filtered by runLength and then merged into the dominant chain. Runs can
// be assembled from several chains that each disagree only briefly.
type Simultaneous struct{}

func (Simultaneous) Name() string { return NameSimultaneous }

func (Simultaneous) Mark(dominant *residue.Chain, comparisons []*residue.Chain, runLength int) error {
	if err := check(dominant, comparisons, runLength); err != nil {
		return err
	}
	track := make([]residue.SwitchType, dominant.Len())
	for i, a := range dominant.Slots {
		for _, c := range comparisons {
			if c.MissingStructure {
				continue
			}
			b := c.Slots[i]
			if bothKnown(a, b) && a.Category != b.Category {
				track[i] = residue.Upgrade(track[i], residue.SwitchFor(a.Category, b.Category))
			}
		}
	}
	filterRuns(track, compared(dominant, comparisons), runLength, nil)
	apply(dominant, track)
	return nil
}
