// Package super_aligner reconciles two chains so that equal slot indices
// refer to equivalent residues. It only ever inserts gap slots: residues are
// never dropped, replaced or reordered.
package super_aligner

import (
	"errors"
	"fmt"

	"switch_finder_go/anchor"
	"switch_finder_go/residue"
)

// MinSegment is the mismatch score at which interior repair re-anchors.
const MinSegment = 8

var (
	ErrHeadAnchor = errors.New("head alignment failed")
	ErrTailAnchor = errors.New("tail alignment failed")
	ErrNilChain   = errors.New("nil chain")
)

// Options tunes a reconciliation. The zero value is not usable; start from
// DefaultOptions.
type Options struct {
	Ladder        anchor.Ladder // head and tail anchoring
	RepairLadder  anchor.Ladder // interior repair anchoring
	MinSegment    int
	MaxIterations int // per repair pass; 0 means combined chain length

	// UseNumbering takes the head offset from FirstIndex when both chains
	// share a known provenance. Only set it when that numbering really is
	// shared: ss.txt chains, for one, all start at 1.
	UseNumbering bool
}

// DefaultOptions anchors heads and tails at the default window length only
// and lets interior repair fall back to the minimum length. Numbering is
// not trusted.
func DefaultOptions() Options {
	return Options{
		Ladder:       anchor.Ladder{Lengths: []int{anchor.DefaultMatchLength}},
		RepairLadder: anchor.DefaultLadder(),
		MinSegment:   MinSegment,
	}
}

// Insertion records n gaps inserted before physical slot At.
type Insertion struct {
	At    int
	Count int
}

// Report describes what a reconciliation did.
type Report struct {
	Head              anchor.Result
	HeadFromNumbering bool
	Tail              anchor.Result
	Forward           Pass // interior repair after head alignment
	Backward          Pass // interior repair after tail alignment
	Padded            int  // gaps added to even out lengths at the very end

	// Gap insertions applied to the dominant chain, in order. Replaying them
	// on a chain that was aligned to the dominant before keeps it aligned.
	DominantInsertions []Insertion
	ChainInsertions    []Insertion
}

// Reconcile aligns chain against dominant in place. On success both chains
// have the same length and FirstIndex. Head or tail anchor failure is
// returned as an error and leaves both chains exactly as they were.
func Reconcile(dominant, chain *residue.Chain, opts Options) (Report, error) {
	var rep Report
	if dominant == nil || chain == nil {
		return rep, ErrNilChain
	}
	if opts.MinSegment <= 0 {
		opts.MinSegment = MinSegment
	}

	domSave, chSave := snapshot(dominant), snapshot(chain)
	restore := func() {
		domSave.restore(dominant)
		chSave.restore(chain)
	}

	dom := &view{c: dominant, log: &rep.DominantInsertions}
	ch := &view{c: chain, log: &rep.ChainInsertions}

	// head
	if opts.UseNumbering && sameNumbering(dominant, chain) {
		rep.Head = anchor.Result{Offset: dominant.FirstIndex - chain.FirstIndex}
		rep.HeadFromNumbering = true
	} else {
		res, err := opts.Ladder.Offset(dominant.Codes(), chain.Codes())
		if err != nil {
			return Report{}, fmt.Errorf("%w: %s vs %s: %w", ErrHeadAnchor, dominant.ID, chain.ID, err)
		}
		rep.Head = res
	}
	shift(dom, ch, 0, rep.Head.Offset)
	rep.Forward = repair(dom, ch, opts)

	// tail
	res, err := opts.Ladder.ReverseOffset(dominant.Codes(), chain.Codes())
	if err != nil {
		restore()
		return Report{}, fmt.Errorf("%w: %s vs %s: %w", ErrTailAnchor, dominant.ID, chain.ID, err)
	}
	rep.Tail = res
	shift(dom.reverse(), ch.reverse(), 0, rep.Tail.Offset)
	rep.Backward = repair(dom.reverse(), ch.reverse(), opts)

	if d := dominant.Len() - chain.Len(); d > 0 {
		ch.insert(chain.Len(), d)
		rep.Padded = d
	} else if d < 0 {
		dom.insert(dominant.Len(), -d)
		rep.Padded = -d
	}

	first := min(dominant.FirstIndex, chain.FirstIndex)
	dominant.FirstIndex = first
	chain.FirstIndex = first
	return rep, nil
}

// Replay applies recorded insertions to c in order.
func Replay(c *residue.Chain, ins []Insertion) error {
	for _, in := range ins {
		if err := c.InsertGaps(in.At, in.Count); err != nil {
			return err
		}
	}
	return nil
}

// sameNumbering reports whether both chains come from one known source, in
// which case their FirstIndex values are directly comparable.
func sameNumbering(a, b *residue.Chain) bool {
	return a.Provenance != residue.ProvenanceUnknown && a.Provenance == b.Provenance
}

// shift inserts |offset| gaps at position at of whichever view is behind:
// a positive offset means the second view has extra residues there.
func shift(dom, ch *view, at, offset int) {
	switch {
	case offset > 0:
		dom.insert(at, offset)
	case offset < 0:
		ch.insert(at, -offset)
	}
}

type saved struct {
	slots []*residue.Residue
	first int
}

func snapshot(c *residue.Chain) saved {
	return saved{slots: append([]*residue.Residue(nil), c.Slots...), first: c.FirstIndex}
}

func (s saved) restore(c *residue.Chain) {
	c.Slots = s.slots
	c.FirstIndex = s.first
}
