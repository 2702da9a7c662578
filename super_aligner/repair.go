package super_aligner

import (
	"switch_finder_go/anchor"
	"switch_finder_go/residue"
)

// RepairOutcome is the terminal state of one interior repair pass.
type RepairOutcome int

const (
	RepairComplete       RepairOutcome = iota // scanned to the end, or the last segment anchored in place
	RepairNoAnchor                            // a misaligned segment could not be anchored; the rest is left as is
	RepairIterationLimit                      // MaxIterations repairs were made and more were still wanted
)

func (o RepairOutcome) String() string {
	switch o {
	case RepairNoAnchor:
		return "no-anchor"
	case RepairIterationLimit:
		return "iteration-limit"
	default:
		return "complete"
	}
}

// Pass summarizes one interior repair pass.
type Pass struct {
	Outcome RepairOutcome
	Repairs int
	Anchors []anchor.Result
	Err     error // the anchor failure behind RepairNoAnchor
}

// repair walks both views from the head, re-anchoring every segment where
// residue codes stop agreeing. It is a cursor loop: each repair moves the
// cursor to just past the start of the segment it fixed.
func repair(dom, ch *view, opts Options) Pass {
	var p Pass
	limit := opts.MaxIterations
	if limit <= 0 {
		limit = dom.len() + ch.len()
	}

	cursor := 0
	for {
		start, found := misaligned(dom, ch, cursor, opts.MinSegment)
		if !found {
			p.Outcome = RepairComplete
			return p
		}
		if p.Repairs >= limit {
			p.Outcome = RepairIterationLimit
			return p
		}
		res, err := opts.RepairLadder.Offset(dom.codes(start), ch.codes(start))
		if err != nil {
			p.Outcome = RepairNoAnchor
			p.Err = err
			return p
		}
		p.Anchors = append(p.Anchors, res)
		if res.Offset == 0 {
			p.Outcome = RepairComplete
			return p
		}
		shift(dom, ch, start, res.Offset)
		p.Repairs++
		cursor = start + 1
	}
}

// misaligned scans from cursor for a segment whose running mismatch score
// reaches minSegment and returns where that segment starts. Gap positions on
// either side are skipped. The score rises on a residue code mismatch, falls
// on a match, never goes below zero, and the segment start moves past every
// position where it is zero.
func misaligned(dom, ch *view, cursor, minSegment int) (int, bool) {
	n := min(dom.len(), ch.len())
	score, start := 0, cursor
	for i := cursor; i < n; i++ {
		a, b := dom.at(i), ch.at(i)
		if a == nil || b == nil {
			continue
		}
		if a.Code != b.Code {
			score++
		} else if score > 0 {
			score--
		}
		if score == 0 {
			start = i + 1
			continue
		}
		if score >= minSegment {
			return start, true
		}
	}
	return 0, false
}

// view presents a chain front to back, or back to front when reversed, so the
// tail pass can reuse the head pass unchanged. Insertions are always logged
// in physical coordinates.
type view struct {
	c        *residue.Chain
	reversed bool
	log      *[]Insertion
}

func (v *view) reverse() *view {
	return &view{c: v.c, reversed: !v.reversed, log: v.log}
}

func (v *view) len() int { return v.c.Len() }

func (v *view) at(i int) *residue.Residue {
	if v.reversed {
		return v.c.Slots[v.c.Len()-1-i]
	}
	return v.c.Slots[i]
}

// codes returns the residue codes from view position from to the end.
func (v *view) codes(from int) []byte {
	out := make([]byte, 0, v.len()-from)
	for i := from; i < v.len(); i++ {
		if r := v.at(i); r == nil {
			out = append(out, residue.GapCode)
		} else {
			out = append(out, r.Code)
		}
	}
	return out
}

// insert puts n gaps before view position at.
func (v *view) insert(at, n int) {
	if n <= 0 {
		return
	}
	phys := at
	if v.reversed {
		phys = v.c.Len() - at
	}
	// phys is within [0, Len] by construction
	_ = v.c.InsertGaps(phys, n)
	*v.log = append(*v.log, Insertion{At: phys, Count: n})
}
