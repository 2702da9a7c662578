// Package cluster keeps a dominant chain and the comparison chains reconciled
// against it, and runs switch marking over the whole set.
//
// A cluster is not safe for concurrent use. Chains added to a cluster are
// mutated in place and should not be shared with another cluster.
package cluster

import (
	"errors"
	"fmt"

	"switch_finder_go/residue"
	"switch_finder_go/super_aligner"
	"switch_finder_go/switch_marker"
)

var (
	ErrNilChain       = errors.New("nil chain")
	ErrDuplicateChain = errors.New("chain already in cluster")
	ErrInvariant      = errors.New("cluster invariant violated")
)

type Cluster struct {
	dominant *residue.Chain
	chains   []*residue.Chain
	reports  []super_aligner.Report
	opts     super_aligner.Options
}

// New starts a cluster around dominant.
func New(dominant *residue.Chain, opts super_aligner.Options) (*Cluster, error) {
	if dominant == nil {
		return nil, ErrNilChain
	}
	return &Cluster{dominant: dominant, opts: opts}, nil
}

func (c *Cluster) Dominant() *residue.Chain { return c.dominant }

// Chains returns the comparison chains in the order they were added.
func (c *Cluster) Chains() []*residue.Chain {
	return append([]*residue.Chain(nil), c.chains...)
}

// Reports returns the reconciliation report of each comparison chain.
func (c *Cluster) Reports() []super_aligner.Report {
	return append([]super_aligner.Report(nil), c.reports...)
}

// AddChain reconciles ch against the dominant chain and adds it. Gaps the
// dominant chain gains on the way are replayed on every chain added before,
// so the whole cluster keeps one length and one FirstIndex. On error ch is
// not added and no chain is changed.
func (c *Cluster) AddChain(ch *residue.Chain) (super_aligner.Report, error) {
	if ch == nil {
		return super_aligner.Report{}, ErrNilChain
	}
	if ch == c.dominant {
		return super_aligner.Report{}, fmt.Errorf("%w: %s is the dominant chain", ErrDuplicateChain, ch.ID)
	}
	for _, old := range c.chains {
		if old == ch {
			return super_aligner.Report{}, fmt.Errorf("%w: %s", ErrDuplicateChain, ch.ID)
		}
	}

	rep, err := super_aligner.Reconcile(c.dominant, ch, c.opts)
	if err != nil {
		return rep, err
	}
	for _, old := range c.chains {
		if err := super_aligner.Replay(old, rep.DominantInsertions); err != nil {
			return rep, fmt.Errorf("%w: replaying gaps on %s: %w", ErrInvariant, old.ID, err)
		}
	}
	c.chains = append(c.chains, ch)
	c.reports = append(c.reports, rep)
	for _, other := range c.chains {
		other.FirstIndex = c.dominant.FirstIndex
	}
	return rep, nil
}

// Check verifies that every chain matches the dominant chain's length and
// FirstIndex.
func (c *Cluster) Check() error {
	for _, ch := range c.chains {
		if ch.Len() != c.dominant.Len() || ch.FirstIndex != c.dominant.FirstIndex {
			return fmt.Errorf("%w: %s is %d@%d, dominant %s is %d@%d", ErrInvariant,
				ch.ID, ch.Len(), ch.FirstIndex, c.dominant.ID, c.dominant.Len(), c.dominant.FirstIndex)
		}
	}
	return nil
}

// MarkSwitches annotates the dominant chain with strategy s.
func (c *Cluster) MarkSwitches(s switch_marker.Strategy, runLength int) error {
	if err := c.Check(); err != nil {
		return err
	}
	return s.Mark(c.dominant, c.chains, runLength)
}

// MarkMissingResidues flags dominant residues of unknown structure at
// positions where some comparison chain does have a known structure. It
// returns the number of residues flagged.
func (c *Cluster) MarkMissingResidues() (int, error) {
	if err := c.Check(); err != nil {
		return 0, err
	}
	n := 0
	for i, r := range c.dominant.Slots {
		if r == nil || r.Category.Known() {
			continue
		}
		for _, ch := range c.chains {
			if ch.MissingStructure {
				continue
			}
			if b := ch.Slots[i]; b != nil && b.Category.Known() {
				r.Switch = residue.Upgrade(r.Switch, residue.SwitchMissingResidue)
				n++
				break
			}
		}
	}
	return n, nil
}
