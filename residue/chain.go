package residue

import (
	"errors"
	"fmt"
	"strings"
)

// GapCode is the byte a gap slot contributes to Codes.
const GapCode = '-'

// Provenance names the source a chain was read from. Chains with the same
// known provenance share a numbering scheme.
type Provenance string

const (
	ProvenanceUnknown Provenance = ""
	ProvenanceRCSB    Provenance = "rcsb"
	ProvenanceUniProt Provenance = "uniprot"
	ProvenanceDSSP    Provenance = "dssp"
)

var (
	ErrIndexTooSmall = errors.New("residue index below chain start")
	ErrIndexTooLarge = errors.New("residue index past chain end")
)

// IndexError reports an out of range slot access. It matches
// ErrIndexTooSmall or ErrIndexTooLarge with errors.Is.
type IndexError struct {
	Chain string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("chain %q: index %d out of range [0,%d)", e.Chain, e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool {
	if e.Index < 0 {
		return target == ErrIndexTooSmall
	}
	return target == ErrIndexTooLarge
}

// Chain is an ordered, gap-padded sequence of residues. A nil slot is a gap.
// FirstIndex is the source number of slot 0.
type Chain struct {
	ID               string
	Slots            []*Residue
	FirstIndex       int
	Provenance       Provenance
	MissingStructure bool // no structural source could be read for this chain
}

// NewChain builds a chain from a residue string and a parallel DSSP string.
// An empty dssp marks the chain as having no structural source; a shorter
// dssp leaves the remaining residues with category None.
func NewChain(id, seq, dssp string, firstIndex int, prov Provenance) *Chain {
	c := &Chain{
		ID:               id,
		Slots:            make([]*Residue, len(seq)),
		FirstIndex:       firstIndex,
		Provenance:       prov,
		MissingStructure: dssp == "",
	}
	for i := 0; i < len(seq); i++ {
		r := &Residue{Code: seq[i], Number: firstIndex + i}
		if i < len(dssp) {
			r.Category = CategoryFromDSSP(dssp[i])
		}
		c.Slots[i] = r
	}
	return c
}

// Len is the physical length of the chain, gaps included.
func (c *Chain) Len() int {
	return len(c.Slots)
}

// At returns slot i, which is nil for a gap.
func (c *Chain) At(i int) (*Residue, error) {
	if i < 0 || i >= len(c.Slots) {
		return nil, &IndexError{Chain: c.ID, Index: i, Len: len(c.Slots)}
	}
	return c.Slots[i], nil
}

// AtNumber returns the slot holding source position n.
func (c *Chain) AtNumber(n int) (*Residue, error) {
	return c.At(n - c.FirstIndex)
}

// IsGap reports whether slot i is a gap. Out of range slots count as gaps.
func (c *Chain) IsGap(i int) bool {
	return i < 0 || i >= len(c.Slots) || c.Slots[i] == nil
}

// InsertGaps inserts n gap slots before slot at. Inserting at the front moves
// FirstIndex back so existing residues keep their source numbers.
func (c *Chain) InsertGaps(at, n int) error {
	if n <= 0 {
		return nil
	}
	if at < 0 || at > len(c.Slots) {
		return &IndexError{Chain: c.ID, Index: at, Len: len(c.Slots)}
	}
	slots := make([]*Residue, 0, len(c.Slots)+n)
	slots = append(slots, c.Slots[:at]...)
	slots = append(slots, make([]*Residue, n)...)
	slots = append(slots, c.Slots[at:]...)
	c.Slots = slots
	if at == 0 {
		c.FirstIndex -= n
	}
	return nil
}

// AppendGaps pads the tail with n gap slots.
func (c *Chain) AppendGaps(n int) {
	if n > 0 {
		c.Slots = append(c.Slots, make([]*Residue, n)...)
	}
}

// Codes returns the residue codes with GapCode in gap slots.
func (c *Chain) Codes() []byte {
	out := make([]byte, len(c.Slots))
	for i, r := range c.Slots {
		if r == nil {
			out[i] = GapCode
		} else {
			out[i] = r.Code
		}
	}
	return out
}

// Categories returns the structural category of each slot; gaps are None.
func (c *Chain) Categories() []StructCategory {
	out := make([]StructCategory, len(c.Slots))
	for i, r := range c.Slots {
		if r != nil {
			out[i] = r.Category
		}
	}
	return out
}

// Occupied returns the residues in order, gaps dropped.
func (c *Chain) Occupied() []*Residue {
	out := make([]*Residue, 0, len(c.Slots))
	for _, r := range c.Slots {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

// Switches returns the switch annotation of each slot; gaps are SwitchNone.
func (c *Chain) Switches() []SwitchType {
	out := make([]SwitchType, len(c.Slots))
	for i, r := range c.Slots {
		if r != nil {
			out[i] = r.Switch
		}
	}
	return out
}

func (c *Chain) String() string {
	var b strings.Builder
	b.WriteString(c.ID)
	b.WriteByte(' ')
	b.Write(c.Codes())
	return b.String()
}
