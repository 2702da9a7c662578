// Package residue holds the value types shared by the aligner and the
// switch marker: residues, gap slots, chains and their annotations.
package residue

// StructCategory is the simplified secondary structure of a residue.
// None means the structure is not known (unobserved, or no structural source).
type StructCategory int

const (
	None StructCategory = iota
	Helix
	Sheet
	Other
	Unassigned
)

func (c StructCategory) String() string {
	switch c {
	case Helix:
		return "helix"
	case Sheet:
		return "sheet"
	case Other:
		return "other"
	case Unassigned:
		return "unassigned"
	default:
		return "none"
	}
}

// Known reports whether the category can take part in a comparison.
func (c StructCategory) Known() bool {
	return c != None
}

// CategoryFromDSSP maps a one-letter DSSP code onto a simplified category.
// A blank (or '-') is DSSP's "no assignment", which is a real observation;
// X and ? mean the residue was not observed at all.
func CategoryFromDSSP(code byte) StructCategory {
	switch code {
	case 'H', 'G', 'I':
		return Helix
	case 'E', 'B':
		return Sheet
	case 'T', 'S', 'P', 'C', 'L':
		return Other
	case ' ', '-':
		return Unassigned
	default:
		return None
	}
}

// SwitchType is the switch annotation of a residue. The values are ordered
// by priority so that combining two annotations is a plain max.
type SwitchType int

const (
	SwitchNone SwitchType = iota
	SwitchMissingResidue
	SwitchUnassigned
	SwitchAssigned
)

func (s SwitchType) String() string {
	switch s {
	case SwitchMissingResidue:
		return "missing"
	case SwitchUnassigned:
		return "unassigned"
	case SwitchAssigned:
		return "assigned"
	default:
		return "none"
	}
}

// Upgrade combines an existing annotation with a new candidate. An annotation
// never goes down in priority.
func Upgrade(existing, candidate SwitchType) SwitchType {
	if candidate > existing {
		return candidate
	}
	return existing
}

// SwitchFor is the annotation a disagreement between two known categories
// deserves: Unassigned when either side is Unassigned, Assigned otherwise.
func SwitchFor(a, b StructCategory) SwitchType {
	if a == Unassigned || b == Unassigned {
		return SwitchUnassigned
	}
	return SwitchAssigned
}

// Residue is one amino acid position of a chain.
type Residue struct {
	Code     byte           // one-letter residue type
	Category StructCategory // simplified secondary structure
	Switch   SwitchType     // written only by the switch marker
	Number   int            // source numbering at load time
}

// NewResidue returns a residue with the given code and DSSP structure code.
func NewResidue(code, dssp byte) *Residue {
	return &Residue{Code: code, Category: CategoryFromDSSP(dssp)}
}

// validAminoAcids lists the one-letter codes accepted without complaint.
// X (unknown) and U/O (selenocysteine, pyrrolysine) turn up in PDB SEQRES
// records and are accepted as well.
var validAminoAcids = map[byte]bool{
	'A': true, 'C': true, 'D': true, 'E': true, 'F': true,
	'G': true, 'H': true, 'I': true, 'K': true, 'L': true,
	'M': true, 'N': true, 'P': true, 'Q': true, 'R': true,
	'S': true, 'T': true, 'V': true, 'W': true, 'Y': true,
	'X': true, 'U': true, 'O': true,
}

// ValidCode reports whether code is an accepted one-letter residue code.
func ValidCode(code byte) bool {
	return validAminoAcids[code]
}
