package residue

import (
	"errors"
	"testing"
)

func TestUpgradeNeverDowngrades(t *testing.T) {
	all := []SwitchType{SwitchNone, SwitchMissingResidue, SwitchUnassigned, SwitchAssigned}
	for _, existing := range all {
		for _, candidate := range all {
			got := Upgrade(existing, candidate)
			if got < existing || got < candidate {
				t.Fatalf("Upgrade(%v, %v) = %v", existing, candidate, got)
			}
		}
	}
	if Upgrade(SwitchAssigned, SwitchUnassigned) != SwitchAssigned {
		t.Fatalf("assigned must win over unassigned")
	}
}

func TestSwitchFor(t *testing.T) {
	tests := []struct {
		a, b StructCategory
		want SwitchType
	}{
		{Helix, Sheet, SwitchAssigned},
		{Helix, Unassigned, SwitchUnassigned},
		{Unassigned, Other, SwitchUnassigned},
		{Other, Sheet, SwitchAssigned},
	}
	for _, tt := range tests {
		if got := SwitchFor(tt.a, tt.b); got != tt.want {
			t.Errorf("SwitchFor(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCategoryFromDSSP(t *testing.T) {
	cases := map[byte]StructCategory{
		'H': Helix, 'G': Helix, 'I': Helix,
		'E': Sheet, 'B': Sheet,
		'T': Other, 'S': Other, 'C': Other,
		' ': Unassigned, '-': Unassigned,
		'X': None, '?': None,
	}
	for code, want := range cases {
		if got := CategoryFromDSSP(code); got != want {
			t.Errorf("CategoryFromDSSP(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestNewChainMissingStructure(t *testing.T) {
	c := NewChain("a", "MKV", "", 1, ProvenanceUniProt)
	if !c.MissingStructure {
		t.Fatalf("chain without dssp should be flagged")
	}
	for _, cat := range c.Categories() {
		if cat != None {
			t.Fatalf("expected None categories, got %v", cat)
		}
	}
	c = NewChain("b", "MKV", "HH", 1, ProvenanceRCSB)
	if c.MissingStructure {
		t.Fatalf("chain with dssp should not be flagged")
	}
	if got := c.Categories(); got[0] != Helix || got[2] != None {
		t.Fatalf("unexpected categories %v", got)
	}
}

func TestAtOutOfRange(t *testing.T) {
	c := NewChain("a", "ABC", "HHH", 10, ProvenanceUnknown)
	_, err := c.At(-1)
	if !errors.Is(err, ErrIndexTooSmall) || errors.Is(err, ErrIndexTooLarge) {
		t.Fatalf("expect too small, got %v", err)
	}
	_, err = c.At(3)
	if !errors.Is(err, ErrIndexTooLarge) {
		t.Fatalf("expect too large, got %v", err)
	}
	var ierr *IndexError
	if !errors.As(err, &ierr) || ierr.Len != 3 {
		t.Fatalf("expect IndexError with length, got %v", err)
	}
	r, err := c.AtNumber(11)
	if err != nil || r.Code != 'B' {
		t.Fatalf("AtNumber(11) = %v, %v", r, err)
	}
	if _, err := c.AtNumber(9); !errors.Is(err, ErrIndexTooSmall) {
		t.Fatalf("expect too small for number before start, got %v", err)
	}
}

func TestInsertGaps(t *testing.T) {
	c := NewChain("a", "ABCD", "HHEE", 5, ProvenanceUnknown)
	orig := c.Occupied()

	if err := c.InsertGaps(0, 2); err != nil {
		t.Fatalf("insert front: %v", err)
	}
	if c.FirstIndex != 3 {
		t.Fatalf("FirstIndex = %d, want 3", c.FirstIndex)
	}
	if err := c.InsertGaps(4, 1); err != nil {
		t.Fatalf("insert middle: %v", err)
	}
	c.AppendGaps(1)
	if got := string(c.Codes()); got != "--AB-CD-" {
		t.Fatalf("codes = %q", got)
	}
	if err := c.InsertGaps(99, 1); !errors.Is(err, ErrIndexTooLarge) {
		t.Fatalf("expect too large, got %v", err)
	}

	// same residues, same order
	after := c.Occupied()
	if len(after) != len(orig) {
		t.Fatalf("occupied count changed: %d -> %d", len(orig), len(after))
	}
	for i := range orig {
		if orig[i] != after[i] {
			t.Fatalf("residue %d moved or replaced", i)
		}
	}
	r, _ := c.AtNumber(5)
	if r == nil || r.Code != 'A' {
		t.Fatalf("source numbering lost after front insertion")
	}
}

func TestValidCode(t *testing.T) {
	for _, b := range []byte("ACDEFGHIKLMNPQRSTVWYX") {
		if !ValidCode(b) {
			t.Errorf("%q should be valid", b)
		}
	}
	for _, b := range []byte("BJZ-1*") {
		if ValidCode(b) {
			t.Errorf("%q should be invalid", b)
		}
	}
}
