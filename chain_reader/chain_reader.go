// Package chain_reader turns secondary-structure FASTA files into chains.
//
// Two layouts are understood. RCSB ss.txt / ss.dis files carry several
// records per chain:
//
//	>101M:A:sequence
//	MVLSEGEWQLVLHVWAKVEAD...
//	>101M:A:secstr
//	    HHHHHHHHHHHHHHGGGHHH...
//	>101M:A:disorder
//	XX----------------------...
//
// Any other header is read as a plain FASTA sequence with no structural
// source (for example a UniProt entry).
package chain_reader

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"switch_finder_go/residue"
	common "switch_finder_go/utils"
)

var (
	ErrChainNotFound  = errors.New("chain not found")
	ErrEmptySequence  = errors.New("empty sequence")
	ErrLengthMismatch = errors.New("structure record longer than sequence")
)

type entry struct {
	id       string
	seq      string
	secstr   string
	disorder string
	hasSS    bool
	prov     residue.Provenance
}

// Library holds every chain read from one file. Each call to Chain builds
// a fresh *residue.Chain, so chains handed to different clusters never share
// residues.
type Library struct {
	entries  map[string]*entry
	order    []string
	Warnings []string
}

var opts = map[string]interface{}{"keep_blanks": true}

// Load reads a plain or gzipped file.
func Load(file string) (*Library, error) {
	lib := newLibrary()
	if err := common.StreamFastaWithOpts(file, lib.add, opts); err != nil {
		return nil, err
	}
	return lib, lib.finish()
}

// Parse reads records from r.
func Parse(r io.Reader) (*Library, error) {
	lib := newLibrary()
	if err := common.StreamFastaReader(r, lib.add, opts); err != nil {
		return nil, err
	}
	return lib, lib.finish()
}

func newLibrary() *Library {
	return &Library{entries: make(map[string]*entry)}
}

// IDs lists chain identifiers in file order.
func (l *Library) IDs() []string {
	return append([]string(nil), l.order...)
}

// Chain builds the chain stored under id. PDB chain letters are case
// sensitive, so identifiers are matched exactly.
func (l *Library) Chain(id string) (*residue.Chain, error) {
	e, ok := l.entries[normalizeID(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrChainNotFound, id)
	}
	dssp := ""
	if e.hasSS {
		dssp = e.secstr
		// pad stripped trailing blanks
		if len(dssp) < len(e.seq) {
			dssp += strings.Repeat(" ", len(e.seq)-len(dssp))
		}
	}
	c := residue.NewChain(e.id, e.seq, dssp, 1, e.prov)
	for i := 0; i < len(e.disorder) && i < len(c.Slots); i++ {
		if e.disorder[i] == 'X' {
			c.Slots[i].Category = residue.None
		}
	}
	return c, nil
}

// add is the streaming handler for one record.
func (l *Library) add(header string, seq string, _ map[string]interface{}) error {
	id, kind := splitHeader(header)
	e := l.entries[id]
	if e == nil {
		e = &entry{id: id, prov: residue.ProvenanceUniProt}
		l.entries[id] = e
		l.order = append(l.order, id)
	}
	switch kind {
	case "secstr":
		e.secstr = seq
		e.hasSS = true
		e.prov = residue.ProvenanceRCSB
	case "disorder":
		e.disorder = strings.TrimSpace(seq)
		e.prov = residue.ProvenanceRCSB
	case "sequence":
		e.seq = strings.ReplaceAll(seq, " ", "")
		e.prov = residue.ProvenanceRCSB
	default:
		e.seq = strings.ReplaceAll(seq, " ", "")
	}
	return nil
}

// finish validates the library once every record has been read.
func (l *Library) finish() error {
	for _, id := range l.order {
		e := l.entries[id]
		if e.seq == "" {
			return fmt.Errorf("%w: %s", ErrEmptySequence, id)
		}
		if len(e.secstr) > len(e.seq) || len(e.disorder) > len(e.seq) {
			return fmt.Errorf("%w: %s has %d residues", ErrLengthMismatch, id, len(e.seq))
		}
		invalid := make(map[byte]int)
		var codes []byte
		for i := 0; i < len(e.seq); i++ {
			if !residue.ValidCode(e.seq[i]) {
				if invalid[e.seq[i]] == 0 {
					codes = append(codes, e.seq[i])
				}
				invalid[e.seq[i]]++
			}
		}
		slices.Sort(codes)
		for _, code := range codes {
			l.Warnings = append(l.Warnings, fmt.Sprintf("%s: %d residue(s) with unexpected code %q", id, invalid[code], code))
		}
	}
	return nil
}

// splitHeader separates "101M:A:secstr" into "101M:A" and "secstr". Plain
// FASTA headers keep only their first field.
func splitHeader(header string) (string, string) {
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return "", ""
	}
	name := fields[0]
	if i := strings.LastIndexByte(name, ':'); i > 0 {
		switch kind := strings.ToLower(name[i+1:]); kind {
		case "sequence", "secstr", "disorder":
			return normalizeID(name[:i]), kind
		}
	}
	return normalizeID(name), ""
}

func normalizeID(id string) string {
	return strings.TrimSpace(id)
}
