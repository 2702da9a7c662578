package report

import (
	"bufio"
	"fmt"
	"io"

	"gonum.org/v1/gonum/stat"

	"switch_finder_go/residue"
)

// Summary condenses the switch annotations of one chain.
type Summary struct {
	Chain      string
	Residues   int // occupied slots
	Known      int // residues with a known structure
	Assigned   int
	Unassigned int
	Missing    int
	Runs       int // switch runs (assigned or unassigned)
	LongestRun int
	MeanRun    float64
	StdDevRun  float64
	Fraction   float64 // switched share of residues with known structure
}

// Summarize counts annotations and switch runs on c. Runs are measured the
// way the marker measures them: gaps and residues of unknown structure are
// skipped without breaking a run.
func Summarize(c *residue.Chain) Summary {
	s := Summary{Chain: c.ID}
	var runs []float64
	run := 0
	closeRun := func() {
		if run > 0 {
			runs = append(runs, float64(run))
			if run > s.LongestRun {
				s.LongestRun = run
			}
		}
		run = 0
	}

	for _, r := range c.Slots {
		if r == nil {
			continue
		}
		s.Residues++
		switch r.Switch {
		case residue.SwitchAssigned:
			s.Assigned++
		case residue.SwitchUnassigned:
			s.Unassigned++
		case residue.SwitchMissingResidue:
			s.Missing++
		}
		if !r.Category.Known() {
			continue
		}
		s.Known++
		if r.Switch >= residue.SwitchUnassigned {
			run++
		} else {
			closeRun()
		}
	}
	closeRun()

	s.Runs = len(runs)
	if len(runs) > 0 {
		s.MeanRun = stat.Mean(runs, nil)
	}
	if len(runs) > 1 {
		s.StdDevRun = stat.StdDev(runs, nil)
	}
	if s.Known > 0 {
		s.Fraction = float64(s.Assigned+s.Unassigned) / float64(s.Known)
	}
	return s
}

// WriteSummary prints s as "key<TAB>value" lines.
func WriteSummary(w io.Writer, s Summary) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Chain\t%s\n", s.Chain)
	fmt.Fprintf(bw, "Residues\t%d\n", s.Residues)
	fmt.Fprintf(bw, "Known_structure\t%d\n", s.Known)
	fmt.Fprintf(bw, "Assigned\t%d\n", s.Assigned)
	fmt.Fprintf(bw, "Unassigned\t%d\n", s.Unassigned)
	fmt.Fprintf(bw, "Missing\t%d\n", s.Missing)
	fmt.Fprintf(bw, "Runs\t%d\n", s.Runs)
	fmt.Fprintf(bw, "Longest_run\t%d\n", s.LongestRun)
	fmt.Fprintf(bw, "Mean_run\t%.2f\n", s.MeanRun)
	fmt.Fprintf(bw, "StdDev_run\t%.2f\n", s.StdDevRun)
	fmt.Fprintf(bw, "Switched(%%)\t%.2f\n", s.Fraction*100)
	return bw.Flush()
}

// WriteTable prints one line per residue of c: cluster number, residue code,
// structure and switch annotation. Gap slots are not printed but still
// advance the numbering.
func WriteTable(w io.Writer, c *residue.Chain) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Number\tResidue\tStructure\tSwitch")
	for i, r := range c.Slots {
		if r == nil {
			continue
		}
		fmt.Fprintf(bw, "%d\t%c\t%s\t%s\n", c.FirstIndex+i, r.Code, r.Category, r.Switch)
	}
	return bw.Flush()
}

// WriteAlignment prints the residue codes of reconciled chains one per line,
// '-' marking gaps, followed by a structure line for each chain.
func WriteAlignment(w io.Writer, chains ...*residue.Chain) error {
	bw := bufio.NewWriter(w)
	width := 0
	for _, c := range chains {
		if len(c.ID) > width {
			width = len(c.ID)
		}
	}
	for _, c := range chains {
		fmt.Fprintf(bw, "%-*s\t%s\n", width, c.ID, c.Codes())
	}
	for _, c := range chains {
		fmt.Fprintf(bw, "%-*s\t%s\n", width, c.ID, structureLine(c))
	}
	return bw.Flush()
}

// structureLine renders categories one character each: H helix, E sheet,
// o other, _ unassigned, ? unknown, - gap.
func structureLine(c *residue.Chain) string {
	out := make([]byte, len(c.Slots))
	for i, r := range c.Slots {
		if r == nil {
			out[i] = '-'
			continue
		}
		switch r.Category {
		case residue.Helix:
			out[i] = 'H'
		case residue.Sheet:
			out[i] = 'E'
		case residue.Other:
			out[i] = 'o'
		case residue.Unassigned:
			out[i] = '_'
		default:
			out[i] = '?'
		}
	}
	return string(out)
}
