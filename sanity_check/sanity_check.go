// Package sanity_check runs a small reconcile-and-mark scenario end to end
// so a user can confirm the build works before pointing it at real data.
package sanity_check

import (
	"fmt"
	"os"
	"strings"

	"switch_finder_go/chain_reader"
	"switch_finder_go/cluster"
	"switch_finder_go/config"
	"switch_finder_go/residue"
	"switch_finder_go/switch_marker"
)

// sperm whale myoglobin
const myoglobin = "MVLSEGEWQLVLHVWAKVEADVAGHGQDILIRLFKSHPETLEKFDRFKHLKTEAEMKASEDLKKHGVTVLTALGAILKKKGHHEAELKPLAQSHATKHKIPIKYLEFISEAIIHVLHSRHPGDFGADAQGAMNKALELFRKDIAAKYKELGYQG"

// fixture builds an ss.txt with three entries of the same protein:
//
//	1MBN:A  the dominant chain, residue 1 disordered
//	2MBN:A  a GS tag in front and a short strand at residues 21-24
//	3MBN:A  two extra residues at the end and two unassigned residues at 61-62
func fixture() string {
	helix := func(n int) string { return strings.Repeat("H", n) }
	var b strings.Builder
	fmt.Fprintf(&b, ">1MBN:A:sequence\n%s\n", myoglobin)
	fmt.Fprintf(&b, ">1MBN:A:secstr\n%s\n", helix(len(myoglobin)))
	fmt.Fprintf(&b, ">1MBN:A:disorder\nX%s\n", strings.Repeat("-", len(myoglobin)-1))
	fmt.Fprintf(&b, ">2MBN:A:sequence\nGS%s\n", myoglobin)
	fmt.Fprintf(&b, ">2MBN:A:secstr\n%sEEEE%s\n", helix(22), helix(len(myoglobin)-24))
	fmt.Fprintf(&b, ">3MBN:A:sequence\n%sLE\n", myoglobin)
	fmt.Fprintf(&b, ">3MBN:A:secstr\n%s  %s\n", helix(60), helix(len(myoglobin)-60))
	return b.String()
}

// expected is the annotation of dominant residue i after marking.
func expected(i int) residue.SwitchType {
	switch {
	case i == 0:
		return residue.SwitchMissingResidue
	case i >= 20 && i <= 23:
		return residue.SwitchAssigned
	default:
		return residue.SwitchNone
	}
}

// Check runs the scenario with strategy s and compares the dominant chain's
// annotations against the expected ones.
func Check(s switch_marker.Strategy) error {
	lib, err := chain_reader.Parse(strings.NewReader(fixture()))
	if err != nil {
		return fmt.Errorf("reading fixture: %w", err)
	}
	dom, err := lib.Chain("1MBN:A")
	if err != nil {
		return err
	}
	settings := config.Defaults()
	cl, err := cluster.New(dom, settings.AlignerOptions())
	if err != nil {
		return err
	}
	for _, id := range []string{"2MBN:A", "3MBN:A"} {
		ch, err := lib.Chain(id)
		if err != nil {
			return err
		}
		if _, err := cl.AddChain(ch); err != nil {
			return fmt.Errorf("adding %s: %w", id, err)
		}
	}
	if err := cl.Check(); err != nil {
		return err
	}
	for _, ch := range cl.Chains() {
		for i, r := range ch.Slots {
			if d := dom.Slots[i]; r != nil && d != nil && r.Code != d.Code {
				return fmt.Errorf("%s slot %d: %c against %c", ch.ID, i, r.Code, d.Code)
			}
		}
	}

	if err := cl.MarkSwitches(s, settings.RunLength); err != nil {
		return err
	}
	if _, err := cl.MarkMissingResidues(); err != nil {
		return err
	}
	for i, r := range dom.Occupied() {
		if r.Switch != expected(i) {
			return fmt.Errorf("residue %d: %v, expected %v", i+1, r.Switch, expected(i))
		}
	}
	return nil
}

// Run performs the sanity check with every strategy, printing a line per
// strategy and the version number.
func Run(args []string) {
	fmt.Printf("Successfully running Switch Finder! (%s)\n", config.Main_version)
	for _, name := range []string{switch_marker.NameSequential, switch_marker.NameSimultaneous} {
		s, _ := switch_marker.StrategyByName(name)
		if err := Check(s); err != nil {
			fmt.Printf("Reconcile + mark (%s): FAILED\n", name)
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		fmt.Printf("Reconcile + mark (%s): ok\n", name)
	}
}
