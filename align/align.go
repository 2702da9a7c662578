// Package align is the "align" tool: it reconciles one chain against a
// dominant chain and prints the gap-padded result.
package align

import (
	"flag"
	"fmt"
	"io"
	"os"

	"switch_finder_go/chain_reader"
	"switch_finder_go/config"
	"switch_finder_go/report"
	"switch_finder_go/super_aligner"
)

// Run executes the align command.
func Run(args []string) {
	fs := flag.NewFlagSet("align", flag.ExitOnError)

	defaults := config.Defaults()
	inFile := fs.String("in_file", "", "Input ss.txt or FASTA file, plain or gzipped (required)")
	dominant := fs.String("dominant", "", "ID of the dominant chain (required)")
	chainID := fs.String("chain", "", "ID of the chain to reconcile (required)")
	matchLen := fs.Int("match_len", defaults.MatchLength, "Anchor window length")
	minMatchLen := fs.Int("min_match_len", defaults.MinMatchLength, "Shortest anchor window tried when match_len finds nothing")
	useNumbering := fs.Bool("use_numbering", false, "Trust chain numbering between chains of the same source")
	fs.Parse(args)

	if *inFile == "" || *dominant == "" || *chainID == "" {
		fmt.Println("Error: -in_file, -dominant and -chain are required")
		fs.PrintDefaults()
		os.Exit(1)
	}

	settings := defaults
	settings.MatchLength = *matchLen
	settings.MinMatchLength = *minMatchLen
	settings.UseNumbering = *useNumbering
	if err := settings.Validate(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	lib, err := chain_reader.Load(*inFile)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	if err := Align(lib, *dominant, *chainID, settings, os.Stdout); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

// Align reconciles chainID against dominantID and writes what was done
// followed by both chains.
func Align(lib *chain_reader.Library, dominantID, chainID string, s config.Settings, w io.Writer) error {
	dom, err := lib.Chain(dominantID)
	if err != nil {
		return err
	}
	ch, err := lib.Chain(chainID)
	if err != nil {
		return err
	}
	rep, err := super_aligner.Reconcile(dom, ch, s.AlignerOptions())
	if err != nil {
		return err
	}

	head := "anchor"
	if rep.HeadFromNumbering {
		head = "numbering"
	}
	fmt.Fprintf(w, "Head offset:\t%d (%s, match length %d)\n", rep.Head.Offset, head, rep.Head.MatchLength)
	fmt.Fprintf(w, "Tail offset:\t%d (match length %d)\n", rep.Tail.Offset, rep.Tail.MatchLength)
	fmt.Fprintf(w, "Forward repair:\t%s, %d segment(s)\n", rep.Forward.Outcome, rep.Forward.Repairs)
	fmt.Fprintf(w, "Backward repair:\t%s, %d segment(s)\n", rep.Backward.Outcome, rep.Backward.Repairs)
	fmt.Fprintf(w, "Length:\t%d (first index %d)\n\n", dom.Len(), dom.FirstIndex)
	return report.WriteAlignment(w, dom, ch)
}
