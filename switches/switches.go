// Package switches is the "switches" tool: it reconciles clusters of chains
// read from one ss.txt (or FASTA) file and reports switch residues on each
// dominant chain.
package switches

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"switch_finder_go/chain_reader"
	"switch_finder_go/cluster"
	"switch_finder_go/config"
	"switch_finder_go/report"
	"switch_finder_go/super_aligner"
	"switch_finder_go/switch_marker"
)

// Run executes the switches command.
func Run(args []string) {
	fs := flag.NewFlagSet("switches", flag.ExitOnError)

	defaults := config.Defaults()
	var specs config.ClusterSpecs
	inFile := fs.String("in_file", "", "Input ss.txt or FASTA file, plain or gzipped (required)")
	fs.Var(&specs, "cluster", "Cluster as DOMINANT=ID1,ID2,... (repeatable, required)")
	runLength := fs.Int("run_length", defaults.RunLength, "Minimum run of consecutive differences kept as a switch")
	strategy := fs.String("strategy", defaults.Strategy, "Marking strategy: sequential or simultaneous")
	matchLen := fs.Int("match_len", defaults.MatchLength, "Anchor window length")
	minMatchLen := fs.Int("min_match_len", defaults.MinMatchLength, "Shortest anchor window tried when match_len finds nothing")
	markMissing := fs.Bool("mark_missing", false, "Flag dominant residues missing where another chain has structure")
	summary := fs.Bool("summary", false, "Print summary statistics instead of the per-residue table")
	useNumbering := fs.Bool("use_numbering", false, "Trust chain numbering between chains of the same source")

	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: switch_finder switches -in_file ss.txt -cluster DOM=ID1,ID2 [options]")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	if *inFile == "" || len(specs) == 0 {
		fmt.Println("Error: -in_file and at least one -cluster are required")
		fs.Usage()
		os.Exit(1)
	}

	settings := config.Settings{
		MatchLength:    *matchLen,
		MinMatchLength: *minMatchLen,
		RunLength:      *runLength,
		Strategy:       *strategy,
		MarkMissing:    *markMissing,
		Summary:        *summary,
		UseNumbering:   *useNumbering,
	}
	if err := settings.Validate(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	lib, err := chain_reader.Load(*inFile)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	for _, w := range lib.Warnings {
		fmt.Println("Warning:", w)
	}

	if err := Process(lib, specs, settings, os.Stdout); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

// Process runs every cluster concurrently and writes their reports to w in
// the order the clusters were given. Every cluster builds its own chains
// from lib, so no chain is shared between goroutines.
func Process(lib *chain_reader.Library, specs []config.ClusterSpec, s config.Settings, w io.Writer) error {
	strategy, err := switch_marker.StrategyByName(s.Strategy)
	if err != nil {
		return err
	}

	outputs := make([]bytes.Buffer, len(specs))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, spec := range specs {
		g.Go(func() error {
			return processCluster(lib, spec, s, strategy, &outputs[i])
		})
	}
	// finished clusters are still printed when another one fails
	err = g.Wait()
	for i := range outputs {
		if _, werr := outputs[i].WriteTo(w); werr != nil {
			return werr
		}
	}
	return err
}

func processCluster(lib *chain_reader.Library, spec config.ClusterSpec, s config.Settings, strategy switch_marker.Strategy, out *bytes.Buffer) error {
	dom, err := lib.Chain(spec.Dominant)
	if err != nil {
		return fmt.Errorf("cluster %s: %w", spec.Dominant, err)
	}
	if dom.MissingStructure {
		fmt.Fprintf(out, "Warning: dominant chain %s has no secondary structure, no switches can be marked\n", dom.ID)
	}
	cl, err := cluster.New(dom, s.AlignerOptions())
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "## Cluster %s\n", dom.ID)
	for _, id := range spec.Chains {
		ch, err := lib.Chain(id)
		if err != nil {
			fmt.Fprintf(out, "Warning: skipping %s: %v\n", id, err)
			continue
		}
		rep, err := cl.AddChain(ch)
		if err != nil {
			fmt.Fprintf(out, "Warning: skipping %s: %v\n", id, err)
			continue
		}
		if rep.Forward.Outcome != super_aligner.RepairComplete || rep.Backward.Outcome != super_aligner.RepairComplete {
			fmt.Fprintf(out, "Warning: %s: interior repair incomplete (forward %s, backward %s)\n",
				id, rep.Forward.Outcome, rep.Backward.Outcome)
		}
	}
	if len(cl.Chains()) == 0 {
		fmt.Fprintf(out, "Warning: no chain could be reconciled against %s\n", dom.ID)
	}

	if err := cl.MarkSwitches(strategy, s.RunLength); err != nil {
		return fmt.Errorf("cluster %s: %w", dom.ID, err)
	}
	if s.MarkMissing {
		if _, err := cl.MarkMissingResidues(); err != nil {
			return fmt.Errorf("cluster %s: %w", dom.ID, err)
		}
	}

	if s.Summary {
		return report.WriteSummary(out, report.Summarize(dom))
	}
	return report.WriteTable(out, dom)
}
