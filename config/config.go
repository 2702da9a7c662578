package config // CLI configuration

import (
	"errors"
	"fmt"
	"strings"

	"switch_finder_go/anchor"
	"switch_finder_go/super_aligner"
	"switch_finder_go/switch_marker"
)

var (
	ErrClusterSpec = errors.New("invalid cluster spec")
	ErrSettings    = errors.New("invalid settings")
)

// Settings carries the engine knobs every tool shares.
type Settings struct {
	MatchLength    int
	MinMatchLength int
	RunLength      int
	Strategy       string
	MarkMissing    bool
	Summary        bool
	UseNumbering   bool // ss.txt chains all number from 1; trust FirstIndex only on request
}

// Defaults returns the settings used when no flag overrides them.
func Defaults() Settings {
	return Settings{
		MatchLength:    anchor.DefaultMatchLength,
		MinMatchLength: anchor.MinMatchLength,
		RunLength:      3,
		Strategy:       switch_marker.NameSequential,
	}
}

// Validate rejects settings the engine cannot run with.
func (s Settings) Validate() error {
	if s.MatchLength < anchor.MinMatchLength {
		return fmt.Errorf("%w: match length %d below %d", ErrSettings, s.MatchLength, anchor.MinMatchLength)
	}
	if s.MinMatchLength > s.MatchLength {
		return fmt.Errorf("%w: min match length %d above match length %d", ErrSettings, s.MinMatchLength, s.MatchLength)
	}
	if s.RunLength < 1 {
		return fmt.Errorf("%w: run length %d", ErrSettings, s.RunLength)
	}
	if _, err := switch_marker.StrategyByName(s.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrSettings, err)
	}
	return nil
}

// AlignerOptions builds reconciliation options. Heads, tails and interior
// repair all use the same ladder from MatchLength down to MinMatchLength.
func (s Settings) AlignerOptions() super_aligner.Options {
	opts := super_aligner.DefaultOptions()
	ladder := anchor.NewLadder(s.MatchLength, s.MinMatchLength)
	opts.Ladder = ladder
	opts.RepairLadder = ladder
	opts.UseNumbering = s.UseNumbering
	return opts
}

// ClusterSpec names a dominant chain and the chains compared against it.
type ClusterSpec struct {
	Dominant string
	Chains   []string
}

// ParseClusterSpec reads "DOM=ID1,ID2,...".
func ParseClusterSpec(arg string) (ClusterSpec, error) {
	kv := splitOption(arg)
	spec := ClusterSpec{Dominant: strings.TrimSpace(kv[0])}
	if spec.Dominant == "" {
		return spec, fmt.Errorf("%w: %q has no dominant chain", ErrClusterSpec, arg)
	}
	seen := map[string]bool{spec.Dominant: true}
	for _, id := range strings.Split(kv[1], ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if seen[id] {
			return spec, fmt.Errorf("%w: %q lists %s twice", ErrClusterSpec, arg, id)
		}
		seen[id] = true
		spec.Chains = append(spec.Chains, id)
	}
	if len(spec.Chains) == 0 {
		return spec, fmt.Errorf("%w: %q has no comparison chains", ErrClusterSpec, arg)
	}
	return spec, nil
}

// ClusterSpecs collects repeated -cluster flags.
type ClusterSpecs []ClusterSpec

func (c *ClusterSpecs) String() string {
	parts := make([]string, len(*c))
	for i, s := range *c {
		parts[i] = s.Dominant + "=" + strings.Join(s.Chains, ",")
	}
	return strings.Join(parts, " ")
}

func (c *ClusterSpecs) Set(arg string) error {
	spec, err := ParseClusterSpec(arg)
	if err != nil {
		return err
	}
	*c = append(*c, spec)
	return nil
}

// splitOption cuts arg at the first '='.
func splitOption(arg string) [2]string {
	var kv [2]string
	for i, ch := range arg {
		if ch == '=' {
			kv[0] = arg[:i]
			kv[1] = arg[i+1:]
			return kv
		}
	}
	kv[0] = arg
	kv[1] = ""
	return kv
}
