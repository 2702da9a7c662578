package config

import (
	"errors"
	"flag"
	"testing"

	"switch_finder_go/switch_marker"
)

func TestParseClusterSpec(t *testing.T) {
	spec, err := ParseClusterSpec(" 1ABC:A = 2XYZ:A, 3DEF:B ,")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if spec.Dominant != "1ABC:A" {
		t.Fatalf("dominant = %q", spec.Dominant)
	}
	if len(spec.Chains) != 2 || spec.Chains[0] != "2XYZ:A" || spec.Chains[1] != "3DEF:B" {
		t.Fatalf("chains = %v", spec.Chains)
	}

	bad := []string{"", "=2XYZ:A", "1ABC:A", "1ABC:A=", "1ABC:A=2XYZ:A,2XYZ:A", "1ABC:A=1ABC:A"}
	for _, arg := range bad {
		if _, err := ParseClusterSpec(arg); !errors.Is(err, ErrClusterSpec) {
			t.Errorf("%q: expect ErrClusterSpec, got %v", arg, err)
		}
	}
}

func TestClusterSpecsFlag(t *testing.T) {
	var specs ClusterSpecs
	fs := flag.NewFlagSet("switches", flag.ContinueOnError)
	fs.Var(&specs, "cluster", "")
	if err := fs.Parse([]string{"-cluster", "A=B,C", "-cluster", "D=E"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if len(specs) != 2 || specs[1].Dominant != "D" {
		t.Fatalf("specs = %+v", specs)
	}
	if specs.String() != "A=B,C D=E" {
		t.Fatalf("String() = %q", specs.String())
	}
}

func TestSettingsValidate(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"short match", func(s *Settings) { s.MatchLength = 2 }},
		{"min above match", func(s *Settings) { s.MinMatchLength = 40 }},
		{"run length", func(s *Settings) { s.RunLength = 0 }},
		{"strategy", func(s *Settings) { s.Strategy = "greedy" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.modify(&s)
			if err := s.Validate(); !errors.Is(err, ErrSettings) {
				t.Fatalf("expect ErrSettings, got %v", err)
			}
		})
	}
	s := Defaults()
	s.Strategy = "greedy"
	if err := s.Validate(); !errors.Is(err, switch_marker.ErrUnknownStrategy) {
		t.Fatalf("strategy error should wrap ErrUnknownStrategy, got %v", err)
	}
}

func TestAlignerOptions(t *testing.T) {
	s := Defaults()
	s.MatchLength = 16
	opts := s.AlignerOptions()
	if len(opts.Ladder.Lengths) != 2 || opts.Ladder.Lengths[0] != 16 || opts.Ladder.Lengths[1] != 4 {
		t.Fatalf("ladder = %v", opts.Ladder.Lengths)
	}
	if opts.UseNumbering {
		t.Fatalf("numbering should be off by default")
	}
	s.UseNumbering = true
	if !s.AlignerOptions().UseNumbering {
		t.Fatalf("numbering setting ignored")
	}
}
