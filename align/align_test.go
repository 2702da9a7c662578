package align

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"switch_finder_go/chain_reader"
	"switch_finder_go/config"
	"switch_finder_go/super_aligner"
)

const core = "MVLSEGEWQLVLHVWAKVEADVAGHGQDILIRLFKSHPETLEKFDRFKHLKTEAEMKASEDLKK"

func TestAlign(t *testing.T) {
	in := ">dom\n" + core + "\n>tagged\nGS" + core + "LE\n>junk\n" + strings.Repeat("W", 70) + "\n"
	lib, err := chain_reader.Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Align(lib, "dom", "tagged", config.Defaults(), &buf); err != nil {
		t.Fatalf("align: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Head offset:\t2 (anchor, match length 32)\n",
		"Tail offset:\t2 (match length 32)\n",
		"dom   \t--" + core + "--\n",
		"tagged\tGS" + core + "LE\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if err := Align(lib, "dom", "junk", config.Defaults(), &buf); !errors.Is(err, super_aligner.ErrHeadAnchor) {
		t.Fatalf("expect ErrHeadAnchor, got %v", err)
	}
	if err := Align(lib, "dom", "nope", config.Defaults(), &buf); !errors.Is(err, chain_reader.ErrChainNotFound) {
		t.Fatalf("expect ErrChainNotFound, got %v", err)
	}
}
