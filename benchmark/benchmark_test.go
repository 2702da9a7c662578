package benchmark

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunTo(t *testing.T) {
	var buf bytes.Buffer
	called := false
	RunTo(&buf, "switch_finder check", func() { called = true })
	if !called {
		t.Fatal("wrapped function not called")
	}
	out := buf.String()
	for _, want := range []string{"Running: switch_finder check", "Time Elapsed:", "GC Cycles:"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
