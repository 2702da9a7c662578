package sanity_check

import (
	"testing"

	"switch_finder_go/switch_marker"
)

func TestCheck(t *testing.T) {
	for _, s := range []switch_marker.Strategy{switch_marker.Sequential{}, switch_marker.Simultaneous{}} {
		if err := Check(s); err != nil {
			t.Fatalf("%s: %v", s.Name(), err)
		}
	}
}
